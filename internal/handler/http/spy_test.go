package http

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/render"
	"github.com/MKhiriev/go-version-gen/internal/service"
	"github.com/MKhiriev/go-version-gen/models"
)

// spyVersionService implements service.VersionService over a fixed record.
type spyVersionService struct {
	mu sync.Mutex

	record   models.VersionRecord
	err      error
	panicMsg string

	generated   int
	regenerated int
	cleared     int
	status      models.CacheStatus
}

func (s *spyVersionService) result() models.GenerationResult {
	return models.GenerationResult{Record: s.record, Files: []string{"public/version.json"}}
}

func (s *spyVersionService) Generate(_ context.Context) (models.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	s.generated++
	if s.err != nil {
		return models.GenerationResult{}, s.err
	}
	return s.result(), nil
}

func (s *spyVersionService) Regenerate(_ context.Context) (models.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regenerated++
	if s.err != nil {
		return models.GenerationResult{}, s.err
	}
	return s.result(), nil
}

func (s *spyVersionService) LastRecord(_ context.Context) (models.VersionRecord, bool) {
	return s.record, s.generated > 0
}

func (s *spyVersionService) ClearCache(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared++
}

func (s *spyVersionService) CacheStatus(_ context.Context) models.CacheStatus {
	return s.status
}

func (s *spyVersionService) CleanArtifacts(_ context.Context) ([]string, error) {
	return nil, nil
}

func (s *spyVersionService) Render(ctx context.Context, format models.Format) ([]byte, error) {
	result, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}
	return render.NewRenderer(render.DefaultOptions()).Render(result.Record, format)
}

type spyAppInfoService struct {
	info models.AppBuildInfo
}

func (s *spyAppInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return s.info
}

func testRecord() models.VersionRecord {
	tag := "v2.3.0"
	return models.VersionRecord{
		Version:            "2.3",
		Tag:                &tag,
		Branch:             "release-2.3",
		CommitHash:         "abc1234",
		FullCommitHash:     "abc1234def5678",
		BuildTime:          "2026-01-02T03:04:05.678Z",
		BuildTimeFormatted: "2026/01/02 11:04:05",
		GeneratedAt:        "2026-01-02T03:04:05.678Z",
	}
}

func newTestHandler(svc *spyVersionService) *Handler {
	return NewHandler(&service.Services{
		VersionService: svc,
		AppInfoService: &spyAppInfoService{info: models.NewAppBuildInfo("1.2.3", "2026-10-01", "deadbee")},
	}, logger.Nop())
}

func sampleStatus() models.CacheStatus {
	return models.CacheStatus{
		Cached:    true,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Age:       2 * time.Second,
		Valid:     true,
	}
}
