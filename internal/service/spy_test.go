package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-version-gen/models"
)

// spyBuilder returns a record with an increasing build time per call.
type spyBuilder struct {
	mu       sync.Mutex
	calls    []BuildOptions
	degraded bool
	err      error
}

func (s *spyBuilder) Build(_ context.Context, outputPath string, pattern *VersionPattern, opts BuildOptions) (BuildResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, opts)
	if s.err != nil {
		return BuildResult{}, s.err
	}

	record := sampleRecord()
	record.BuildTime = record.BuildTime + "#" + string(rune('0'+len(s.calls)))
	record.GeneratedAt = record.BuildTime
	return BuildResult{Record: record.WithCustomFields(opts.CustomFields), Degraded: s.degraded}, nil
}

func (s *spyBuilder) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type spyEmitter struct {
	mu      sync.Mutex
	records []models.VersionRecord
	formats [][]string
	none    bool
	err     error
}

func (s *spyEmitter) Emit(_ context.Context, record models.VersionRecord, outputPath string, formats []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	s.formats = append(s.formats, formats)
	if s.err != nil {
		return nil, s.err
	}
	if s.none {
		return []string{}, nil
	}

	files := make([]string, 0, len(formats))
	for _, f := range formats {
		files = append(files, outputPath+"/version."+f)
	}
	return files, nil
}

type staticIDs string

func (s staticIDs) Generate() string { return string(s) }
