package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/utils"
	"github.com/MKhiriev/go-version-gen/models"
	"github.com/rs/zerolog"
)

type versionLoggingService struct {
	inner VersionService

	logger *logger.Logger
}

// NewVersionLoggingService returns a wrapper that logs every generation
// cycle and cache operation.
func NewVersionLoggingService(logger *logger.Logger) VersionServiceWrapper {
	return &versionLoggingService{logger: logger}
}

func (l *versionLoggingService) Wrap(inner VersionService) VersionService {
	l.inner = inner
	return l
}

func (l *versionLoggingService) Generate(ctx context.Context) (models.GenerationResult, error) {
	start := time.Now()
	result, err := l.inner.Generate(ctx)
	l.logResult(ctx, "generate", result, err, time.Since(start))
	return result, err
}

func (l *versionLoggingService) Regenerate(ctx context.Context) (models.GenerationResult, error) {
	start := time.Now()
	result, err := l.inner.Regenerate(ctx)
	l.logResult(ctx, "regenerate", result, err, time.Since(start))
	return result, err
}

// withTrace adds the request trace id, when ctx carries one.
func withTrace(ctx context.Context, event *zerolog.Event) *zerolog.Event {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		return event.Str("trace_id", traceID)
	}
	return event
}

func (l *versionLoggingService) logResult(ctx context.Context, op string, result models.GenerationResult, err error, elapsed time.Duration) {
	if err != nil {
		withTrace(ctx, l.logger.Error()).Err(err).Str("op", op).Dur("elapsed", elapsed).Msg("version generation failed")
		return
	}

	record := result.Record
	tag := "none"
	if record.Tag != nil {
		tag = *record.Tag
	}

	event := l.logger.Info()
	if result.Degraded {
		event = l.logger.Warn()
	}
	withTrace(ctx, event).
		Str("op", op).
		Str("version", record.Version).
		Str("tag", tag).
		Str("branch", record.Branch).
		Str("commit", record.CommitHash).
		Str("build_time", record.BuildTime).
		Strs("files", result.Files).
		Bool("degraded", result.Degraded).
		Dur("elapsed", elapsed).
		Msg("version info generated")
}

func (l *versionLoggingService) LastRecord(ctx context.Context) (models.VersionRecord, bool) {
	return l.inner.LastRecord(ctx)
}

func (l *versionLoggingService) ClearCache(ctx context.Context) {
	l.inner.ClearCache(ctx)
	l.logger.Debug().Msg("version info cache cleared")
}

func (l *versionLoggingService) CacheStatus(ctx context.Context) models.CacheStatus {
	return l.inner.CacheStatus(ctx)
}

func (l *versionLoggingService) CleanArtifacts(ctx context.Context) ([]string, error) {
	removed, err := l.inner.CleanArtifacts(ctx)
	if err != nil {
		l.logger.Error().Err(err).Strs("removed", removed).Msg("failed to clean version artifacts")
		return removed, err
	}
	l.logger.Info().Strs("removed", removed).Msg("version artifacts cleaned")
	return removed, nil
}

func (l *versionLoggingService) Render(ctx context.Context, format models.Format) ([]byte, error) {
	content, err := l.inner.Render(ctx, format)
	if err != nil {
		l.logger.Warn().Err(err).Str("format", format.String()).Msg("failed to render version info")
	}
	return content, err
}
