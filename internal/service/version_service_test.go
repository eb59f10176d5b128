// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-version-gen/internal/config"
	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/mock"
	"github.com/MKhiriev/go-version-gen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	builder   *spyBuilder
	emitter   *spyEmitter
	collector *mock.MockCachedCollector
	storage   *mock.MockArtifactStorage
	renderer  *mock.MockRenderer
	svc       VersionService
}

func newServiceFixture(t *testing.T, cfg config.Generation) serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := serviceFixture{
		builder:   &spyBuilder{},
		emitter:   &spyEmitter{},
		collector: mock.NewMockCachedCollector(ctrl),
		storage:   mock.NewMockArtifactStorage(ctrl),
		renderer:  mock.NewMockRenderer(ctrl),
	}

	svc, err := NewVersionService(VersionServiceDeps{
		Builder:   f.builder,
		Emitter:   f.emitter,
		Collector: f.collector,
		Storage:   f.storage,
		Renderer:  f.renderer,
		IDs:       staticIDs("0192f0c4-7a5e-7cc1-9d2b-3f1a2b3c4d5e"),
	}, cfg, logger.Nop())
	require.NoError(t, err)
	f.svc = svc

	return f
}

func baseGeneration() config.Generation {
	return config.Generation{
		OutputPath: "dist",
		Rule:       DefaultVersionPattern,
		Formats:    []string{"json", "ts"},
		Request:    models.DefaultRequest(),
		TimeZone:   DefaultTimeZone,
	}
}

// ─────────────────────────────────────────────
// NewVersionService
// ─────────────────────────────────────────────

func TestNewVersionService_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Generation
	}{
		{name: "empty output path", cfg: config.Generation{Rule: DefaultVersionPattern}},
		{name: "bad rule", cfg: config.Generation{OutputPath: "dist", Rule: "(unclosed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewVersionService(VersionServiceDeps{}, tt.cfg, logger.Nop())
			assert.Nil(t, svc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestNewVersionService_DefaultsFormatsAndRule(t *testing.T) {
	f := newServiceFixture(t, config.Generation{OutputPath: "dist"})

	res, err := f.svc.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, f.emitter.formats, 1)
	assert.Equal(t, []string{"json", "js", "txt"}, f.emitter.formats[0])
	assert.Len(t, res.Files, 3)
}

// ─────────────────────────────────────────────
// Generate / Regenerate
// ─────────────────────────────────────────────

func TestGenerate_BuildsOnce(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	ctx := context.Background()

	first, err := f.svc.Generate(ctx)
	require.NoError(t, err)
	second, err := f.svc.Generate(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, f.builder.count())
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"dist/version.json", "dist/version.ts"}, first.Files)
}

func TestGenerate_PassesRequestAndZone(t *testing.T) {
	cfg := baseGeneration()
	cfg.Request = models.Request{IncludeCommitDate: true}
	cfg.TimeZone = "UTC"
	f := newServiceFixture(t, cfg)

	_, err := f.svc.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, f.builder.calls, 1)
	assert.Equal(t, cfg.Request, f.builder.calls[0].Request)
	assert.Equal(t, "UTC", f.builder.calls[0].TimeZone)
}

func TestRegenerate_RunsNewCycle(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	ctx := context.Background()

	first, err := f.svc.Generate(ctx)
	require.NoError(t, err)
	second, err := f.svc.Regenerate(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, f.builder.count())
	assert.NotEqual(t, first.Record.BuildTime, second.Record.BuildTime)

	last, ok := f.svc.LastRecord(ctx)
	require.True(t, ok)
	assert.Equal(t, second.Record, last)

	// Generate now returns the regenerated result
	third, err := f.svc.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestGenerate_DegradedFlag(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	f.builder.degraded = true

	res, err := f.svc.Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Degraded)
}

func TestGenerate_BuildErrorIsNotMemoised(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	boom := errors.New("boom")
	f.builder.err = boom

	_, err := f.svc.Generate(context.Background())
	require.ErrorIs(t, err, boom)

	_, ok := f.svc.LastRecord(context.Background())
	assert.False(t, ok)

	f.builder.err = nil
	_, err = f.svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, f.builder.count())
}

func TestGenerate_NoFilesWrittenStillReturnsRecord(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	f.emitter.none = true

	res, err := f.svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.3", res.Record.Version)
	assert.NotNil(t, res.Files)
	assert.Empty(t, res.Files)

	last, ok := f.svc.LastRecord(context.Background())
	require.True(t, ok)
	assert.Equal(t, res.Record, last)
}

func TestGenerate_EmitErrorPropagates(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	f.emitter.err = context.Canceled

	_, err := f.svc.Generate(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

// ─────────────────────────────────────────────
// Build id
// ─────────────────────────────────────────────

func TestGenerate_BuildIDField(t *testing.T) {
	cfg := baseGeneration()
	cfg.BuildID = true
	cfg.CustomFields = map[string]any{"team": "web"}
	f := newServiceFixture(t, cfg)

	res, err := f.svc.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0192f0c4-7a5e-7cc1-9d2b-3f1a2b3c4d5e", res.Record.Custom[FieldBuildID])
	assert.Equal(t, "web", res.Record.Custom["team"])
	// configuration is not mutated
	assert.NotContains(t, cfg.CustomFields, FieldBuildID)
}

func TestGenerate_CustomBuildIDWins(t *testing.T) {
	cfg := baseGeneration()
	cfg.BuildID = true
	cfg.CustomFields = map[string]any{FieldBuildID: "ci-42"}
	f := newServiceFixture(t, cfg)

	res, err := f.svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ci-42", res.Record.Custom[FieldBuildID])
}

func TestGenerate_NoBuildIDByDefault(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())

	res, err := f.svc.Generate(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, res.Record.Custom, FieldBuildID)
}

// ─────────────────────────────────────────────
// Cache operations
// ─────────────────────────────────────────────

func TestClearCache_ResetsCollectorAndResult(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	ctx := context.Background()

	_, err := f.svc.Generate(ctx)
	require.NoError(t, err)

	f.collector.EXPECT().Clear().Times(1)
	f.svc.ClearCache(ctx)

	_, ok := f.svc.LastRecord(ctx)
	assert.False(t, ok)

	_, err = f.svc.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.builder.count())
}

func TestCacheStatus_ComesFromCollector(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	status := models.CacheStatus{Cached: true, Timestamp: time.Unix(1700000000, 0), Age: time.Second, Valid: true}

	f.collector.EXPECT().Status().Return(status)

	assert.Equal(t, status, f.svc.CacheStatus(context.Background()))
}

// ─────────────────────────────────────────────
// CleanArtifacts
// ─────────────────────────────────────────────

func TestCleanArtifacts_RemovesEverySupportedFormat(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())

	f.storage.EXPECT().
		RemoveArtifacts(gomock.Any(), "dist", []string{"version.json", "version.js", "version.txt", "version.ts", "version.yaml"}).
		Return([]string{"dist/version.json"}, nil)

	removed, err := f.svc.CleanArtifacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"dist/version.json"}, removed)
}

func TestCleanArtifacts_Error(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())
	boom := errors.New("permission denied")

	f.storage.EXPECT().RemoveArtifacts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := f.svc.CleanArtifacts(context.Background())
	require.ErrorIs(t, err, boom)
}

// ─────────────────────────────────────────────
// Render
// ─────────────────────────────────────────────

func TestRender_GeneratesFirst(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())

	f.renderer.EXPECT().Render(gomock.Any(), models.FormatYAML).Return([]byte("version: \"2.3\"\n"), nil)

	content, err := f.svc.Render(context.Background(), models.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "version: \"2.3\"\n", string(content))
	assert.Equal(t, 1, f.builder.count())
}

func TestRender_UnsupportedFormat(t *testing.T) {
	f := newServiceFixture(t, baseGeneration())

	f.renderer.EXPECT().Render(gomock.Any(), models.Format("xml")).
		Return(nil, &models.UnsupportedFormatError{Format: "xml"})

	_, err := f.svc.Render(context.Background(), models.Format("xml"))
	assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
}
