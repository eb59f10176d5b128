// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/MKhiriev/go-version-gen/internal/adapter"
	"github.com/MKhiriev/go-version-gen/internal/config"
	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/render"
	"github.com/MKhiriev/go-version-gen/internal/store"
	"github.com/MKhiriev/go-version-gen/models"
)

// FieldBuildID is the custom field added when build ids are enabled.
const FieldBuildID = "buildId"

// IDGenerator produces a unique build id per generation cycle.
type IDGenerator interface {
	Generate() string
}

type versionService struct {
	builder   VersionBuilder
	emitter   ArtifactEmitter
	collector adapter.CachedCollector
	storage   store.ArtifactStorage
	renderer  render.Renderer
	ids       IDGenerator

	cfg     config.Generation
	pattern *VersionPattern

	mu     sync.Mutex
	result *models.GenerationResult

	logger *logger.Logger
}

// VersionServiceDeps groups the collaborators of [NewVersionService].
type VersionServiceDeps struct {
	Builder   VersionBuilder
	Emitter   ArtifactEmitter
	Collector adapter.CachedCollector
	Storage   store.ArtifactStorage
	Renderer  render.Renderer
	IDs       IDGenerator
}

// NewVersionService validates cfg and returns the pipeline entry point.
// A malformed output path or rule is reported as a *ConfigError before any
// work starts.
func NewVersionService(deps VersionServiceDeps, cfg config.Generation, logger *logger.Logger) (VersionService, error) {
	if cfg.OutputPath == "" {
		return nil, &ConfigError{Field: "output path", Reason: "must be a non-empty path"}
	}

	rule := cfg.Rule
	if rule == "" {
		rule = DefaultVersionPattern
	}
	pattern, err := CompileVersionPattern(rule)
	if err != nil {
		return nil, err
	}

	if len(cfg.Formats) == 0 {
		cfg.Formats = models.FormatNames(models.DefaultFormats)
	}

	return &versionService{
		builder:   deps.Builder,
		emitter:   deps.Emitter,
		collector: deps.Collector,
		storage:   deps.Storage,
		renderer:  deps.Renderer,
		ids:       deps.IDs,
		cfg:       cfg,
		pattern:   pattern,
		logger:    logger,
	}, nil
}

func (s *versionService) Generate(ctx context.Context) (models.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return *s.result, nil
	}
	return s.generate(ctx)
}

func (s *versionService) Regenerate(ctx context.Context) (models.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generate(ctx)
}

// generate runs one cycle. Callers hold s.mu.
func (s *versionService) generate(ctx context.Context) (models.GenerationResult, error) {
	built, err := s.builder.Build(ctx, s.cfg.OutputPath, s.pattern, BuildOptions{
		Request:      s.cfg.Request,
		TimeZone:     s.cfg.TimeZone,
		CustomFields: s.customFields(),
	})
	if err != nil {
		return models.GenerationResult{}, fmt.Errorf("build version record: %w", err)
	}

	files, err := s.emitter.Emit(ctx, built.Record, s.cfg.OutputPath, s.cfg.Formats)
	if err != nil {
		return models.GenerationResult{}, fmt.Errorf("emit version artifacts: %w", err)
	}

	result := models.GenerationResult{
		Record:   built.Record,
		Files:    files,
		Degraded: built.Degraded,
	}
	s.result = &result

	return result, nil
}

func (s *versionService) customFields() map[string]any {
	if !s.cfg.BuildID || s.ids == nil {
		return s.cfg.CustomFields
	}

	fields := make(map[string]any, len(s.cfg.CustomFields)+1)
	fields[FieldBuildID] = s.ids.Generate()
	maps.Copy(fields, s.cfg.CustomFields)
	return fields
}

func (s *versionService) LastRecord(ctx context.Context) (models.VersionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return models.VersionRecord{}, false
	}
	return s.result.Record, true
}

func (s *versionService) ClearCache(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collector.Clear()
	s.result = nil
}

func (s *versionService) CacheStatus(ctx context.Context) models.CacheStatus {
	return s.collector.Status()
}

func (s *versionService) CleanArtifacts(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(models.SupportedFormats()))
	for _, format := range models.SupportedFormats() {
		names = append(names, format.FileName())
	}

	removed, err := s.storage.RemoveArtifacts(ctx, s.cfg.OutputPath, names)
	if err != nil {
		return removed, fmt.Errorf("clean version artifacts: %w", err)
	}
	return removed, nil
}

func (s *versionService) Render(ctx context.Context, format models.Format) ([]byte, error) {
	result, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(result.Record, format)
}
