package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/render"
	"github.com/MKhiriev/go-version-gen/internal/store"
	"github.com/MKhiriev/go-version-gen/models"
)

type artifactEmitter struct {
	renderer render.Renderer
	storage  store.ArtifactStorage

	logger *logger.Logger
}

func NewArtifactEmitter(renderer render.Renderer, storage store.ArtifactStorage, logger *logger.Logger) ArtifactEmitter {
	return &artifactEmitter{
		renderer: renderer,
		storage:  storage,
		logger:   logger,
	}
}

func (e *artifactEmitter) Emit(ctx context.Context, record models.VersionRecord, outputPath string, formats []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("emit version artifacts: %w", err)
	}

	// An unusable output directory costs the files, not the record.
	if err := e.storage.EnsureDir(ctx, outputPath); err != nil {
		e.logger.Warn().Err(err).Str("path", outputPath).Msg("failed to prepare output directory, no artifacts written")
		return []string{}, nil
	}

	written := make([]string, 0, len(formats))
	seen := make([]models.Format, 0, len(formats))

	for _, tag := range formats {
		format, err := models.ParseFormat(tag)
		if err != nil {
			e.logger.Warn().Err(err).Str("format", tag).Msg("skipping unsupported format")
			continue
		}
		if slices.Contains(seen, format) {
			continue
		}
		seen = append(seen, format)

		content, err := e.renderer.Render(record, format)
		if err != nil {
			e.logger.Warn().Err(err).Str("format", tag).Msg("failed to render version artifact")
			continue
		}

		path, err := e.storage.WriteArtifact(ctx, outputPath, format.FileName(), content)
		if err != nil {
			e.logger.Warn().Err(err).Str("format", tag).Msg("failed to write version artifact")
			continue
		}

		e.logger.Info().Str("format", tag).Str("path", path).Msg("version artifact written")
		written = append(written, path)
	}

	return written, nil
}
