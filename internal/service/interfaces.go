// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-version-gen/models"
)

// VersionBuilder assembles the canonical record for one generation cycle.
type VersionBuilder interface {
	// Build fails with a *ConfigError when outputPath is empty, pattern is
	// nil or opts names an unknown time zone. Outside a repository it returns
	// a degraded record instead of an error.
	Build(ctx context.Context, outputPath string, pattern *VersionPattern, opts BuildOptions) (BuildResult, error)
}

// ArtifactEmitter renders a record and writes one file per requested format.
type ArtifactEmitter interface {
	// Emit returns the paths actually written, in request order. Unsupported
	// formats, per-file failures and an outputPath that cannot be created are
	// logged and skipped. An error is returned only when ctx is already done.
	Emit(ctx context.Context, record models.VersionRecord, outputPath string, formats []string) ([]string, error)
}

// VersionService is the pipeline entry point used by the CLI and the preview
// server.
type VersionService interface {
	// Generate builds and emits once per service; later calls return the
	// first result.
	Generate(ctx context.Context) (models.GenerationResult, error)
	// Regenerate always runs a new cycle. Repository info may still come from
	// the cache window.
	Regenerate(ctx context.Context) (models.GenerationResult, error)
	// LastRecord returns the most recent record, if any cycle has run.
	LastRecord(ctx context.Context) (models.VersionRecord, bool)
	// ClearCache drops cached repository info and the memoised result.
	ClearCache(ctx context.Context)
	CacheStatus(ctx context.Context) models.CacheStatus
	// CleanArtifacts removes previously generated artifacts from the output
	// directory and returns the removed paths.
	CleanArtifacts(ctx context.Context) ([]string, error)
	// Render renders the most recent record in format, generating one first
	// if needed.
	Render(ctx context.Context, format models.Format) ([]byte, error)
}

// VersionServiceWrapper defines middleware composition for VersionService.
// Implementations wrap an existing VersionService to add behavior such as
// logging.
type VersionServiceWrapper interface {
	Wrap(VersionService) VersionService
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
