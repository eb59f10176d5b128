// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-version-gen/internal/adapter"
	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/models"
)

// DefaultTimeZone is used for buildTimeFormatted when none is configured.
const DefaultTimeZone = "Asia/Shanghai"

const (
	// buildTimeLayout is ISO-8601 in UTC with millisecond precision.
	buildTimeLayout = "2006-01-02T15:04:05.000Z07:00"
	// formattedTimeLayout is the numeric calendar form shown to humans.
	formattedTimeLayout = "2006/01/02 15:04:05"
)

// BuildOptions carry the per-cycle inputs of [VersionBuilder.Build].
type BuildOptions struct {
	Request      models.Request
	TimeZone     string
	CustomFields map[string]any
}

// BuildResult is a built record plus whether it came from the degraded path.
type BuildResult struct {
	Record   models.VersionRecord
	Degraded bool
}

type versionBuilder struct {
	probe     adapter.RepositoryProbe
	collector adapter.RepositoryCollector
	now       func() time.Time

	logger *logger.Logger
}

// NewVersionBuilder returns a builder reading repository info through
// collector, which is normally an [adapter.CachedCollector].
func NewVersionBuilder(probe adapter.RepositoryProbe, collector adapter.RepositoryCollector, logger *logger.Logger) VersionBuilder {
	return newVersionBuilder(probe, collector, time.Now, logger)
}

func newVersionBuilder(probe adapter.RepositoryProbe, collector adapter.RepositoryCollector, now func() time.Time, logger *logger.Logger) *versionBuilder {
	return &versionBuilder{
		probe:     probe,
		collector: collector,
		now:       now,
		logger:    logger,
	}
}

func (b *versionBuilder) Build(ctx context.Context, outputPath string, pattern *VersionPattern, opts BuildOptions) (BuildResult, error) {
	if strings.TrimSpace(outputPath) == "" {
		return BuildResult{}, &ConfigError{Field: "output path", Reason: "must be a non-empty path"}
	}
	if pattern == nil || pattern.re == nil {
		return BuildResult{}, &ConfigError{Field: "rule", Reason: "version pattern is missing"}
	}

	zone := opts.TimeZone
	if zone == "" {
		zone = DefaultTimeZone
	}
	location, err := time.LoadLocation(zone)
	if err != nil {
		return BuildResult{}, &ConfigError{Field: "time zone", Reason: err.Error()}
	}

	now := b.now()
	buildTime := now.UTC().Format(buildTimeLayout)
	formatted := now.In(location).Format(formattedTimeLayout)

	if err = b.probe.CheckRepository(ctx); err != nil {
		if !errors.Is(err, adapter.ErrNotARepository) {
			return BuildResult{}, fmt.Errorf("check repository: %w", err)
		}
		b.logger.Warn().Err(err).Msg("not inside a git repository, generating placeholder version info")

		record := models.VersionRecord{
			Version:            models.UnknownValue,
			Branch:             models.UnknownValue,
			CommitHash:         models.UnknownValue,
			FullCommitHash:     models.UnknownValue,
			BuildTime:          buildTime,
			BuildTimeFormatted: formatted,
			GeneratedAt:        buildTime,
		}
		return BuildResult{Record: record.WithCustomFields(opts.CustomFields), Degraded: true}, nil
	}

	info := b.collector.Collect(ctx, opts.Request)

	version, err := pattern.Strip(info.Branch)
	if err != nil {
		return BuildResult{}, err
	}

	record := models.VersionRecord{
		Version:            version,
		Branch:             info.Branch,
		CommitHash:         info.CommitHash,
		FullCommitHash:     info.FullCommitHash,
		BuildTime:          buildTime,
		BuildTimeFormatted: formatted,
		GeneratedAt:        buildTime,
	}
	if info.HasTag() {
		tag := info.Tag
		record.Tag = &tag
	}
	if opts.Request.IncludeCommitDate && info.CommitDate != "" {
		commitDate := info.CommitDate
		record.CommitDate = &commitDate
	}
	if opts.Request.IncludeAuthor && info.Author != "" {
		author := info.Author
		record.Author = &author
	}

	return BuildResult{Record: record.WithCustomFields(opts.CustomFields)}, nil
}
