// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-version-gen/models"
)

// Queries issued by the collector, in issue order.
var (
	queryBranch     = Git("rev-parse", "--abbrev-ref", "HEAD")
	queryShortHash  = Git("rev-parse", "--short", "HEAD")
	queryFullHash   = Git("rev-parse", "HEAD")
	queryExactTag   = Git("describe", "--tags", "--exact-match", "HEAD")
	queryNearestTag = Git("describe", "--tags", "--abbrev=0")
	queryCommitDate = Git("log", "-1", "--format=%cd", "--date=iso")
	queryAuthor     = Git("log", "-1", "--format=%an")
)

type repositoryCollector struct {
	runner CommandRunner
}

// NewRepositoryCollector returns a [RepositoryCollector] that reads
// repository facts through runner.
func NewRepositoryCollector(runner CommandRunner) RepositoryCollector {
	return &repositoryCollector{runner: runner}
}

// Collect always issues the branch, hash and tag queries. Commit date and
// author are only queried when req asks for them. Failed queries fall back to
// [models.UnknownValue], except the tag queries which fall back to empty.
//
// The exact tag at HEAD wins over the nearest ancestor tag; when both are
// empty the info carries no tag.
func (c *repositoryCollector) Collect(ctx context.Context, req models.Request) models.RepositoryInfo {
	info := models.RepositoryInfo{
		Branch:         c.runner.Run(ctx, queryBranch, models.UnknownValue),
		CommitHash:     c.runner.Run(ctx, queryShortHash, models.UnknownValue),
		FullCommitHash: c.runner.Run(ctx, queryFullHash, models.UnknownValue),
	}

	exactTag := c.runner.Run(ctx, queryExactTag, "")
	nearestTag := c.runner.Run(ctx, queryNearestTag, "")
	info.Tag = exactTag
	if info.Tag == "" {
		info.Tag = nearestTag
	}

	if req.IncludeCommitDate {
		info.CommitDate = c.runner.Run(ctx, queryCommitDate, models.UnknownValue)
	}
	if req.IncludeAuthor {
		info.Author = c.runner.Run(ctx, queryAuthor, models.UnknownValue)
	}

	return info
}
