// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the version-control collaborator on behalf of the
// generation pipeline.
//
// Every query goes through a [CommandRunner]. [CommandRunner.Run] never fails:
// a non-zero exit, a timeout or a missing binary degrade to the caller's
// fallback value plus a warning, so a [RepositoryCollector] can always produce
// a complete [models.RepositoryInfo]. [CommandRunner.Exec] exposes the typed
// [QueryError] for the few callers that need to tell failures apart, such as
// the [RepositoryProbe].
//
// [CachedCollector] memoizes the collector for a short window so one build
// process issues a single query batch.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-version-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CommandRunner executes a single external query command with a bounded wait.
type CommandRunner interface {
	// Exec runs cmd and returns its standard output trimmed of surrounding
	// whitespace. Failures are reported as *[QueryError]; timeouts
	// additionally match [ErrQueryTimeout].
	Exec(ctx context.Context, cmd Command) (string, error)

	// Run is Exec with the failure folded into fallback. It logs a warning
	// and never returns an error.
	Run(ctx context.Context, cmd Command, fallback string) string
}

// RepositoryProbe checks whether the working directory is under version
// control.
type RepositoryProbe interface {
	// CheckRepository returns an error matching [ErrNotARepository] when the
	// directory is not inside a repository or the probe cannot run.
	CheckRepository(ctx context.Context) error
}

// RepositoryCollector issues the fixed query batch and normalises the answers.
// The collector performs no repository check of its own.
type RepositoryCollector interface {
	Collect(ctx context.Context, req models.Request) models.RepositoryInfo
}

// CachedCollector is a [RepositoryCollector] backed by a single time-bounded
// entry.
type CachedCollector interface {
	RepositoryCollector

	// Clear drops the cached entry unconditionally.
	Clear()

	// Status reports the state of the cached entry.
	Status() models.CacheStatus
}
