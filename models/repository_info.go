// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UnknownValue is the placeholder used for any repository field whose query failed.
const UnknownValue = "unknown"

// RepositoryInfo holds the normalized answers of one batch of version-control
// queries.
//
// Every requested field is filled: a failed query leaves [UnknownValue].
// Tag is the exception, it stays empty when neither the exact-match nor the
// nearest-ancestor query produced a value. CommitDate and Author stay empty
// when they were not requested.
type RepositoryInfo struct {
	Branch         string
	CommitHash     string
	FullCommitHash string
	Tag            string
	CommitDate     string
	Author         string
}

// HasTag reports whether a tag was resolved.
func (i RepositoryInfo) HasTag() bool {
	return i.Tag != ""
}
