// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request describes which optional repository fields one generation cycle
// asks for. It is created once by the caller and passed down unchanged to the
// collector and the renderer.
type Request struct {
	// IncludeAuthor asks for the author of the last commit.
	IncludeAuthor bool
	// IncludeCommitDate asks for the ISO date of the last commit.
	IncludeCommitDate bool
}

// DefaultRequest asks for every optional field.
func DefaultRequest() Request {
	return Request{IncludeAuthor: true, IncludeCommitDate: true}
}

// Covers reports whether data collected for r contains every optional field
// that other asks for.
func (r Request) Covers(other Request) bool {
	if other.IncludeAuthor && !r.IncludeAuthor {
		return false
	}
	if other.IncludeCommitDate && !r.IncludeCommitDate {
		return false
	}
	return true
}
