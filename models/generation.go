// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerationResult is what one run of the generation pipeline hands back.
type GenerationResult struct {
	// Record is the canonical record that was rendered.
	Record VersionRecord `json:"record"`
	// Files lists the artifact paths actually written, in request order.
	Files []string `json:"files"`
	// Degraded is true when the working directory was not a repository and
	// Record carries placeholder repository fields.
	Degraded bool `json:"degraded"`
}
