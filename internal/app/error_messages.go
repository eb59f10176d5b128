// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// version-gen preview server and CLI.
//
// The Msg* constants are human-readable strings written into HTTP response
// bodies and terminal output. Internal error text never reaches a client;
// one of these messages is sent in its place.
package app

const (
	// MsgUnsupportedFormat is returned when an artifact is requested with an
	// extension that does not name a supported format.
	MsgUnsupportedFormat = "unsupported artifact format"

	// MsgGenerationTimedOut is returned when a version-control query exceeded
	// its timeout while building the record.
	MsgGenerationTimedOut = "version generation timed out"

	// MsgGenerationFailed is returned when building or rendering the record
	// failed for any other reason.
	MsgGenerationFailed = "version generation failed"

	// MsgInvalidConfiguration is returned when the server was started with a
	// configuration the generator rejects.
	MsgInvalidConfiguration = "invalid generator configuration"

	// MsgInternalServerError covers everything else.
	MsgInternalServerError = "internal server error"

	// MsgDevModeSkipped is printed by the CLI when dev mode removed the
	// artifacts instead of generating them.
	MsgDevModeSkipped = "dev mode: generation skipped, artifacts removed"

	// MsgNothingToClean is printed when no artifact existed to remove.
	MsgNothingToClean = "no artifacts to remove"
)
