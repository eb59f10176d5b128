// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns a [models.VersionRecord] into the text of each
// artifact format.
//
// Rendering is a pure function of the record and the renderer options. Every
// format serializes the same ordered field list from
// [models.VersionRecord.Fields], so decoding any artifact back yields the
// same values.
package render

import "github.com/MKhiriev/go-version-gen/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/renderer_mock.go -package=mock

// Renderer produces artifact content for one format.
type Renderer interface {
	// Render returns the content for format, or a
	// *[models.UnsupportedFormatError] when format is outside the enumeration.
	Render(record models.VersionRecord, format models.Format) ([]byte, error)
}
