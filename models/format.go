// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Format identifies one output representation of a [VersionRecord].
//
// The string value doubles as the artifact file extension, so a record
// rendered as [FormatJSON] is written to "version.json".
type Format string

const (
	// FormatJSON is the structured-data artifact.
	FormatJSON Format = "json"
	// FormatJS is the self-registering script artifact.
	FormatJS Format = "js"
	// FormatText is the human-readable report.
	FormatText Format = "txt"
	// FormatTS is the typed-source artifact (declaration plus type).
	FormatTS Format = "ts"
	// FormatYAML is the structured-data artifact in YAML.
	FormatYAML Format = "yaml"
)

// artifactBaseName is the file name shared by every artifact.
const artifactBaseName = "version"

var supportedFormats = []Format{FormatJSON, FormatJS, FormatText, FormatTS, FormatYAML}

// DefaultFormats are emitted when the caller does not request any.
var DefaultFormats = []Format{FormatJSON, FormatJS, FormatText}

// SupportedFormats returns every format the renderer accepts, in canonical order.
func SupportedFormats() []Format {
	return append([]Format(nil), supportedFormats...)
}

// ParseFormat maps a format tag such as "json" or ".ts" onto a [Format].
// Unknown tags yield an [*UnsupportedFormatError].
func ParseFormat(tag string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), ".")))
	for _, f := range supportedFormats {
		if f == normalized {
			return f, nil
		}
	}
	return "", &UnsupportedFormatError{Format: tag}
}

// FormatNames converts formats back to their string tags.
func FormatNames(formats []Format) []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

// FileName returns the artifact file name for the format, e.g. "version.ts".
func (f Format) FileName() string {
	return artifactBaseName + "." + string(f)
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
