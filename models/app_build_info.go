// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo carries the version-gen binary's own build metadata.
//
// Values are injected by linker flags during release builds and shown by the
// "version" command; they are unrelated to the records the tool generates.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing blank values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: valueOrNA(buildVersion),
		buildDate:    valueOrNA(buildDate),
		buildCommit:  valueOrNA(buildCommit),
	}
}

// BuildVersion returns the release version of the binary.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the metadata on one line for cobra's version template.
func (a AppBuildInfo) String() string {
	return a.buildVersion + " (commit " + a.buildCommit + ", built " + a.buildDate + ")"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
