// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"runtime"

	"github.com/MKhiriev/go-version-gen/models"
)

// PrintBuildInfo prints the version-gen binary's own build metadata.
func (p *Printer) PrintBuildInfo(info models.AppBuildInfo) error {
	return p.println(p.renderBuildInfo(info))
}

func (p *Printer) renderBuildInfo(info models.AppBuildInfo) string {
	body := p.renderRows([]row{
		{label: "Version", value: info.BuildVersion()},
		{label: "Date", value: info.BuildDate()},
		{label: "Commit", value: info.BuildCommit()},
		{label: "Go", value: runtime.Version()},
		{label: "Platform", value: runtime.GOOS + "/" + runtime.GOARCH},
	})
	return p.renderPage("version-gen", body, "")
}
