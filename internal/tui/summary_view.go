// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-version-gen/models"
)

const maxValueWidth = 48

// PrintSummary prints the record and written files of one generation cycle.
func (p *Printer) PrintSummary(result models.GenerationResult) error {
	return p.println(p.renderSummary(result))
}

func (p *Printer) renderSummary(result models.GenerationResult) string {
	r := result.Record
	tag := "none"
	if r.Tag != nil {
		tag = *r.Tag
	}

	rows := []row{
		{label: "Version", value: fitText(r.Version, maxValueWidth)},
		{label: "Tag", value: tag},
		{label: "Branch", value: fitText(r.Branch, maxValueWidth)},
		{label: "Commit", value: r.CommitHash},
		{label: "Build time", value: r.BuildTimeFormatted},
	}
	if r.CommitDate != nil {
		rows = append(rows, row{label: "Commit date", value: valueOrDash(r.CommitDate)})
	}
	if r.Author != nil {
		rows = append(rows, row{label: "Author", value: fitText(valueOrDash(r.Author), maxValueWidth)})
	}

	body := p.renderRows(rows)
	if result.Degraded {
		body += "\n\n" + p.styles.warning.Render("not a git repository: repository fields are placeholders")
	}

	return p.renderPage("VERSION INFO", body, filesFooter(result.Files))
}

func filesFooter(files []string) string {
	switch len(files) {
	case 0:
		return "no files written"
	case 1:
		return "wrote " + filepath.Base(files[0])
	}

	names := ""
	for i, f := range files {
		if i > 0 {
			names += ", "
		}
		names += filepath.Base(f)
	}
	return fmt.Sprintf("wrote %d files: %s", len(files), names)
}
