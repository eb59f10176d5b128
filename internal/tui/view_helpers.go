package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────"

// row is one "label  value" line of a page.
type row struct {
	label string
	value string
}

// renderRows aligns labels to the widest one.
func (p *Printer) renderRows(rows []row) string {
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.label); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := p.styles.label.Width(width + 2).Render(r.label)
		lines = append(lines, label+p.styles.value.Render(r.value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p *Printer) renderPage(title, body, footer string) string {
	var b strings.Builder

	b.WriteString(p.styles.title.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
	} else {
		b.WriteString("-")
	}

	if strings.TrimSpace(footer) != "" {
		b.WriteString("\n")
		b.WriteString(uiDivider)
		b.WriteString("\n")
		b.WriteString(p.styles.help.Render(footer))
	}

	return p.styles.box.Render(b.String())
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
