// Package tui renders the console output of the version-gen CLI: the
// generation summary box and the tool's own build info.
//
// Output is styled with lipgloss. Styling is bound to the destination writer,
// so redirected output degrades to plain text.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled views to one writer.
type Printer struct {
	out    io.Writer
	styles styles
}

// NewPrinter returns a Printer for out. Colour and text attributes are used
// only when out is a terminal that supports them.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

func (p *Printer) println(view string) error {
	_, err := fmt.Fprintln(p.out, p.styles.app.Render(view))
	return err
}
