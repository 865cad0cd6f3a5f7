// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// palette styles terminal output. Plain palettes leave text untouched so
// piped output and tests see raw strings.
type palette struct {
	plain   bool
	heading lipgloss.Style
	warn    lipgloss.Style
	path    lipgloss.Style
	banner  lipgloss.Style
}

func newPalette(w io.Writer) palette {
	f, ok := w.(*os.File)
	if !ok || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return palette{plain: true}
	}

	return palette{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		banner:  lipgloss.NewStyle().Bold(true),
	}
}

func (p palette) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}

	return s.Render(text)
}

func (p palette) Heading(text string) string { return p.render(p.heading, text) }
func (p palette) Warn(text string) string    { return p.render(p.warn, text) }
func (p palette) Path(text string) string    { return p.render(p.path, text) }
func (p palette) Banner(text string) string  { return p.render(p.banner, text) }
