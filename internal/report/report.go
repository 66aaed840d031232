// Package report prints the human readable output of a twsort run.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Mode banners, printed once before any file.
const (
	BannerDryRun  = "dry run mode activated: here is a list of files that would be changed when you run with the --write flag"
	BannerWrite   = "write mode is active the following files are being saved:"
	BannerConsole = "printing file contents to console, run with --write to save changes to files:"
	BannerCheck   = "checking class order, the following files are not sorted:"
)

// Styles holds the styles used for each kind of output.
type Styles struct {
	Banner  lipgloss.Style
	Bullet  lipgloss.Style
	File    lipgloss.Style
	Summary lipgloss.Style
	Failure lipgloss.Style
}

// NewStyles creates styles bound to the renderer. A renderer writing to
// something other than a terminal produces plain text.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner: r.NewStyle().
			Bold(true),

		Bullet: r.NewStyle().
			Foreground(lipgloss.Color("8")),

		File: r.NewStyle().
			Foreground(lipgloss.Color("6")),

		Summary: r.NewStyle().
			Faint(true),

		Failure: r.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true),
	}
}

// Summary counts the outcome of a run.
type Summary struct {
	Files   int
	Changed int
	Errors  int
}

// Printer writes report lines to an output stream. It is not safe for
// concurrent use; callers print results after the workers finish.
type Printer struct {
	w      io.Writer
	styles Styles
}

// New creates a printer for w.
func New(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// Banner prints a mode banner preceded by a blank line.
func (p *Printer) Banner(text string) {
	fmt.Fprintf(p.w, "\n%s\n", p.styles.Banner.Render(text))
}

// File prints one file as a bullet.
func (p *Printer) File(rel string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.styles.Bullet.Render("*"), p.styles.File.Render(rel))
}

// Contents prints sorted file content, surrounded by blank lines. Content
// is written unstyled so it can be copied as is.
func (p *Printer) Contents(content string) {
	fmt.Fprintf(p.w, "\n\n%s\n\n", content)
}

// Summary prints the closing summary line.
func (p *Printer) Summary(s Summary) {
	line := fmt.Sprintf("%d file(s) checked, %d changed", s.Files, s.Changed)
	if s.Errors == 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.styles.Summary.Render(line))
		return
	}
	failed := fmt.Sprintf("%d file(s) had errors", s.Errors)
	fmt.Fprintf(p.w, "\n%s, %s\n", p.styles.Summary.Render(line), p.styles.Failure.Render(failed))
}
