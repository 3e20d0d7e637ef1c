package printer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/minigrep/internal/config"
	"github.com/Paintersrp/minigrep/internal/search"
)

// Printer writes matches to w, coloring the matched span of each line.
type Printer struct {
	w           io.Writer
	match       lipgloss.Style
	lineNumber  lipgloss.Style
	lineNumbers bool
}

type Options struct {
	Color       config.Color
	Profile     termenv.Profile
	LineNumbers bool
}

// New builds a Printer for w. Passing termenv.Ascii as the profile disables
// all escape sequences.
func New(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(opts.Profile)

	return &Printer{
		w: w,
		match: r.NewStyle().
			Foreground(lipgloss.Color(opts.Color.ANSI())).
			TabWidth(lipgloss.NoTabConversion),
		lineNumber: r.NewStyle().
			Foreground(lipgloss.Color("8")),
		lineNumbers: opts.LineNumbers,
	}
}

// Print writes one line per match in the given order.
func (p *Printer) Print(matches []search.Match) error {
	for _, m := range matches {
		if err := p.PrintMatch(m); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) PrintMatch(m search.Match) error {
	prefix := ""
	if p.lineNumbers {
		prefix = p.lineNumber.Render(strconv.Itoa(m.LineNumber)) + ":"
	}

	matched := m.Span.Match
	if matched != "" {
		matched = p.match.Render(matched)
	}

	_, err := fmt.Fprintf(p.w, "%s%s%s%s\n", prefix, m.Span.Prefix, matched, m.Span.Suffix)
	return err
}
