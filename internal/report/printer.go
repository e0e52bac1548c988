// Package report prints presence check results as human-readable text.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/glyphcheck/internal/glyph"
	"github.com/f3rmion/glyphcheck/internal/pinyin"
)

// Printer writes one line per result and a closing summary.
// It satisfies checker.Reporter.
type Printer struct {
	w      io.Writer
	st     styles
	pinyin *pinyin.Parser
}

// NewPrinter creates a printer for w. Colours are only emitted when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:  w,
		st: newStyles(lipgloss.NewRenderer(w)),
	}
}

// WithPinyin makes the header show the readings of Han characters.
func (p *Printer) WithPinyin(parser *pinyin.Parser) *Printer {
	p.pinyin = parser
	return p
}

func (p *Printer) quoted(t glyph.Target) string {
	return "'" + p.st.char.Render(t.String()) + "'"
}

// Header announces what is being checked.
func (p *Printer) Header(t glyph.Target, candidates int) {
	reading := ""
	if p.pinyin != nil {
		if py := p.pinyin.Annotate(t.Rune); py != "" {
			reading = " (" + p.st.pinyin.Render(py) + ")"
		}
	}
	noun := "fonts"
	if candidates == 1 {
		noun = "font"
	}
	fmt.Fprintf(p.w, "%s %s%s in %d %s:\n\n",
		p.st.header.Render("Checking character"), p.quoted(t), reading, candidates, noun)
}

// Result prints the line for one candidate.
func (p *Printer) Result(res glyph.Result) {
	fmt.Fprintln(p.w, p.Line(res))
}

// Line formats a result without printing it.
func (p *Printer) Line(res glyph.Result) string {
	name := filepath.Base(res.Path)
	cp := p.st.muted.Render("Unicode: " + res.Target.CodePoint())

	switch res.Outcome {
	case glyph.OutcomeMissingFile:
		return fmt.Sprintf("%s %s %s", MarkMissing, p.st.absent.Render("font file does not exist:"), res.Path)
	case glyph.OutcomeParseError:
		return fmt.Sprintf("%s %s: %s - %s", MarkError, name, p.st.failed.Render("check failed"), res.ErrorMessage())
	case glyph.OutcomeFound:
		return fmt.Sprintf("%s %s: character %s %s (%s, Glyph: %s)",
			MarkFound, name, p.quoted(res.Target), p.st.found.Render("present"), cp, res.GlyphName)
	default:
		return fmt.Sprintf("%s %s: character %s %s (%s)",
			MarkAbsent, name, p.quoted(res.Target), p.st.absent.Render("absent"), cp)
	}
}

// Summary prints the list of fonts containing the character, or the
// suggestion when there are none.
func (p *Printer) Summary(t glyph.Target, s glyph.Summary, suggestion string) {
	fmt.Fprintf(p.w, "\n%s\n", p.st.heading.Render("Summary:"))

	if !s.Empty() {
		fmt.Fprintf(p.w, "Character %s is present in:\n", p.quoted(t))
		for _, path := range s {
			fmt.Fprintf(p.w, "  - %s\n", path)
		}
		return
	}

	fmt.Fprintf(p.w, "Character %s was not found in any font!\n", p.quoted(t))
	if suggestion != "" {
		fmt.Fprintln(p.w, p.st.muted.Render(suggestion))
	}
}
