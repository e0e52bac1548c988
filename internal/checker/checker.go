// Package checker decides whether a character is present in a list of fonts.
package checker

import (
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/glyphcheck/internal/fontfile"
	"github.com/f3rmion/glyphcheck/internal/glyph"
)

// Reporter receives the output of a run, one call per printed section.
type Reporter interface {
	Header(target glyph.Target, candidates int)
	Result(res glyph.Result)
	Summary(target glyph.Target, summary glyph.Summary, suggestion string)
}

// Opener opens a font face. fontfile.Open is the default.
type Opener func(path string, faceIndex int) (*fontfile.Font, error)

// Plan is the input of a run: what to look for and where.
type Plan struct {
	Target     glyph.Target
	Fonts      []string // Candidate paths, checked in order
	Suggestion string   // Printed when no candidate matches
}

// Report is everything a run produced.
type Report struct {
	Results []glyph.Result
	Summary glyph.Summary
}

// Checker runs presence checks. The zero value is usable and silent.
type Checker struct {
	Reporter  Reporter  // Where result lines go; nil discards them
	FaceIndex int       // Face used inside font collections
	Open      Opener    // Defaults to fontfile.Open
	Verbose   io.Writer // Diagnostics; nil disables them
}

// New creates a checker that reports to r.
func New(r Reporter) *Checker {
	return &Checker{Reporter: r}
}

func (c *Checker) open(path string) (*fontfile.Font, error) {
	if c.Open != nil {
		return c.Open(path, c.FaceIndex)
	}
	return fontfile.Open(path, c.FaceIndex)
}

func (c *Checker) logf(format string, args ...any) {
	if c.Verbose != nil {
		fmt.Fprintf(c.Verbose, format+"\n", args...)
	}
}

func (c *Checker) emit(res glyph.Result) {
	if c.Reporter != nil {
		c.Reporter.Result(res)
	}
}

// Check looks the target up in the font at path and reports one line.
// Failures are returned inside the result, never as an error.
func (c *Checker) Check(path string, target glyph.Target) glyph.Result {
	res := c.check(path, target)
	c.emit(res)
	return res
}

func (c *Checker) check(path string, target glyph.Target) glyph.Result {
	res := glyph.Result{Path: path, Target: target}

	f, err := c.open(path)
	if err != nil {
		res.Outcome = glyph.OutcomeParseError
		res.Err = err
		return res
	}
	defer f.Close()

	c.logf("checking %s (%s, %d glyphs)", f.Path(), f.Name(), f.NumGlyphs())

	gid, name, ok, err := f.Lookup(target.Rune)
	switch {
	case err != nil:
		res.Outcome = glyph.OutcomeParseError
		res.Err = err
	case ok:
		res.Outcome = glyph.OutcomeFound
		res.GlyphID = gid
		res.GlyphName = name
	default:
		res.Outcome = glyph.OutcomeNotFound
	}
	return res
}

// Run checks every font in the plan in order and reports a summary.
// Missing files are reported and skipped without being parsed.
func (c *Checker) Run(plan Plan) Report {
	if c.Reporter != nil {
		c.Reporter.Header(plan.Target, len(plan.Fonts))
	}

	report := Report{Results: make([]glyph.Result, 0, len(plan.Fonts))}
	for _, path := range plan.Fonts {
		if !FileExists(path) {
			res := glyph.Result{Path: path, Target: plan.Target, Outcome: glyph.OutcomeMissingFile}
			c.emit(res)
			report.Results = append(report.Results, res)
			continue
		}

		res := c.Check(path, plan.Target)
		report.Results = append(report.Results, res)
		if res.Found() {
			report.Summary = append(report.Summary, path)
		}
	}

	if c.Reporter != nil {
		c.Reporter.Summary(plan.Target, report.Summary, plan.Suggestion)
	}
	return report
}

// FileExists reports whether path names an existing regular file or symlink
// to one. Any stat error counts as missing.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
