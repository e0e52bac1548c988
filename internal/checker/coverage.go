package checker

import (
	"github.com/f3rmion/glyphcheck/internal/glyph"
)

// FontCoverage is how much of a character list one font covers.
type FontCoverage struct {
	Path    string
	Outcome glyph.Outcome // MissingFile, ParseError, Found (some present) or NotFound (none present)
	Err     error
	Present []rune
	Missing []rune
}

// CoverageReport is the result of checking a character list against every font.
type CoverageReport struct {
	Characters []rune
	Fonts      []FontCoverage
	Categories map[string][]rune // Named groups used by MissingByCategory
}

// Coverage checks each character against each font. Every font is opened
// once and closed before the next one.
func (c *Checker) Coverage(chars []rune, paths []string) CoverageReport {
	report := CoverageReport{Characters: chars}
	for _, path := range paths {
		report.Fonts = append(report.Fonts, c.coverFont(path, chars))
	}
	return report
}

func (c *Checker) coverFont(path string, chars []rune) FontCoverage {
	fc := FontCoverage{Path: path}
	if !FileExists(path) {
		fc.Outcome = glyph.OutcomeMissingFile
		return fc
	}

	f, err := c.open(path)
	if err != nil {
		fc.Outcome = glyph.OutcomeParseError
		fc.Err = err
		return fc
	}
	defer f.Close()

	c.logf("coverage %s (%s)", path, f.Name())

	for _, r := range chars {
		_, _, ok, err := f.Lookup(r)
		if err != nil {
			return FontCoverage{Path: path, Outcome: glyph.OutcomeParseError, Err: err}
		}
		if ok {
			fc.Present = append(fc.Present, r)
		} else {
			fc.Missing = append(fc.Missing, r)
		}
	}

	fc.Outcome = glyph.OutcomeNotFound
	if len(fc.Present) > 0 {
		fc.Outcome = glyph.OutcomeFound
	}
	return fc
}

// MissingEverywhere returns the characters no parsed font contains, in input
// order. Fonts that were missing or failed to parse are ignored.
func (r CoverageReport) MissingEverywhere() []rune {
	covered := make(map[rune]bool)
	for _, fc := range r.Fonts {
		for _, ch := range fc.Present {
			covered[ch] = true
		}
	}

	var out []rune
	for _, ch := range r.Characters {
		if !covered[ch] {
			out = append(out, ch)
		}
	}
	return out
}

// MissingByCategory narrows MissingEverywhere to each of r.Categories, keeping
// the group's order. Groups with nothing missing are left out.
func (r CoverageReport) MissingByCategory() map[string][]rune {
	missing := make(map[rune]bool)
	for _, ch := range r.MissingEverywhere() {
		missing[ch] = true
	}

	out := make(map[string][]rune)
	for name, chars := range r.Categories {
		for _, ch := range chars {
			if missing[ch] {
				out[name] = append(out[name], ch)
			}
		}
	}
	return out
}
