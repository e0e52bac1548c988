package report

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/f3rmion/glyphcheck/internal/checker"
	"github.com/f3rmion/glyphcheck/internal/glyph"
)

// Coverage prints a table with one row per font and the characters no font has.
func (p *Printer) Coverage(r checker.CoverageReport) {
	fmt.Fprintf(p.w, "%s %d characters in %d fonts:\n\n",
		p.st.header.Render("Checking"), len(r.Characters), len(r.Fonts))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.st.border).
		Headers("Font", "Status", "Present", "Missing", "Missing characters")

	for _, fc := range r.Fonts {
		t.Row(CoverageRow(fc, len(r.Characters))...)
	}
	fmt.Fprintln(p.w, t.String())

	missing := r.MissingEverywhere()
	fmt.Fprintf(p.w, "\n%s\n", p.st.heading.Render("Summary:"))
	if len(missing) == 0 {
		fmt.Fprintln(p.w, "Every character is present in at least one font.")
		return
	}
	fmt.Fprintf(p.w, "%d characters are not present in any font:\n", len(missing))
	fmt.Fprintf(p.w, "  %s\n", p.st.char.Render(joinRunes(missing)))

	byCategory := r.MissingByCategory()
	for _, name := range slices.Sorted(maps.Keys(byCategory)) {
		chars := byCategory[name]
		fmt.Fprintf(p.w, "\n%s (%d):\n", p.st.heading.Render(name), len(chars))
		fmt.Fprintf(p.w, "  %s\n", p.st.char.Render(joinRunes(chars)))
	}
}

// CoverageRow returns the table cells for one font.
func CoverageRow(fc checker.FontCoverage, total int) []string {
	name := filepath.Base(fc.Path)
	switch fc.Outcome {
	case glyph.OutcomeMissingFile:
		return []string{name, "missing file", "-", "-", ""}
	case glyph.OutcomeParseError:
		return []string{name, "check failed", "-", "-", fc.Err.Error()}
	}
	return []string{
		name,
		"ok",
		fmt.Sprintf("%d/%d", len(fc.Present), total),
		strconv.Itoa(len(fc.Missing)),
		joinRunes(fc.Missing),
	}
}

func joinRunes(rs []rune) string {
	out := make([]rune, 0, len(rs)*2)
	for i, r := range rs {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}

// CoverageFile is the JSON form of a coverage report.
type CoverageFile struct {
	Characters        string             `json:"characters"`
	MissingEverywhere string             `json:"missingEverywhere"`
	Fonts             []CoverageFileFont `json:"fonts"`

	CategorizedMissing map[string]string `json:"categorizedMissing,omitempty"`
}

// CoverageFileFont is the JSON form of one font's coverage.
type CoverageFileFont struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Present string `json:"present"`
	Missing string `json:"missing"`
}

// NewCoverageFile converts a report to its JSON form.
func NewCoverageFile(r checker.CoverageReport) CoverageFile {
	out := CoverageFile{
		Characters:        string(r.Characters),
		MissingEverywhere: string(r.MissingEverywhere()),
		Fonts:             make([]CoverageFileFont, 0, len(r.Fonts)),
	}
	for _, fc := range r.Fonts {
		f := CoverageFileFont{
			Path:    fc.Path,
			Status:  fc.Outcome.String(),
			Present: string(fc.Present),
			Missing: string(fc.Missing),
		}
		if fc.Err != nil {
			f.Error = fc.Err.Error()
		}
		out.Fonts = append(out.Fonts, f)
	}
	for name, chars := range r.MissingByCategory() {
		if out.CategorizedMissing == nil {
			out.CategorizedMissing = make(map[string]string)
		}
		out.CategorizedMissing[name] = string(chars)
	}
	return out
}

// WriteCoverageFile saves the report as indented JSON.
func WriteCoverageFile(path string, r checker.CoverageReport) error {
	data, err := json.MarshalIndent(NewCoverageFile(r), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling coverage: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing coverage file: %w", err)
	}
	return nil
}
