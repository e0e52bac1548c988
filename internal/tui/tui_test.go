package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/glyphcheck/internal/config"
	"github.com/f3rmion/glyphcheck/internal/glyph"
	"golang.org/x/image/font/gofont/goregular"
)

func newModel(t *testing.T) (Model, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.ttf"), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{FontDir: dir, Fonts: []string{"a.ttf", "missing.ttf"}}
	return New(cfg), dir
}

func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.input.SetValue(input)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestEnterChecksEachCharacter(t *testing.T) {
	m, dir := newModel(t)
	m = submit(t, m, "A手A")

	chars := m.Characters()
	if len(chars) != 2 {
		t.Fatalf("expected 2 distinct characters, got %d", len(chars))
	}

	a := chars[0]
	if a.Target.Rune != 'A' {
		t.Fatalf("expected 'A' first, got %q", a.Target.Rune)
	}
	if len(a.Results) != 2 {
		t.Fatalf("expected a result per font, got %d", len(a.Results))
	}
	if a.Results[0].Outcome != glyph.OutcomeFound || a.Results[1].Outcome != glyph.OutcomeMissingFile {
		t.Errorf("unexpected outcomes: %v, %v", a.Results[0].Outcome, a.Results[1].Outcome)
	}
	if len(a.Summary) != 1 || a.Summary[0] != filepath.Join(dir, "a.ttf") {
		t.Errorf("unexpected summary: %v", a.Summary)
	}
	if a.Preview == "" {
		t.Error("expected a preview for a found character")
	}

	hand := chars[1]
	if hand.Pinyin != "shǒu" {
		t.Errorf("expected pinyin shǒu, got %q", hand.Pinyin)
	}
	if !hand.Summary.Empty() || hand.Preview != "" {
		t.Errorf("expected no match for '手', got %v", hand.Summary)
	}
}

func TestNavigation(t *testing.T) {
	m, _ := newModel(t)
	m = submit(t, m, "AB")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if m.selected != 1 {
		t.Fatalf("expected selection 1, got %d", m.selected)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if m.selected != 0 {
		t.Fatalf("expected selection to wrap to 0, got %d", m.selected)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if m.selected != 1 {
		t.Fatalf("expected selection to wrap to 1, got %d", m.selected)
	}
}

func TestViewShowsResults(t *testing.T) {
	m, _ := newModel(t)
	m = submit(t, m, "A")

	view := m.View()
	for _, want := range []string{"a.ttf", "missing.ttf", "U+0041", "file does not exist"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	m, _ := newModel(t)
	m = submit(t, m, "   ")

	if len(m.Characters()) != 0 || m.err != nil {
		t.Errorf("expected no results and no error, got %d results, err=%v", len(m.Characters()), m.err)
	}
}

func TestNarrowWindowTruncatesFontNames(t *testing.T) {
	dir := t.TempDir()
	long := "a-font-with-a-long-name.ttf"
	if err := os.WriteFile(filepath.Join(dir, long), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	m := New(&config.Config{FontDir: dir, Fonts: []string{long}})
	m = submit(t, m, "A")

	if view := m.View(); !strings.Contains(view, long) {
		t.Errorf("expected the full name before any resize:\n%s", view)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	m = next.(Model)
	if got := m.nameCols(); got != 10 {
		t.Errorf("nameCols = %d, want 10", got)
	}
	view := m.View()
	if strings.Contains(view, long) {
		t.Errorf("expected the name to be truncated:\n%s", view)
	}
	if !strings.Contains(view, "a-font-w") || !strings.Contains(view, "…") {
		t.Errorf("expected a truncated name in:\n%s", view)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 12, Height: 20})
	if got := next.(Model).nameCols(); got != minNameCols {
		t.Errorf("nameCols = %d, want %d", got, minNameCols)
	}
}
