package bigchar

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parsing Go Regular: %v", err)
	}
	r, err := New(f)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRender(t *testing.T) {
	r := newRenderer(t)

	out := r.Render('A', 16, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 rows, got %d:\n%s", len(lines), out)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 16 {
			t.Errorf("row %d: expected 16 cells, got %d", i, n)
		}
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Errorf("expected some ink in:\n%s", out)
	}
}

func TestRenderMissingGlyph(t *testing.T) {
	r := newRenderer(t)

	if out := r.Render('手', 16, 8); out != "" {
		t.Errorf("expected empty output for a missing glyph, got:\n%s", out)
	}
	if out := r.Render('A', 0, 8); out != "" {
		t.Errorf("expected empty output for zero columns, got:\n%s", out)
	}
}
