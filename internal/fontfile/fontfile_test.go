package fontfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestOpenAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	writeFile(t, path, goregular.TTF)

	f, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	gid, name, ok, err := f.Lookup('A')
	if err != nil {
		t.Fatalf("Lookup('A'): %v", err)
	}
	if !ok {
		t.Fatal("expected 'A' to be present in Go Regular")
	}
	if gid == 0 {
		t.Error("expected a non-zero glyph index for 'A'")
	}
	if name == "" {
		t.Error("expected a glyph name for 'A'")
	}

	gid, name, ok, err = f.Lookup('手')
	if err != nil {
		t.Fatalf("Lookup('手'): %v", err)
	}
	if ok || gid != 0 || name != "" {
		t.Errorf("expected '手' to be absent, got ok=%v gid=%d name=%q", ok, gid, name)
	}

	if f.NumGlyphs() == 0 {
		t.Error("expected glyphs in Go Regular")
	}
	if f.Name() == "" {
		t.Error("expected a font name")
	}
	if f.Path() != path {
		t.Errorf("Path() = %q, want %q", f.Path(), path)
	}
}

func TestOpenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.ttf")
	writeFile(t, path, []byte("this is not a font file at all"))

	if _, err := Open(path, 0); err == nil {
		t.Fatal("expected an error for a corrupt font")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.ttf"), 0); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestOpenFaceIndexOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	writeFile(t, path, goregular.TTF)

	for _, idx := range []int{-1, 1} {
		if f, err := Open(path, idx); err == nil {
			f.Close()
			t.Errorf("face index %d: expected an error", idx)
		}
	}
}

func TestCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	writeFile(t, path, goregular.TTF)

	f, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestFallbackName(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'A', "uni0041"},
		{'手', "uni624B"},
		{0x1F600, "u1F600"},
	}
	for _, tt := range tests {
		if got := FallbackName(tt.r); got != tt.want {
			t.Errorf("FallbackName(%U) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestGlyphNameFallsBack(t *testing.T) {
	tests := []struct {
		name string
		post string
		err  error
		want string
	}{
		{"post name", "A", nil, "A"},
		{"no post names", "", nil, "uni0041"},
		{"unreadable post table", "", errors.New("sfnt: invalid post table"), "uni0041"},
		{"error wins over partial name", "junk", errors.New("sfnt: invalid post table"), "uni0041"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glyphName(tt.post, tt.err, 'A'); got != tt.want {
				t.Errorf("glyphName = %q, want %q", got, tt.want)
			}
		})
	}
}
