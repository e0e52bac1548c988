// Package fontfile opens font files and answers cmap queries about them.
//
// Parsing is done by golang.org/x/image/font/sfnt, which picks the best
// Unicode cmap subtable it supports when the font is loaded.
package fontfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Font is an open font face backed by a file on disk.
// The file stays open until Close is called.
type Font struct {
	path string
	file *os.File
	fnt  *sfnt.Font
	buf  sfnt.Buffer
}

// Open parses the font at path. Collections (.ttc/.otc) are supported;
// faceIndex selects the face, and single fonts only have face 0.
func Open(path string, faceIndex int) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening font: %w", err)
	}

	coll, err := sfnt.ParseCollectionReaderAt(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	if faceIndex < 0 || faceIndex >= coll.NumFonts() {
		f.Close()
		return nil, fmt.Errorf("face index %d out of range (font has %d faces)", faceIndex, coll.NumFonts())
	}

	fnt, err := coll.Font(faceIndex)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parsing face %d: %w", faceIndex, err)
	}

	return &Font{path: path, file: f, fnt: fnt}, nil
}

// Path returns the file the font was opened from.
func (f *Font) Path() string {
	return f.path
}

// Lookup maps r through the font's cmap. ok is false when the rune has no
// glyph. The name comes from the post table when it can be read, otherwise it
// is derived from the code point. Only cmap errors are returned.
func (f *Font) Lookup(r rune) (gid uint16, name string, ok bool, err error) {
	x, err := f.fnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, "", false, fmt.Errorf("reading cmap: %w", err)
	}
	if x == 0 {
		return 0, "", false, nil
	}

	name, err = f.fnt.GlyphName(&f.buf, x)
	return uint16(x), glyphName(name, err, r), true, nil
}

// glyphName picks the post table name, or a derived one when the post table
// has no usable entry for the glyph.
func glyphName(name string, err error, r rune) string {
	if err != nil || name == "" {
		return FallbackName(r)
	}
	return name
}

// FallbackName returns the conventional glyph name for r: uniXXXX inside the
// BMP, uXXXXX above it.
func FallbackName(r rune) string {
	if r <= 0xFFFF {
		return fmt.Sprintf("uni%04X", r)
	}
	return fmt.Sprintf("u%X", r)
}

// Name returns the full font name, falling back to the family name.
// It returns "" when the name table has neither.
func (f *Font) Name() string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
		name, err := f.fnt.Name(&f.buf, id)
		if err == nil && name != "" {
			return name
		}
	}
	return ""
}

// NumGlyphs returns the number of glyphs in the face.
func (f *Font) NumGlyphs() int {
	return f.fnt.NumGlyphs()
}

// SFNT exposes the parsed face, e.g. for building a rendering face.
// It is only valid until Close.
func (f *Font) SFNT() *sfnt.Font {
	return f.fnt
}

// Close releases the underlying file. It is safe to call more than once.
func (f *Font) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("closing font: %w", err)
	}
	return nil
}
