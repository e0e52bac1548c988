// Package pinyin annotates characters with their Mandarin readings.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Parser converts Han characters to pinyin.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: shǒu
	args.Heteronym = true      // Return all possible readings
	return &Parser{args: args}
}

// Readings returns all pinyin readings for r, or nil for non-Han runes.
func (p *Parser) Readings(r rune) []string {
	result := gopinyin.Pinyin(string(r), p.args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

// Annotate returns the readings of r joined with "/", e.g. "zhōng/zhòng".
func (p *Parser) Annotate(r rune) string {
	return strings.Join(p.Readings(r), "/")
}
