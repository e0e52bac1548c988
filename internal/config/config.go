// Package config handles loading and saving glyphcheck configuration.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/f3rmion/glyphcheck/internal/glyph"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file searched for in each config directory.
const FileName = "glyphcheck.yaml"

// DefaultSuggestion is printed when no font contains the character.
const DefaultSuggestion = "Try a similar oracle bone character or check the font files."

// defaultCharacters is the character list used by the coverage command.
const defaultCharacters = "屮屯生荣早莫禾丰毛垂卉木林森杳杲本末未杀叶华花果朱人长休" +
	"朵大小立夫交尸目直眉首面泪相想耳自咱心息口曰甘今含吟香金" +
	"牙芽齿舌甜手看力术又右有刍工左功止正天一丘艸春明炎吕侣" +
	"二上下从比北化"

// defaultCategories groups part of the coverage list for the missing-character report.
var defaultCategories = map[string]string{
	"plants":  "屮屯生荣早莫丰垂卉杳杲本末未杀华朱朵芽艸春",
	"body":    "长休夫交尸直眉首面泪相想自咱息曰甘今含吟香牙齿舌甜看",
	"actions": "术又有刍工功正",
	"other":   "丘明炎吕侣从比化",
}

var (
	// ErrEmptyCharacter is returned when no target character is configured.
	ErrEmptyCharacter = errors.New("character must not be empty")
	// ErrNotSingleCharacter is returned in strict mode for multi-character input.
	ErrNotSingleCharacter = errors.New("character must be exactly one code point")
	// ErrInvalidCharacter is returned for input that is not valid UTF-8.
	ErrInvalidCharacter = errors.New("character is not valid UTF-8")
)

// Config holds all settings for a glyphcheck run.
type Config struct {
	Character  string   `yaml:"character"`            // Character to look for
	FontDir    string   `yaml:"font_dir"`             // Directory relative font names resolve against
	Fonts      []string `yaml:"fonts"`                // Candidate fonts, checked in order
	FaceIndex  int      `yaml:"face_index,omitempty"` // Face to use inside .ttc/.otc collections
	Strict     bool     `yaml:"strict,omitempty"`     // Reject multi-character input
	Suggestion string   `yaml:"suggestion"`           // Hint printed when nothing matched
	Characters string   `yaml:"characters"`           // Character list for coverage reports

	// Categories names groups of characters; coverage reports list the
	// missing characters of each group separately.
	Categories map[string]string `yaml:"categories,omitempty"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Character: "手",
		FontDir:   "fonts",
		Fonts: []string{
			"FangZhengOracle.ttf",
			"HYChenTiJiaGuWen.ttf",
			"OeasyOracle.ttf",
			"ZhongYanYuan.ttf",
		},
		Suggestion: DefaultSuggestion,
		Characters: defaultCharacters,
		Categories: maps.Clone(defaultCategories),
	}
}

// Load reads a config file. Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	// Decoding into a non-nil map merges keys; a file's categories replace the defaults.
	cfg.Categories = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Categories == nil {
		cfg.Categories = maps.Clone(defaultCategories)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// FontPaths resolves the configured fonts against FontDir, keeping order.
// Absolute paths are used as-is.
func (c *Config) FontPaths() []string {
	paths := make([]string, 0, len(c.Fonts))
	for _, f := range c.Fonts {
		if filepath.IsAbs(f) || c.FontDir == "" {
			paths = append(paths, f)
			continue
		}
		paths = append(paths, filepath.Join(c.FontDir, f))
	}
	return paths
}

// Target parses the configured character.
func (c *Config) Target() (glyph.Target, error) {
	return ParseTarget(c.Character, c.Strict)
}

// ParseTarget takes the first code point of s. With strict set, s must hold
// exactly one code point.
func ParseTarget(s string, strict bool) (glyph.Target, error) {
	if s == "" {
		return glyph.Target{}, ErrEmptyCharacter
	}
	if !utf8.ValidString(s) {
		return glyph.Target{}, fmt.Errorf("%w: got %q", ErrInvalidCharacter, s)
	}
	if strict && utf8.RuneCountInString(s) != 1 {
		return glyph.Target{}, fmt.Errorf("%w: got %q", ErrNotSingleCharacter, s)
	}

	r, _ := utf8.DecodeRuneInString(s)
	return glyph.Target{Rune: r, Input: s}, nil
}

// ParseCharacters splits s into unique runes, keeping first-seen order.
func ParseCharacters(s string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range s {
		if seen[r] || r == ' ' || r == ',' || r == '\n' || r == '\t' {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// CategoryRunes parses every category into unique runes.
func (c *Config) CategoryRunes() map[string][]rune {
	if len(c.Categories) == 0 {
		return nil
	}
	out := make(map[string][]rune, len(c.Categories))
	for name, chars := range c.Categories {
		out[name] = ParseCharacters(chars)
	}
	return out
}

// Dir returns the per-user config directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "glyphcheck"), nil
}

// Find returns the first existing config file among the working directory
// and the per-user config directory, or "" if there is none.
func Find() string {
	candidates := []string{FileName}
	if dir, err := Dir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, FileName))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
