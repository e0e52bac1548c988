// Package glyph provides the core types for character presence checks.
package glyph

import "fmt"

// Target is the character being searched for.
type Target struct {
	Rune  rune   // Code point looked up in each cmap
	Input string // Raw input the rune was taken from
}

// NewTarget builds a target from a single rune.
func NewTarget(r rune) Target {
	return Target{Rune: r, Input: string(r)}
}

// String returns the character itself.
func (t Target) String() string {
	return string(t.Rune)
}

// CodePoint formats the rune as U+XXXX (at least four uppercase hex digits).
func (t Target) CodePoint() string {
	return fmt.Sprintf("U+%04X", t.Rune)
}

// Outcome is the final state of a single candidate.
type Outcome int

const (
	OutcomeNotChecked  Outcome = iota // Not processed yet
	OutcomeMissingFile         // Path does not refer to an existing file
	OutcomeParseError          // Font could not be opened or interpreted
	OutcomeFound               // Rune is in the cmap
	OutcomeNotFound            // Font parsed, rune absent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMissingFile:
		return "missing-file"
	case OutcomeParseError:
		return "parse-error"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not-found"
	default:
		return "not-checked"
	}
}

// Presence is the tri-state answer to "is the character in this font".
type Presence int

const (
	PresenceUnknown Presence = iota // Could not be determined
	PresenceYes
	PresenceNo
)

// Result is the outcome of checking one font candidate.
type Result struct {
	Path      string
	Target    Target
	Outcome   Outcome
	GlyphID   uint16 // Non-zero only when found
	GlyphName string // Non-empty only when found
	Err       error  // Set only on parse errors
}

// Presence reports whether the character exists in the font.
func (r Result) Presence() Presence {
	switch r.Outcome {
	case OutcomeFound:
		return PresenceYes
	case OutcomeNotFound:
		return PresenceNo
	default:
		return PresenceUnknown
	}
}

// Found is shorthand for Presence() == PresenceYes.
func (r Result) Found() bool {
	return r.Outcome == OutcomeFound
}

// ErrorMessage returns the parse error text, or "" when there was none.
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Summary lists the candidate paths that contain the character, in input order.
type Summary []string

// Empty reports whether no candidate matched.
func (s Summary) Empty() bool {
	return len(s) == 0
}
