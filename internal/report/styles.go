package report

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - absent, failures
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - headings, pinyin
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - characters, warnings
	ColorMuted     = lipgloss.Color("#666666") // Gray - code points, hints
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - found
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Markers prefixed to each result line.
const (
	MarkFound   = "✅"
	MarkAbsent  = "❌"
	MarkError   = "⚠️"
	MarkMissing = "❌"
)

// styles are bound to one renderer so colour follows the destination writer.
type styles struct {
	found   lipgloss.Style
	absent  lipgloss.Style
	failed  lipgloss.Style
	char    lipgloss.Style
	pinyin  lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		found:   r.NewStyle().Foreground(ColorSuccess).Bold(true),
		absent:  r.NewStyle().Foreground(ColorPrimary),
		failed:  r.NewStyle().Foreground(ColorAccent),
		char:    r.NewStyle().Foreground(ColorAccent).Bold(true),
		pinyin:  r.NewStyle().Foreground(ColorSecondary).Italic(true),
		muted:   r.NewStyle().Foreground(ColorMuted),
		heading: r.NewStyle().Foreground(ColorSecondary).Bold(true),
		border:  r.NewStyle().Foreground(ColorBorder),
		header:  r.NewStyle().Foreground(ColorText).Bold(true),
	}
}
