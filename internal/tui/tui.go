// Package tui provides an interactive terminal UI for checking characters against fonts.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/glyphcheck/internal/checker"
	"github.com/f3rmion/glyphcheck/internal/config"
	"github.com/f3rmion/glyphcheck/internal/fontfile"
	"github.com/f3rmion/glyphcheck/internal/glyph"
	"github.com/f3rmion/glyphcheck/internal/pinyin"
	"github.com/f3rmion/glyphcheck/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

const (
	previewCols = 32
	previewRows = 16
	maxNameCols = 32
	minNameCols = 8
)

// Model is the bubbletea model for the interactive checker.
type Model struct {
	input     textinput.Model
	parser    *pinyin.Parser
	checker   *checker.Checker
	fonts     []string
	faceIndex int

	chars    []CharacterResult
	selected int
	err      error

	width int // Terminal width, 0 until the first WindowSizeMsg
}

// CharacterResult holds the check results of one input character.
type CharacterResult struct {
	Target  glyph.Target
	Pinyin  string
	Results []glyph.Result
	Summary glyph.Summary
	Preview string // Block art from the first font containing the character
}

// New creates a new TUI model checking against the fonts in cfg.
func New(cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter characters to check..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorAccent)

	return Model{
		input:     ti,
		parser:    pinyin.NewParser(),
		checker:   &checker.Checker{FaceIndex: cfg.FaceIndex},
		fonts:     cfg.FontPaths(),
		faceIndex: cfg.FaceIndex,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.checkInput()
			return m, nil
		case "left", "shift+tab":
			if len(m.chars) > 0 {
				m.selected = (m.selected - 1 + len(m.chars)) % len(m.chars)
			}
			return m, nil
		case "right", "tab":
			if len(m.chars) > 0 {
				m.selected = (m.selected + 1) % len(m.chars)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// checkInput runs the check for every distinct character of the input.
func (m *Model) checkInput() {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return
	}

	m.chars = nil
	m.selected = 0
	m.err = nil

	for _, r := range config.ParseCharacters(input) {
		m.chars = append(m.chars, m.checkChar(glyph.NewTarget(r)))
	}
	if len(m.chars) == 0 {
		m.err = fmt.Errorf("no characters found in: %q", input)
	}
}

func (m *Model) checkChar(t glyph.Target) CharacterResult {
	report := m.checker.Run(checker.Plan{Target: t, Fonts: m.fonts})
	res := CharacterResult{
		Target:  t,
		Pinyin:  m.parser.Annotate(t.Rune),
		Results: report.Results,
		Summary: report.Summary,
	}
	if !report.Summary.Empty() {
		res.Preview = m.preview(report.Summary[0], t.Rune)
	}
	return res
}

// preview renders r from the font at path, or returns "" if that fails.
func (m *Model) preview(path string, r rune) string {
	f, err := fontfile.Open(path, m.faceIndex)
	if err != nil {
		return ""
	}
	defer f.Close()

	rd, err := bigchar.New(f.SFNT())
	if err != nil {
		return ""
	}
	defer rd.Close()

	return rd.Render(r, previewCols, previewRows)
}

// Characters returns the results of the last check.
func (m Model) Characters() []CharacterResult {
	return m.chars
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  字形 Glyph Check  ") + "  " +
		subtitleStyle.Render(fmt.Sprintf("%d fonts", len(m.fonts))))
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.chars) > 0 {
		if len(m.chars) > 1 {
			b.WriteString("\n")
			b.WriteString(m.renderTabs())
		}
		b.WriteString(m.renderCharacter(m.chars[m.selected]))
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("  Type a character and press Enter"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "  enter: check • esc: quit"
	if len(m.chars) > 1 {
		help = "  ←/→: navigate • enter: check • esc: quit"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.chars))
	for i, c := range m.chars {
		style := charTabStyle
		if i == m.selected {
			style = charTabActiveStyle
		}
		tabs[i] = style.Render(c.Target.String())
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) renderCharacter(c CharacterResult) string {
	var b strings.Builder

	title := characterStyle.Render(c.Target.String())
	info := labelStyle.Render("Code point:") + " " + valueStyle.Render(c.Target.CodePoint())
	if c.Pinyin != "" {
		info += "\n" + labelStyle.Render("Pinyin:") + " " + pinyinStyle.Render(c.Pinyin)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, "  ", title, "  ", info))
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(m.renderResults(c.Results)))
	b.WriteString("\n")

	if c.Preview != "" {
		b.WriteString(previewStyle.Render(c.Preview))
		b.WriteString("\n")
	}
	return b.String()
}

// nameCols is how wide font names may get: a third of the terminal, within
// [minNameCols, maxNameCols].
func (m Model) nameCols() int {
	if m.width <= 0 {
		return maxNameCols
	}
	return min(maxNameCols, max(minNameCols, m.width/3))
}

// renderResults lists one row per font with names padded to a common width.
func (m Model) renderResults(results []glyph.Result) string {
	if len(results) == 0 {
		return helpStyle.Render("No fonts configured")
	}

	names := make([]string, len(results))
	width := 0
	for i, res := range results {
		names[i] = runewidth.Truncate(filepath.Base(res.Path), m.nameCols(), "…")
		width = max(width, runewidth.StringWidth(names[i]))
	}

	lines := make([]string, len(results))
	for i, res := range results {
		name := runewidth.FillRight(names[i], width)
		switch res.Outcome {
		case glyph.OutcomeFound:
			lines[i] = foundStyle.Render("✅ "+name) + "  " + valueStyle.Render(res.GlyphName)
		case glyph.OutcomeNotFound:
			lines[i] = absentStyle.Render("❌ "+name) + "  " + helpStyle.Render("absent")
		case glyph.OutcomeMissingFile:
			lines[i] = absentStyle.Render("❌ "+name) + "  " + helpStyle.Render("file does not exist")
		default:
			lines[i] = failedStyle.Render("⚠️ "+name) + "  " + helpStyle.Render(res.ErrorMessage())
		}
	}
	return strings.Join(lines, "\n")
}
