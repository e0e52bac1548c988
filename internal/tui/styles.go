package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/glyphcheck/internal/report"
)

// Colors shared with the text report
var (
	colorPrimary   = report.ColorPrimary
	colorSecondary = report.ColorSecondary
	colorAccent    = report.ColorAccent
	colorMuted     = report.ColorMuted
	colorSuccess   = report.ColorSuccess
	colorText      = report.ColorText
	colorBorder    = report.ColorBorder
	colorBg        = lipgloss.Color("#1a1a2e")
	colorBgAlt     = lipgloss.Color("#2d3436")
	colorLabel     = lipgloss.Color("#a8dadc")
)

// Title styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Background(colorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)
)

// Character styles
var (
	characterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorBgAlt).
			Padding(1, 4).
			Margin(1, 0)

	charTabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2).
			Margin(0, 1)

	charTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				Background(colorBgAlt).
				Padding(0, 2).
				Margin(0, 1)

	pinyinStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Italic(true)

	previewStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorBg).
			Padding(1, 2).
			Margin(0, 2)
)

// Result styles
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	foundStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	absentStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	failedStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			Margin(0, 2)
)
