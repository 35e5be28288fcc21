// Package tui provides the interactive decoder interface.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#3b82f6") // Blue - title, input
	ColorLatin     = lipgloss.Color("#60a5fa") // Light blue - Latin pane
	ColorArabic    = lipgloss.Color("#34d399") // Emerald - Arabic pane
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#22c55e") // Green - copied, status
	ColorAlert     = lipgloss.Color("#FF6B6B") // Red - errors
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#050505") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
	ColorBorderDim = lipgloss.Color("#2d3436") // Unfocused border
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorBg).
			Padding(0, 1)

	TitleAccentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Background(ColorBg)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Input styles
var (
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	InputLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LegendStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			MarginRight(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorBorderDim)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Output pane styles
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	LatinLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLatin)

	ArabicLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorArabic)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorAlert).
			Bold(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)
