package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary    = lipgloss.Color("#FDB813") // solar yellow
	ColorSecondary  = lipgloss.Color("#2E86AB")
	ColorSuccess    = lipgloss.Color("#2ECC71")
	ColorDanger     = lipgloss.Color("#E74C3C")
	ColorMuted      = lipgloss.Color("#6C7086")
	ColorForeground = lipgloss.Color("#CDD6F4")
	ColorBorder     = lipgloss.Color("#45475A")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	MetricNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorDanger).
				Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)
