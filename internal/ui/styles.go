// Package ui renders dashboard frames. It is the thin display half of the
// tool; everything behavior-bearing lives behind the monitor.Renderer
// contract it implements.
package ui

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	ColorHeader  = lipgloss.Color("14") // bright cyan
	ColorOK      = lipgloss.Color("10") // bright green
	ColorDown    = lipgloss.Color("9")  // bright red
	ColorWarn    = lipgloss.Color("11") // bright yellow
	ColorAccent  = lipgloss.Color("13") // bright magenta
	ColorMuted   = lipgloss.Color("8")  // gray
	ColorPrimary = lipgloss.Color("15") // white
)

// Base styles for the dashboard
var (
	HeaderPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorHeader).
				Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHeader).
			Padding(0, 1)

	ErrorPanelStyle = PanelStyle.
			BorderForeground(ColorDown)

	OKPanelStyle = PanelStyle.
			BorderForeground(ColorOK)

	DimPanelStyle = PanelStyle.
			BorderForeground(ColorMuted)

	FooterPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true)

	ServiceUpStyle = lipgloss.NewStyle().
			Foreground(ColorOK)

	ServiceDownStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	StatusMsgStyle = lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SystemStyle = lipgloss.NewStyle().
			Foreground(ColorHeader)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorDown).
			Bold(true)

	URLStyle = lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true).
			Underline(true)
)

// Log line styles by class
var (
	logErrorStyle = lipgloss.NewStyle().Foreground(ColorDown).Bold(true)
	logWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
	logInfoStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	logBuildStyle = lipgloss.NewStyle().Foreground(ColorOK)
	logWatchStyle = lipgloss.NewStyle().Foreground(ColorHeader)
	logHotStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	logPlainStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
)
