package tui

import "github.com/charmbracelet/lipgloss"

var (
	textColor    = lipgloss.Color("#D1D0C5")
	errorColor   = lipgloss.Color("#CA4754")
	extraColor   = lipgloss.Color("#7E2A33")
	subColor     = lipgloss.Color("#646669")
	accentColor  = lipgloss.Color("#E2B714")
	surfaceColor = lipgloss.Color("#2C2E31")

	correctStyle     = lipgloss.NewStyle().Foreground(textColor)
	incorrectStyle   = lipgloss.NewStyle().Foreground(errorColor)
	extraStyle       = lipgloss.NewStyle().Foreground(extraColor)
	pendingStyle     = lipgloss.NewStyle().Foreground(subColor)
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8B8E"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#323437")).Background(textColor)

	timerStyle      = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	metricStyle     = lipgloss.NewStyle().Foreground(textColor).Bold(true)
	labelStyle      = lipgloss.NewStyle().Foreground(subColor)
	titleStyle      = lipgloss.NewStyle().Foreground(textColor).Bold(true).MarginBottom(1)
	trendStyle      = lipgloss.NewStyle().Foreground(accentColor)
	resultCardStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(surfaceColor)
	metricCardStyle = lipgloss.NewStyle().Padding(0, 2)
)
