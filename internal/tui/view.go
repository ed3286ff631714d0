package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/stats"
)

const contentRatio = 0.70

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderTyping()
	if m.session.State() == session.Finished {
		content = renderResults(m.last, m.contentWidth())
	}
	if m.width == 0 || m.height == 0 {
		return m.renderHeader() + "\n\n" + content
	}

	body := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", content)
	footer := m.help.View(m.keys)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 1
	main := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return main + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(1, int(float64(m.width)*contentRatio))
}

func (m *Model) renderTyping() string {
	target := []rune(m.session.Target)
	input := []rune(m.session.Typed)
	cursorIndex := -1
	if len(input) < len(target) {
		cursorIndex = len(input)
	}
	styled := buildStyledRunes(target, input, cursorIndex)
	width := m.contentWidth()
	if width == 0 {
		return renderStyledRunes(styled)
	}
	return lipgloss.NewStyle().Width(width).Render(wrapStyledRunes(styled, width))
}

// renderHeader shows the countdown with live WPM and accuracy.
func (m *Model) renderHeader() string {
	s := m.session
	segments := []string{
		timerStyle.Render(fmt.Sprintf("%ds", s.TimeLeft)),
		metricStyle.Render(fmt.Sprintf("%d", s.Metrics.WPM)) + " " + labelStyle.Render("wpm"),
		metricStyle.Render(fmt.Sprintf("%d%%", s.Metrics.Accuracy)) + " " + labelStyle.Render("acc"),
	}
	if s.State() == session.Idle {
		segments = append(segments, labelStyle.Render("start typing..."))
	}
	return strings.Join(segments, "   ")
}

func renderResults(r model.Result, width int) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("wpm", fmt.Sprintf("%d", r.WPM)),
		metricCard("raw", fmt.Sprintf("%d", r.RawWPM)),
		metricCard("acc", fmt.Sprintf("%d%%", r.Accuracy)),
		metricCard("characters", fmt.Sprintf("%d/%d", r.Correct, r.Total())),
	)
	lines := []string{titleStyle.Render("Test Results"), cards}
	if len(r.Samples) > 0 {
		trendWidth := lipgloss.Width(cards)
		if width > 0 && width < trendWidth {
			trendWidth = width
		}
		spark := stats.Sparkline(stats.Resample(stats.WPMSeries(r.Samples), trendWidth))
		lines = append(lines, "", labelStyle.Render("wpm over time"), trendStyle.Render(spark))
	}
	lines = append(lines, "", labelStyle.Render("press enter to retest"))
	return resultCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func metricCard(label, value string) string {
	return metricCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		metricStyle.Render(value),
	))
}
