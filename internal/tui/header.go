package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const reminderBarWidth = 24

// renderHeader shows the app title, the two reminder progress rows, and
// the login status. Reminder progress is recomputed on every render.
func (m Model) renderHeader() string {
	lines := []string{
		m.styles.title.Render("🌿 RoofTop Gardening"),
	}

	for _, status := range m.reminders.Statuses(m.session) {
		lines = append(lines, m.renderReminderRow(status.Name, status.Percent, status.Message))
	}

	if m.session.LoggedIn {
		lines = append(lines, m.styles.welcome.Render(fmt.Sprintf("Welcome, %s!", m.session.Username)))
	} else {
		lines = append(lines, m.styles.header.Render("Not logged in — press l to login"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerHeight(m Model) int {
	// Title, two reminders, login line.
	return 4
}

func (m Model) renderReminderRow(name string, percent float64, message string) string {
	label := m.styles.reminderName.Render(fmt.Sprintf("%-10s", name))
	bar := m.renderProgressBar(percent, reminderBarWidth)

	msgStyle := m.styles.reminderMsg
	if percent >= 100 {
		msgStyle = m.styles.reminderDue
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		bar,
		" ",
		msgStyle.Render(message),
	)
}

func (m Model) renderProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	percent = clampPercent(percent)
	filled := int(math.Round(float64(width) * percent / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.barBracket.Render("["),
		m.styles.barFill.Render(strings.Repeat("=", filled)),
		m.styles.barEmpty.Render(strings.Repeat("-", empty)),
		m.styles.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
