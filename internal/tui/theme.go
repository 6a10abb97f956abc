package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	navActive    lipgloss.Style
	navInactive  lipgloss.Style
	welcome      lipgloss.Style
	reminderName lipgloss.Style
	reminderMsg  lipgloss.Style
	reminderDue  lipgloss.Style
	barBracket   lipgloss.Style
	barFill      lipgloss.Style
	barEmpty     lipgloss.Style
	formLabel    lipgloss.Style
	formError    lipgloss.Style
	formOK       lipgloss.Style
	postAuthor   lipgloss.Style
	postBody     lipgloss.Style
	postMeta     lipgloss.Style
	postSelected lipgloss.Style
	replyAuthor  lipgloss.Style
	replyIndent  lipgloss.Style
	spinnerLabel lipgloss.Style
	help         lipgloss.Style
	empty        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		navActive:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 1),
		navInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		welcome:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		reminderName: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		reminderMsg:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		reminderDue:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		barBracket:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		barEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		formLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		formError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		formOK:       lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		postAuthor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		postBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		postMeta:     lipgloss.NewStyle().Faint(true),
		postSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		replyAuthor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		replyIndent:  lipgloss.NewStyle().PaddingLeft(4),
		spinnerLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		help:         lipgloss.NewStyle().Faint(true),
		empty:        lipgloss.NewStyle().Faint(true),
	}
}
