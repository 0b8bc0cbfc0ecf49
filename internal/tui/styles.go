package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/blink/internal/models"
)

var (
	// Base colors
	accentColor  = lipgloss.Color("42")
	mutedColor   = lipgloss.Color("241")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")
	starColor    = lipgloss.Color("220")
	coachColor   = lipgloss.Color("141")

	// Per-subject accents
	subjectColors = map[models.Subject]lipgloss.Color{
		models.SubjectGeography:  lipgloss.Color("42"),
		models.SubjectHistory:    warningColor,
		models.SubjectNatureTech: lipgloss.Color("45"),
	}

	appTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	statusStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	starStyle     = lipgloss.NewStyle().Foreground(starColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Padding(0, 1)

	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginTop(1)

	tipPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(coachColor).
			Padding(1, 2).
			Width(60)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("237")).
			Padding(0, 2)
)

// subjectStyle returns the bold header style for one subject
func subjectStyle(s models.Subject) lipgloss.Style {
	color, ok := subjectColors[s]
	if !ok {
		color = accentColor
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

// subjectCard returns a card style bordered in the subject's color
func subjectCard(s models.Subject, selected bool) lipgloss.Style {
	color, ok := subjectColors[s]
	if !ok {
		color = accentColor
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		BorderForeground(lipgloss.Color("240"))
	if selected {
		style = style.BorderForeground(color)
	}
	return style
}
