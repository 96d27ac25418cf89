package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	dateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	upcomingStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			PaddingLeft(1).
			PaddingRight(1)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	timeStyle   = lipgloss.NewStyle().Bold(true)
	pillStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	optionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	takenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)  // verde
	missedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // rojo

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
