package main

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleOK      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)
