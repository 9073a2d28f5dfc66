package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
	bodyStyle  = lipgloss.NewStyle().Width(80)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f39c12"))
)
