package cmd

import "github.com/charmbracelet/lipgloss"

const (
	green   = "#A9DC76"
	red     = "#FF6188"
	orange  = "#FC9867"
	comment = "#727072"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(green))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(red))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(orange))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(comment))
)
