package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	onStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	offStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	hoverStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	actionsStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
