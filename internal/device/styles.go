package device

import "github.com/charmbracelet/lipgloss"

var (
	grantedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	deniedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	enrollStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	offlineStyle = lipgloss.NewStyle().Faint(true)
	infoStyle    = lipgloss.NewStyle().Faint(true)
)
