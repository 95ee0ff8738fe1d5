package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
)

func renderHeader(parts ...string) string {
	title := "appsweep"
	for _, p := range parts {
		title += " / " + p
	}
	return titleStyle.Render(title) + "\n\n"
}

func renderFooter(help string) string {
	return "\n" + dimStyle.Render(help) + "\n"
}
