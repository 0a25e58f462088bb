package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/careerscout/internal/health"
)

var (
	heroAccentColor = lipgloss.Color("#ff9f1c")
	heroTextColor   = lipgloss.Color("#fff4e6")
)

var (
	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#bfb8ad")).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	activeTabStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(heroAccentColor).Padding(0, 1)
	inactiveTabStyle   = lipgloss.NewStyle().Foreground(heroTextColor).Padding(0, 1)
	fieldLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusedLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	buttonStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	focusedButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(heroAccentColor).Padding(0, 1)
	currentLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	helpBoxStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
)

func healthStyle(status health.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch status {
	case health.StatusConnected:
		return base.Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#2ec27e"))
	case health.StatusNotResponding, health.StatusUnreachable:
		return base.Foreground(lipgloss.Color("#fff4e6")).Background(lipgloss.Color("#e01b24"))
	default:
		return base.Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#f5c211"))
	}
}

func healthIcon(status health.Status) string {
	switch status {
	case health.StatusConnected:
		return "✅"
	case health.StatusNotResponding, health.StatusUnreachable:
		return "❌"
	default:
		return "…"
	}
}
