package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/careerscout/internal/flows"
)

var (
	positiveColor = lipgloss.Color("#2ec27e")
	cautionColor  = lipgloss.Color("#f5c211")
	negativeColor = lipgloss.Color("#e01b24")
	neutralColor  = lipgloss.Color("#8ecae6")
	mutedColor    = lipgloss.Color("244")
	accentColor   = lipgloss.Color("81")
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	captionStyle       = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	summaryStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	tileLabelStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	tileBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1).MarginRight(1)
	barLabelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	barStyle           = lipgloss.NewStyle().Foreground(neutralColor)
	barValueStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	tableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	tableCellStyle     = lipgloss.NewStyle().Padding(0, 1)
	verdictStyle       = lipgloss.NewStyle().Bold(true).Foreground(positiveColor)
	tieStyle           = lipgloss.NewStyle().Bold(true).Foreground(cautionColor)
	sourceIndexStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// ToneStyle returns the foreground style for tone.
func ToneStyle(tone flows.Tone) lipgloss.Style {
	switch tone {
	case flows.TonePositive:
		return lipgloss.NewStyle().Bold(true).Foreground(positiveColor)
	case flows.ToneCaution:
		return lipgloss.NewStyle().Bold(true).Foreground(cautionColor)
	case flows.ToneNegative:
		return lipgloss.NewStyle().Bold(true).Foreground(negativeColor)
	default:
		return lipgloss.NewStyle().Bold(true)
	}
}
