package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/careerscout/internal/flows"
	"github.com/csheth/careerscout/internal/guide"
	"github.com/csheth/careerscout/internal/health"
)

var tabLabels = [tabCount]string{
	tabDashboard: "Dashboard",
	tabInsights:  "Insights",
	tabSupport:   "Support & ROI",
	tabCompare:   "Compare",
}

func (m *model) View() string {
	m.refreshViewportIfDirty()
	parts := []string{m.heroView(), m.formPanel(), m.viewport.View()}
	if line := m.activityLine(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, m.statusBarView())
	if m.helpVisible {
		parts = append(parts, m.helpView())
	} else {
		parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	tabs := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("F%d %s", t+1, tabLabels[t])
		if t == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		heroTitleStyle.Render(heroTitle),
		taglineStyle.Render(heroTagline),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m *model) formPanel() string {
	lines := []string{sectionHeaderStyle.Render(tabTitles[m.activeTab])}
	labelWidth := 0
	for _, field := range m.fields[m.activeTab] {
		if field.acceptsText() && lipgloss.Width(field.label) > labelWidth {
			labelWidth = lipgloss.Width(field.label)
		}
	}
	for idx, field := range m.fields[m.activeTab] {
		focused := idx == m.focus[m.activeTab]
		marker := "  "
		labelStyle := fieldLabelStyle
		if focused {
			marker = "▸ "
			labelStyle = focusedLabelStyle
		}
		switch field.kind {
		case fieldAction:
			style := buttonStyle
			if focused {
				style = focusedButtonStyle
			}
			lines = append(lines, marker+style.Render(field.label))
		case fieldSamples:
			lines = append(lines, marker+labelStyle.Render(field.label))
			for i, question := range m.samples {
				label := "💡 " + guide.ButtonLabel(question, sampleLabelLimit)
				if focused && i == m.sampleCursor {
					lines = append(lines, "    "+currentLineStyle.Render(label))
					continue
				}
				lines = append(lines, "    "+helperStyle.Render(label))
			}
		default:
			label := labelStyle.Render(field.label + strings.Repeat(" ", labelWidth-lipgloss.Width(field.label)))
			row := marker + label + "  " + field.input.View()
			if field.kind == fieldYear && focused {
				row += helperStyle.Render("  ↑/↓ to change")
			}
			lines = append(lines, row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *model) activityLine() string {
	switch {
	case m.inFlight != "":
		return helperStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), flows.LoadingMessage(jobKindActions[m.inFlight])))
	case m.infoMessage != "":
		return helperStyle.Render(m.infoMessage)
	default:
		return ""
	}
}

func (m *model) statusBarView() string {
	status := m.health.Status
	badge := healthStyle(status).Render(fmt.Sprintf("%s %s", healthIcon(status), status.Label()))
	stats := []string{fmt.Sprintf("API %s", m.config.APIBase)}
	if m.lastJob.ID != "" && m.lastJob.Status != jobStatusRunning {
		stats = append(stats, fmt.Sprintf("last %s %s in %s", m.lastJob.Kind, m.lastJob.Status, m.lastJob.Duration.Round(time.Millisecond)))
	}
	if m.activeTab == tabInsights && m.insightsView != nil && len(m.insightsView.Sources) > 0 {
		state := "hidden"
		if m.sourcesExpanded {
			state = "shown"
		}
		stats = append(stats, "sources "+state)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badge, statusBarStyle.Render(strings.Join(stats, "  •  ")))
}

func (m *model) helpView() string {
	lines := []string{sectionHeaderStyle.Render("Quick Start")}
	for i, step := range guide.QuickStart() {
		lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, fieldLabelStyle.Render(step.Title+":"), helperStyle.Render(step.Description)))
	}
	lines = append(lines, "", sectionHeaderStyle.Render("Keys"))
	lines = append(lines, indentMultiline(m.help.FullHelpView(m.keys.FullHelp()), "  "))
	if m.health.Status == health.StatusNotResponding || m.health.Status == health.StatusUnreachable {
		lines = append(lines, "", errorStyle.Render(fmt.Sprintf("%s at %s. Requests will fail until it answers.", m.health.Status.Label(), m.config.APIBase)))
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}
