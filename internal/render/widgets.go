// Package render draws flow views as terminal text: indicator tiles,
// horizontal bar charts and static tables. The TUI and the CLI's human
// output share it.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/careerscout/internal/flows"
)

const (
	minWidth      = 40
	maxLabelWidth = 28
	minBarWidth   = 10
	barGlyph      = "█"
)

func clampWidth(width int) int {
	if width < minWidth {
		return minWidth
	}
	return width
}

// Header renders a section title.
func Header(title string) string {
	return sectionHeaderStyle.Render(title)
}

// Caption renders muted, wrapped supporting text.
func Caption(text string, width int) string {
	return captionStyle.Render(wordwrap.String(text, clampWidth(width)))
}

// Paragraph wraps body text to width.
func Paragraph(text string, width int) string {
	return summaryStyle.Render(wordwrap.String(strings.TrimSpace(text), clampWidth(width)))
}

// Notice renders a one-line message colored by its tone.
func Notice(notice flows.Notice, width int) string {
	prefix := "ℹ"
	switch notice.Tone {
	case flows.TonePositive:
		prefix = "✔"
	case flows.ToneCaution:
		prefix = "⚠"
	case flows.ToneNegative:
		prefix = "✖"
	}
	text := wordwrap.String(prefix+" "+notice.Message, clampWidth(width))
	if notice.Tone == flows.ToneNeutral {
		return captionStyle.Render(text)
	}
	return ToneStyle(notice.Tone).Render(text)
}

// Indicators lays tiles out left to right, starting a new row when the next
// tile would overflow width.
func Indicators(items []flows.Indicator, width int) string {
	if len(items) == 0 {
		return ""
	}
	width = clampWidth(width)
	var rows []string
	var current []string
	used := 0
	for _, item := range items {
		tile := tileBoxStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			tileLabelStyle.Render(item.Label),
			ToneStyle(item.Tone).Render(item.Value),
		))
		tileWidth := lipgloss.Width(tile)
		if len(current) > 0 && used+tileWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			used = 0
		}
		current = append(current, tile)
		used += tileWidth
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	return strings.Join(rows, "\n")
}

// BarChart draws one horizontal bar per entry, in the given order, scaled to
// the largest value. Non-positive values draw an empty bar.
func BarChart(chart flows.Chart, width int) string {
	if len(chart.Bars) == 0 {
		return ""
	}
	width = clampWidth(width)

	labelWidth := 0
	valueWidth := 0
	peak := 0.0
	for _, bar := range chart.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		valueWidth = max(valueWidth, lipgloss.Width(bar.Display))
		if bar.Value > peak && !math.IsInf(bar.Value, 0) {
			peak = bar.Value
		}
	}
	labelWidth = min(labelWidth, maxLabelWidth)
	barWidth := max(width-labelWidth-valueWidth-3, minBarWidth)

	lines := []string{Header(chart.Title)}
	for _, bar := range chart.Bars {
		label := bar.Label
		if lipgloss.Width(label) > labelWidth {
			label = truncate.StringWithTail(label, uint(labelWidth), "…")
		}
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		length := 0
		if peak > 0 && bar.Value > 0 {
			length = int(math.Round(bar.Value / peak * float64(barWidth)))
		}
		filled := barStyle.Render(strings.Repeat(barGlyph, length))
		padding := strings.Repeat(" ", barWidth-length)
		lines = append(lines, fmt.Sprintf("%s %s%s %s", barLabelStyle.Render(label), filled, padding, barValueStyle.Render(bar.Display)))
	}
	return strings.Join(lines, "\n")
}

// Table renders a static, unfocused table sized to its content.
func Table(data flows.Table) string {
	if len(data.Columns) == 0 {
		return ""
	}
	columns := make([]table.Column, len(data.Columns))
	total := 0
	for i, title := range data.Columns {
		w := lipgloss.Width(title)
		for _, row := range data.Rows {
			if i < len(row) {
				w = max(w, lipgloss.Width(row[i]))
			}
		}
		columns[i] = table.Column{Title: title, Width: w}
		total += w + tableCellStyle.GetHorizontalPadding()
	}
	rows := make([]table.Row, 0, len(data.Rows))
	for _, row := range data.Rows {
		cells := make(table.Row, len(columns))
		copy(cells, row)
		rows = append(rows, cells)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
		table.WithWidth(total),
		table.WithFocused(false),
		table.WithStyles(table.Styles{
			Header:   tableHeaderStyle,
			Cell:     tableCellStyle,
			Selected: lipgloss.NewStyle(),
		}),
	)
	return strings.TrimRight(t.View(), "\n")
}

// joinNonEmpty stacks the non-blank parts with a blank line between them.
func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
