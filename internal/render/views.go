package render

import (
	"fmt"
	"strings"

	"github.com/csheth/careerscout/internal/flows"
)

// Analyze draws the outcomes analysis.
func Analyze(view flows.AnalyzeView, width int) string {
	parts := []string{}
	if summary, ok := view.Summary.Get(); ok {
		parts = append(parts, Paragraph(summary, width))
	}
	if quality, ok := view.DataQuality.Get(); ok {
		parts = append(parts, Caption("Data quality: "+quality, width))
	}
	if trend, ok := view.Trend.Get(); ok {
		parts = append(parts, Indicators([]flows.Indicator{{
			Label: "Market Trend",
			Value: trend.Symbol() + " " + trend.Label,
			Tone:  trend.Tone(),
		}}, width))
	}
	if view.Chart != nil {
		parts = append(parts, Header("Top Performing Institutions"))
		parts = append(parts, BarChart(*view.Chart, width))
	}
	if view.Table != nil {
		parts = append(parts, Table(*view.Table))
	}
	if salary, ok := view.MedianSalary.Get(); ok {
		parts = append(parts, Indicators([]flows.Indicator{{Label: "Median Starting Salary", Value: salary}}, width))
	}
	return joinNonEmpty(parts)
}

// Insights draws the insight indicators, summary and, when expanded, the
// numbered sources.
func Insights(view flows.InsightsView, width int, expanded bool) string {
	parts := []string{Indicators(view.Indicators, width)}
	if summary, ok := view.Summary.Get(); ok {
		parts = append(parts, joinLines(Header("Insights"), Paragraph(summary, width)))
	}
	if len(view.Sources) > 0 {
		title := fmt.Sprintf("Sources (%d)", len(view.Sources))
		if !expanded {
			parts = append(parts, Caption(title+" hidden", width))
		} else {
			lines := []string{Header(title)}
			for i, source := range view.Sources {
				lines = append(lines, sourceIndexStyle.Render(fmt.Sprintf("%d.", i+1))+" "+source)
			}
			parts = append(parts, strings.Join(lines, "\n"))
		}
	}
	return joinNonEmpty(parts)
}

// Support draws the support index overview.
func Support(view flows.SupportView, width int) string {
	if view.Empty {
		return Notice(flows.Notice{Tone: flows.ToneNeutral, Message: flows.EmptySupportMessage}, width)
	}
	parts := []string{Indicators(view.Indicators(), width)}
	if view.Chart != nil {
		parts = append(parts, BarChart(*view.Chart, width))
	}
	if view.Table != nil {
		parts = append(parts, Table(*view.Table))
	}
	if len(view.Breakdown) > 0 {
		lines := []string{Header("Detailed Support Services")}
		for _, entry := range view.Breakdown {
			lines = append(lines, barLabelStyle.Render(entry.Heading()))
			if line := entry.Line(); line != "" {
				lines = append(lines, "  "+Caption(line, width-2))
			}
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return joinNonEmpty(parts)
}

// ROI draws the primary metrics and, when present, the projections.
func ROI(view flows.ROIView, width int) string {
	parts := []string{Indicators(view.Metrics, width)}
	if len(view.Projections) > 0 {
		parts = append(parts, joinLines(Header("ROI Projections"), Indicators(view.Projections, width)))
	}
	if salaryRange, ok := view.SalaryRange.Get(); ok {
		parts = append(parts, Caption("Salary range: "+salaryRange, width))
	}
	if quality, ok := view.DataQuality.Get(); ok {
		parts = append(parts, Caption("Data quality: "+quality, width))
	}
	return joinNonEmpty(parts)
}

// Compare draws the side-by-side comparison and the verdicts.
func Compare(view flows.CompareView, width int) string {
	parts := []string{}
	if summary, ok := view.Summary.Get(); ok {
		parts = append(parts, Paragraph(summary, width))
	}
	if quality, ok := view.DataQuality.Get(); ok {
		parts = append(parts, Caption("Data quality: "+quality, width))
	}
	if view.Empty {
		parts = append(parts, Notice(flows.Notice{Tone: flows.ToneNeutral, Message: flows.EmptyCompareMessage}, width))
		return joinNonEmpty(parts)
	}
	if view.EmploymentChart != nil {
		parts = append(parts, BarChart(*view.EmploymentChart, width))
	}
	if view.SalaryChart != nil {
		parts = append(parts, BarChart(*view.SalaryChart, width))
	}
	if view.Table != nil {
		parts = append(parts, joinLines(Header("Detailed Comparison"), Table(*view.Table)))
	}
	if len(view.Verdicts) > 0 {
		lines := []string{Header("Comparison Results")}
		for _, verdict := range view.Verdicts {
			if verdict.Outcome == flows.OutcomeTie {
				lines = append(lines, tieStyle.Render("= "+verdict.Text))
				continue
			}
			lines = append(lines, verdictStyle.Render("🏆 "+verdict.Text))
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return joinNonEmpty(parts)
}

func joinLines(parts ...string) string {
	return strings.Join(parts, "\n")
}
