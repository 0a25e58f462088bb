package flows

import (
	"strings"

	"github.com/csheth/careerscout/internal/api"
)

// AnalyzeForm holds the dashboard inputs. Degree may be blank.
type AnalyzeForm struct {
	Degree string
	Year   *int
}

// Request validates the form and builds the /analyze payload.
func (f AnalyzeForm) Request() (api.AnalyzeRequest, error) {
	if err := CheckYear(f.Year); err != nil {
		return api.AnalyzeRequest{}, err
	}
	return api.AnalyzeRequest{Degree: strings.TrimSpace(f.Degree), Year: f.Year}, nil
}

// TrendDirection is the three-way market trend.
type TrendDirection int

const (
	TrendStable TrendDirection = iota
	TrendImproving
	TrendDeclining
)

// Trend is the market trend indicator.
type Trend struct {
	Direction TrendDirection `json:"-" yaml:"-"`
	Label     string         `json:"label" yaml:"label"`
}

// Tone maps the direction to an indicator color.
func (t Trend) Tone() Tone {
	switch t.Direction {
	case TrendImproving:
		return TonePositive
	case TrendDeclining:
		return ToneNegative
	default:
		return ToneCaution
	}
}

// Symbol is the glyph shown before the label.
func (t Trend) Symbol() string {
	switch t.Direction {
	case TrendImproving:
		return "▲"
	case TrendDeclining:
		return "▼"
	default:
		return "●"
	}
}

// ParseTrend classifies the backend's trend string. Anything other than
// "improving" or "declining" is neutral.
func ParseTrend(raw string) Trend {
	label := TitleCase(raw)
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "improving":
		return Trend{Direction: TrendImproving, Label: label}
	case "declining":
		return Trend{Direction: TrendDeclining, Label: label}
	default:
		return Trend{Direction: TrendStable, Label: label}
	}
}

// AnalyzeView is the rendered outcome of /analyze.
type AnalyzeView struct {
	Summary      api.Optional[string] `json:"summary" yaml:"summary"`
	DataQuality  api.Optional[string] `json:"data_quality" yaml:"data_quality"`
	Trend        api.Optional[Trend]  `json:"trend" yaml:"trend"`
	Chart        *Chart               `json:"chart,omitempty" yaml:"chart,omitempty"`
	Table        *Table               `json:"table,omitempty" yaml:"table,omitempty"`
	MedianSalary api.Optional[string] `json:"median_salary" yaml:"median_salary"`
}

// NewAnalyzeView projects resp without reordering top institutions.
func NewAnalyzeView(resp *api.AnalyzeResponse) AnalyzeView {
	view := AnalyzeView{
		Summary:     resp.Summary,
		DataQuality: resp.DataQuality,
	}
	if raw, ok := resp.Trend.Get(); ok {
		view.Trend = api.Some(ParseTrend(raw))
	}
	if len(resp.TopInstitutions) > 0 {
		chart := Chart{Title: "Employment Rate by Institution"}
		table := Table{Columns: []string{"Institution", "Avg Employment Rate"}}
		for _, row := range resp.TopInstitutions {
			chart.Bars = append(chart.Bars, Bar{
				Label:   row.Institution,
				Value:   row.AvgEmploymentRate,
				Display: FormatDecimal(row.AvgEmploymentRate),
			})
			table.Rows = append(table.Rows, []string{row.Institution, FormatDecimal(row.AvgEmploymentRate)})
		}
		view.Chart = &chart
		view.Table = &table
	}
	if salary, ok := resp.MedianSalary.Get(); ok {
		view.MedianSalary = api.Some(FormatRupees(salary))
	}
	return view
}
