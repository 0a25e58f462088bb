package flows

import (
	"fmt"
	"strings"

	"github.com/csheth/careerscout/internal/api"
)

// CompareForm holds the two institution names and an optional year.
type CompareForm struct {
	InstitutionA string
	InstitutionB string
	Year         *int
}

// SameInstitutionMessage is the warning for the equal-names guard.
const SameInstitutionMessage = "Please select two different institutions for comparison."

// EmptyCompareMessage is the neutral notice for an empty comparison.
const EmptyCompareMessage = "No comparison data available for the selected institutions and year."

// Request validates the form and builds the /compare payload.
func (f CompareForm) Request() (api.CompareRequest, error) {
	a := strings.TrimSpace(f.InstitutionA)
	b := strings.TrimSpace(f.InstitutionB)
	if a == b {
		return api.CompareRequest{}, invalid("institution_b", SameInstitutionMessage)
	}
	if err := CheckYear(f.Year); err != nil {
		return api.CompareRequest{}, err
	}
	return api.CompareRequest{InstitutionA: a, InstitutionB: b, Year: f.Year}, nil
}

// Outcome is the result of comparing one metric between A and B.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeA
	OutcomeB
)

// Verdict declares the winner of one metric.
type Verdict struct {
	Metric  string  `json:"metric" yaml:"metric"`
	Outcome Outcome `json:"-" yaml:"-"`
	Winner  string  `json:"winner,omitempty" yaml:"winner,omitempty"`
	Text    string  `json:"text" yaml:"text"`
}

// Decide names the input institution with the strictly greater value.
// Equal values are a tie.
func Decide(metric, nameA, nameB string, valueA, valueB float64) Verdict {
	switch {
	case valueA > valueB:
		return Verdict{Metric: metric, Outcome: OutcomeA, Winner: nameA, Text: fmt.Sprintf("%s wins in %s", nameA, metric)}
	case valueB > valueA:
		return Verdict{Metric: metric, Outcome: OutcomeB, Winner: nameB, Text: fmt.Sprintf("%s wins in %s", nameB, metric)}
	default:
		return Verdict{Metric: metric, Outcome: OutcomeTie, Text: fmt.Sprintf("%s and %s tie in %s", nameA, nameB, metric)}
	}
}

// CompareView is the rendered outcome of /compare.
type CompareView struct {
	Summary         api.Optional[string] `json:"summary" yaml:"summary"`
	DataQuality     api.Optional[string] `json:"data_quality" yaml:"data_quality"`
	Empty           bool                 `json:"empty" yaml:"empty"`
	EmploymentChart *Chart               `json:"employment_chart,omitempty" yaml:"employment_chart,omitempty"`
	SalaryChart     *Chart               `json:"salary_chart,omitempty" yaml:"salary_chart,omitempty"`
	Table           *Table               `json:"table,omitempty" yaml:"table,omitempty"`
	Verdicts        []Verdict            `json:"verdicts,omitempty" yaml:"verdicts,omitempty"`
}

// NewCompareView projects resp. Verdicts are only computed when exactly two
// rows come back, and are phrased with the names the user typed.
func NewCompareView(req api.CompareRequest, resp *api.CompareResponse) CompareView {
	view := CompareView{Summary: resp.Summary, DataQuality: resp.DataQuality}
	rows := resp.Comparison
	if len(rows) == 0 {
		view.Empty = true
		return view
	}

	employment := Chart{Title: "Employment Rate Comparison"}
	salary := Chart{Title: "Average Salary Comparison"}
	table := Table{Columns: []string{
		"Institution",
		"Employment Rate (%)",
		"Avg Salary (₹)",
		"Employment Std Dev",
		"Salary Std Dev",
	}}
	for _, row := range rows {
		employment.Bars = append(employment.Bars, Bar{
			Label:   row.Institution,
			Value:   row.AvgEmploymentRate,
			Display: FormatDecimal(row.AvgEmploymentRate),
		})
		salary.Bars = append(salary.Bars, Bar{
			Label:   row.Institution,
			Value:   row.AvgSalary,
			Display: FormatRupees(row.AvgSalary),
		})
		table.Rows = append(table.Rows, []string{
			row.Institution,
			FormatDecimal(row.AvgEmploymentRate),
			FormatNumber(row.AvgSalary),
			FormatDecimal(row.EmploymentStd),
			FormatNumber(row.SalaryStd),
		})
	}
	view.EmploymentChart = &employment
	view.SalaryChart = &salary
	view.Table = &table

	if len(rows) == 2 {
		a, b := pairRows(req, rows)
		view.Verdicts = []Verdict{
			Decide("Employment Rate", req.InstitutionA, req.InstitutionB, a.AvgEmploymentRate, b.AvgEmploymentRate),
			Decide("Average Salary", req.InstitutionA, req.InstitutionB, a.AvgSalary, b.AvgSalary),
		}
	}
	return view
}

// pairRows finds the row for each requested institution by name, exact
// match first and then case-insensitively. When the backend renamed the
// institutions, rows are taken in response order.
func pairRows(req api.CompareRequest, rows []api.ComparisonRow) (api.ComparisonRow, api.ComparisonRow) {
	ia := findRow(rows, req.InstitutionA)
	ib := findRow(rows, req.InstitutionB)
	if ia < 0 || ib < 0 || ia == ib {
		return rows[0], rows[1]
	}
	return rows[ia], rows[ib]
}

func findRow(rows []api.ComparisonRow, name string) int {
	for i, row := range rows {
		if row.Institution == name {
			return i
		}
	}
	for i, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Institution), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}
