package flows

import (
	"testing"

	"github.com/csheth/careerscout/internal/api"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		outcome Outcome
		text    string
	}{
		{"a wins", 2, 1, OutcomeA, "VIT wins in Average Salary"},
		{"b wins", 1, 2, OutcomeB, "SRM wins in Average Salary"},
		{"tie", 1, 1, OutcomeTie, "VIT and SRM tie in Average Salary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Decide("Average Salary", "VIT", "SRM", tt.a, tt.b)
			if v.Outcome != tt.outcome || v.Text != tt.text {
				t.Fatalf("got %+v", v)
			}
		})
	}
}

func TestCompareMatchesRowsByName(t *testing.T) {
	req := api.CompareRequest{InstitutionA: "vit university", InstitutionB: "SRM University"}
	resp := &api.CompareResponse{Comparison: []api.ComparisonRow{
		{Institution: "SRM University", AvgEmploymentRate: 90, AvgSalary: 500000},
		{Institution: "VIT University", AvgEmploymentRate: 80, AvgSalary: 600000},
	}}

	view := NewCompareView(req, resp)
	if got := view.Verdicts[0].Text; got != "SRM University wins in Employment Rate" {
		t.Fatalf("employment verdict = %q", got)
	}
	if got := view.Verdicts[1].Text; got != "vit university wins in Average Salary" {
		t.Fatalf("salary verdict = %q", got)
	}
}

func TestCompareFallsBackToResponseOrder(t *testing.T) {
	req := api.CompareRequest{InstitutionA: "Alpha", InstitutionB: "Beta"}
	resp := &api.CompareResponse{Comparison: []api.ComparisonRow{
		{Institution: "Alpha Institute", AvgSalary: 1},
		{Institution: "Beta Institute", AvgSalary: 2},
	}}

	view := NewCompareView(req, resp)
	if view.Verdicts[1].Winner != "Beta" {
		t.Fatalf("winner = %q", view.Verdicts[1].Winner)
	}
}

func TestCompareSkipsVerdictsForOtherRowCounts(t *testing.T) {
	req := api.CompareRequest{InstitutionA: "A", InstitutionB: "B"}
	resp := &api.CompareResponse{Comparison: []api.ComparisonRow{{Institution: "A"}}}

	view := NewCompareView(req, resp)
	if view.Empty || view.Table == nil {
		t.Fatal("a single row still renders")
	}
	if len(view.Verdicts) != 0 {
		t.Fatalf("verdicts = %+v", view.Verdicts)
	}
}
