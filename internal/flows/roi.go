package flows

import (
	"strings"

	"github.com/csheth/careerscout/internal/api"
)

// ROIForm holds the calculator inputs.
type ROIForm struct {
	Institution  string
	Degree       string
	TuitionTotal float64
	Years        int
}

// DefaultROIForm returns the calculator's starting values.
func DefaultROIForm() ROIForm {
	return ROIForm{TuitionTotal: DefaultTuition, Years: DefaultYears}
}

// Request validates the form and builds the /roi payload.
func (f ROIForm) Request() (api.ROIRequest, error) {
	if err := CheckTuition(f.TuitionTotal); err != nil {
		return api.ROIRequest{}, err
	}
	if err := CheckProgramYears(f.Years); err != nil {
		return api.ROIRequest{}, err
	}
	return api.ROIRequest{
		Institution:  strings.TrimSpace(f.Institution),
		Degree:       strings.TrimSpace(f.Degree),
		TuitionTotal: f.TuitionTotal,
		Years:        f.Years,
	}, nil
}

// ROIView is the rendered outcome of /roi. Metrics always has four entries;
// Projections is empty when the backend sent neither ROI figure.
type ROIView struct {
	Metrics     []Indicator          `json:"metrics" yaml:"metrics"`
	Projections []Indicator          `json:"projections,omitempty" yaml:"projections,omitempty"`
	SalaryRange api.Optional[string] `json:"salary_range" yaml:"salary_range"`
	DataQuality api.Optional[string] `json:"data_quality" yaml:"data_quality"`
}

// NewROIView projects resp. Missing primary metrics fall back to zero or
// "Unknown"; missing optional fields drop only their own widget.
func NewROIView(resp *api.ROIResponse) ROIView {
	view := ROIView{
		Metrics: []Indicator{
			{Label: "Median Salary", Value: FormatRupees(resp.MedianSalary.Or(0))},
			{Label: "Employment Rate", Value: FormatPercent(resp.EmploymentRate.Or(0))},
			{Label: "Years to Break Even", Value: FormatDecimal(resp.EstimatedYearsToBreakEven.Or(0))},
			{Label: "Risk Level", Value: resp.RiskLevel.Or("Unknown"), Tone: riskTone(resp.RiskLevel.Or(""))},
		},
		DataQuality: resp.DataQuality,
	}
	if roi, ok := resp.ROI5Year.Get(); ok {
		view.Projections = append(view.Projections, Indicator{Label: "5-Year ROI", Value: FormatPercent(roi), Tone: signTone(roi)})
	}
	if roi, ok := resp.ROI10Year.Get(); ok {
		view.Projections = append(view.Projections, Indicator{Label: "10-Year ROI", Value: FormatPercent(roi), Tone: signTone(roi)})
	}
	if salaryRange, ok := resp.SalaryRange.Get(); ok && salaryRange.String() != "" {
		view.SalaryRange = api.Some(salaryRange.String())
	}
	return view
}

func riskTone(level string) Tone {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return TonePositive
	case "medium", "moderate":
		return ToneCaution
	case "high":
		return ToneNegative
	default:
		return ToneNeutral
	}
}

func signTone(value float64) Tone {
	if value < 0 {
		return ToneNegative
	}
	return TonePositive
}
