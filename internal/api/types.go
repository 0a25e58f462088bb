package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Degree string `json:"degree"`
	Year   *int   `json:"year"`
}

// InstitutionRate is one row of AnalyzeResponse.TopInstitutions.
type InstitutionRate struct {
	Institution       string  `json:"institution" yaml:"institution"`
	AvgEmploymentRate float64 `json:"avg_employment_rate" yaml:"avg_employment_rate"`
}

// AnalyzeResponse is the body returned by POST /analyze.
type AnalyzeResponse struct {
	Summary         Optional[string]  `json:"summary" yaml:"summary"`
	DataQuality     Optional[string]  `json:"data_quality" yaml:"data_quality"`
	Trend           Optional[string]  `json:"trend" yaml:"trend"`
	TopInstitutions []InstitutionRate `json:"top_institutions" yaml:"top_institutions"`
	MedianSalary    Optional[float64] `json:"median_salary" yaml:"median_salary"`
}

// InsightsResponse is the body returned by GET /insights.
type InsightsResponse struct {
	Confidence    Optional[string] `json:"confidence" yaml:"confidence"`
	DataFreshness Optional[string] `json:"data_freshness" yaml:"data_freshness"`
	LLMEnabled    Optional[bool]   `json:"llm_enabled" yaml:"llm_enabled"`
	Summary       Optional[string] `json:"summary" yaml:"summary"`
	Sources       []string         `json:"sources" yaml:"sources"`
}

// SupportInstitution is one entry of SupportServicesResponse.Institutions.
type SupportInstitution struct {
	Institution           string   `json:"institution" yaml:"institution"`
	SupportIndex          float64  `json:"support_index" yaml:"support_index"`
	CareerServicesRating  Scalar   `json:"career_services_rating" yaml:"career_services_rating"`
	AlumniNetworkStrength Scalar   `json:"alumni_network_strength" yaml:"alumni_network_strength"`
	TotalServices         Scalar   `json:"total_services" yaml:"total_services"`
	Services              []string `json:"services" yaml:"services"`
}

// SupportServicesResponse is the body returned by GET /support-services.
type SupportServicesResponse struct {
	Institutions []SupportInstitution `json:"institutions" yaml:"institutions"`
}

// ROIRequest is the body of POST /roi.
type ROIRequest struct {
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	TuitionTotal float64 `json:"tuition_total"`
	Years        int     `json:"years"`
}

// ROIResponse is the body returned by POST /roi.
type ROIResponse struct {
	MedianSalary              Optional[float64] `json:"median_salary" yaml:"median_salary"`
	EmploymentRate            Optional[float64] `json:"employment_rate" yaml:"employment_rate"`
	EstimatedYearsToBreakEven Optional[float64] `json:"estimated_years_to_break_even" yaml:"estimated_years_to_break_even"`
	RiskLevel                 Optional[string]  `json:"risk_level" yaml:"risk_level"`
	ROI5Year                  Optional[float64] `json:"roi_5_year" yaml:"roi_5_year"`
	ROI10Year                 Optional[float64] `json:"roi_10_year" yaml:"roi_10_year"`
	SalaryRange               Optional[Scalar]  `json:"salary_range" yaml:"salary_range"`
	DataQuality               Optional[string]  `json:"data_quality" yaml:"data_quality"`
}

// CompareRequest is the body of POST /compare.
type CompareRequest struct {
	InstitutionA string `json:"institution_a"`
	InstitutionB string `json:"institution_b"`
	Year         *int   `json:"year"`
}

// ComparisonRow is one row of CompareResponse.Comparison.
type ComparisonRow struct {
	Institution       string  `json:"institution" yaml:"institution"`
	AvgEmploymentRate float64 `json:"avg_employment_rate" yaml:"avg_employment_rate"`
	AvgSalary         float64 `json:"avg_salary" yaml:"avg_salary"`
	EmploymentStd     float64 `json:"employment_std" yaml:"employment_std"`
	SalaryStd         float64 `json:"salary_std" yaml:"salary_std"`
}

// CompareResponse is the body returned by POST /compare.
type CompareResponse struct {
	Summary     Optional[string] `json:"summary" yaml:"summary"`
	DataQuality Optional[string] `json:"data_quality" yaml:"data_quality"`
	Comparison  []ComparisonRow  `json:"comparison" yaml:"comparison"`
}

// Scalar is a display-only field the backend sends as either a number or a
// string (ratings, counts, salary ranges).
type Scalar struct {
	text string
}

// ScalarOf wraps a preformatted value.
func ScalarOf(text string) Scalar {
	return Scalar{text: text}
}

func (s Scalar) String() string {
	return s.text
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		s.text = ""
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		s.text = text
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	if f, err := num.Float64(); err == nil && f == float64(int64(f)) {
		s.text = strconv.FormatInt(int64(f), 10)
		return nil
	}
	s.text = num.String()
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.text)
}

func (s Scalar) MarshalYAML() (any, error) {
	return s.text, nil
}
