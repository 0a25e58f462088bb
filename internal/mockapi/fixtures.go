package mockapi

import "net/http"

const (
	AnalyzeFixture = `{
  "summary": "Computer Science graduates show strong placement outcomes for 2025.",
  "data_quality": "Based on 1,240 records across 12 institutions",
  "trend": "improving",
  "top_institutions": [
    {"institution": "IIT Delhi", "avg_employment_rate": 94.5},
    {"institution": "BITS Pilani", "avg_employment_rate": 91.2},
    {"institution": "VIT University", "avg_employment_rate": 88.7}
  ],
  "median_salary": 850000
}`

	InsightsFixture = `{
  "confidence": "High",
  "data_freshness": "2025 projections",
  "llm_enabled": false,
  "summary": "Engineering graduates from private universities are closing the placement gap with IITs.",
  "sources": ["employment_2025.csv", "salary_percentiles.csv"]
}`

	SupportFixture = `{
  "institutions": [
    {
      "institution": "VIT University",
      "support_index": 82.5,
      "career_services_rating": 4.3,
      "alumni_network_strength": "Strong",
      "total_services": 7,
      "services": ["Resume clinics", "Mock interviews", "Career fairs", "Alumni mentoring", "Internship portal", "Startup incubator", "Soft-skills bootcamp"]
    },
    {
      "institution": "SRM University",
      "support_index": 76,
      "career_services_rating": 3.9,
      "alumni_network_strength": "Moderate",
      "total_services": 4,
      "services": ["Resume clinics", "Career fairs", "Placement training", "Internship portal"]
    }
  ]
}`

	ROIFixture = `{
  "median_salary": 720000,
  "employment_rate": 89.35,
  "estimated_years_to_break_even": 1.42,
  "risk_level": "Low",
  "roi_5_year": 312.5,
  "roi_10_year": 780.25,
  "salary_range": "₹5,40,000 - ₹11,00,000",
  "data_quality": "Computed from 312 graduate records"
}`

	CompareFixture = `{
  "summary": "VIT University leads on salary while SRM University leads on employment.",
  "data_quality": "Year 2025, 418 records",
  "comparison": [
    {"institution": "VIT University", "avg_employment_rate": 86.1, "avg_salary": 640000, "employment_std": 4.2, "salary_std": 91000},
    {"institution": "SRM University", "avg_employment_rate": 88.4, "avg_salary": 590000, "employment_std": 3.8, "salary_std": 87000}
  ]
}`
)

// UseFixtures configures every endpoint with a representative payload.
func (s *Server) UseFixtures() {
	s.Reply(http.MethodPost, "/analyze", http.StatusOK, AnalyzeFixture)
	s.Reply(http.MethodGet, "/insights", http.StatusOK, InsightsFixture)
	s.Reply(http.MethodGet, "/support-services", http.StatusOK, SupportFixture)
	s.Reply(http.MethodPost, "/roi", http.StatusOK, ROIFixture)
	s.Reply(http.MethodPost, "/compare", http.StatusOK, CompareFixture)
}
