package flows

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/csheth/careerscout/internal/api"
	"github.com/csheth/careerscout/internal/mockapi"
)

func newTestMediator(t *testing.T) (*Mediator, *mockapi.Server) {
	t.Helper()
	backend := mockapi.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	client := api.New(server.URL, api.WithHTTPClient(server.Client()))
	return New(client), backend
}

func TestAnalyzeKeepsBackendOrder(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodPost, "/analyze", http.StatusOK, `{"summary":"ok","top_institutions":[{"institution":"X","avg_employment_rate":80},{"institution":"Y","avg_employment_rate":90}],"median_salary":500000}`)

	view, err := m.Analyze(context.Background(), AnalyzeForm{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if view.Chart == nil || view.Table == nil {
		t.Fatal("expected chart and table")
	}
	var labels []string
	for _, bar := range view.Chart.Bars {
		labels = append(labels, bar.Label)
	}
	if diff := cmp.Diff([]string{"X", "Y"}, labels); diff != "" {
		t.Fatalf("bar order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"X", "80.0"}, {"Y", "90.0"}}, view.Table.Rows); diff != "" {
		t.Fatalf("table rows mismatch (-want +got):\n%s", diff)
	}
	if got := view.MedianSalary.Or(""); got != "₹500,000" {
		t.Fatalf("median salary = %q", got)
	}
	if view.Trend.IsSet() || view.DataQuality.IsSet() {
		t.Fatal("absent fields should not render")
	}

	call, _ := backend.LastCall("/analyze")
	if call.Body != `{"degree":"","year":null}` {
		t.Fatalf("body = %s", call.Body)
	}
}

func TestAnalyzeWithoutInstitutionsOmitsChart(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodPost, "/analyze", http.StatusOK, `{"summary":"thin data","trend":"declining","top_institutions":[]}`)

	view, err := m.Analyze(context.Background(), AnalyzeForm{Degree: "Law"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if view.Chart != nil || view.Table != nil {
		t.Fatal("chart and table should be omitted for an empty list")
	}
	trend, ok := view.Trend.Get()
	if !ok || trend.Direction != TrendDeclining || trend.Label != "Declining" {
		t.Fatalf("trend = %+v (set=%v)", trend, ok)
	}
	if trend.Tone() != ToneNegative {
		t.Fatalf("tone = %v", trend.Tone())
	}
}

func TestAnalyzeRejectsOutOfRangeYear(t *testing.T) {
	m, backend := newTestMediator(t)
	year := 2040
	_, err := m.Analyze(context.Background(), AnalyzeForm{Year: &year})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if backend.Hits("/analyze") != 0 {
		t.Fatal("invalid year must not reach the backend")
	}
}

func TestFailureNoticeHidesCause(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodPost, "/analyze", http.StatusInternalServerError, `{"detail":"boom"}`)

	view, err := m.Analyze(context.Background(), AnalyzeForm{})
	if view != nil {
		t.Fatal("no view on failure")
	}
	var notice *FailureNotice
	if !errors.As(err, &notice) {
		t.Fatalf("expected FailureNotice, got %T", err)
	}
	if notice.Message != failureMessages[ActionAnalyze] {
		t.Fatalf("message = %q", notice.Message)
	}
	if strings.Contains(notice.Error(), "boom") || strings.Contains(notice.Error(), "500") {
		t.Fatalf("notice leaked backend detail: %q", notice.Error())
	}
	var status *api.StatusError
	if !errors.As(err, &status) || status.StatusCode != http.StatusInternalServerError {
		t.Fatalf("cause should unwrap to the status error, got %v", notice.Cause)
	}
}

func TestEveryActionHasFailureMessage(t *testing.T) {
	for _, action := range []Action{ActionAnalyze, ActionInsights, ActionSupport, ActionROI, ActionCompare} {
		if failureMessages[action] == "" {
			t.Fatalf("no failure message for %s", action)
		}
	}
}

func TestInsightsBlankQuestionSkipsBackend(t *testing.T) {
	m, backend := newTestMediator(t)
	_, err := m.Insights(context.Background(), InsightsForm{Question: "   "})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if backend.Hits("/insights") != 0 {
		t.Fatal("blank question must not reach the backend")
	}
}

func TestInsightsIndicators(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodGet, "/insights", http.StatusOK, mockapi.InsightsFixture)

	view, err := m.Insights(context.Background(), InsightsForm{Question: "Which degree pays best?"})
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	want := []Indicator{
		{Label: "Confidence", Value: "High", Tone: TonePositive},
		{Label: "Data Source", Value: "2025 projections"},
		{Label: "Processing", Value: "Statistical"},
	}
	if diff := cmp.Diff(want, view.Indicators); diff != "" {
		t.Fatalf("indicators mismatch (-want +got):\n%s", diff)
	}
	if len(view.Sources) != 2 {
		t.Fatalf("sources = %v", view.Sources)
	}
	call, _ := backend.LastCall("/insights")
	if got := call.Query.Get("q"); got != "Which degree pays best?" {
		t.Fatalf("q = %q", got)
	}
}

func TestInsightsMissingFieldsDropIndicators(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodGet, "/insights", http.StatusOK, `{"confidence":"Medium","llm_enabled":true}`)

	view, err := m.Insights(context.Background(), InsightsForm{Question: "q"})
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	want := []Indicator{
		{Label: "Confidence", Value: "Medium", Tone: ToneCaution},
		{Label: "Processing", Value: "AI"},
	}
	if diff := cmp.Diff(want, view.Indicators); diff != "" {
		t.Fatalf("indicators mismatch (-want +got):\n%s", diff)
	}
	if view.Summary.IsSet() || len(view.Sources) != 0 {
		t.Fatal("summary and sources should be absent")
	}
}

func TestSupportAverageAndBreakdown(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodGet, "/support-services", http.StatusOK, `{"institutions":[
		{"institution":"A","support_index":70,"services":["s1","s2","s3","s4","s5","s6","s7"],"total_services":7},
		{"institution":"B","support_index":90,"services":["s1"],"career_services_rating":"4.5"}
	]}`)

	view, err := m.SupportServices(context.Background())
	if err != nil {
		t.Fatalf("support: %v", err)
	}
	want := []Indicator{
		{Label: "Total Institutions", Value: "2"},
		{Label: "Average Support Index", Value: "80.0"},
	}
	if diff := cmp.Diff(want, view.Indicators()); diff != "" {
		t.Fatalf("indicators mismatch (-want +got):\n%s", diff)
	}
	if got := view.Breakdown[0].Line(); got != "s1, s2, s3, s4, s5 +2 more" {
		t.Fatalf("line = %q", got)
	}
	if got := view.Breakdown[1].Heading(); got != "B (1 services)" {
		t.Fatalf("heading = %q", got)
	}
	if got := view.Table.Rows[1][2]; got != "4.5" {
		t.Fatalf("rating cell = %q", got)
	}
}

func TestSupportEmpty(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodGet, "/support-services", http.StatusOK, `{"institutions":[]}`)

	view, err := m.SupportServices(context.Background())
	if err != nil {
		t.Fatalf("support: %v", err)
	}
	if !view.Empty || view.Chart != nil || view.Table != nil {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestROIWithoutProjections(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodPost, "/roi", http.StatusOK, `{"median_salary":600000,"employment_rate":85,"estimated_years_to_break_even":1.3,"risk_level":"Low","roi_5_year":null}`)

	view, err := m.ROI(context.Background(), DefaultROIForm())
	if err != nil {
		t.Fatalf("roi: %v", err)
	}
	if len(view.Projections) != 0 {
		t.Fatalf("projections = %+v", view.Projections)
	}
	var values []string
	for _, metric := range view.Metrics {
		values = append(values, metric.Value)
	}
	if diff := cmp.Diff([]string{"₹600,000", "85.0%", "1.3", "Low"}, values); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
	if view.SalaryRange.IsSet() || view.DataQuality.IsSet() {
		t.Fatal("absent optional fields should not render")
	}
}

func TestROIDefaultsAndPartialProjections(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodPost, "/roi", http.StatusOK, `{"roi_10_year":-12.5,"salary_range":650000}`)

	view, err := m.ROI(context.Background(), ROIForm{Institution: "VIT", Degree: "CS", TuitionTotal: 800000, Years: 4})
	if err != nil {
		t.Fatalf("roi: %v", err)
	}
	if view.Metrics[0].Value != "₹0" || view.Metrics[3].Value != "Unknown" {
		t.Fatalf("defaults = %+v", view.Metrics)
	}
	want := []Indicator{{Label: "10-Year ROI", Value: "-12.5%", Tone: ToneNegative}}
	if diff := cmp.Diff(want, view.Projections); diff != "" {
		t.Fatalf("projections mismatch (-want +got):\n%s", diff)
	}
	if got := view.SalaryRange.Or(""); got != "650000" {
		t.Fatalf("salary range = %q", got)
	}
}

func TestROIRejectsNegativeTuition(t *testing.T) {
	m, backend := newTestMediator(t)
	_, err := m.ROI(context.Background(), ROIForm{TuitionTotal: -1, Years: 4})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = m.ROI(context.Background(), ROIForm{TuitionTotal: 1, Years: 0})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if backend.Hits("/roi") != 0 {
		t.Fatal("invalid input must not reach the backend")
	}
}

func TestCompareSameInstitutionSkipsBackend(t *testing.T) {
	m, backend := newTestMediator(t)
	_, err := m.Compare(context.Background(), CompareForm{InstitutionA: "VIT", InstitutionB: " VIT "})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != SameInstitutionMessage {
		t.Fatalf("expected same-institution warning, got %v", err)
	}
	if backend.Hits("/compare") != 0 {
		t.Fatal("equal names must not reach the backend")
	}
}

func TestCompareVerdicts(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodPost, "/compare", http.StatusOK, `{"comparison":[
		{"institution":"A","avg_employment_rate":85,"avg_salary":600000},
		{"institution":"B","avg_employment_rate":90,"avg_salary":500000}
	]}`)

	year := 2025
	view, err := m.Compare(context.Background(), CompareForm{InstitutionA: "A", InstitutionB: "B", Year: &year})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	var texts []string
	for _, v := range view.Verdicts {
		texts = append(texts, v.Text)
	}
	want := []string{"B wins in Employment Rate", "A wins in Average Salary"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Fatalf("verdicts mismatch (-want +got):\n%s", diff)
	}
	if got := view.SalaryChart.Bars[0].Display; got != "₹600,000" {
		t.Fatalf("salary display = %q", got)
	}
	call, _ := backend.LastCall("/compare")
	if call.Body != `{"institution_a":"A","institution_b":"B","year":2025}` {
		t.Fatalf("body = %s", call.Body)
	}
}

func TestCompareEmpty(t *testing.T) {
	m, backend := newTestMediator(t)
	backend.Reply(http.MethodPost, "/compare", http.StatusOK, `{"summary":"nothing","comparison":[]}`)

	view, err := m.Compare(context.Background(), CompareForm{InstitutionA: "A", InstitutionB: "B"})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !view.Empty || view.Table != nil || len(view.Verdicts) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestCompareUnreachableBackend(t *testing.T) {
	server := httptest.NewServer(mockapi.New())
	url := server.URL
	server.Close()

	m := New(api.New(url))
	_, err := m.Compare(context.Background(), CompareForm{InstitutionA: "A", InstitutionB: "B"})
	if !IsFailure(err) {
		t.Fatalf("expected failure notice, got %v", err)
	}
	if err.Error() != failureMessages[ActionCompare] {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestEveryActionFailsWithOneGenericNotice(t *testing.T) {
	cases := []struct {
		action Action
		method string
		path   string
		call   func(context.Context, *Mediator) (any, error)
	}{
		{ActionAnalyze, http.MethodPost, "/analyze", func(ctx context.Context, m *Mediator) (any, error) {
			return m.Analyze(ctx, AnalyzeForm{})
		}},
		{ActionInsights, http.MethodGet, "/insights", func(ctx context.Context, m *Mediator) (any, error) {
			return m.Insights(ctx, InsightsForm{Question: "Which degrees pay best?"})
		}},
		{ActionSupport, http.MethodGet, "/support-services", func(ctx context.Context, m *Mediator) (any, error) {
			return m.SupportServices(ctx)
		}},
		{ActionROI, http.MethodPost, "/roi", func(ctx context.Context, m *Mediator) (any, error) {
			return m.ROI(ctx, DefaultROIForm())
		}},
		{ActionCompare, http.MethodPost, "/compare", func(ctx context.Context, m *Mediator) (any, error) {
			return m.Compare(ctx, CompareForm{InstitutionA: "VIT University", InstitutionB: "SRM University"})
		}},
	}
	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			m, backend := newTestMediator(t)
			backend.UseFixtures()
			backend.Reply(tc.method, tc.path, http.StatusInternalServerError, `{"detail":"boom"}`)

			view, err := tc.call(context.Background(), m)
			if !IsFailure(err) {
				t.Fatalf("expected failure notice, got %v", err)
			}
			if !isNilView(view) {
				t.Fatalf("no view expected on failure, got %#v", view)
			}
			if err.Error() != failureMessages[tc.action] {
				t.Fatalf("message = %q, want %q", err.Error(), failureMessages[tc.action])
			}
			if backend.Hits(tc.path) != 1 {
				t.Fatalf("expected exactly one request to %s", tc.path)
			}
		})
	}
}

// isNilView reports whether v holds a nil view pointer.
func isNilView(v any) bool {
	switch view := v.(type) {
	case *AnalyzeView:
		return view == nil
	case *InsightsView:
		return view == nil
	case *SupportView:
		return view == nil
	case *ROIView:
		return view == nil
	case *CompareView:
		return view == nil
	default:
		return v == nil
	}
}
