package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/csheth/careerscout/internal/config"
	"github.com/csheth/careerscout/internal/flows"
	"github.com/csheth/careerscout/internal/guide"
	"github.com/csheth/careerscout/internal/mockapi"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func newTestBackend(t *testing.T) (*mockapi.Server, string) {
	t.Helper()
	backend := mockapi.New()
	backend.UseFixtures()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, server.URL
}

func runCLI(t *testing.T, apiBase string, args ...string) cliResult {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--api-base", apiBase, "--env-file", ""))
	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestAnalyzeJSON(t *testing.T) {
	backend, base := newTestBackend(t)
	res := runCLI(t, base, "analyze", "--degree", " Computer Science ", "-o", "json")
	if res.err != nil {
		t.Fatalf("analyze: %v\n%s", res.err, res.stderr)
	}

	var got struct {
		Summary      string `json:"summary"`
		MedianSalary string `json:"median_salary"`
		Chart        struct {
			Bars []struct {
				Label string `json:"label"`
			} `json:"bars"`
		} `json:"chart"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, res.stdout)
	}
	var labels []string
	for _, bar := range got.Chart.Bars {
		labels = append(labels, bar.Label)
	}
	if diff := cmp.Diff([]string{"IIT Delhi", "BITS Pilani", "VIT University"}, labels); diff != "" {
		t.Fatalf("bar order mismatch (-want +got):\n%s", diff)
	}
	if got.MedianSalary != "₹850,000" {
		t.Fatalf("median salary = %q", got.MedianSalary)
	}

	call, ok := backend.LastCall("/analyze")
	if !ok {
		t.Fatal("analyze was not called")
	}
	if call.Body != `{"degree":"Computer Science","year":2025}` {
		t.Fatalf("request body = %s", call.Body)
	}
}

func TestAnalyzeHumanOutput(t *testing.T) {
	_, base := newTestBackend(t)
	res := runCLI(t, base, "analyze", "--year", "")
	if res.err != nil {
		t.Fatalf("analyze: %v", res.err)
	}
	for _, want := range []string{"Top Performing Institutions", "IIT Delhi", "₹850,000", "-o json"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestAnalyzeRejectsYearOutOfRange(t *testing.T) {
	backend, base := newTestBackend(t)
	res := runCLI(t, base, "analyze", "--year", "2036")
	if !flows.IsValidation(res.err) {
		t.Fatalf("expected validation error, got %v", res.err)
	}
	if backend.Hits("/analyze") != 0 {
		t.Fatal("no request expected")
	}
}

func TestCompareSameInstitution(t *testing.T) {
	backend, base := newTestBackend(t)
	res := runCLI(t, base, "compare", "--a", "IIT Delhi", "--b", "IIT Delhi")
	if res.err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(res.stderr, flows.SameInstitutionMessage) {
		t.Fatalf("stderr = %q", res.stderr)
	}
	if backend.Hits("/compare") != 0 {
		t.Fatal("no request expected")
	}
}

func TestCompareVerdictsYAML(t *testing.T) {
	_, base := newTestBackend(t)
	res := runCLI(t, base, "compare", "--a", "VIT University", "--b", "SRM University", "-o", "yaml")
	if res.err != nil {
		t.Fatalf("compare: %v", res.err)
	}
	var got struct {
		Verdicts []struct {
			Metric string `yaml:"metric"`
			Winner string `yaml:"winner"`
		} `yaml:"verdicts"`
	}
	if err := yaml.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, res.stdout)
	}
	want := map[string]string{"Employment Rate": "SRM University", "Average Salary": "VIT University"}
	gotMap := map[string]string{}
	for _, v := range got.Verdicts {
		gotMap[v.Metric] = v.Winner
	}
	if diff := cmp.Diff(want, gotMap); diff != "" {
		t.Fatalf("verdicts mismatch (-want +got):\n%s", diff)
	}
}

func TestInsightsSample(t *testing.T) {
	backend, base := newTestBackend(t)
	res := runCLI(t, base, "insights", "--sample", "2")
	if res.err != nil {
		t.Fatalf("insights: %v", res.err)
	}
	call, _ := backend.LastCall("/insights")
	if got, want := call.Query.Get("q"), guide.SampleQuestions()[1]; got != want {
		t.Fatalf("q = %q, want %q", got, want)
	}
	if !strings.Contains(res.stdout, "1. employment_2025.csv") {
		t.Fatalf("sources should be listed:\n%s", res.stdout)
	}
}

func TestInsightsEmptyQuestion(t *testing.T) {
	backend, base := newTestBackend(t)
	res := runCLI(t, base, "insights", "   ")
	if !flows.IsValidation(res.err) {
		t.Fatalf("expected validation error, got %v", res.err)
	}
	if backend.Hits("/insights") != 0 {
		t.Fatal("no request expected")
	}
}

func TestFailureIsOneGenericMessage(t *testing.T) {
	backend, base := newTestBackend(t)
	backend.Reply(http.MethodGet, "/support-services", http.StatusInternalServerError, `{"detail":"boom"}`)
	res := runCLI(t, base, "support")
	if !flows.IsFailure(res.err) {
		t.Fatalf("expected failure, got %v", res.err)
	}
	if res.stdout != "" {
		t.Fatalf("nothing should be printed on stdout, got %q", res.stdout)
	}
	if strings.Count(res.stderr, "Failed to fetch support services data") != 1 || strings.Contains(res.stderr, "boom") {
		t.Fatalf("stderr = %q", res.stderr)
	}
}

func TestROIDefaults(t *testing.T) {
	backend, base := newTestBackend(t)
	res := runCLI(t, base, "roi", "--institution", "VIT University")
	if res.err != nil {
		t.Fatalf("roi: %v", res.err)
	}
	call, _ := backend.LastCall("/roi")
	if call.Body != `{"institution":"VIT University","degree":"","tuition_total":800000,"years":4}` {
		t.Fatalf("request body = %s", call.Body)
	}
	if !strings.Contains(res.stdout, "10-Year ROI") {
		t.Fatalf("projections missing:\n%s", res.stdout)
	}
}

func TestStatus(t *testing.T) {
	backend, base := newTestBackend(t)
	res := runCLI(t, base, "status")
	if res.err != nil {
		t.Fatalf("status: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Backend connected") {
		t.Fatalf("stdout = %q", res.stdout)
	}

	backend.Reply(http.MethodGet, "/", http.StatusBadGateway, "")
	res = runCLI(t, base, "status", "-o", "json")
	if !errors.Is(res.err, errUnhealthy) {
		t.Fatalf("expected errUnhealthy, got %v", res.err)
	}
	var report statusReport
	if err := json.Unmarshal([]byte(res.stdout), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Label != "Backend not responding" || report.APIBase != base {
		t.Fatalf("report = %+v", report)
	}
}

func TestSamplesAndVersion(t *testing.T) {
	res := runCLI(t, "http://127.0.0.1:1", "samples", "-o", "json")
	if res.err != nil {
		t.Fatalf("samples: %v", res.err)
	}
	var samples []string
	if err := json.Unmarshal([]byte(res.stdout), &samples); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(guide.SampleQuestions(), samples); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}

	res = runCLI(t, "http://127.0.0.1:1", "version")
	if res.stdout != "careerscout dev\n" {
		t.Fatalf("version = %q", res.stdout)
	}
}

func TestInvalidConfig(t *testing.T) {
	res := runCLI(t, "ftp://example.com", "support")
	if res.err == nil {
		t.Fatal("expected a config error")
	}
	res = runCLI(t, "http://127.0.0.1:1", "support", "-o", "xml")
	if res.err == nil || !strings.Contains(res.stderr, "unknown output format") {
		t.Fatalf("expected format error, got %v / %q", res.err, res.stderr)
	}
}

func parsedRootFlags(t *testing.T, args ...string) (*cobra.Command, *rootOptions) {
	t.Helper()
	opts := &rootOptions{}
	cmd := &cobra.Command{Use: "careerscout"}
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "")
	cmd.Flags().DurationVar(&opts.probeInterval, "probe-interval", 0, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd, opts
}

func TestExplicitZeroFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(config.EnvRequestTimeout, "5s")
	t.Setenv(config.EnvProbeInterval, "10s")

	cmd, opts := parsedRootFlags(t)
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second || cfg.ProbeInterval != 10*time.Second {
		t.Fatalf("unset flags should keep the environment: %+v", cfg)
	}

	cmd, opts = parsedRootFlags(t, "--timeout", "0", "--probe-interval", "0")
	cfg, err = resolveConfig(cmd, opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.RequestTimeout != 0 || cfg.ProbeInterval != 0 {
		t.Fatalf("explicit zero flags should win: %+v", cfg)
	}
}

func TestNegativeEnvironmentDurationRejected(t *testing.T) {
	t.Setenv(config.EnvRequestTimeout, "-1s")
	res := runCLI(t, "http://127.0.0.1:1", "support")
	if res.err == nil || !strings.Contains(res.stderr, "cannot be negative") {
		t.Fatalf("expected negative duration error, got %v / %q", res.err, res.stderr)
	}
}
