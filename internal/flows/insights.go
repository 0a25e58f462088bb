package flows

import (
	"strings"

	"github.com/csheth/careerscout/internal/api"
)

// InsightsForm holds the free-text question.
type InsightsForm struct {
	Question string
}

// Request returns the trimmed question, rejecting blank input.
func (f InsightsForm) Request() (string, error) {
	question := strings.TrimSpace(f.Question)
	if question == "" {
		return "", invalid("q", "Type a question or pick a sample question first.")
	}
	return question, nil
}

// InsightsView is the rendered outcome of /insights.
type InsightsView struct {
	Indicators []Indicator           `json:"indicators" yaml:"indicators"`
	Summary    api.Optional[string] `json:"summary" yaml:"summary"`
	Sources    []string             `json:"sources" yaml:"sources"`
}

// ProcessingLabel maps llm_enabled to the two-valued processing label.
func ProcessingLabel(llmEnabled bool) string {
	if llmEnabled {
		return "AI"
	}
	return "Statistical"
}

// NewInsightsView projects resp, keeping only the indicators the backend sent.
func NewInsightsView(resp *api.InsightsResponse) InsightsView {
	view := InsightsView{Summary: resp.Summary}
	if confidence, ok := resp.Confidence.Get(); ok {
		tone := ToneCaution
		if confidence == "High" {
			tone = TonePositive
		}
		view.Indicators = append(view.Indicators, Indicator{Label: "Confidence", Value: confidence, Tone: tone})
	}
	if freshness, ok := resp.DataFreshness.Get(); ok {
		view.Indicators = append(view.Indicators, Indicator{Label: "Data Source", Value: freshness})
	}
	if enabled, ok := resp.LLMEnabled.Get(); ok {
		view.Indicators = append(view.Indicators, Indicator{Label: "Processing", Value: ProcessingLabel(enabled)})
	}
	view.Sources = append(view.Sources, resp.Sources...)
	return view
}
