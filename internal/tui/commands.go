package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/careerscout/internal/flows"
	"github.com/csheth/careerscout/internal/health"
)

type analyzeResultMsg struct {
	view *flows.AnalyzeView
	err  error
}

type insightsResultMsg struct {
	view *flows.InsightsView
	err  error
}

type supportResultMsg struct {
	view *flows.SupportView
	err  error
}

type roiResultMsg struct {
	view *flows.ROIView
	err  error
}

type compareResultMsg struct {
	view *flows.CompareView
	err  error
}

type healthResultMsg struct {
	result health.Result
}

type probeTickMsg struct{}

func analyzeJob(mediator *flows.Mediator, form flows.AnalyzeForm) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		view, err := mediator.Analyze(ctx, form)
		return analyzeResultMsg{view: view, err: err}, err
	}
}

func insightsJob(mediator *flows.Mediator, form flows.InsightsForm) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		view, err := mediator.Insights(ctx, form)
		return insightsResultMsg{view: view, err: err}, err
	}
}

func supportJob(mediator *flows.Mediator) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		view, err := mediator.SupportServices(ctx)
		return supportResultMsg{view: view, err: err}, err
	}
}

func roiJob(mediator *flows.Mediator, form flows.ROIForm) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		view, err := mediator.ROI(ctx, form)
		return roiResultMsg{view: view, err: err}, err
	}
}

func compareJob(mediator *flows.Mediator, form flows.CompareForm) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		view, err := mediator.Compare(ctx, form)
		return compareResultMsg{view: view, err: err}, err
	}
}

func probeJob(pinger health.Pinger, timeout time.Duration) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		result := health.Probe(ctx, pinger, timeout)
		return healthResultMsg{result: result}, result.Err
	}
}

func probeTickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return probeTickMsg{}
	})
}
