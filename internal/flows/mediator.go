// Package flows turns form input into backend requests and backend responses
// into render-ready views. It owns every client-side rule: input validation,
// the compare guard, the support-index mean and the comparison verdicts.
package flows

import (
	"context"
	"errors"
	"log"

	"github.com/csheth/careerscout/internal/api"
)

// Action names a flow in notices and logs.
type Action string

const (
	ActionAnalyze  Action = "analyze"
	ActionInsights Action = "insights"
	ActionSupport  Action = "support"
	ActionROI      Action = "roi"
	ActionCompare  Action = "compare"
)

var failureMessages = map[Action]string{
	ActionAnalyze:  "Failed to fetch analysis. Please check if the backend is running.",
	ActionInsights: "Failed to generate insights. Please check if the backend is running.",
	ActionSupport:  "Failed to fetch support services data. Please check if the backend is running.",
	ActionROI:      "Failed to calculate ROI. Please check your inputs and the backend.",
	ActionCompare:  "Failed to compare institutions. Please check if the backend is running.",
}

var loadingMessages = map[Action]string{
	ActionAnalyze:  "Analyzing career outcomes...",
	ActionInsights: "Generating insights...",
	ActionSupport:  "Loading support services data...",
	ActionROI:      "Calculating ROI...",
	ActionCompare:  "Comparing institutions...",
}

// LoadingMessage is shown while action's request is in flight.
func LoadingMessage(action Action) string {
	return loadingMessages[action]
}

// FailureNotice is the one generic message shown when a flow's request fails
// for any reason: transport, non-2xx status or an undecodable body.
type FailureNotice struct {
	Action  Action
	Message string
	Cause   error
}

func (e *FailureNotice) Error() string {
	return e.Message
}

func (e *FailureNotice) Unwrap() error {
	return e.Cause
}

func failure(action Action, cause error) *FailureNotice {
	log.Printf("[flows] %s failed (%s): %v", action, api.Classify(cause), cause)
	return &FailureNotice{Action: action, Message: failureMessages[action], Cause: cause}
}

// Backend is the subset of the API client the flows depend on.
type Backend interface {
	Analyze(ctx context.Context, req api.AnalyzeRequest) (*api.AnalyzeResponse, error)
	Insights(ctx context.Context, question string) (*api.InsightsResponse, error)
	SupportServices(ctx context.Context) (*api.SupportServicesResponse, error)
	ROI(ctx context.Context, req api.ROIRequest) (*api.ROIResponse, error)
	Compare(ctx context.Context, req api.CompareRequest) (*api.CompareResponse, error)
}

// Mediator runs one flow per call: validate, request, project.
type Mediator struct {
	backend Backend
}

// New returns a Mediator backed by backend.
func New(backend Backend) *Mediator {
	return &Mediator{backend: backend}
}

// Analyze runs the outcomes analysis flow.
func (m *Mediator) Analyze(ctx context.Context, form AnalyzeForm) (*AnalyzeView, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	resp, err := m.backend.Analyze(ctx, req)
	if err != nil {
		return nil, failure(ActionAnalyze, err)
	}
	view := NewAnalyzeView(resp)
	return &view, nil
}

// Insights runs the question-answering flow.
func (m *Mediator) Insights(ctx context.Context, form InsightsForm) (*InsightsView, error) {
	question, err := form.Request()
	if err != nil {
		return nil, err
	}
	resp, err := m.backend.Insights(ctx, question)
	if err != nil {
		return nil, failure(ActionInsights, err)
	}
	view := NewInsightsView(resp)
	return &view, nil
}

// SupportServices runs the support index flow.
func (m *Mediator) SupportServices(ctx context.Context) (*SupportView, error) {
	resp, err := m.backend.SupportServices(ctx)
	if err != nil {
		return nil, failure(ActionSupport, err)
	}
	view := NewSupportView(resp)
	return &view, nil
}

// ROI runs the return-on-investment flow.
func (m *Mediator) ROI(ctx context.Context, form ROIForm) (*ROIView, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	resp, err := m.backend.ROI(ctx, req)
	if err != nil {
		return nil, failure(ActionROI, err)
	}
	view := NewROIView(resp)
	return &view, nil
}

// Compare runs the two-institution comparison flow. Equal names never reach
// the backend.
func (m *Mediator) Compare(ctx context.Context, form CompareForm) (*CompareView, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	resp, err := m.backend.Compare(ctx, req)
	if err != nil {
		return nil, failure(ActionCompare, err)
	}
	view := NewCompareView(req, resp)
	return &view, nil
}

// IsValidation reports whether err is a client-side rejection.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsFailure reports whether err is a generic request failure.
func IsFailure(err error) bool {
	var f *FailureNotice
	return errors.As(err, &f)
}
