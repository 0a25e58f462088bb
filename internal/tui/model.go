package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/careerscout/internal/flows"
	"github.com/csheth/careerscout/internal/guide"
	"github.com/csheth/careerscout/internal/health"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Mediator      *flows.Mediator
	Pinger        health.Pinger
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
	APIBase       string
}

// Field positions within each tab's form.
const (
	dashDegree = 0
	dashYear   = 1

	insightsQuestion = 0
	insightsSamples  = 1

	supportLoad    = 0
	roiInstitution = 1
	roiDegree      = 2
	roiTuition     = 3
	roiYears       = 4

	compareA    = 0
	compareB    = 1
	compareYear = 2
)

type model struct {
	config Config
	jobs   *jobBus
	keys   keyMap
	layout pageLayout

	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	activeTab tab
	fields    [tabCount][]formField
	focus     [tabCount]int

	samples           []string
	sampleCursor      int
	questionSelection *string
	sourcesExpanded   bool

	analyzeView  *flows.AnalyzeView
	insightsView *flows.InsightsView
	supportView  *flows.SupportView
	roiView      *flows.ROIView
	compareView  *flows.CompareView
	notices      map[flows.Action]flows.Notice

	inFlight      jobKind
	lastJob       jobSnapshot
	probing       bool
	tickPending   bool
	health        health.Result
	infoMessage   string
	helpVisible   bool
	viewportDirty bool
	pendingAnchor flows.Action
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.ProbeTimeout <= 0 {
		config.ProbeTimeout = health.DefaultTimeout
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(76, 6)
	vp.MouseWheelEnabled = true

	m := &model{
		config:        config,
		jobs:          newJobBus(),
		keys:          newKeyMap(),
		layout:        newPageLayout(),
		help:          help.New(),
		spinner:       spin,
		viewport:      vp,
		samples:       guide.SampleQuestions(),
		notices:       map[flows.Action]flows.Notice{},
		viewportDirty: true,
	}
	defaultYear := fmt.Sprintf("%d", flows.DefaultYear)
	m.fields[tabDashboard] = []formField{
		{kind: fieldText, label: "Degree Program", input: newInput("e.g., Computer Science, Engineering, Data Science", "", 80)},
		{kind: fieldYear, label: "Graduation Year", input: newInput("blank for all years", defaultYear, 4)},
	}
	m.fields[tabInsights] = []formField{
		{kind: fieldText, label: "Your Question", input: newInput("e.g., What are the employment prospects for Data Science graduates?", "", 300)},
		{kind: fieldSamples, label: "Sample Questions"},
	}
	m.fields[tabSupport] = []formField{
		{kind: fieldAction, label: "Load Support Services Data"},
		{kind: fieldText, label: "Institution Name", input: newInput("e.g., VIT University, IIT Delhi, BITS Pilani", "", 80)},
		{kind: fieldText, label: "Degree Program", input: newInput("e.g., Computer Science, Engineering, Data Science", "", 80)},
		{kind: fieldNumber, label: "Total Tuition (INR)", input: newInput("800000", fmt.Sprintf("%d", flows.DefaultTuition), 12)},
		{kind: fieldNumber, label: "Program Length (years)", input: newInput("4", fmt.Sprintf("%d", flows.DefaultYears), 2)},
	}
	m.fields[tabCompare] = []formField{
		{kind: fieldText, label: "Institution A", input: newInput("e.g., VIT University, IIT Delhi", "", 80)},
		{kind: fieldText, label: "Institution B", input: newInput("e.g., SRM University, IIT Bombay", "", 80)},
		{kind: fieldYear, label: "Graduation Year", input: newInput("blank for all years", defaultYear, 4)},
	}
	m.applyFocus()
	return m
}

func newInput(placeholder, value string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 50
	input.Prompt = "› "
	input.SetValue(value)
	return input
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startProbe())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.windowWidth = msg.Width
		m.layout.windowHeight = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case spinner.TickMsg:
		if m.inFlight == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case probeTickMsg:
		m.tickPending = false
		return m, m.startProbe()
	case jobSignalMsg:
		if msg.Snapshot.Kind != jobKindProbe {
			m.lastJob = msg.Snapshot
		}
		return m, nil
	case jobResultEnvelope:
		if msg.Snapshot.Kind == jobKindProbe {
			m.probing = false
		} else {
			m.lastJob = msg.Snapshot
			if m.inFlight == msg.Snapshot.Kind {
				m.inFlight = ""
			}
		}
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case healthResultMsg:
		m.health = msg.result
		if m.tickPending {
			return m, nil
		}
		cmd := probeTickCmd(m.config.ProbeInterval)
		m.tickPending = cmd != nil
		return m, cmd
	case analyzeResultMsg:
		m.analyzeView = msg.view
		m.applyOutcome(flows.ActionAnalyze, msg.err)
		return m, nil
	case insightsResultMsg:
		m.insightsView = msg.view
		m.applyOutcome(flows.ActionInsights, msg.err)
		return m, nil
	case supportResultMsg:
		m.supportView = msg.view
		m.applyOutcome(flows.ActionSupport, msg.err)
		return m, nil
	case roiResultMsg:
		m.roiView = msg.view
		m.applyOutcome(flows.ActionROI, msg.err)
		return m, nil
	case compareResultMsg:
		m.compareView = msg.view
		m.applyOutcome(flows.ActionCompare, msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, m.updateFocusedInput(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Submit) {
		m.infoMessage = ""
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab((m.activeTab + 1) % tabCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		return m, nil
	case key.Matches(msg, m.keys.Dashboard):
		m.switchTab(tabDashboard)
		return m, nil
	case key.Matches(msg, m.keys.Insights):
		m.switchTab(tabInsights)
		return m, nil
	case key.Matches(msg, m.keys.Support):
		m.switchTab(tabSupport)
		return m, nil
	case key.Matches(msg, m.keys.Compare):
		m.switchTab(tabCompare)
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		cmd := m.submit()
		m.consumeQuestionSelection()
		return m, cmd
	case key.Matches(msg, m.keys.Increment):
		m.step(1)
		return m, nil
	case key.Matches(msg, m.keys.Decrement):
		m.step(-1)
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil
	case key.Matches(msg, m.keys.ToggleSources):
		if m.activeTab == tabInsights {
			m.sourcesExpanded = !m.sourcesExpanded
			m.markViewportDirty()
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.startProbe()
	}
	return m, m.updateFocusedInput(msg)
}

func (m *model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	fields := m.fields[m.activeTab]
	idx := m.focus[m.activeTab]
	if idx < 0 || idx >= len(fields) || !fields[idx].acceptsText() {
		return nil
	}
	var cmd tea.Cmd
	fields[idx].input, cmd = fields[idx].input.Update(msg)
	return cmd
}

func (m *model) focusedField() formField {
	return m.fields[m.activeTab][m.focus[m.activeTab]]
}

func (m *model) switchTab(next tab) {
	if next == m.activeTab {
		return
	}
	m.activeTab = next
	m.applyFocus()
	m.resize()
	m.viewport.GotoTop()
}

func (m *model) moveFocus(delta int) {
	count := len(m.fields[m.activeTab])
	m.focus[m.activeTab] = (m.focus[m.activeTab] + delta + count) % count
	m.applyFocus()
}

func (m *model) applyFocus() {
	for t := tab(0); t < tabCount; t++ {
		for i := range m.fields[t] {
			if !m.fields[t][i].acceptsText() {
				continue
			}
			if t == m.activeTab && i == m.focus[t] {
				m.fields[t][i].input.Focus()
			} else {
				m.fields[t][i].input.Blur()
			}
		}
	}
}

// step moves a year field by one within range, moves the sample cursor,
// or scrolls the results when neither is focused.
func (m *model) step(delta int) {
	idx := m.focus[m.activeTab]
	field := &m.fields[m.activeTab][idx]
	switch field.kind {
	case fieldYear:
		year := flows.DefaultYear
		if current, err := strconv.Atoi(strings.TrimSpace(field.input.Value())); err == nil {
			year = current + delta
		}
		field.input.SetValue(fmt.Sprintf("%d", flows.ClampYear(year)))
		field.input.CursorEnd()
	case fieldSamples:
		m.sampleCursor = (m.sampleCursor - delta + len(m.samples)) % len(m.samples)
	default:
		if delta > 0 {
			m.viewport.LineUp(1)
		} else {
			m.viewport.LineDown(1)
		}
	}
}

func (m *model) selectSample() {
	if len(m.samples) == 0 {
		return
	}
	question := m.samples[m.sampleCursor]
	m.questionSelection = &question
}

// consumeQuestionSelection copies a picked sample into the question input
// once and clears the selection. It never submits.
func (m *model) consumeQuestionSelection() {
	if m.questionSelection == nil {
		return
	}
	input := &m.fields[tabInsights][insightsQuestion].input
	input.SetValue(*m.questionSelection)
	input.CursorEnd()
	m.questionSelection = nil
	m.focus[tabInsights] = insightsQuestion
	m.applyFocus()
	m.infoMessage = "Sample question selected. Press Enter to generate insights."
}

func (m *model) submit() tea.Cmd {
	field := m.focusedField()
	if field.kind == fieldSamples {
		m.selectSample()
		return nil
	}
	if m.inFlight != "" {
		m.infoMessage = busyMessage
		return nil
	}
	switch m.activeTab {
	case tabDashboard:
		return m.submitAnalyze()
	case tabInsights:
		return m.submitInsights()
	case tabSupport:
		if field.kind == fieldAction {
			return m.startFlow(jobKindSupport, supportJob(m.config.Mediator))
		}
		return m.submitROI()
	case tabCompare:
		return m.submitCompare()
	}
	return nil
}

func (m *model) value(t tab, idx int) string {
	return m.fields[t][idx].input.Value()
}

func (m *model) submitAnalyze() tea.Cmd {
	year, err := flows.ParseYear(m.value(tabDashboard, dashYear))
	if err != nil {
		return m.reject(flows.ActionAnalyze, err)
	}
	form := flows.AnalyzeForm{Degree: m.value(tabDashboard, dashDegree), Year: year}
	if _, err := form.Request(); err != nil {
		return m.reject(flows.ActionAnalyze, err)
	}
	return m.startFlow(jobKindAnalyze, analyzeJob(m.config.Mediator, form))
}

func (m *model) submitInsights() tea.Cmd {
	form := flows.InsightsForm{Question: m.value(tabInsights, insightsQuestion)}
	if _, err := form.Request(); err != nil {
		return m.reject(flows.ActionInsights, err)
	}
	return m.startFlow(jobKindInsights, insightsJob(m.config.Mediator, form))
}

func (m *model) submitROI() tea.Cmd {
	tuition, err := flows.ParseTuition(m.value(tabSupport, roiTuition))
	if err != nil {
		return m.reject(flows.ActionROI, err)
	}
	years, err := flows.ParseProgramYears(m.value(tabSupport, roiYears))
	if err != nil {
		return m.reject(flows.ActionROI, err)
	}
	form := flows.ROIForm{
		Institution:  m.value(tabSupport, roiInstitution),
		Degree:       m.value(tabSupport, roiDegree),
		TuitionTotal: tuition,
		Years:        years,
	}
	if _, err := form.Request(); err != nil {
		return m.reject(flows.ActionROI, err)
	}
	return m.startFlow(jobKindROI, roiJob(m.config.Mediator, form))
}

func (m *model) submitCompare() tea.Cmd {
	year, err := flows.ParseYear(m.value(tabCompare, compareYear))
	if err != nil {
		return m.reject(flows.ActionCompare, err)
	}
	form := flows.CompareForm{
		InstitutionA: m.value(tabCompare, compareA),
		InstitutionB: m.value(tabCompare, compareB),
		Year:         year,
	}
	if _, err := form.Request(); err != nil {
		return m.reject(flows.ActionCompare, err)
	}
	return m.startFlow(jobKindCompare, compareJob(m.config.Mediator, form))
}

// reject records a client-side validation failure; no request is made.
func (m *model) reject(action flows.Action, err error) tea.Cmd {
	m.clearView(action)
	m.applyOutcome(action, err)
	return nil
}

func (m *model) startFlow(kind jobKind, runner jobRunner) tea.Cmd {
	m.inFlight = kind
	delete(m.notices, jobKindActions[kind])
	m.markViewportDirty()
	return tea.Batch(m.spinner.Tick, m.jobs.Start(kind, runner))
}

func (m *model) startProbe() tea.Cmd {
	if m.config.Pinger == nil || m.probing {
		return nil
	}
	m.probing = true
	return m.jobs.Start(jobKindProbe, probeJob(m.config.Pinger, m.config.ProbeTimeout))
}

func (m *model) clearView(action flows.Action) {
	switch action {
	case flows.ActionAnalyze:
		m.analyzeView = nil
	case flows.ActionInsights:
		m.insightsView = nil
	case flows.ActionSupport:
		m.supportView = nil
	case flows.ActionROI:
		m.roiView = nil
	case flows.ActionCompare:
		m.compareView = nil
	}
}

func (m *model) applyOutcome(action flows.Action, err error) {
	delete(m.notices, action)
	if err != nil {
		m.notices[action] = noticeFor(err)
	}
	m.pendingAnchor = action
	m.markViewportDirty()
}

func noticeFor(err error) flows.Notice {
	var invalid *flows.ValidationError
	if errors.As(err, &invalid) {
		return flows.Notice{Tone: flows.ToneCaution, Message: invalid.Message}
	}
	var failed *flows.FailureNotice
	if errors.As(err, &failed) {
		return flows.Notice{Tone: flows.ToneNegative, Message: failed.Message}
	}
	return flows.Notice{Tone: flows.ToneNegative, Message: err.Error()}
}

func (m *model) resize() {
	width, height := m.layout.windowWidth, m.layout.windowHeight
	m.layout.Update(width, height, lipgloss.Height(m.formPanel()))
	m.viewport.Width = m.layout.viewportWidth
	m.viewport.Height = m.layout.viewportHeight
	m.markViewportDirty()
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewportDirty = false
	display := m.buildTabContent()
	m.viewport.SetContent(display.content)
	if m.pendingAnchor == "" {
		return
	}
	if line, ok := display.anchors[m.pendingAnchor]; ok {
		m.viewport.SetYOffset(line)
	}
	m.pendingAnchor = ""
}
