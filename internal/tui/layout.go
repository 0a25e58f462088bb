package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/careerscout/internal/flows"
	"github.com/csheth/careerscout/internal/render"
)

// Vertical space taken by everything except the form panel and the
// results viewport: hero (3 lines), status bar, key hints, one notice line
// and the blank separators between them.
const layoutChrome = 13

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	formHeight     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		windowWidth:    80,
		windowHeight:   24,
		viewportWidth:  76,
		viewportHeight: 6,
		formHeight:     5,
	}
}

func (l *pageLayout) Update(width, height, formHeight int) {
	l.windowWidth = width
	l.windowHeight = height
	l.formHeight = formHeight
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	contentHeight := height - layoutChrome - formHeight
	if contentHeight < 5 {
		contentHeight = 5
	}
	l.viewportHeight = contentHeight
}

type displayView struct {
	content string
	anchors map[flows.Action]int
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

func (m *model) buildTabContent() displayView {
	cb := &contentBuilder{}
	anchors := map[flows.Action]int{}
	width := m.layout.viewportWidth

	section := func(action flows.Action, title, body, hint string) {
		if cb.Line() > 0 {
			cb.WriteString("\n\n")
		}
		anchors[action] = cb.Line()
		if title != "" {
			cb.WriteString(sectionHeaderStyle.Render(title))
			cb.WriteRune('\n')
		}
		if notice, ok := m.notices[action]; ok {
			cb.WriteString(render.Notice(notice, width))
			cb.WriteRune('\n')
		}
		switch {
		case body != "":
			cb.WriteString(body)
			cb.WriteRune('\n')
		case !m.hasNotice(action):
			cb.WriteString(helperStyle.Render(wordwrap.String(hint, m.wrapWidth(0))))
			cb.WriteRune('\n')
		}
	}

	switch m.activeTab {
	case tabDashboard:
		body := ""
		if m.analyzeView != nil {
			body = render.Analyze(*m.analyzeView, width)
		}
		section(flows.ActionAnalyze, "", body, "Enter your degree program and graduation year, then press Enter to analyze outcomes.")
	case tabInsights:
		body := ""
		if m.insightsView != nil {
			body = render.Insights(*m.insightsView, width, m.sourcesExpanded)
		}
		section(flows.ActionInsights, "", body, "Ask about career outcomes, salary trends or employment data, or pick a sample question.")
	case tabSupport:
		support := ""
		if m.supportView != nil {
			support = render.Support(*m.supportView, width)
		}
		section(flows.ActionSupport, "Support Services Index", support, "Select Load Support Services Data and press Enter.")
		roi := ""
		if m.roiView != nil {
			roi = render.ROI(*m.roiView, width)
		}
		section(flows.ActionROI, "ROI Calculator", roi, "Fill in the calculator fields and press Enter to calculate ROI.")
	case tabCompare:
		body := ""
		if m.compareView != nil {
			body = render.Compare(*m.compareView, width)
		}
		section(flows.ActionCompare, "", body, "Enter two institutions and a graduation year, then press Enter to compare them.")
	}

	return displayView{content: strings.TrimRight(cb.String(), "\n"), anchors: anchors}
}

func (m *model) hasNotice(action flows.Action) bool {
	_, ok := m.notices[action]
	return ok
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
