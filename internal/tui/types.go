package tui

import "github.com/charmbracelet/bubbles/textinput"

type tab int

const (
	tabDashboard tab = iota
	tabInsights
	tabSupport
	tabCompare
	tabCount
)

var tabTitles = [tabCount]string{
	tabDashboard: "Career Outcomes Dashboard",
	tabInsights:  "Employment Rate Insights",
	tabSupport:   "Post-Graduation Support Tools",
	tabCompare:   "Compare Institutions",
}

const heroTitle = "CareerScout"

const heroTagline = "Career outcomes, salaries and support services for Indian institutions."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	sampleLabelLimit          = 50
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldYear
	fieldNumber
	fieldAction
	fieldSamples
)

type formField struct {
	kind  fieldKind
	label string
	input textinput.Model
}

func (f formField) acceptsText() bool {
	return f.kind == fieldText || f.kind == fieldYear || f.kind == fieldNumber
}

const busyMessage = "A request is already running. Please wait for it to finish."
