package flows

// Tone colors an indicator or notice; renderers map it to a palette.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneCaution
	ToneNegative
)

// Indicator is a labeled metric tile.
type Indicator struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Tone  Tone   `json:"-" yaml:"-"`
}

// Bar is one bar of a chart, in the order the backend returned it.
type Bar struct {
	Label   string  `json:"label" yaml:"label"`
	Value   float64 `json:"value" yaml:"value"`
	Display string  `json:"display" yaml:"display"`
}

// Chart is a titled horizontal bar chart.
type Chart struct {
	Title string `json:"title" yaml:"title"`
	Bars  []Bar  `json:"bars" yaml:"bars"`
}

// Table is a header row plus string cells.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Notice is a single user-facing line outside the main content.
type Notice struct {
	Tone    Tone   `json:"-" yaml:"-"`
	Message string `json:"message" yaml:"message"`
}
