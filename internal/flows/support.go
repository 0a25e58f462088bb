package flows

import (
	"fmt"
	"strings"

	"github.com/csheth/careerscout/internal/api"
)

const servicePreviewLimit = 5

// ServiceBreakdown lists the first few services of one institution.
type ServiceBreakdown struct {
	Institution   string   `json:"institution" yaml:"institution"`
	TotalServices string   `json:"total_services" yaml:"total_services"`
	Preview       []string `json:"preview" yaml:"preview"`
	Remaining     int      `json:"remaining" yaml:"remaining"`
}

// Heading is "Name (N services)".
func (b ServiceBreakdown) Heading() string {
	return fmt.Sprintf("%s (%s services)", b.Institution, b.TotalServices)
}

// Line joins the preview and appends "+N more" when services were cut.
func (b ServiceBreakdown) Line() string {
	line := strings.Join(b.Preview, ", ")
	if b.Remaining > 0 {
		line += fmt.Sprintf(" +%d more", b.Remaining)
	}
	return line
}

// SupportView is the rendered outcome of /support-services.
type SupportView struct {
	Empty        bool               `json:"empty" yaml:"empty"`
	Count        int                `json:"count" yaml:"count"`
	AverageIndex float64            `json:"average_support_index" yaml:"average_support_index"`
	Chart        *Chart             `json:"chart,omitempty" yaml:"chart,omitempty"`
	Table        *Table             `json:"table,omitempty" yaml:"table,omitempty"`
	Breakdown    []ServiceBreakdown `json:"services,omitempty" yaml:"services,omitempty"`
}

// EmptySupportMessage is the neutral notice shown when the backend lists nobody.
const EmptySupportMessage = "No support services data available."

// Indicators returns the count and mean tiles.
func (v SupportView) Indicators() []Indicator {
	return []Indicator{
		{Label: "Total Institutions", Value: fmt.Sprintf("%d", v.Count)},
		{Label: "Average Support Index", Value: FormatDecimal(v.AverageIndex)},
	}
}

// MeanSupportIndex averages support_index across institutions; zero for none.
func MeanSupportIndex(institutions []api.SupportInstitution) float64 {
	if len(institutions) == 0 {
		return 0
	}
	total := 0.0
	for _, inst := range institutions {
		total += inst.SupportIndex
	}
	return total / float64(len(institutions))
}

// PreviewServices splits services into the shown head and the hidden count.
func PreviewServices(services []string) ([]string, int) {
	if len(services) <= servicePreviewLimit {
		return append([]string(nil), services...), 0
	}
	return append([]string(nil), services[:servicePreviewLimit]...), len(services) - servicePreviewLimit
}

// NewSupportView projects resp and computes the client-side aggregates.
func NewSupportView(resp *api.SupportServicesResponse) SupportView {
	if len(resp.Institutions) == 0 {
		return SupportView{Empty: true}
	}
	view := SupportView{
		Count:        len(resp.Institutions),
		AverageIndex: MeanSupportIndex(resp.Institutions),
	}
	chart := Chart{Title: "Support Services Index by Institution"}
	table := Table{Columns: []string{
		"Institution",
		"Support Index",
		"Career Services Rating",
		"Alumni Network Strength",
		"Total Services",
	}}
	for _, inst := range resp.Institutions {
		chart.Bars = append(chart.Bars, Bar{
			Label:   inst.Institution,
			Value:   inst.SupportIndex,
			Display: FormatDecimal(inst.SupportIndex),
		})
		table.Rows = append(table.Rows, []string{
			inst.Institution,
			FormatDecimal(inst.SupportIndex),
			inst.CareerServicesRating.String(),
			inst.AlumniNetworkStrength.String(),
			inst.TotalServices.String(),
		})
		total := inst.TotalServices.String()
		if total == "" {
			total = fmt.Sprintf("%d", len(inst.Services))
		}
		preview, remaining := PreviewServices(inst.Services)
		view.Breakdown = append(view.Breakdown, ServiceBreakdown{
			Institution:   inst.Institution,
			TotalServices: total,
			Preview:       preview,
			Remaining:     remaining,
		})
	}
	view.Chart = &chart
	view.Table = &table
	return view
}
