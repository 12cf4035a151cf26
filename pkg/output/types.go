// Package output provides formatting and output generation for journey
// reports. Conversion into this package's types is the presentation
// boundary: hours and money are rounded to 2 decimals here and nowhere
// earlier, and note tags become display text.
package output

import (
	"math"

	"github.com/ponto-labs/jornada/pkg/journey"
)

// DateLayout renders report dates day-first.
const DateLayout = "02/01/2006"

// ClockLayout renders entry and exit times.
const ClockLayout = "15:04"

// NA is the sentinel for missing entry or exit records.
const NA = "N/A"

// Report is the complete presentation-ready analysis output.
type Report struct {
	// Days are the daily rows in chronological order.
	Days []Day `json:"days"`

	// Weeks are the ISO-week aggregates in chronological order.
	Weeks []Week `json:"weeks"`

	// Summary provides the scalar totals.
	Summary Summary `json:"summary"`

	// Metadata provides context about the analysis.
	Metadata Metadata `json:"metadata"`
}

// Day is one rendered report row.
type Day struct {
	Date           string   `json:"date"`
	Weekday        string   `json:"weekday"`
	Entry          string   `json:"entry"`
	Exit           string   `json:"exit"`
	TotalHours     float64  `json:"total_hours"`
	OvertimeHours  float64  `json:"overtime_hours"`
	OvertimeCost   float64  `json:"overtime_cost"`
	NightSurcharge float64  `json:"night_surcharge"`
	Notes          string   `json:"notes,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// Week is one rendered ISO-week aggregate.
type Week struct {
	Year          int     `json:"year"`
	Week          int     `json:"week"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// Summary is the rendered totals mapping.
type Summary struct {
	TotalOvertimeHours    float64 `json:"total_overtime_hours"`
	NormalOvertimeHours   float64 `json:"normal_overtime_hours"`
	AtypicalOvertimeHours float64 `json:"atypical_overtime_hours"`
	WeeklyOvertimeHours   float64 `json:"weekly_overtime_hours"`
	OvertimeCost          float64 `json:"overtime_cost"`
	NightSurcharge        float64 `json:"night_surcharge"`
	IncompleteDays        int     `json:"incomplete_days"`
	AtypicalStartDays     int     `json:"atypical_start_days"`
}

// Metadata provides context about the analysis run. Only deterministic
// facts are recorded so identical input yields identical output.
type Metadata struct {
	// Sources lists the input files that were analyzed.
	Sources []string `json:"sources,omitempty"`

	// LinesProcessed is the number of non-empty input lines examined.
	LinesProcessed int `json:"lines_processed"`

	// Messages is the number of messages reconstructed from the input.
	Messages int `json:"messages"`

	// DiscardedLines is the number of lines dropped with diagnostics.
	DiscardedLines int `json:"discarded_lines"`
}

// Round2 rounds to 2 decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NewReport converts a computed journey report into its presentation form.
func NewReport(result *journey.Report, meta Metadata) *Report {
	report := &Report{
		Days:     make([]Day, 0, len(result.Days)),
		Weeks:    make([]Week, 0, len(result.Weeks)),
		Metadata: meta,
		Summary: Summary{
			TotalOvertimeHours:    Round2(result.Summary.TotalOvertimeHours),
			NormalOvertimeHours:   Round2(result.Summary.NormalOvertimeHours),
			AtypicalOvertimeHours: Round2(result.Summary.AtypicalOvertimeHours),
			WeeklyOvertimeHours:   Round2(result.Summary.WeeklyOvertimeHours),
			OvertimeCost:          Round2(result.Summary.OvertimeCost),
			NightSurcharge:        Round2(result.Summary.NightSurcharge),
			IncompleteDays:        result.Summary.IncompleteDays,
			AtypicalStartDays:     result.Summary.AtypicalStartDays,
		},
	}

	for i := range result.Days {
		report.Days = append(report.Days, renderDay(&result.Days[i]))
	}

	for _, w := range result.Weeks {
		report.Weeks = append(report.Weeks, Week{
			Year:          w.Year,
			Week:          w.Week,
			TotalHours:    Round2(w.TotalHours),
			OvertimeHours: Round2(w.OvertimeHours),
		})
	}

	return report
}

func renderDay(d *journey.DayRecord) Day {
	day := Day{
		Date:           d.Date.Format(DateLayout),
		Weekday:        d.Weekday,
		Entry:          NA,
		Exit:           NA,
		TotalHours:     Round2(d.TotalHours),
		OvertimeHours:  Round2(d.OvertimeHours),
		OvertimeCost:   Round2(d.OvertimeCost),
		NightSurcharge: Round2(d.NightSurcharge),
		Notes:          d.Notes(),
	}
	if !d.Entry.IsZero() {
		day.Entry = d.Entry.Format(ClockLayout)
	}
	if !d.Exit.IsZero() {
		day.Exit = d.Exit.Format(ClockLayout)
	}
	for _, t := range d.Tags {
		day.Tags = append(day.Tags, string(t))
	}
	return day
}

// HasIssues reports whether the report contains incomplete-record days.
func (r *Report) HasIssues() bool {
	return r.Summary.IncompleteDays > 0
}
