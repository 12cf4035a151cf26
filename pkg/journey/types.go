// Package journey computes daily work journeys, overtime and night
// surcharges from a filtered chat-message timeline.
package journey

import (
	"strings"
	"time"
)

// NoteTag annotates a day record. Tags are the canonical representation;
// display strings are rendered only at the output boundary.
type NoteTag string

const (
	// NoteIncomplete marks a day missing its entry or exit record.
	NoteIncomplete NoteTag = "incomplete"

	// NoteWeekend marks a Saturday or Sunday, paid at the atypical rate.
	NoteWeekend NoteTag = "weekend"

	// NoteAtypicalStart marks a day whose first record precedes the
	// business-hours start.
	NoteAtypicalStart NoteTag = "atypical_start"
)

// Display returns the human-readable note text.
func (t NoteTag) Display() string {
	switch t {
	case NoteIncomplete:
		return "Incomplete records"
	case NoteWeekend:
		return "Weekend"
	case NoteAtypicalStart:
		return "Atypical trigger"
	default:
		return string(t)
	}
}

// DayRecord is one row of the journey report. Hour and money figures are
// kept unrounded; rounding happens at presentation time.
type DayRecord struct {
	// Date is the calendar date at midnight UTC.
	Date time.Time

	// Weekday is the English weekday name.
	Weekday string

	// Entry and Exit are the first and last record of the day.
	// Zero values mean the record is missing (rendered as "N/A").
	Entry time.Time
	Exit  time.Time

	// TotalHours is the net journey: gross span minus break, clamped at 0.
	TotalHours float64

	// OvertimeHours is the overtime portion of the journey.
	OvertimeHours float64

	// OvertimeCost is the overtime pay at the applicable multiplier.
	OvertimeCost float64

	// NightSurcharge is the extra pay for hours past the business end.
	NightSurcharge float64

	// Tags annotate the day, in a fixed order.
	Tags []NoteTag
}

// Complete reports whether both entry and exit records exist.
func (d *DayRecord) Complete() bool {
	return !d.Entry.IsZero() && !d.Exit.IsZero()
}

// HasTag reports whether the day carries the given tag.
func (d *DayRecord) HasTag(tag NoteTag) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Notes renders the tag set as comma-joined display text.
func (d *DayRecord) Notes() string {
	if len(d.Tags) == 0 {
		return ""
	}
	parts := make([]string, len(d.Tags))
	for i, t := range d.Tags {
		parts[i] = t.Display()
	}
	return strings.Join(parts, ", ")
}

// WeekTotal aggregates one ISO-8601 calendar week.
type WeekTotal struct {
	// Year and Week identify the ISO week.
	Year int
	Week int

	// TotalHours is the sum of net journeys in the week.
	TotalHours float64

	// OvertimeHours is the excess over the weekly target, never negative.
	OvertimeHours float64
}

// Summary holds the scalar totals of a report. Recomputed in full from the
// day records on every run; there is no incremental update.
type Summary struct {
	// TotalOvertimeHours is normal plus atypical overtime.
	TotalOvertimeHours float64

	// NormalOvertimeHours is overtime on days without the weekend tag.
	NormalOvertimeHours float64

	// AtypicalOvertimeHours is overtime on weekend days.
	AtypicalOvertimeHours float64

	// WeeklyOvertimeHours is the weekly-basis overtime total across all
	// weeks. A separate reporting lens from the daily figures; the two
	// are intentionally not reconciled.
	WeeklyOvertimeHours float64

	// OvertimeCost is the total overtime pay.
	OvertimeCost float64

	// NightSurcharge is the total night-surcharge pay.
	NightSurcharge float64

	// IncompleteDays counts days with missing entry or exit records.
	IncompleteDays int

	// AtypicalStartDays counts days that started before business hours.
	AtypicalStartDays int
}

// Report bundles the daily rows, weekly totals and scalar summary.
type Report struct {
	Days    []DayRecord
	Weeks   []WeekTotal
	Summary Summary
}

// HasIssues reports whether the report contains incomplete-record days.
func (r *Report) HasIssues() bool {
	return r.Summary.IncompleteDays > 0
}
