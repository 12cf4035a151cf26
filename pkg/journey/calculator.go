package journey

import (
	"time"

	"github.com/ponto-labs/jornada/pkg/config"
)

// Pay-policy constants: simplified CLT-inspired rates, not a rules engine.
const (
	// NormalOvertimeRate is the weekday overtime multiplier (time and a half).
	NormalOvertimeRate = 1.50

	// AtypicalOvertimeRate is the weekend overtime multiplier (double time).
	AtypicalOvertimeRate = 2.00

	// NightSurchargeRate is the additive surcharge for hours past the
	// business end.
	NightSurchargeRate = 0.20

	// monthlyBaseHours is the fixed divisor turning a monthly salary into
	// an hourly rate.
	monthlyBaseHours = 220.0
)

// Calculator applies the overtime and night-surcharge policy to day spans.
type Calculator struct {
	policy *config.PolicyConfig
}

// NewCalculator creates a Calculator for the given policy.
func NewCalculator(policy *config.PolicyConfig) *Calculator {
	return &Calculator{policy: policy}
}

// HourlyRate returns the base hourly rate: gross salary over the fixed
// 220-hour monthly baseline, 0 when no salary is configured.
func (c *Calculator) HourlyRate() float64 {
	if c.policy.GrossSalary <= 0 {
		return 0
	}
	return c.policy.GrossSalary / monthlyBaseHours
}

// ComputeDay turns a day span into a computed day record.
//
// Overnight shifts are not supported: an exit numerically before the entry
// produces a negative span that clamps to zero, under-reporting such days.
func (c *Calculator) ComputeDay(span DaySpan) DayRecord {
	rec := DayRecord{
		Date:    span.Date,
		Weekday: span.Date.Weekday().String(),
		Entry:   span.Entry,
		Exit:    span.Exit,
	}
	weekend := isoWeekday(span.Date) >= 6

	if span.Entry.IsZero() || span.Exit.IsZero() {
		rec.Entry = time.Time{}
		rec.Exit = time.Time{}
		rec.Tags = append(rec.Tags, NoteIncomplete)
		if weekend {
			rec.Tags = append(rec.Tags, NoteWeekend)
		}
		return rec
	}

	grossSpan := span.Exit.Sub(span.Entry).Hours()
	netJourney := grossSpan - c.policy.BreakHours
	if netJourney < 0 {
		netJourney = 0
	}
	rec.TotalHours = netJourney

	multiplier := NormalOvertimeRate
	if weekend {
		// The whole journey counts as overtime at the atypical rate.
		rec.OvertimeHours = netJourney
		multiplier = AtypicalOvertimeRate
		rec.Tags = append(rec.Tags, NoteWeekend)
	} else {
		netTarget := c.policy.DailyTargetHours - c.policy.BreakHours
		if netJourney > netTarget {
			rec.OvertimeHours = netJourney - netTarget
		}
	}

	if rec.OvertimeHours > 0 {
		rec.OvertimeCost = rec.OvertimeHours * c.HourlyRate() * multiplier
	}

	// Night surcharge is independent of overtime and applies on weekends too.
	if exit := clockHours(span.Exit); exit > c.policy.BusinessEndClock().Hours() {
		surchargeHours := exit - c.policy.BusinessEndClock().Hours()
		rec.NightSurcharge = surchargeHours * c.HourlyRate() * NightSurchargeRate
	}

	if clockHours(span.Entry) < c.policy.BusinessStartClock().Hours() && !rec.HasTag(NoteAtypicalStart) {
		rec.Tags = append(rec.Tags, NoteAtypicalStart)
	}

	return rec
}

// isoWeekday returns the ISO-8601 weekday: Monday=1 .. Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// clockHours returns the time of day as fractional hours since midnight,
// seconds included.
func clockHours(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}
