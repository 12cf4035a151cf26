package journey

import "sort"

// SummarizeWeeks groups day records by ISO-8601 calendar week and computes
// the weekly overtime: the excess of the summed net journeys over the
// weekly target, clamped at zero. Weeks are returned in ascending order.
func SummarizeWeeks(days []DayRecord, weeklyTargetHours float64) []WeekTotal {
	type weekKey struct{ year, week int }

	totals := make(map[weekKey]float64)
	for i := range days {
		year, week := days[i].Date.ISOWeek()
		totals[weekKey{year, week}] += days[i].TotalHours
	}

	weeks := make([]WeekTotal, 0, len(totals))
	for key, hours := range totals {
		overtime := hours - weeklyTargetHours
		if overtime < 0 {
			overtime = 0
		}
		weeks = append(weeks, WeekTotal{
			Year:          key.year,
			Week:          key.week,
			TotalHours:    hours,
			OvertimeHours: overtime,
		})
	}

	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year < weeks[j].Year
		}
		return weeks[i].Week < weeks[j].Week
	})

	return weeks
}

// Summarize computes the scalar totals over day records and week totals.
// Sums run over the unrounded figures; rounding is a presentation concern.
// The daily and weekly overtime totals are two independent reporting
// lenses and are deliberately not reconciled against each other.
func Summarize(days []DayRecord, weeks []WeekTotal) Summary {
	var s Summary

	for i := range days {
		day := &days[i]

		if day.HasTag(NoteWeekend) {
			s.AtypicalOvertimeHours += day.OvertimeHours
		} else {
			s.NormalOvertimeHours += day.OvertimeHours
		}
		s.OvertimeCost += day.OvertimeCost
		s.NightSurcharge += day.NightSurcharge

		if day.HasTag(NoteIncomplete) {
			s.IncompleteDays++
		}
		if day.HasTag(NoteAtypicalStart) {
			s.AtypicalStartDays++
		}
	}

	s.TotalOvertimeHours = s.NormalOvertimeHours + s.AtypicalOvertimeHours

	for _, w := range weeks {
		s.WeeklyOvertimeHours += w.OvertimeHours
	}

	return s
}
