package journey

import (
	"testing"
	"time"
)

func TestSummarizeWeeks(t *testing.T) {
	// 2024-06-03 (Mon) through 2024-06-10 (Mon) spans ISO weeks 23 and 24.
	mon1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	tue1 := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	mon2 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	days := []DayRecord{
		{Date: mon1, TotalHours: 30},
		{Date: tue1, TotalHours: 20},
		{Date: mon2, TotalHours: 10},
	}

	weeks := SummarizeWeeks(days, 44)

	if len(weeks) != 2 {
		t.Fatalf("SummarizeWeeks() len = %d, want 2", len(weeks))
	}

	first := weeks[0]
	if first.Year != 2024 || first.Week != 23 {
		t.Errorf("first week = %d-W%d, want 2024-W23", first.Year, first.Week)
	}
	if first.TotalHours != 50 {
		t.Errorf("first week TotalHours = %v, want 50", first.TotalHours)
	}
	if first.OvertimeHours != 6 {
		t.Errorf("first week OvertimeHours = %v, want 6", first.OvertimeHours)
	}

	// Below the target: clamped to zero, never negative.
	second := weeks[1]
	if second.Week != 24 {
		t.Errorf("second week = W%d, want W24", second.Week)
	}
	if second.OvertimeHours != 0 {
		t.Errorf("second week OvertimeHours = %v, want 0", second.OvertimeHours)
	}
}

func TestSummarizeWeeks_YearBoundary(t *testing.T) {
	// 2024-12-30 belongs to ISO week 2025-W01.
	days := []DayRecord{
		{Date: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), TotalHours: 8},
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), TotalHours: 8},
	}

	weeks := SummarizeWeeks(days, 44)

	if len(weeks) != 1 {
		t.Fatalf("SummarizeWeeks() len = %d, want 1", len(weeks))
	}
	if weeks[0].Year != 2025 || weeks[0].Week != 1 {
		t.Errorf("week = %d-W%d, want 2025-W01", weeks[0].Year, weeks[0].Week)
	}
	if weeks[0].TotalHours != 16 {
		t.Errorf("TotalHours = %v, want 16", weeks[0].TotalHours)
	}
}

func TestSummarize(t *testing.T) {
	days := []DayRecord{
		{
			OvertimeHours:  2,
			OvertimeCost:   30,
			NightSurcharge: 3,
			Tags:           []NoteTag{NoteAtypicalStart},
		},
		{
			OvertimeHours: 9,
			OvertimeCost:  180,
			Tags:          []NoteTag{NoteWeekend},
		},
		{
			Tags: []NoteTag{NoteIncomplete},
		},
	}
	weeks := []WeekTotal{
		{OvertimeHours: 4},
		{OvertimeHours: 0},
	}

	s := Summarize(days, weeks)

	if s.NormalOvertimeHours != 2 {
		t.Errorf("NormalOvertimeHours = %v, want 2", s.NormalOvertimeHours)
	}
	if s.AtypicalOvertimeHours != 9 {
		t.Errorf("AtypicalOvertimeHours = %v, want 9", s.AtypicalOvertimeHours)
	}
	if s.TotalOvertimeHours != 11 {
		t.Errorf("TotalOvertimeHours = %v, want 11", s.TotalOvertimeHours)
	}
	if s.WeeklyOvertimeHours != 4 {
		t.Errorf("WeeklyOvertimeHours = %v, want 4", s.WeeklyOvertimeHours)
	}
	if s.OvertimeCost != 210 {
		t.Errorf("OvertimeCost = %v, want 210", s.OvertimeCost)
	}
	if s.NightSurcharge != 3 {
		t.Errorf("NightSurcharge = %v, want 3", s.NightSurcharge)
	}
	if s.IncompleteDays != 1 {
		t.Errorf("IncompleteDays = %v, want 1", s.IncompleteDays)
	}
	if s.AtypicalStartDays != 1 {
		t.Errorf("AtypicalStartDays = %v, want 1", s.AtypicalStartDays)
	}
}

func TestReport_HasIssues(t *testing.T) {
	clean := &Report{}
	if clean.HasIssues() {
		t.Error("HasIssues() = true for clean report")
	}

	flagged := &Report{Summary: Summary{IncompleteDays: 1}}
	if !flagged.HasIssues() {
		t.Error("HasIssues() = false with incomplete days")
	}
}
