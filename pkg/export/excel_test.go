package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ponto-labs/jornada/pkg/output"
)

func sampleReport() *output.Report {
	return &output.Report{
		Days: []output.Day{
			{
				Date:          "05/06/2024",
				Weekday:       "Wednesday",
				Entry:         "08:00",
				Exit:          "18:00",
				TotalHours:    9,
				OvertimeHours: 2,
				OvertimeCost:  30,
			},
			{
				Date:    "06/06/2024",
				Weekday: "Thursday",
				Entry:   "N/A",
				Exit:    "N/A",
				Notes:   "Incomplete records",
			},
		},
		Weeks: []output.Week{
			{Year: 2024, Week: 23, TotalHours: 9, OvertimeHours: 0},
		},
		Summary: output.Summary{
			TotalOvertimeHours: 2,
			OvertimeCost:       30,
			IncompleteDays:     1,
		},
	}
}

func TestExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := Excel(sampleReport(), path); err != nil {
		t.Fatalf("Excel() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{SummarySheet, DetailSheet, WeeklySheet} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("sheet %q missing (idx %d, err %v)", sheet, idx, err)
		}
	}

	// Spot-check cells.
	if got, err := f.GetCellValue(DetailSheet, "A2"); err != nil || got != "05/06/2024" {
		t.Errorf("detail A2 = %q (err %v), want 05/06/2024", got, err)
	}
	if got, err := f.GetCellValue(DetailSheet, "C3"); err != nil || got != "N/A" {
		t.Errorf("detail C3 = %q (err %v), want N/A", got, err)
	}
	if got, err := f.GetCellValue(SummarySheet, "A1"); err != nil || got != "Metric" {
		t.Errorf("summary A1 = %q (err %v), want Metric", got, err)
	}
	if got, err := f.GetCellValue(SummarySheet, "B2"); err != nil || got != "2" {
		t.Errorf("summary B2 = %q (err %v), want 2", got, err)
	}
	if got, err := f.GetCellValue(WeeklySheet, "A2"); err != nil || got != "2024-W23" {
		t.Errorf("weekly A2 = %q (err %v), want 2024-W23", got, err)
	}
}

func TestExcel_BadPath(t *testing.T) {
	if err := Excel(sampleReport(), "/nonexistent-dir/report.xlsx"); err == nil {
		t.Error("Excel() expected error for unwritable path")
	}
}
