// Package export writes journey reports to spreadsheet workbooks for
// downstream consumers. It consumes exactly the presentation report and
// summary; nothing here feeds back into the computation.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ponto-labs/jornada/pkg/output"
)

// Sheet names of the generated workbook.
const (
	SummarySheet = "Summary"
	DetailSheet  = "Daily Detail"
	WeeklySheet  = "Weekly Totals"
)

// Excel writes the report to an xlsx workbook at path with a summary
// sheet, a daily detail sheet and a weekly totals sheet.
func Excel(report *output.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SummarySheet)
	if err := writeSummary(f, report); err != nil {
		return fmt.Errorf("writing summary sheet: %w", err)
	}

	if _, err := f.NewSheet(DetailSheet); err != nil {
		return fmt.Errorf("creating detail sheet: %w", err)
	}
	if err := writeDetail(f, report); err != nil {
		return fmt.Errorf("writing detail sheet: %w", err)
	}

	if _, err := f.NewSheet(WeeklySheet); err != nil {
		return fmt.Errorf("creating weekly sheet: %w", err)
	}
	if err := writeWeekly(f, report); err != nil {
		return fmt.Errorf("writing weekly sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}

	return nil
}

func writeSummary(f *excelize.File, report *output.Report) error {
	s := report.Summary
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total overtime (h)", s.TotalOvertimeHours},
		{"Normal-day overtime (h)", s.NormalOvertimeHours},
		{"Weekend overtime (h)", s.AtypicalOvertimeHours},
		{"Weekly-basis overtime (h)", s.WeeklyOvertimeHours},
		{"Overtime cost", s.OvertimeCost},
		{"Night surcharge", s.NightSurcharge},
		{"Incomplete days", s.IncompleteDays},
		{"Atypical starts", s.AtypicalStartDays},
	}
	return writeRows(f, SummarySheet, rows)
}

func writeDetail(f *excelize.File, report *output.Report) error {
	rows := make([][]interface{}, 0, len(report.Days)+1)
	rows = append(rows, []interface{}{
		"Date", "Weekday", "Entry", "Exit",
		"Total Hours", "Overtime Hours", "Overtime Cost", "Night Surcharge", "Notes",
	})
	for _, day := range report.Days {
		rows = append(rows, []interface{}{
			day.Date, day.Weekday, day.Entry, day.Exit,
			day.TotalHours, day.OvertimeHours, day.OvertimeCost, day.NightSurcharge, day.Notes,
		})
	}
	return writeRows(f, DetailSheet, rows)
}

func writeWeekly(f *excelize.File, report *output.Report) error {
	rows := make([][]interface{}, 0, len(report.Weeks)+1)
	rows = append(rows, []interface{}{"ISO Week", "Total Hours", "Weekly Overtime"})
	for _, week := range report.Weeks {
		rows = append(rows, []interface{}{
			fmt.Sprintf("%d-W%02d", week.Year, week.Week),
			week.TotalHours,
			week.OvertimeHours,
		})
	}
	return writeRows(f, WeeklySheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
