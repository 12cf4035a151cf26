package output

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "jornada: %d day(s), %.2fh overtime, %.2f overtime cost, %d incomplete\n",
		len(report.Days),
		report.Summary.TotalOvertimeHours,
		report.Summary.OvertimeCost,
		report.Summary.IncompleteDays)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Work Journey Report ===")
	fmt.Fprintln(w)

	if err := f.formatDays(report, w); err != nil {
		return err
	}

	if f.opts.Verbose {
		if err := f.formatWeeks(report, w); err != nil {
			return err
		}
	}

	f.formatSummary(report, w)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Lines processed: %d\n", report.Metadata.LinesProcessed)
		fmt.Fprintf(w, "Messages kept:   %d\n", report.Metadata.Messages)
		fmt.Fprintf(w, "Lines discarded: %d\n", report.Metadata.DiscardedLines)
	}

	return nil
}

func (f *TextFormatter) formatDays(report *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tWeekday\tEntry\tExit\tHours\tOvertime\tOT Cost\tNight\tNotes")

	for _, day := range report.Days {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			day.Date,
			day.Weekday,
			day.Entry,
			day.Exit,
			day.TotalHours,
			day.OvertimeHours,
			day.OvertimeCost,
			day.NightSurcharge,
			day.Notes)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func (f *TextFormatter) formatWeeks(report *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ISO Week\tHours\tWeekly Overtime")

	for _, week := range report.Weeks {
		fmt.Fprintf(tw, "%d-W%02d\t%.2f\t%.2f\n",
			week.Year, week.Week, week.TotalHours, week.OvertimeHours)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) {
	s := report.Summary

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Total overtime:        %.2f h\n", s.TotalOvertimeHours)
	fmt.Fprintf(w, "  Normal days:         %.2f h\n", s.NormalOvertimeHours)
	fmt.Fprintf(w, "  Weekends:            %.2f h\n", s.AtypicalOvertimeHours)
	fmt.Fprintf(w, "Weekly-basis overtime: %.2f h\n", s.WeeklyOvertimeHours)
	fmt.Fprintf(w, "Overtime cost:         %.2f\n", s.OvertimeCost)
	fmt.Fprintf(w, "Night surcharge:       %.2f\n", s.NightSurcharge)
	fmt.Fprintf(w, "Incomplete days:       %d\n", s.IncompleteDays)
	fmt.Fprintf(w, "Atypical starts:       %d\n", s.AtypicalStartDays)
}
