package journey

import (
	"github.com/ponto-labs/jornada/pkg/config"
	"github.com/ponto-labs/jornada/pkg/parser"
)

// Analyze runs the full pipeline over an already-segmented message
// sequence: filter, daily aggregation, per-day policy computation and
// weekly/total summarization.
//
// The result is a pure, deterministic function of (messages, config); the
// wall clock is never consulted. Filter-stage errors (parser.ErrNoRecords,
// parser.ErrOnlyMediaRecords) are returned as-is so callers can surface
// their descriptions; any error comes with a nil report.
func Analyze(msgs []*parser.Message, cfg *config.Config) (*Report, error) {
	filtered, err := parser.Filter(msgs, cfg.Phrases.MediaPlaceholders)
	if err != nil {
		return nil, err
	}

	calc := NewCalculator(&cfg.Policy)

	spans := AggregateDays(filtered)
	days := make([]DayRecord, 0, len(spans))
	for _, span := range spans {
		days = append(days, calc.ComputeDay(span))
	}

	weeks := SummarizeWeeks(days, cfg.Policy.WeeklyTargetHours)

	return &Report{
		Days:    days,
		Weeks:   weeks,
		Summary: Summarize(days, weeks),
	}, nil
}
