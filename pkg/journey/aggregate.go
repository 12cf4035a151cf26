package journey

import (
	"sort"
	"time"

	"github.com/ponto-labs/jornada/pkg/parser"
)

// DaySpan is a calendar date with the earliest and latest message times
// observed on it.
type DaySpan struct {
	// Date is the calendar date at midnight UTC.
	Date time.Time

	// Entry is the earliest message timestamp of the day.
	Entry time.Time

	// Exit is the latest message timestamp of the day.
	Exit time.Time

	// Messages is the number of messages recorded on the day.
	Messages int
}

// AggregateDays groups messages by calendar date and derives each day's
// entry and exit. Weekdays, weekends and holidays are all included; there
// is no business-calendar awareness. A date with a single message yields
// entry == exit. Days are returned in ascending chronological order.
func AggregateDays(msgs []*parser.Message) []DaySpan {
	byDate := make(map[time.Time]*DaySpan)

	for _, m := range msgs {
		y, mo, d := m.Timestamp.Date()
		date := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)

		span, ok := byDate[date]
		if !ok {
			span = &DaySpan{Date: date, Entry: m.Timestamp, Exit: m.Timestamp}
			byDate[date] = span
		}
		if m.Timestamp.Before(span.Entry) {
			span.Entry = m.Timestamp
		}
		if m.Timestamp.After(span.Exit) {
			span.Exit = m.Timestamp
		}
		span.Messages++
	}

	days := make([]DaySpan, 0, len(byDate))
	for _, span := range byDate {
		days = append(days, *span)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}
