package parser

import (
	"testing"
	"time"
)

func TestParseStamp(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "slash separators",
			date: "05/06/2024",
			time: "09:00",
			want: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "dot separators",
			date: "05.06.2024",
			time: "09:00",
			want: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "dash separators",
			date: "05-06-2024",
			time: "09:00",
			want: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "two digit year after pivot",
			date: "05/06/24",
			time: "09:00",
			want: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "two digit year before pivot",
			date: "05/06/99",
			time: "09:00",
			want: time.Date(1999, 6, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "day above twelve stays the day",
			date: "13/06/2024",
			time: "09:00",
			want: time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "single digit day and month",
			date: "5/6/2024",
			time: "9:05",
			want: time.Date(2024, 6, 5, 9, 5, 0, 0, time.UTC),
		},
		{
			name: "time with seconds",
			date: "05/06/2024",
			time: "09:00:30",
			want: time.Date(2024, 6, 5, 9, 0, 30, 0, time.UTC),
		},
		{
			name:    "month above twelve",
			date:    "05/13/2024",
			time:    "09:00",
			wantErr: true,
		},
		{
			name:    "day zero",
			date:    "0/06/2024",
			time:    "09:00",
			wantErr: true,
		},
		{
			name:    "nonexistent calendar date",
			date:    "31/02/2024",
			time:    "09:00",
			wantErr: true,
		},
		{
			name:    "three digit year",
			date:    "05/06/202",
			time:    "09:00",
			wantErr: true,
		},
		{
			name:    "missing year",
			date:    "05/06",
			time:    "09:00",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			date:    "05/06/2024",
			time:    "24:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			date:    "05/06/2024",
			time:    "09:60",
			wantErr: true,
		},
		{
			name:    "single digit minute",
			date:    "05/06/2024",
			time:    "09:5",
			wantErr: true,
		},
		{
			name:    "empty date",
			date:    "",
			time:    "09:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStamp(tt.date, tt.time)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStamp() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseStamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStamp_LeapYear(t *testing.T) {
	if _, err := ParseStamp("29/02/2024", "10:00"); err != nil {
		t.Errorf("ParseStamp() error = %v for a valid leap day", err)
	}
	if _, err := ParseStamp("29/02/2023", "10:00"); err == nil {
		t.Error("ParseStamp() accepted 29 February in a non-leap year")
	}
}
