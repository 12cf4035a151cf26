// Package config provides configuration loading and validation for jornada.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Policy   PolicyConfig    `yaml:"policy"`
	Phrases  PhraseConfig    `yaml:"phrases"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// PolicyConfig holds the labor-time policy parameters.
type PolicyConfig struct {
	// DailyTargetHours is the contracted daily journey, break included.
	DailyTargetHours float64 `yaml:"daily_target_hours"`

	// WeeklyTargetHours is the contracted weekly journey.
	WeeklyTargetHours float64 `yaml:"weekly_target_hours"`

	// BreakHours is the unpaid break deducted from each day.
	BreakHours float64 `yaml:"break_hours"`

	// GrossSalary is the gross monthly salary used for the hourly rate.
	GrossSalary float64 `yaml:"gross_salary"`

	// BusinessStart and BusinessEnd delimit the business-hours window,
	// as strict HH:MM 24-hour clock strings.
	BusinessStart string `yaml:"business_start"`
	BusinessEnd   string `yaml:"business_end"`

	// Parsed clocks (populated during validation).
	businessStart Clock
	businessEnd   Clock
}

// BusinessStartClock returns the parsed business-hours start.
func (p *PolicyConfig) BusinessStartClock() Clock {
	return p.businessStart
}

// BusinessEndClock returns the parsed business-hours end.
func (p *PolicyConfig) BusinessEndClock() Clock {
	return p.businessEnd
}

// PhraseConfig holds the locale-dependent phrase lists used while parsing.
type PhraseConfig struct {
	// MediaPlaceholders are content substrings (matched case-insensitively)
	// that mark a message as deleted or omitted media.
	MediaPlaceholders []string `yaml:"media_placeholders,omitempty"`

	// SystemSenders are sender-label substrings (matched case-insensitively)
	// that mark a message as a chat-system notice.
	SystemSenders []string `yaml:"system_senders,omitempty"`
}

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// ParseClock parses a strict HH:MM 24-hour clock string.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock %q (expected HH:MM)", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid clock %q (expected HH:MM)", s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q (hour 00-23, minute 00-59)", s)
	}
	return Clock(h*60 + m), nil
}

// ClockOf returns the Clock for the time-of-day of t.
// Seconds are truncated.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Hours returns the clock as fractional hours since midnight.
func (c Clock) Hours() float64 {
	return float64(c) / 60
}

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnIssues fires only when the report contains
	// incomplete-record days (default).
	WebhookTriggerOnIssues WebhookTrigger = "on_issues"
	// WebhookTriggerAlways fires after every analysis.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending analysis reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_issues" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
