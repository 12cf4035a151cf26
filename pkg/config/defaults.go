package config

import (
	"os"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultDailyTargetHours  = 8.0
	DefaultWeeklyTargetHours = 44.0
	DefaultBreakHours        = 1.0
	DefaultBusinessStart     = "08:00"
	DefaultBusinessEnd       = "18:00"
	DefaultWebhookTimeout    = 10 * time.Second
)

// Environment variable names.
const (
	EnvGrossSalary   = "JORNADA_GROSS_SALARY"
	EnvBusinessStart = "JORNADA_BUSINESS_START"
	EnvBusinessEnd   = "JORNADA_BUSINESS_END"
)

// DefaultMediaPlaceholders marks deleted messages and omitted media in
// WhatsApp-style exports.
func DefaultMediaPlaceholders() []string {
	return []string{
		"message deleted",
		"video hidden",
		"image hidden",
		"audio hidden",
		"video omitted",
		"image omitted",
		"audio omitted",
	}
}

// DefaultSystemSenders marks chat-system notices (end-to-end encryption
// banners, contact-list changes) that never represent a person.
func DefaultSystemSenders() []string {
	return []string{
		"encryption",
		"contact list",
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Policy: PolicyConfig{
			DailyTargetHours:  DefaultDailyTargetHours,
			WeeklyTargetHours: DefaultWeeklyTargetHours,
			BreakHours:        DefaultBreakHours,
			GrossSalary:       0,
			BusinessStart:     DefaultBusinessStart,
			BusinessEnd:       DefaultBusinessEnd,
		},
		Phrases: PhraseConfig{
			MediaPlaceholders: DefaultMediaPlaceholders(),
			SystemSenders:     DefaultSystemSenders(),
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvGrossSalary); v != "" {
		if salary, err := strconv.ParseFloat(v, 64); err == nil {
			c.Policy.GrossSalary = salary
		}
	}
	if v := os.Getenv(EnvBusinessStart); v != "" {
		c.Policy.BusinessStart = v
	}
	if v := os.Getenv(EnvBusinessEnd); v != "" {
		c.Policy.BusinessEnd = v
	}
}
