package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// An empty path returns the validated defaults.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and parses the business-hours
// clocks. Validation failures are fatal: analysis never starts on a
// malformed configuration.
func Validate(cfg *Config) error {
	if err := validatePolicy(&cfg.Policy); err != nil {
		return fmt.Errorf("policy: %w", err)
	}

	if len(cfg.Phrases.MediaPlaceholders) == 0 {
		cfg.Phrases.MediaPlaceholders = DefaultMediaPlaceholders()
	}
	if len(cfg.Phrases.SystemSenders) == 0 {
		cfg.Phrases.SystemSenders = DefaultSystemSenders()
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validatePolicy(p *PolicyConfig) error {
	if p.DailyTargetHours <= 0 {
		return errors.New("daily_target_hours must be > 0")
	}
	if p.WeeklyTargetHours <= 0 {
		return errors.New("weekly_target_hours must be > 0")
	}
	if p.BreakHours < 0 {
		return errors.New("break_hours must be >= 0")
	}
	if p.GrossSalary < 0 {
		return errors.New("gross_salary must be >= 0")
	}
	start, err := ParseClock(p.BusinessStart)
	if err != nil {
		return fmt.Errorf("business_start: %w", err)
	}
	end, err := ParseClock(p.BusinessEnd)
	if err != nil {
		return fmt.Errorf("business_end: %w", err)
	}
	if end <= start {
		return fmt.Errorf("business_end %s must be after business_start %s", p.BusinessEnd, p.BusinessStart)
	}

	p.businessStart = start
	p.businessEnd = end

	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	// Expand environment variables in token
	wh.Token = expandEnvVar(wh.Token)

	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerOnIssues, WebhookTriggerAlways, WebhookTriggerNever:
			// Valid
		default:
			return fmt.Errorf("invalid trigger %q (must be on_issues, always, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerOnIssues
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
