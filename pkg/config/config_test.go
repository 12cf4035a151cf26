package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Clock
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "08:00", want: 8 * 60},
		{name: "evening", input: "18:30", want: 18*60 + 30},
		{name: "last minute", input: "23:59", want: 23*60 + 59},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "single digit hour", input: "8:00", wantErr: true},
		{name: "missing colon", input: "0800", wantErr: true},
		{name: "trailing garbage", input: "08:0x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseClock() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClock(t *testing.T) {
	c, err := ParseClock("18:30")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}
	if got := c.Hours(); got != 18.5 {
		t.Errorf("Hours() = %v, want 18.5", got)
	}
	if got := c.String(); got != "18:30" {
		t.Errorf("String() = %q, want %q", got, "18:30")
	}

	ts := time.Date(2024, 6, 5, 9, 15, 42, 0, time.UTC)
	if got := ClockOf(ts); got != Clock(9*60+15) {
		t.Errorf("ClockOf() = %v, want %v", got, Clock(9*60+15))
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Policy.DailyTargetHours != DefaultDailyTargetHours {
		t.Errorf("DailyTargetHours = %v, want %v", cfg.Policy.DailyTargetHours, DefaultDailyTargetHours)
	}
	if cfg.Policy.WeeklyTargetHours != DefaultWeeklyTargetHours {
		t.Errorf("WeeklyTargetHours = %v, want %v", cfg.Policy.WeeklyTargetHours, DefaultWeeklyTargetHours)
	}
	if len(cfg.Phrases.MediaPlaceholders) == 0 {
		t.Error("MediaPlaceholders is empty")
	}
	if len(cfg.Phrases.SystemSenders) == 0 {
		t.Error("SystemSenders is empty")
	}
	if got := cfg.Policy.BusinessStartClock().String(); got != DefaultBusinessStart {
		t.Errorf("BusinessStartClock() = %q, want %q", got, DefaultBusinessStart)
	}
}

func TestLoad_FromFile(t *testing.T) {
	content := `policy:
  daily_target_hours: 6.0
  weekly_target_hours: 30.0
  break_hours: 0.5
  gross_salary: 4400.0
  business_start: "09:00"
  business_end: "17:00"
phrases:
  media_placeholders: ["arquivo ocultado"]
  system_senders: ["criptografia"]
`
	path := writeTempConfig(t, content)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Policy.DailyTargetHours != 6.0 {
		t.Errorf("DailyTargetHours = %v, want 6.0", cfg.Policy.DailyTargetHours)
	}
	if cfg.Policy.GrossSalary != 4400.0 {
		t.Errorf("GrossSalary = %v, want 4400.0", cfg.Policy.GrossSalary)
	}
	if len(cfg.Phrases.MediaPlaceholders) != 1 || cfg.Phrases.MediaPlaceholders[0] != "arquivo ocultado" {
		t.Errorf("MediaPlaceholders = %v", cfg.Phrases.MediaPlaceholders)
	}
	if got := cfg.Policy.BusinessEndClock(); got != Clock(17*60) {
		t.Errorf("BusinessEndClock() = %v, want %v", got, Clock(17*60))
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid yaml",
			content: "policy:\n  daily_target_hours: [not a number",
		},
		{
			name:    "zero daily target",
			content: "policy:\n  daily_target_hours: 0\n",
		},
		{
			name: "negative break",
			content: `policy:
  daily_target_hours: 8.0
  weekly_target_hours: 44.0
  break_hours: -1.0
  business_start: "08:00"
  business_end: "18:00"
`,
		},
		{
			name: "bad business start",
			content: `policy:
  daily_target_hours: 8.0
  weekly_target_hours: 44.0
  business_start: "8am"
  business_end: "18:00"
`,
		},
		{
			name: "end before start",
			content: `policy:
  daily_target_hours: 8.0
  weekly_target_hours: 44.0
  business_start: "18:00"
  business_end: "08:00"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)
			if _, err := Load(context.Background(), path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(context.Background(), "/nonexistent/jornada.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestValidate_Webhooks(t *testing.T) {
	tests := []struct {
		name    string
		webhook WebhookConfig
		wantErr bool
	}{
		{
			name:    "valid https",
			webhook: WebhookConfig{URL: "https://example.com/hook"},
		},
		{
			name:    "valid with trigger",
			webhook: WebhookConfig{URL: "http://example.com/hook", Trigger: WebhookTriggerAlways},
		},
		{
			name:    "missing url",
			webhook: WebhookConfig{Name: "nameless"},
			wantErr: true,
		},
		{
			name:    "bad scheme",
			webhook: WebhookConfig{URL: "ftp://example.com/hook"},
			wantErr: true,
		},
		{
			name:    "no host",
			webhook: WebhookConfig{URL: "https://"},
			wantErr: true,
		},
		{
			name:    "bad trigger",
			webhook: WebhookConfig{URL: "https://example.com", Trigger: "sometimes"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Webhooks = []WebhookConfig{tt.webhook}
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_WebhookDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Webhooks = []WebhookConfig{{URL: "https://example.com/hook"}}

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Webhooks[0].Trigger != WebhookTriggerOnIssues {
		t.Errorf("Trigger = %q, want %q", cfg.Webhooks[0].Trigger, WebhookTriggerOnIssues)
	}
	if cfg.Webhooks[0].Timeout != DefaultWebhookTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Webhooks[0].Timeout, DefaultWebhookTimeout)
	}
}

func TestValidate_TokenEnvExpansion(t *testing.T) {
	t.Setenv("JORNADA_TEST_TOKEN", "secret-value")

	cfg := DefaultConfig()
	cfg.Webhooks = []WebhookConfig{
		{URL: "https://example.com/hook", Token: "${JORNADA_TEST_TOKEN}"},
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Webhooks[0].Token != "secret-value" {
		t.Errorf("Token = %q, want %q", cfg.Webhooks[0].Token, "secret-value")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvGrossSalary, "5500.50")
	t.Setenv(EnvBusinessStart, "07:00")
	t.Setenv(EnvBusinessEnd, "19:00")

	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Policy.GrossSalary != 5500.50 {
		t.Errorf("GrossSalary = %v, want 5500.50", cfg.Policy.GrossSalary)
	}
	if cfg.Policy.BusinessStart != "07:00" {
		t.Errorf("BusinessStart = %q, want %q", cfg.Policy.BusinessStart, "07:00")
	}
	if cfg.Policy.BusinessEnd != "19:00" {
		t.Errorf("BusinessEnd = %q, want %q", cfg.Policy.BusinessEnd, "19:00")
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
