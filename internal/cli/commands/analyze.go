package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ponto-labs/jornada/pkg/config"
	"github.com/ponto-labs/jornada/pkg/export"
	"github.com/ponto-labs/jornada/pkg/extract"
	"github.com/ponto-labs/jornada/pkg/journey"
	"github.com/ponto-labs/jornada/pkg/output"
	"github.com/ponto-labs/jornada/pkg/parser"
	"github.com/ponto-labs/jornada/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config  string
	Output  string
	Excel   string
	Verbose bool
	Quiet   bool

	// Policy overrides
	Salary        float64
	DailyHours    float64
	WeeklyHours   float64
	BreakHours    float64
	BusinessStart string
	BusinessEnd   string

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <export-file>...",
		Short: "Compute the work-journey report from chat exports",
		Long: `Analyze one or more chat-export files and compute the work-journey
report: daily entry/exit, overtime hours and cost, night surcharge and
weekly aggregates.

Accepts plain text, PDF, DOCX and image (OCR) inputs; several files are
merged into one chronological timeline.

Exit codes:
  0 - Report computed, no incomplete-record days
  1 - Incomplete records or no valid records in the input
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Policy config file (YAML; defaults apply without it)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Excel, "excel", "", "Also write the report to an xlsx workbook at this path")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show weekly totals and processing details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Policy override flags
	cmd.Flags().Float64Var(&opts.Salary, "salary", 0, "Gross monthly salary")
	cmd.Flags().Float64Var(&opts.DailyHours, "daily-hours", config.DefaultDailyTargetHours, "Daily target hours (break included)")
	cmd.Flags().Float64Var(&opts.WeeklyHours, "weekly-hours", config.DefaultWeeklyTargetHours, "Weekly target hours")
	cmd.Flags().Float64Var(&opts.BreakHours, "break-hours", config.DefaultBreakHours, "Unpaid break hours per day")
	cmd.Flags().StringVar(&opts.BusinessStart, "business-start", config.DefaultBusinessStart, "Business hours start (HH:MM)")
	cmd.Flags().StringVar(&opts.BusinessEnd, "business-end", config.DefaultBusinessEnd, "Business hours end (HH:MM)")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_issues", "When to fire webhook (on_issues|always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := newLogger(opts.Verbose)

	// Load configuration and apply flag overrides; a malformed policy is
	// fatal before any parsing begins.
	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyPolicyFlags(cmd, opts, cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	// Expand input globs
	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	// Extract and segment each export, then merge into one timeline
	segmenter := parser.NewSegmenter(cfg.Phrases.SystemSenders)
	meta := output.Metadata{Sources: files}

	sequences := make([][]*parser.Message, 0, len(files))
	for _, file := range files {
		text, err := extract.FromFile(file)
		if err != nil {
			return err
		}

		result, err := segmenter.Segment(text)
		if err != nil {
			return fmt.Errorf("segmenting %s: %w", file, err)
		}

		for _, d := range result.Diagnostics {
			log.WithFields(logrus.Fields{
				"file": file,
				"line": d.LineNum,
			}).Warnf("discarded line: %s", d.Reason)
		}

		meta.LinesProcessed += result.Lines
		meta.DiscardedLines += len(result.Diagnostics)
		sequences = append(sequences, result.Messages)
	}

	merged := parser.MergeChronological(sequences...)

	// Run the journey pipeline
	result, err := journey.Analyze(merged, cfg)
	if err != nil {
		if errors.Is(err, parser.ErrNoRecords) || errors.Is(err, parser.ErrOnlyMediaRecords) {
			// Data problem, not a runtime fault: empty report plus the
			// error description.
			fmt.Fprintf(os.Stderr, "No report: %v\n", err)
			ExitCode = 1
			return nil
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	meta.Messages = len(merged)
	report := output.NewReport(result, meta)

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if opts.Excel != "" {
		if err := export.Excel(report, opts.Excel); err != nil {
			return fmt.Errorf("exporting to Excel: %w", err)
		}
		log.Infof("wrote workbook %s", opts.Excel)
	}

	// Send webhooks (errors logged but don't fail analysis)
	sendWebhooks(ctx, cfg, opts, report)

	if report.HasIssues() {
		ExitCode = 1
	}

	return nil
}

// newLogger builds the stderr diagnostics logger. The core packages return
// diagnostics as data; logging happens only here.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// applyPolicyFlags overlays explicitly set flags onto the loaded config.
func applyPolicyFlags(cmd *cobra.Command, opts *AnalyzeOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("salary") {
		cfg.Policy.GrossSalary = opts.Salary
	}
	if flags.Changed("daily-hours") {
		cfg.Policy.DailyTargetHours = opts.DailyHours
	}
	if flags.Changed("weekly-hours") {
		cfg.Policy.WeeklyTargetHours = opts.WeeklyHours
	}
	if flags.Changed("break-hours") {
		cfg.Policy.BreakHours = opts.BreakHours
	}
	if flags.Changed("business-start") {
		cfg.Policy.BusinessStart = opts.BusinessStart
	}
	if flags.Changed("business-end") {
		cfg.Policy.BusinessEnd = opts.BusinessEnd
	}
}

func createFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the analysis.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *AnalyzeOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasIssues()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnIssues
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire based on trigger and issues.
func shouldFireWebhook(trigger config.WebhookTrigger, hasIssues bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasIssues
	}
}
