package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ponto-labs/jornada/pkg/config"
	"github.com/ponto-labs/jornada/pkg/detector"
	"github.com/ponto-labs/jornada/pkg/extract"
	"github.com/ponto-labs/jornada/pkg/parser"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Config  string
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <export-file>...",
		Short: "Diagnose common input and configuration issues",
		Long: `Diagnose common problems before running an analysis.

This command checks:
- Export file existence, readability and type support
- Whether export lines open timestamped messages
- Policy config syntax and values (with --config)
- Webhook configuration validity

Example:
  jornada diagnose export.txt
  jornada diagnose -c jornada.yaml export.txt
  jornada diagnose -v -c jornada.yaml exports/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Policy config file to check")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, args []string, opts *DiagnoseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	results := []DiagnosticResult{}

	// 1. Config file, when one was given
	if opts.Config != "" {
		result := checkConfigExists(opts.Config)
		results = append(results, result)
		if result.Status != "error" {
			cfg, parseResult := checkConfigParseable(ctx, opts.Config)
			results = append(results, parseResult)
			if cfg != nil {
				results = append(results, checkWebhooks(cfg, opts)...)
			}
		}
	}

	// 2. Export files
	files, err := parser.ExpandGlobs(args)
	if err != nil {
		results = append(results, DiagnosticResult{
			Check:    "Export Inputs",
			Status:   "error",
			Message:  fmt.Sprintf("Invalid input pattern: %v", err),
			Suggests: []string{"Check the glob pattern syntax"},
		})
		printDiagnostics(results, opts)
		return nil
	}
	fileResults, readable := checkExportFiles(files)
	results = append(results, fileResults...)

	// 3. Opening-line test against the first readable export
	if len(readable) > 0 {
		results = append(results, checkMessageOpenings(ctx, readable[0], opts)...)
	}

	printDiagnostics(results, opts)
	return nil
}

func checkConfigExists(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Config File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Config file not found: %s", path)
		result.Suggests = []string{
			"Check the file path is correct",
			"Use 'jornada detect <export-file> --write-config jornada.yaml' to generate a starter config",
		}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access config file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "Config file is empty"
		result.Suggests = []string{
			"Use 'jornada detect <export-file> --write-config jornada.yaml' to generate a starter config",
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkConfigParseable(ctx context.Context, path string) (*config.Config, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Config Syntax",
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to parse config: %v", err)
		if strings.Contains(err.Error(), "yaml") {
			result.Suggests = []string{
				"Check YAML syntax - ensure proper indentation (use spaces, not tabs)",
			}
		}
		return nil, result
	}

	if err := config.Validate(cfg); err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Config is invalid: %v", err)
		return nil, result
	}

	result.Status = "ok"
	result.Message = "Config file parsed and validated"
	result.Details = []string{
		fmt.Sprintf("Daily target: %.2fh, weekly target: %.2fh, break: %.2fh",
			cfg.Policy.DailyTargetHours, cfg.Policy.WeeklyTargetHours, cfg.Policy.BreakHours),
		fmt.Sprintf("Business hours: %s-%s", cfg.Policy.BusinessStart, cfg.Policy.BusinessEnd),
		fmt.Sprintf("Webhooks: %d", len(cfg.Webhooks)),
	}
	if cfg.Policy.GrossSalary <= 0 {
		result.Status = "warning"
		result.Message = "Config is valid but gross_salary is not set; overtime cost will be zero"
		result.Suggests = []string{
			"Set policy.gross_salary or the JORNADA_GROSS_SALARY env var",
		}
	}
	return cfg, result
}

// checkExportFiles checks each export input and returns the ones that look
// readable.
func checkExportFiles(files []string) ([]DiagnosticResult, []string) {
	results := []DiagnosticResult{}
	readable := []string{}

	for _, file := range files {
		result := DiagnosticResult{
			Check: fmt.Sprintf("Export: %s", file),
		}

		info, err := os.Stat(file)
		switch {
		case os.IsNotExist(err):
			result.Status = "error"
			result.Message = "File does not exist"
			result.Suggests = []string{"Check if the export file path is correct"}
		case err != nil:
			result.Status = "error"
			result.Message = fmt.Sprintf("Cannot access file: %v", err)
			result.Suggests = []string{"Check file permissions"}
		case info.IsDir():
			result.Status = "error"
			result.Message = "Path is a directory, not a file"
			result.Suggests = []string{
				"Use a glob pattern to match files in the directory",
				"Example: exports/*.txt",
			}
		case info.Size() == 0:
			result.Status = "warning"
			result.Message = "File is empty (0 bytes)"
		default:
			if !extract.Supported(file) {
				result.Status = "warning"
				result.Message = fmt.Sprintf("Unrecognized extension %s; file will be read as plain text", filepath.Ext(file))
			} else {
				result.Status = "ok"
				result.Message = fmt.Sprintf("File exists (%d bytes)", info.Size())
			}
			readable = append(readable, file)
		}

		results = append(results, result)
	}

	if len(readable) == 0 {
		results = append(results, DiagnosticResult{
			Check:   "Export Files Summary",
			Status:  "error",
			Message: "No accessible export files found",
			Suggests: []string{
				"Ensure at least one export file exists and is readable",
			},
		})
	}

	return results, readable
}

// checkMessageOpenings samples the first export and reports how many lines
// open a timestamped message.
func checkMessageOpenings(ctx context.Context, file string, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	result := DiagnosticResult{
		Check: fmt.Sprintf("Message Openings: %s", filepath.Base(file)),
	}

	d := detector.New(detector.WithSampleSize(50))
	detResult, err := d.DetectFromFile(ctx, file)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot sample file: %v", err)
		results = append(results, result)
		return results
	}

	switch {
	case detResult.SampledLines == 0:
		result.Status = "warning"
		result.Message = "File contains no non-empty lines"
	case detResult.MatchedLines == 0:
		result.Status = "error"
		result.Message = "No line in the sample opens a timestamped message"
		result.Suggests = []string{
			"This file does not look like a chat export",
			"Expected lines like '[05/06/2024, 09:00] Alice: Hello'",
		}
	case detResult.Confidence < 0.5:
		result.Status = "warning"
		result.Message = fmt.Sprintf("Only %d/%d sampled lines open a message", detResult.MatchedLines, detResult.SampledLines)
		result.Details = []string{
			"Unmatched lines are treated as continuations of the previous message",
			"Long free-form messages make this normal",
		}
	default:
		result.Status = "ok"
		result.Message = fmt.Sprintf("%d/%d sampled lines open a message", detResult.MatchedLines, detResult.SampledLines)
		if opts.Verbose && detResult.SampleLine != "" {
			result.Details = []string{
				"Sample opening:",
				truncate(detResult.SampleLine, 80),
			}
		}
	}

	if detResult.AmbiguityNote != "" {
		result.Details = append(result.Details, detResult.AmbiguityNote)
	}

	results = append(results, result)
	return results
}

func printDiagnostics(results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Println("=== Jornada Diagnostics ===")
	fmt.Println()

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		// Status icon
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Printf("[%s] %s\n", icon, r.Check)
		fmt.Printf("    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Printf("      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Printf("      Hint: %s\n", s)
		}

		fmt.Println()
	}

	// Summary
	fmt.Println("---")
	fmt.Printf("Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Println("\nFix the errors above before running analysis.")
	} else if warnCount > 0 {
		fmt.Println("\nInputs are usable but have warnings.")
	} else {
		fmt.Println("\nEverything looks good!")
	}
}

func checkWebhooks(cfg *config.Config, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	if len(cfg.Webhooks) == 0 {
		// Webhooks are optional, just note they're not configured
		if opts.Verbose {
			results = append(results, DiagnosticResult{
				Check:   "Webhooks",
				Status:  "ok",
				Message: "No webhooks configured (optional)",
			})
		}
		return results
	}

	for _, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		result := DiagnosticResult{
			Check: fmt.Sprintf("Webhook: %s", name),
		}

		issues := []string{}
		warnings := []string{}

		// Check URL
		if wh.URL == "" {
			issues = append(issues, "Missing url")
		} else {
			u, err := url.Parse(wh.URL)
			if err != nil {
				issues = append(issues, fmt.Sprintf("Invalid URL: %v", err))
			} else if u.Scheme != "http" && u.Scheme != "https" {
				issues = append(issues, fmt.Sprintf("URL scheme must be http or https, got %q", u.Scheme))
			} else if u.Host == "" {
				issues = append(issues, "URL must have a host")
			}
		}

		// Check trigger
		if wh.Trigger != "" {
			switch wh.Trigger {
			case config.WebhookTriggerOnIssues, config.WebhookTriggerAlways, config.WebhookTriggerNever:
				// Valid
			default:
				issues = append(issues, fmt.Sprintf("Invalid trigger %q (use on_issues, always, or never)", wh.Trigger))
			}
		}

		// Check if token looks like an unexpanded env var
		if strings.HasPrefix(wh.Token, "${") || strings.HasPrefix(wh.Token, "$") {
			warnings = append(warnings, fmt.Sprintf("Token appears to be an unresolved env var: %s", wh.Token))
		}

		if len(issues) > 0 {
			result.Status = "error"
			result.Message = fmt.Sprintf("%d configuration issue(s)", len(issues))
			result.Details = issues
		} else if len(warnings) > 0 {
			result.Status = "warning"
			result.Message = fmt.Sprintf("%d warning(s)", len(warnings))
			result.Details = warnings
		} else {
			result.Status = "ok"
			result.Message = fmt.Sprintf("Trigger: %s", wh.Trigger)
			if opts.Verbose {
				result.Details = []string{
					fmt.Sprintf("URL: %s", wh.URL),
					fmt.Sprintf("Timeout: %s", wh.Timeout),
				}
				if wh.Token != "" {
					result.Details = append(result.Details, "Token: configured")
				}
			}
		}

		results = append(results, result)
	}

	// Optionally test webhook connectivity
	if opts.Verbose {
		for _, wh := range cfg.Webhooks {
			if wh.URL == "" {
				continue
			}

			name := wh.Name
			if name == "" {
				name = wh.URL
			}

			result := checkWebhookConnectivity(wh)
			result.Check = fmt.Sprintf("Webhook Connectivity: %s", name)
			results = append(results, result)
		}
	}

	return results
}

func checkWebhookConnectivity(wh config.WebhookConfig) DiagnosticResult {
	result := DiagnosticResult{}

	// Just do a HEAD request to check if the endpoint is reachable
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	req, err := http.NewRequest(http.MethodHead, wh.URL, nil)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot create request: %v", err)
		return result
	}

	if wh.Token != "" {
		req.Header.Set("Authorization", "Bearer "+wh.Token)
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot connect: %v", err)
		result.Suggests = []string{
			"Check if the webhook URL is correct",
			"Verify network connectivity",
		}
		return result
	}
	defer resp.Body.Close()

	// Any response (even 4xx/5xx) means the server is reachable
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.Status = "ok"
		result.Message = fmt.Sprintf("Reachable (status %d)", resp.StatusCode)
	} else {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Reachable but returned status %d", resp.StatusCode)
		result.Suggests = []string{
			"The endpoint may require POST method (will work during actual webhook send)",
			"Check authentication if using a token",
		}
	}

	return result
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
