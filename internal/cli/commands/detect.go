package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ponto-labs/jornada/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <export-file>",
		Short: "Check whether a file looks like a parseable chat export",
		Long: `Sample lines from a chat-export file and report how many open a
timestamped message, which opening style prevails and whether day/month
ordering is ambiguous in the sample.

Optionally generates a starter policy config with --write-config.

Example:
  jornada detect export.txt
  jornada detect --sample 500 big-export.txt
  jornada detect -w jornada.yaml export.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	exportFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(exportFile); os.IsNotExist(err) {
		return fmt.Errorf("export file not found: %s", exportFile)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := d.DetectFromFile(ctx, exportFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(opts.WriteConfig); err != nil {
			return err
		}
		fmt.Printf("Wrote starter config to %s\n", opts.WriteConfig)
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(result, exportFile)
	default:
		return outputDetectText(result, exportFile)
	}
}

func outputDetectText(result *detector.Result, exportFile string) error {
	fmt.Printf("File: %s\n\n", exportFile)
	fmt.Printf("Sampled lines:   %d\n", result.SampledLines)
	fmt.Printf("Message lines:   %d (%.0f%%)\n", result.MatchedLines, result.Confidence*100)

	if result.MatchedLines == 0 {
		fmt.Println("\nNo message-opening lines found. This file does not look like a chat export.")
		return nil
	}

	fmt.Printf("Opening style:   %s\n", result.BracketStyle)
	fmt.Printf("Example line:    %s\n", result.SampleLine)

	if result.AmbiguityNote != "" {
		fmt.Printf("\nNote: %s\n", result.AmbiguityNote)
	}

	return nil
}

func outputDetectJSON(result *detector.Result, exportFile string) error {
	payload := struct {
		File string `json:"file"`
		*detector.Result
	}{File: exportFile, Result: result}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// writeStarterConfig writes a commented default policy config. Refuses to
// overwrite an existing file.
func writeStarterConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists, not overwriting", path)
	}

	starter := `# jornada policy configuration
policy:
  daily_target_hours: 8.0
  weekly_target_hours: 44.0
  break_hours: 1.0
  gross_salary: 0.0          # or set JORNADA_GROSS_SALARY
  business_start: "08:00"
  business_end: "18:00"

# phrases:
#   media_placeholders: ["message deleted", "image omitted"]
#   system_senders: ["encryption", "contact list"]

# webhooks:
#   - name: payroll
#     url: https://example.com/hook
#     token: ${JORNADA_WEBHOOK_TOKEN}
#     trigger: on_issues
`

	if err := os.WriteFile(path, []byte(starter), 0o600); err != nil {
		return fmt.Errorf("writing starter config: %w", err)
	}

	return nil
}
