package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ponto-labs/jornada/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a policy config file",
		Long: `Validate a policy config file and print the effective settings.

Example:
  jornada validate jornada.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config is invalid: %w", err)
	}

	fmt.Printf("Config %s is valid\n\n", configPath)
	fmt.Println("Policy:")
	fmt.Printf("  Daily target:   %.2fh (break included)\n", cfg.Policy.DailyTargetHours)
	fmt.Printf("  Weekly target:  %.2fh\n", cfg.Policy.WeeklyTargetHours)
	fmt.Printf("  Break:          %.2fh\n", cfg.Policy.BreakHours)
	fmt.Printf("  Business hours: %s-%s\n", cfg.Policy.BusinessStart, cfg.Policy.BusinessEnd)
	if cfg.Policy.GrossSalary > 0 {
		fmt.Printf("  Gross salary:   %.2f\n", cfg.Policy.GrossSalary)
	} else {
		fmt.Println("  Gross salary:   not set (overtime cost will be zero)")
	}

	fmt.Printf("\nPhrases: %d media placeholder(s), %d system sender(s)\n",
		len(cfg.Phrases.MediaPlaceholders), len(cfg.Phrases.SystemSenders))

	if len(cfg.Webhooks) > 0 {
		fmt.Printf("\nWebhooks: %d\n", len(cfg.Webhooks))
		for _, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Printf("  - %s (trigger: %s, timeout: %s)\n", name, wh.Trigger, wh.Timeout)
		}
	}

	return nil
}
