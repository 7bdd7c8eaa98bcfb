// =============================================================================
// Artifact Engine - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs the configuration
// preflight without generating any documents. Useful for checking a
// config.yaml in CI before a large batch run.
//
// COMMAND USAGE:
//   artifact-engine validate [--config path]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artifex-labs/artifact-engine/internal/config"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration without generating documents",
	Long: `The validate command loads the configuration file, applies defaults and runs
the same preflight validation the generate command uses. Batch composition is
not checked (counts usually come from generate flags); everything else is.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Counts are normally supplied per run; pin one document so the
		// zero-documents rule does not mask other problems.
		probe := *cfg
		if probe.Invoices+probe.Receipts+probe.Statements == 0 {
			probe.Invoices = 1
		}

		if err := probe.Validate(); err != nil {
			return err
		}

		fmt.Printf("Configuration OK (%s)\n", cfgFile)
		fmt.Printf("  Entries per page: %d\n", cfg.EntriesPerPage)
		fmt.Printf("  Tax rates:        %v\n", cfg.TaxRates)
		fmt.Printf("  Currency:         %s\n", cfg.Currency)
		fmt.Printf("  Workers:          %d\n", cfg.Workers)
		fmt.Printf("  Output directory: %s\n", cfg.OutputDir)
		return nil
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}
