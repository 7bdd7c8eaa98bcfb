// =============================================================================
// Artifact Engine - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (artifact-engine)
//   ├── generateCmd (artifact-engine generate)
//   ├── validateCmd (artifact-engine validate)
//   └── versionCmd (artifact-engine version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug-level logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "artifact-engine",

	Short: "Artifact Engine - Fabricate internally consistent synthetic financial documents",

	Long: `Artifact Engine fabricates synthetic financial documents (invoices,
receipts, bank statements) whose every derived numeric field is internally
consistent, for use as labeled ground truth when testing document-extraction
systems.

Key Guarantees:
  - Every total, tax amount and running balance is exact minor-unit arithmetic
  - Oversized documents are paginated with balance continuity across pages
  - Seeded runs reproduce bit-identical batches regardless of worker count
  - One document's failure never affects its batch siblings

Example Usage:
  artifact-engine generate --invoices 20 --receipts 30     # Mixed batch
  artifact-engine generate --statements 10 --seed 42       # Reproducible batch
  artifact-engine validate                                 # Check configuration only`,

	// If no subcommand is provided, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags shared by all subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}
