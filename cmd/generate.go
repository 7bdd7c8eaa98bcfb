// =============================================================================
// Artifact Engine - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full fabrication
// batch and writes the ground-truth workbooks.
//
// COMMAND USAGE:
//   artifact-engine generate [flags]
//
// FLAGS:
//   --invoices    : Number of invoices to generate
//   --receipts    : Number of receipts to generate
//   --statements  : Number of bank statements to generate
//   --seed        : Batch seed for reproducible generation
//   --output      : Output directory for workbooks and logs
//   --workers     : Number of concurrent fabrication workers
//
// GENERATION PIPELINE:
//   1. Load configuration and overlay CLI flags
//   2. Validate configuration (fatal for the whole batch on failure)
//   3. Fabricate all documents concurrently, isolating per-document defects
//   4. Project ground-truth rows and document summaries per type
//   5. Write one row workbook and one summary workbook per document type
//   6. Write defect and summary logs
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/artifex-labs/artifact-engine/internal/assembler"
	"github.com/artifex-labs/artifact-engine/internal/config"
	"github.com/artifex-labs/artifact-engine/internal/groundtruth"
	"github.com/artifex-labs/artifact-engine/internal/logger"
	"github.com/artifex-labs/artifact-engine/internal/types"
	"github.com/artifex-labs/artifact-engine/internal/xlsxwriter"
	"github.com/artifex-labs/artifact-engine/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// invoiceCount, receiptCount and statementCount override the configured batch
// composition when set.
var invoiceCount int
var receiptCount int
var statementCount int

// seedFlag overrides the configured batch seed when set.
var seedFlag int64

// outputDir overrides the configured output directory when set.
var outputDir string

// workerCount overrides the configured worker count when set.
var workerCount int

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fabricate a batch of synthetic documents and export ground truth",
	Long: `The generate command fabricates the requested batch of synthetic financial
documents, verifies every consistency invariant, and exports the denormalized
ground-truth workbooks.

Documents are fabricated concurrently. Each document is an independent unit of
work: a generation defect in one document is logged and counted, and the rest
of the batch continues.

With --seed, every document's randomness is derived from the seed and the
document's position in the batch, so the same invocation reproduces the same
batch bit for bit no matter how many workers run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&invoiceCount, "invoices", 0, "Number of invoices to generate")
	generateCmd.Flags().IntVar(&receiptCount, "receipts", 0, "Number of receipts to generate")
	generateCmd.Flags().IntVar(&statementCount, "statements", 0, "Number of bank statements to generate")
	generateCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Batch seed for reproducible generation")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().IntVar(&workerCount, "workers", 0, "Number of concurrent workers (overrides config)")
}

// =============================================================================
// MAIN GENERATION FUNCTION
// =============================================================================

// runGenerate orchestrates one generation run end to end.
func runGenerate(cmd *cobra.Command) error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION AND OVERLAY FLAGS
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("invoices") {
		cfg.Invoices = invoiceCount
	}
	if cmd.Flags().Changed("receipts") {
		cfg.Receipts = receiptCount
	}
	if cmd.Flags().Changed("statements") {
		cfg.Statements = statementCount
	}
	if cmd.Flags().Changed("seed") {
		seed := seedFlag
		cfg.Seed = &seed
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if workerCount > 0 {
		cfg.Workers = workerCount
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// =========================================================================
	// STEP 2: PREFLIGHT VALIDATION
	// =========================================================================
	// Configuration problems abort the whole batch here, before any document
	// is generated.

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := utils.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)

	// =========================================================================
	// STEP 3: FABRICATE THE BATCH
	// =========================================================================
	// Ctrl-C stops issuing new documents; in-flight ones complete.

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := assembler.New(cfg).RunBatch(ctx, log)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	// =========================================================================
	// STEP 4: PROJECT AND EXPORT GROUND TRUTH PER DOCUMENT TYPE
	// =========================================================================

	var workbooks []string
	totalEntries := 0
	totalPages := 0

	for _, docType := range types.AllDocumentTypes {
		var rows []types.GroundTruthRow
		var summaries []types.DocumentSummary

		for _, doc := range result.Documents {
			if doc.Type != docType {
				continue
			}
			rows = append(rows, groundtruth.Project(doc)...)
			summaries = append(summaries, groundtruth.Summarize(doc))
			totalEntries += len(doc.Body)
			totalPages += doc.PageCount()
		}

		if len(summaries) == 0 {
			continue
		}

		prefix := string(docType) + "s"
		rowPath := filepath.Join(cfg.OutputDir, prefix+"_ground_truth.xlsx")
		summaryPath := filepath.Join(cfg.OutputDir, prefix+"_summary.xlsx")

		if err := xlsxwriter.WriteGroundTruth(rows, rowPath); err != nil {
			return fmt.Errorf("failed to export %s ground truth: %w", docType, err)
		}
		if err := xlsxwriter.WriteSummaries(summaries, summaryPath); err != nil {
			return fmt.Errorf("failed to export %s summaries: %w", docType, err)
		}

		workbooks = append(workbooks, rowPath, summaryPath)
		log.Info().Str("type", string(docType)).
			Int("rows", len(rows)).
			Int("documents", len(summaries)).
			Str("workbook", rowPath).
			Msg("ground truth exported")
	}

	// =========================================================================
	// STEP 5: WRITE RUN LOGS
	// =========================================================================

	if len(result.Defects) > 0 {
		entries := make([]utils.DefectLogEntry, 0, len(result.Defects))
		for _, defect := range result.Defects {
			entries = append(entries, utils.DefectLogEntry{
				Timestamp:    time.Now(),
				Ordinal:      defect.Ordinal,
				DocumentType: string(defect.Type),
				ErrorMessage: defect.Err.Error(),
			})
		}
		if logPath, err := utils.WriteDefectLog(entries, cfg.OutputDir); err != nil {
			log.Warn().Err(err).Msg("failed to write defect log")
		} else {
			log.Info().Str("path", logPath).Msg("defect log written")
		}
	}

	summary := utils.RunSummary{
		StartTime:       startTime,
		EndTime:         time.Now(),
		TotalRequested:  cfg.Invoices + cfg.Receipts + cfg.Statements,
		TotalGenerated:  len(result.Documents),
		TotalFailed:     len(result.Defects),
		TotalSkipped:    result.Skipped,
		TotalEntries:    totalEntries,
		TotalPages:      totalPages,
		OutputWorkbooks: workbooks,
	}
	if _, err := utils.WriteSummaryLog(summary, cfg.OutputDir); err != nil {
		log.Warn().Err(err).Msg("failed to write summary log")
	}

	// =========================================================================
	// STEP 6: PRINT SUMMARY
	// =========================================================================

	fmt.Println("\n=== Generation Complete ===")
	fmt.Printf("Requested:    %d\n", summary.TotalRequested)
	fmt.Printf("Generated:    %d\n", summary.TotalGenerated)
	fmt.Printf("Failed:       %d\n", summary.TotalFailed)
	if summary.TotalSkipped > 0 {
		fmt.Printf("Skipped:      %d (cancelled)\n", summary.TotalSkipped)
	}
	fmt.Printf("Pages:        %d\n", summary.TotalPages)
	fmt.Printf("Time elapsed: %s\n", result.Elapsed)

	return nil
}
