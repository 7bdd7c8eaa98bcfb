// =============================================================================
// Artifact Engine - File Manager Utility
// =============================================================================
//
// This module provides the file-side plumbing around a generation run:
//   - Output directory management
//   - Defect log generation (one entry per failed document)
//   - Run summary log generation
//
// The fabrication core itself performs no I/O; everything here runs strictly
// after a batch completes.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates the directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// =============================================================================
// DEFECT LOG GENERATION
// =============================================================================

// DefectLogEntry records one per-document generation failure for the run log.
type DefectLogEntry struct {
	Timestamp    time.Time
	Ordinal      int
	DocumentType string
	ErrorMessage string
}

// WriteDefectLog writes the per-document failures of a run to a timestamped
// log file in outputDir. With no entries, no file is written and an empty
// path is returned.
func WriteDefectLog(entries []DefectLogEntry, outputDir string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	timestamp := time.Now().Format("20060102_150405")
	logPath := filepath.Join(outputDir, fmt.Sprintf("defect_log_%s.txt", timestamp))

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create defect log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	header := fmt.Sprintf("Artifact Engine - Defect Log\n"+
		"Generated: %s\n"+
		"Total Defects: %d\n"+
		"================================================================================\n\n",
		time.Now().Format("2006-01-02 15:04:05"),
		len(entries))
	writer.WriteString(header)

	for i, entry := range entries {
		writer.WriteString(fmt.Sprintf("Defect #%d\n"+
			"  Timestamp:     %s\n"+
			"  Ordinal:       %d\n"+
			"  Document Type: %s\n"+
			"  Message:       %s\n\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Ordinal,
			entry.DocumentType,
			entry.ErrorMessage))
	}

	writer.WriteString("================================================================================\n" +
		"End of Defect Log\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush defect log: %w", err)
	}

	return logPath, nil
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary contains summary information about one generation run.
type RunSummary struct {
	StartTime       time.Time
	EndTime         time.Time
	TotalRequested  int
	TotalGenerated  int
	TotalFailed     int
	TotalSkipped    int
	TotalEntries    int
	TotalPages      int
	OutputWorkbooks []string
}

// WriteSummaryLog writes a run summary to a timestamped log file in outputDir.
func WriteSummaryLog(summary RunSummary, outputDir string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	summaryPath := filepath.Join(outputDir, fmt.Sprintf("run_summary_%s.txt", timestamp))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	writer.WriteString(fmt.Sprintf("Artifact Engine - Run Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Start Time: %s\n"+
		"  End Time:   %s\n"+
		"  Duration:   %s\n\n"+
		"Statistics:\n"+
		"  Documents Requested: %d\n"+
		"  Documents Generated: %d\n"+
		"  Documents Failed:    %d\n"+
		"  Documents Skipped:   %d\n"+
		"  Total Entries:       %d\n"+
		"  Total Pages:         %d\n\n",
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.TotalRequested,
		summary.TotalGenerated,
		summary.TotalFailed,
		summary.TotalSkipped,
		summary.TotalEntries,
		summary.TotalPages))

	if len(summary.OutputWorkbooks) > 0 {
		writer.WriteString("Output Workbooks:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, wb := range summary.OutputWorkbooks {
			writer.WriteString(fmt.Sprintf("  %s\n", wb))
		}
		writer.WriteString("\n")
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}
