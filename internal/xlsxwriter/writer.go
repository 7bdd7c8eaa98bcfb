// =============================================================================
// Artifact Engine - Ground Truth Workbook Writer
// =============================================================================
//
// This module serializes projected ground-truth rows and document summaries
// into XLSX workbooks for the extraction-scoring pipeline. One row sheet and
// one summary sheet are written per document type, mirroring the denormalized
// layout the projector emits.
//
// FORMATTING:
//   Monetary cells are written as fixed two-decimal strings so the workbook
//   shows exactly the values the arithmetic produced; nothing is left to
//   spreadsheet float rendering. Fields that do not apply to a document type
//   (credit/debit on an invoice row, quantity on a statement row) are left
//   blank rather than written as zero.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/artifex-labs/artifact-engine/internal/types"
)

// sheetName is the single data sheet in every workbook this package writes.
const sheetName = "Sheet1"

// =============================================================================
// GROUND TRUTH ROWS
// =============================================================================

// groundTruthHeader is the column order of the row-level workbook.
var groundTruthHeader = []interface{}{
	"document_id", "filename", "page_number", "document_type", "document_number",
	"issue_date", "due_date", "period_start", "period_end",
	"sender_name", "sender_address", "recipient_name", "recipient_address",
	"store_name", "payment_method", "card_last_four",
	"bank_name", "account_number", "sort_code",
	"entry_index", "entry_description", "entry_date",
	"quantity", "unit_amount", "amount", "credit", "debit", "running_balance",
	"subtotal", "tax_rate", "tax_amount", "total",
	"opening_balance", "closing_balance", "currency",
}

// WriteGroundTruth writes the denormalized row-level workbook to path.
// An empty row slice produces a header-only workbook.
func WriteGroundTruth(rows []types.GroundTruthRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A1", &groundTruthHeader); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		lineItem := row.DocumentType != types.DocumentTypeBankStatement

		cells := []interface{}{
			row.DocumentID,
			row.Filename,
			row.PageNumber,
			string(row.DocumentType),
			row.DocumentNumber,
			formatDate(row.IssueDate),
			formatDate(row.DueDate),
			formatDate(row.PeriodStart),
			formatDate(row.PeriodEnd),
			row.SenderName,
			row.SenderAddress,
			row.RecipientName,
			row.RecipientAddress,
			row.StoreName,
			row.PaymentMethod,
			row.CardLastFour,
			row.BankName,
			row.AccountNumber,
			row.SortCode,
			row.EntryIndex,
			row.EntryDescription,
			formatDate(row.EntryDate),
			formatIf(lineItem, row.Quantity.String),
			formatMoneyIf(lineItem, row.UnitAmount),
			formatMoneyIf(lineItem, row.Amount),
			formatMoneyIf(!lineItem, row.Credit),
			formatMoneyIf(!lineItem, row.Debit),
			row.RunningBalance.StringFixed(2),
			formatMoneyIf(lineItem, row.Subtotal),
			formatIf(lineItem, row.TaxRate.String),
			formatMoneyIf(lineItem, row.TaxAmount),
			formatMoneyIf(lineItem, row.Total),
			formatMoneyIf(!lineItem, row.OpeningBalance),
			formatMoneyIf(!lineItem, row.ClosingBalance),
			row.Currency,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// DOCUMENT SUMMARIES
// =============================================================================

// summaryHeader is the column order of the summary workbook.
var summaryHeader = []interface{}{
	"document_id", "document_type", "document_number",
	"issue_date", "period_start", "period_end",
	"sender_name", "recipient_name", "store_name", "bank_name",
	"entry_count", "page_count",
	"subtotal", "tax_rate", "tax_amount", "total",
	"opening_balance", "closing_balance", "currency",
}

// WriteSummaries writes the one-row-per-document summary workbook to path.
func WriteSummaries(summaries []types.DocumentSummary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A1", &summaryHeader); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, s := range summaries {
		lineItem := s.DocumentType != types.DocumentTypeBankStatement

		cells := []interface{}{
			s.DocumentID,
			string(s.DocumentType),
			s.DocumentNumber,
			formatDate(s.IssueDate),
			formatDate(s.PeriodStart),
			formatDate(s.PeriodEnd),
			s.SenderName,
			s.RecipientName,
			s.StoreName,
			s.BankName,
			s.EntryCount,
			s.PageCount,
			formatMoneyIf(lineItem, s.Subtotal),
			formatIf(lineItem, s.TaxRate.String),
			formatMoneyIf(lineItem, s.TaxAmount),
			formatMoneyIf(lineItem, s.Total),
			formatMoneyIf(!lineItem, s.OpeningBalance),
			formatMoneyIf(!lineItem, s.ClosingBalance),
			s.Currency,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// CELL FORMATTING HELPERS
// =============================================================================

// formatDate renders a date cell: blank for the zero time, date-only when the
// value has no clock component, full timestamp otherwise (receipt times).
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}

// formatIf renders a value when it applies to the row's document type and a
// blank cell otherwise.
func formatIf(applies bool, format func() string) string {
	if !applies {
		return ""
	}
	return format()
}

// formatMoneyIf renders a fixed two-decimal monetary cell when it applies.
func formatMoneyIf(applies bool, d decimal.Decimal) string {
	if !applies {
		return ""
	}
	return d.StringFixed(2)
}
