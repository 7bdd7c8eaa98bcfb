package xlsxwriter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/artifex-labs/artifact-engine/internal/types"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openSheet(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()

	v, err := f.GetCellValue(sheetName, cell)
	if err != nil {
		t.Fatalf("failed to read cell %s: %v", cell, err)
	}
	return v
}

func TestWriteGroundTruthRoundTrip(t *testing.T) {
	rows := []types.GroundTruthRow{
		{
			DocumentID:       "doc-1",
			Filename:         "doc-1.png",
			PageNumber:       1,
			DocumentType:     types.DocumentTypeInvoice,
			DocumentNumber:   "INV-0042-ABCD",
			IssueDate:        time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			SenderName:       "Northgate Solutions Ltd",
			RecipientName:    "Sarah Collins",
			EntryIndex:       0,
			EntryDescription: "Consulting Services - March",
			EntryDate:        time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			Quantity:         money("2"),
			UnitAmount:       money("10.00"),
			Amount:           money("20.00"),
			RunningBalance:   money("20.00"),
			Subtotal:         money("46.00"),
			TaxRate:          money("0.2"),
			TaxAmount:        money("9.20"),
			Total:            money("55.20"),
			Currency:         "GBP",
		},
	}

	path := filepath.Join(t.TempDir(), "ground_truth.xlsx")
	if err := WriteGroundTruth(rows, path); err != nil {
		t.Fatalf("WriteGroundTruth failed: %v", err)
	}

	f := openSheet(t, path)

	if got := cellValue(t, f, "A1"); got != "document_id" {
		t.Errorf("header A1 = %q, want document_id", got)
	}
	if got := cellValue(t, f, "A2"); got != "doc-1" {
		t.Errorf("A2 = %q, want doc-1", got)
	}
	if got := cellValue(t, f, "B2"); got != "doc-1.png" {
		t.Errorf("filename cell = %q", got)
	}
	if got := cellValue(t, f, "F2"); got != "2025-03-05" {
		t.Errorf("issue date cell = %q, want 2025-03-05", got)
	}
	// Monetary cells carry fixed two-decimal strings.
	if got := cellValue(t, f, "Y2"); got != "20.00" {
		t.Errorf("amount cell = %q, want 20.00", got)
	}
	// Transaction-only columns stay blank on an invoice row.
	if got := cellValue(t, f, "Z2"); got != "" {
		t.Errorf("credit cell = %q, want blank on an invoice", got)
	}
	if got := cellValue(t, f, "AG2"); got != "" {
		t.Errorf("opening balance cell = %q, want blank on an invoice", got)
	}
}

func TestWriteGroundTruthStatementRow(t *testing.T) {
	rows := []types.GroundTruthRow{
		{
			DocumentID:     "doc-2",
			Filename:       "doc-2_page1.png",
			PageNumber:     1,
			DocumentType:   types.DocumentTypeBankStatement,
			DocumentNumber: "STMT-001234",
			PeriodStart:    time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			BankName:       "Meridian Bank",
			EntryIndex:     0,
			EntryDate:      time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC),
			Debit:          money("20.00"),
			RunningBalance: money("80.00"),
			OpeningBalance: money("100.00"),
			ClosingBalance: money("80.00"),
			Currency:       "GBP",
		},
	}

	path := filepath.Join(t.TempDir(), "statements.xlsx")
	if err := WriteGroundTruth(rows, path); err != nil {
		t.Fatalf("WriteGroundTruth failed: %v", err)
	}

	f := openSheet(t, path)

	if got := cellValue(t, f, "AA2"); got != "20.00" {
		t.Errorf("debit cell = %q, want 20.00", got)
	}
	if got := cellValue(t, f, "AG2"); got != "100.00" {
		t.Errorf("opening balance cell = %q, want 100.00", got)
	}
	// Line-item-only columns stay blank on a statement row.
	if got := cellValue(t, f, "W2"); got != "" {
		t.Errorf("quantity cell = %q, want blank on a statement", got)
	}
	if got := cellValue(t, f, "AC2"); got != "" {
		t.Errorf("subtotal cell = %q, want blank on a statement", got)
	}
}

func TestWriteGroundTruthEmptyRowsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteGroundTruth(nil, path); err != nil {
		t.Fatalf("WriteGroundTruth failed: %v", err)
	}

	f := openSheet(t, path)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("workbook has %d rows, want header only", len(rows))
	}
}

func TestWriteSummariesRoundTrip(t *testing.T) {
	summaries := []types.DocumentSummary{
		{
			DocumentID:     "doc-1",
			DocumentType:   types.DocumentTypeReceipt,
			DocumentNumber: "RCP-009876",
			IssueDate:      time.Date(2025, time.April, 12, 14, 30, 0, 0, time.UTC),
			StoreName:      "Harvest Market",
			EntryCount:     4,
			PageCount:      1,
			Subtotal:       money("18.40"),
			TaxRate:        money("0.05"),
			TaxAmount:      money("0.92"),
			Total:          money("19.32"),
			Currency:       "GBP",
		},
		{
			DocumentID:     "doc-2",
			DocumentType:   types.DocumentTypeBankStatement,
			DocumentNumber: "STMT-000321",
			BankName:       "Meridian Bank",
			EntryCount:     120,
			PageCount:      3,
			OpeningBalance: money("100.00"),
			ClosingBalance: money("120.00"),
			Currency:       "GBP",
		},
	}

	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := WriteSummaries(summaries, path); err != nil {
		t.Fatalf("WriteSummaries failed: %v", err)
	}

	f := openSheet(t, path)

	if got := cellValue(t, f, "A1"); got != "document_id" {
		t.Errorf("header A1 = %q, want document_id", got)
	}
	// Receipt timestamp keeps its clock component.
	if got := cellValue(t, f, "D2"); got != "2025-04-12 14:30" {
		t.Errorf("issue date cell = %q, want 2025-04-12 14:30", got)
	}
	if got := cellValue(t, f, "P2"); got != "19.32" {
		t.Errorf("total cell = %q, want 19.32", got)
	}
	// Row 3 is the statement: totals blank, balances populated.
	if got := cellValue(t, f, "P3"); got != "" {
		t.Errorf("statement total cell = %q, want blank", got)
	}
	if got := cellValue(t, f, "R3"); got != "120.00" {
		t.Errorf("closing balance cell = %q, want 120.00", got)
	}
	if got := cellValue(t, f, "L3"); got != "3" {
		t.Errorf("page count cell = %q, want 3", got)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"zero time", time.Time{}, ""},
		{"date only", time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), "2025-01-02"},
		{"with clock", time.Date(2025, time.January, 2, 9, 5, 0, 0, time.UTC), "2025-01-02 09:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDate(tt.input); got != tt.want {
				t.Errorf("formatDate = %q, want %q", got, tt.want)
			}
		})
	}
}
