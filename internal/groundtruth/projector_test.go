package groundtruth

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/artifex-labs/artifact-engine/internal/assembler"
	"github.com/artifex-labs/artifact-engine/internal/config"
	"github.com/artifex-labs/artifact-engine/internal/types"
)

// testDocument assembles a real document so projection is exercised against
// the full pipeline output rather than hand-built fixtures.
func testDocument(t *testing.T, mutate func(cfg *config.Config), docType types.DocumentType, seed int64) *types.Document {
	t.Helper()

	cfg, err := config.Load("testdata-no-such-config.yaml")
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	cfg.Invoices = 1
	cfg.ReferenceDate = "2025-06-30"
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test configuration invalid: %v", err)
	}

	doc, err := assembler.New(cfg).Assemble(docType, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return doc
}

func TestFilenameConvention(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber int
		pageCount  int
		want       string
	}{
		{"single page", 1, 1, "doc-1.png"},
		{"first of three", 1, 3, "doc-1_page1.png"},
		{"third of three", 3, 3, "doc-1_page3.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename("doc-1", tt.pageNumber, tt.pageCount, DefaultImageExt)
			if got != tt.want {
				t.Errorf("Filename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProjectOneRowPerEntry(t *testing.T) {
	doc := testDocument(t, nil, types.DocumentTypeInvoice, 7)

	rows := Project(doc)
	if len(rows) != len(doc.Body) {
		t.Fatalf("got %d rows, want one per body entry (%d)", len(rows), len(doc.Body))
	}

	for i, row := range rows {
		if row.DocumentID != doc.ID {
			t.Errorf("row %d carries id %q, want %q", i, row.DocumentID, doc.ID)
		}
		if row.EntryIndex != i {
			t.Errorf("row %d has entry index %d", i, row.EntryIndex)
		}
		if row.EntryDescription != doc.Body[i].Description {
			t.Errorf("row %d description %q != entry %q", i, row.EntryDescription, doc.Body[i].Description)
		}
		// Every row is self-contained: header and aggregates repeated.
		if row.DocumentNumber != doc.Header.DocumentNumber {
			t.Errorf("row %d missing document number", i)
		}
		if !row.Subtotal.Equal(doc.Totals.Subtotal) || !row.Total.Equal(doc.Totals.Total) {
			t.Errorf("row %d aggregates not repeated", i)
		}
	}
}

func TestProjectSinglePageFilename(t *testing.T) {
	doc := testDocument(t, nil, types.DocumentTypeReceipt, 3)
	if doc.PageCount() != 1 {
		t.Fatalf("fixture spans %d pages, want 1", doc.PageCount())
	}

	want := doc.ID + ".png"
	for i, row := range Project(doc) {
		if row.Filename != want {
			t.Errorf("row %d filename %q, want %q", i, row.Filename, want)
		}
		if row.PageNumber != 1 {
			t.Errorf("row %d page number %d, want 1", i, row.PageNumber)
		}
	}
}

func TestProjectMultiPagePageNumbersMatchFilenames(t *testing.T) {
	doc := testDocument(t, func(cfg *config.Config) {
		cfg.StatementTransactions = config.EntryBounds{Min: 120, Max: 120}
		cfg.EntriesPerPage = 50
	}, types.DocumentTypeBankStatement, 11)

	if doc.PageCount() != 3 {
		t.Fatalf("fixture spans %d pages, want 3", doc.PageCount())
	}

	rows := Project(doc)
	if len(rows) != 120 {
		t.Fatalf("got %d rows, want 120", len(rows))
	}

	pageRows := make(map[int]int)
	for i, row := range rows {
		want := fmt.Sprintf("%s_page%d.png", doc.ID, row.PageNumber)
		if row.Filename != want {
			t.Errorf("row %d filename %q disagrees with page number %d", i, row.Filename, row.PageNumber)
		}
		if row.EntryIndex != i {
			t.Errorf("row %d entry index %d, body order broken across pages", i, row.EntryIndex)
		}
		pageRows[row.PageNumber]++
	}

	for page, want := range map[int]int{1: 50, 2: 50, 3: 20} {
		if pageRows[page] != want {
			t.Errorf("page %d has %d rows, want %d", page, pageRows[page], want)
		}
	}
}

func TestProjectStatementRowsCarryLedgerFields(t *testing.T) {
	doc := testDocument(t, nil, types.DocumentTypeBankStatement, 19)

	for i, row := range Project(doc) {
		if !row.OpeningBalance.Equal(doc.Ledger.OpeningBalance) {
			t.Errorf("row %d opening balance not repeated", i)
		}
		if !row.ClosingBalance.Equal(doc.Ledger.ClosingBalance) {
			t.Errorf("row %d closing balance not repeated", i)
		}
		if !row.RunningBalance.Equal(doc.Body[i].Balance) {
			t.Errorf("row %d running balance %s != entry balance %s", i, row.RunningBalance, doc.Body[i].Balance)
		}
	}
}

func TestProjectEmptyBodyYieldsNoRowsButSummaryExists(t *testing.T) {
	doc := &types.Document{
		ID:   "empty-doc",
		Type: types.DocumentTypeInvoice,
		Header: types.DocumentHeader{
			DocumentNumber: "INV-0000-AAAA",
			Currency:       "GBP",
		},
		Totals: &types.FinancialTotals{
			Subtotal:  decimal.Zero,
			TaxRate:   decimal.RequireFromString("0.20"),
			TaxAmount: decimal.Zero,
			Total:     decimal.Zero,
		},
		Pages: []types.Page{{Number: 1}},
	}

	if rows := Project(doc); len(rows) != 0 {
		t.Errorf("empty body projected %d rows, want 0", len(rows))
	}

	summary := Summarize(doc)
	if summary.DocumentID != "empty-doc" {
		t.Errorf("summary id = %q", summary.DocumentID)
	}
	if summary.EntryCount != 0 || summary.PageCount != 1 {
		t.Errorf("summary counts = %d entries / %d pages, want 0 / 1", summary.EntryCount, summary.PageCount)
	}
	if !summary.Total.IsZero() {
		t.Errorf("summary total = %s, want zero", summary.Total)
	}
}

func TestSummarizeAggregates(t *testing.T) {
	doc := testDocument(t, nil, types.DocumentTypeInvoice, 23)

	summary := Summarize(doc)
	if summary.DocumentID != doc.ID || summary.DocumentType != doc.Type {
		t.Error("summary identity fields do not match the document")
	}
	if summary.EntryCount != len(doc.Body) {
		t.Errorf("EntryCount = %d, want %d", summary.EntryCount, len(doc.Body))
	}
	if summary.PageCount != doc.PageCount() {
		t.Errorf("PageCount = %d, want %d", summary.PageCount, doc.PageCount())
	}
	if !summary.Total.Equal(doc.Totals.Total) {
		t.Errorf("Total = %s, want %s", summary.Total, doc.Totals.Total)
	}
}
