package pagination

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/artifex-labs/artifact-engine/internal/consistency"
	"github.com/artifex-labs/artifact-engine/internal/types"
)

// statementBody builds n ordered transactions with running balances attached,
// each a 1.00 credit, starting from the given opening balance.
func statementBody(t *testing.T, n int, opening decimal.Decimal) ([]types.LedgerEntry, types.AccountLedger) {
	t.Helper()

	one := decimal.RequireFromString("1.00")
	txns := make([]types.LedgerEntry, n)
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := range txns {
		txns[i] = types.LedgerEntry{
			Kind:        types.EntryKindTransaction,
			Description: "SALARY PAYMENT",
			Date:        base.Add(time.Duration(i) * time.Hour),
			Credit:      one,
		}
	}

	ledger, err := consistency.ComputeRunningBalances(opening, txns)
	if err != nil {
		t.Fatalf("ComputeRunningBalances failed: %v", err)
	}
	return txns, ledger
}

func TestPlanPagesSplitsAtCapacity(t *testing.T) {
	opening := decimal.RequireFromString("100.00")
	txns, ledger := statementBody(t, 120, opening)

	pages, err := PlanPages(txns, 50, opening)
	if err != nil {
		t.Fatalf("PlanPages failed: %v", err)
	}

	wantSizes := []int{50, 50, 20}
	if len(pages) != len(wantSizes) {
		t.Fatalf("got %d pages, want %d", len(pages), len(wantSizes))
	}
	for i, page := range pages {
		if size := page.End - page.Start; size != wantSizes[i] {
			t.Errorf("page %d size = %d, want %d", i+1, size, wantSizes[i])
		}
		if page.Number != i+1 {
			t.Errorf("page %d numbered %d", i+1, page.Number)
		}
	}

	if err := VerifyPages(pages, len(txns), opening, ledger.ClosingBalance); err != nil {
		t.Errorf("VerifyPages rejected planned pages: %v", err)
	}
}

func TestPlanPagesBalanceContinuity(t *testing.T) {
	opening := decimal.RequireFromString("0.00")
	txns, ledger := statementBody(t, 75, opening)

	pages, err := PlanPages(txns, 30, opening)
	if err != nil {
		t.Fatalf("PlanPages failed: %v", err)
	}

	if !pages[0].StartingBalance.Equal(opening) {
		t.Errorf("page 1 starting balance = %s, want opening %s", pages[0].StartingBalance, opening)
	}
	for i := 1; i < len(pages); i++ {
		if !pages[i].StartingBalance.Equal(pages[i-1].EndingBalance) {
			t.Errorf("page %d starting balance %s != page %d ending balance %s",
				i+1, pages[i].StartingBalance, i, pages[i-1].EndingBalance)
		}
	}
	last := pages[len(pages)-1]
	if !last.EndingBalance.Equal(ledger.ClosingBalance) {
		t.Errorf("final ending balance = %s, want closing %s", last.EndingBalance, ledger.ClosingBalance)
	}
}

func TestPlanPagesLosslessCoverage(t *testing.T) {
	opening := decimal.Zero
	txns, _ := statementBody(t, 101, opening)

	pages, err := PlanPages(txns, 7, opening)
	if err != nil {
		t.Fatalf("PlanPages failed: %v", err)
	}

	next := 0
	for _, page := range pages {
		if page.Start != next {
			t.Fatalf("page %d starts at %d, want %d", page.Number, page.Start, next)
		}
		next = page.End
	}
	if next != len(txns) {
		t.Errorf("pages cover %d entries, want %d", next, len(txns))
	}
}

func TestPlanPagesSingleShortPage(t *testing.T) {
	opening := decimal.RequireFromString("10.00")
	txns, ledger := statementBody(t, 3, opening)

	pages, err := PlanPages(txns, 50, opening)
	if err != nil {
		t.Fatalf("PlanPages failed: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if pages[0].Start != 0 || pages[0].End != 3 {
		t.Errorf("page range [%d, %d), want [0, 3)", pages[0].Start, pages[0].End)
	}
	if !pages[0].EndingBalance.Equal(ledger.ClosingBalance) {
		t.Errorf("ending balance = %s, want %s", pages[0].EndingBalance, ledger.ClosingBalance)
	}
}

func TestPlanPagesEmptyBody(t *testing.T) {
	opening := decimal.RequireFromString("42.00")

	pages, err := PlanPages(nil, 50, opening)
	if err != nil {
		t.Fatalf("PlanPages failed: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want exactly one empty page", len(pages))
	}

	page := pages[0]
	if page.Start != 0 || page.End != 0 {
		t.Errorf("empty page range [%d, %d), want [0, 0)", page.Start, page.End)
	}
	if !page.StartingBalance.Equal(opening) || !page.EndingBalance.Equal(opening) {
		t.Errorf("empty page balances %s/%s, want opening %s on both ends",
			page.StartingBalance, page.EndingBalance, opening)
	}

	if err := VerifyPages(pages, 0, opening, opening); err != nil {
		t.Errorf("VerifyPages rejected the empty page: %v", err)
	}
}

func TestPlanPagesRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -50} {
		if _, err := PlanPages(nil, capacity, decimal.Zero); err == nil {
			t.Errorf("PlanPages accepted capacity %d", capacity)
		}
	}
}

func TestVerifyPagesDetectsDefects(t *testing.T) {
	opening := decimal.Zero
	txns, ledger := statementBody(t, 60, opening)

	plan := func() []types.Page {
		pages, err := PlanPages(txns, 25, opening)
		if err != nil {
			t.Fatalf("PlanPages failed: %v", err)
		}
		return pages
	}

	tests := []struct {
		name   string
		mutate func(pages []types.Page) []types.Page
	}{
		{"no pages", func(pages []types.Page) []types.Page { return nil }},
		{"renumbered page", func(pages []types.Page) []types.Page {
			pages[1].Number = 5
			return pages
		}},
		{"coverage gap", func(pages []types.Page) []types.Page {
			pages[1].Start++
			return pages
		}},
		{"broken continuity", func(pages []types.Page) []types.Page {
			pages[1].StartingBalance = pages[1].StartingBalance.Add(decimal.RequireFromString("0.01"))
			return pages
		}},
		{"truncated coverage", func(pages []types.Page) []types.Page {
			return pages[:len(pages)-1]
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := tt.mutate(plan())
			if err := VerifyPages(pages, len(txns), opening, ledger.ClosingBalance); err == nil {
				t.Error("VerifyPages accepted a defective plan")
			}
		})
	}
}
