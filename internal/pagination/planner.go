// =============================================================================
// Artifact Engine - Pagination Planner
// =============================================================================
//
// This module partitions a document body into ordered pages when it exceeds
// the per-page capacity. Pages are index ranges over the body, not copies:
// the ranges are contiguous and non-overlapping, so concatenating all pages
// reproduces the original sequence by construction (nothing dropped,
// duplicated or reordered).
//
// BALANCE CONTINUITY:
//   Entries arrive with running balances already attached by the consistency
//   calculator. Each page carries a starting balance equal to the previous
//   page's ending balance (the document opening balance for the first page)
//   and an ending balance equal to its last entry's running balance, so the
//   final page always ends on the document's closing balance.
//
// =============================================================================

package pagination

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/artifex-labs/artifact-engine/internal/types"
)

// PlanPages partitions entries into ordered pages of at most capacity entries
// each, threading the running balance across page boundaries from opening.
//
// An empty entry slice yields exactly one page with zero entries and
// starting balance == ending balance == opening, keeping downstream page
// numbering uniform. The last page holds the remainder and is never padded.
//
// A non-positive capacity is an InvalidConfiguration-class error; the config
// preflight rejects it before any document is generated, the check here is a
// backstop for direct callers.
func PlanPages(entries []types.LedgerEntry, capacity int, opening decimal.Decimal) ([]types.Page, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("page capacity must be positive (got %d)", capacity)
	}

	if len(entries) == 0 {
		return []types.Page{{
			Number:          1,
			Start:           0,
			End:             0,
			StartingBalance: opening,
			EndingBalance:   opening,
		}}, nil
	}

	pageCount := (len(entries) + capacity - 1) / capacity
	pages := make([]types.Page, 0, pageCount)

	carried := opening
	for start := 0; start < len(entries); start += capacity {
		end := start + capacity
		if end > len(entries) {
			end = len(entries)
		}

		page := types.Page{
			Number:          len(pages) + 1,
			Start:           start,
			End:             end,
			StartingBalance: carried,
			EndingBalance:   entries[end-1].Balance,
		}
		pages = append(pages, page)
		carried = page.EndingBalance
	}

	return pages, nil
}

// VerifyPages checks the pagination invariants over an already-planned page
// sequence: contiguous lossless coverage of the body, balance continuity
// between adjacent pages, and the final page ending on the closing balance.
// Used by the assembler's final re-check.
func VerifyPages(pages []types.Page, entryCount int, opening, closing decimal.Decimal) error {
	if len(pages) == 0 {
		return fmt.Errorf("document has no pages")
	}

	next := 0
	for i, page := range pages {
		if page.Number != i+1 {
			return fmt.Errorf("page %d: number %d out of sequence", i, page.Number)
		}
		if page.Start != next {
			return fmt.Errorf("page %d: starts at %d, want %d (coverage gap or overlap)", i+1, page.Start, next)
		}
		if page.End < page.Start {
			return fmt.Errorf("page %d: end %d before start %d", i+1, page.End, page.Start)
		}
		next = page.End

		if i == 0 {
			if !page.StartingBalance.Equal(opening) {
				return fmt.Errorf("page 1: starting balance %s != opening balance %s", page.StartingBalance, opening)
			}
		} else if !page.StartingBalance.Equal(pages[i-1].EndingBalance) {
			return fmt.Errorf("page %d: starting balance %s != page %d ending balance %s",
				i+1, page.StartingBalance, i, pages[i-1].EndingBalance)
		}
	}

	if next != entryCount {
		return fmt.Errorf("pages cover %d entries, document has %d", next, entryCount)
	}
	if last := pages[len(pages)-1]; !last.EndingBalance.Equal(closing) {
		return fmt.Errorf("final page ending balance %s != closing balance %s", last.EndingBalance, closing)
	}

	return nil
}
