// =============================================================================
// Artifact Engine - Document Assembler
// =============================================================================
//
// This module orchestrates the fabrication pipeline for a single document:
//
//   1. entity.Generator draws the raw fields
//   2. consistency derives every total / running balance
//   3. pagination partitions the body into pages
//   4. a content-independent identifier is assigned
//   5. every invariant is re-verified before the document is returned
//
// Each stage consumes only the previous stage's output. A re-verification
// failure in step 5 means an upstream stage has a bug; it is surfaced as an
// error for this document only, never as a partially-consistent Document.
//
// The assembler performs no I/O and mutates no shared state: Assemble is a
// pure unit of work, safe to run from any number of concurrent workers.
//
// =============================================================================

package assembler

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artifex-labs/artifact-engine/internal/config"
	"github.com/artifex-labs/artifact-engine/internal/consistency"
	"github.com/artifex-labs/artifact-engine/internal/entity"
	"github.com/artifex-labs/artifact-engine/internal/pagination"
	"github.com/artifex-labs/artifact-engine/internal/types"
)

// =============================================================================
// ASSEMBLER
// =============================================================================

// Assembler fabricates complete documents from a validated configuration.
type Assembler struct {
	cfg *config.Config
}

// New creates an Assembler. The configuration must already have passed
// Validate; the assembler does not re-run preflight checks per document.
func New(cfg *config.Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Assemble fabricates one document of the given type from the given random
// source. The source must be private to the caller (one per document); the
// document identifier is drawn from it too, so a seeded source reproduces the
// full document bit for bit, identifier included.
func (a *Assembler) Assemble(docType types.DocumentType, rng *rand.Rand) (*types.Document, error) {
	// Stage 1: raw fields.
	gen, err := entity.New(a.cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("entity generator: %w", err)
	}
	raw, err := gen.Generate(docType)
	if err != nil {
		return nil, fmt.Errorf("generate raw fields: %w", err)
	}

	// Stage 2: derived arithmetic.
	doc := &types.Document{
		Type:   docType,
		Header: raw.Header,
	}

	var opening decimal.Decimal
	switch docType {
	case types.DocumentTypeInvoice, types.DocumentTypeReceipt:
		doc.Body = lineItems(raw.Entries)
		totals, err := consistency.ComputeTotals(doc.Body, raw.TaxRate)
		if err != nil {
			return nil, fmt.Errorf("compute totals: %w", err)
		}
		doc.Totals = &totals
		// Line-item documents carry a running subtotal; pages start from zero.
		opening = decimal.Zero
	case types.DocumentTypeBankStatement:
		doc.Body = transactions(raw.Entries)
		ledger, err := consistency.ComputeRunningBalances(raw.OpeningBalance, doc.Body)
		if err != nil {
			return nil, fmt.Errorf("compute running balances: %w", err)
		}
		doc.Ledger = &ledger
		opening = ledger.OpeningBalance
	default:
		return nil, fmt.Errorf("unknown document type %q", docType)
	}

	// Stage 3: pagination.
	doc.Pages, err = pagination.PlanPages(doc.Body, a.cfg.EntriesPerPage, opening)
	if err != nil {
		return nil, fmt.Errorf("plan pages: %w", err)
	}

	// Stage 4: identifier. Drawn from the document's own random source so
	// seeded runs stay reproducible; collisions across 128 bits are treated
	// as negligible and not checked.
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("draw document id: %w", err)
	}
	doc.ID = id.String()

	// Stage 5: final invariant re-verification.
	if err := a.verify(doc, opening); err != nil {
		return nil, fmt.Errorf("invariant re-check: %w", err)
	}

	return doc, nil
}

// verify re-checks every cross-stage invariant on the assembled document.
func (a *Assembler) verify(doc *types.Document, opening decimal.Decimal) error {
	var closing decimal.Decimal
	switch {
	case doc.Totals != nil:
		if err := consistency.VerifyTotals(doc.Body, *doc.Totals); err != nil {
			return err
		}
		// The running subtotal of the last item equals the subtotal.
		closing = doc.Totals.Subtotal
	case doc.Ledger != nil:
		if err := consistency.VerifyLedger(*doc.Ledger, doc.Body); err != nil {
			return err
		}
		closing = doc.Ledger.ClosingBalance
	default:
		return fmt.Errorf("document has neither totals nor ledger")
	}

	return pagination.VerifyPages(doc.Pages, len(doc.Body), opening, closing)
}

// =============================================================================
// RAW ENTRY CONVERSION
// =============================================================================

// lineItems converts raw entries into line-item ledger entries, computing
// each atomic rounded line amount.
func lineItems(raw []entity.RawEntry) []types.LedgerEntry {
	items := make([]types.LedgerEntry, 0, len(raw))
	for _, r := range raw {
		items = append(items, types.LedgerEntry{
			Kind:        types.EntryKindLineItem,
			Description: r.Description,
			Date:        r.Date,
			Quantity:    r.Quantity,
			UnitAmount:  r.UnitAmount,
			Amount:      consistency.LineAmount(r.Quantity, r.UnitAmount),
		})
	}
	return items
}

// transactions converts raw entries into transaction ledger entries. Running
// balances are attached later by the consistency calculator.
func transactions(raw []entity.RawEntry) []types.LedgerEntry {
	txns := make([]types.LedgerEntry, 0, len(raw))
	for _, r := range raw {
		txns = append(txns, types.LedgerEntry{
			Kind:        types.EntryKindTransaction,
			Description: r.Description,
			Date:        r.Date,
			Credit:      r.Credit,
			Debit:       r.Debit,
		})
	}
	return txns
}
