// =============================================================================
// Artifact Engine - Consistency Calculator
// =============================================================================
//
// This module owns every piece of monetary arithmetic in the engine. All
// derived fields (line amounts, subtotals, tax, running balances) are computed
// here and nowhere else, under a single rounding policy, so that exported
// ground truth is exactly reproducible from arithmetic.
//
// ROUNDING POLICY:
//   Round to 2 decimal places (the minor currency unit) using
//   round-half-to-even (decimal.RoundBank), applied exactly once per derived
//   value:
//     - line amount = round2(quantity x unit amount)  <- the atomic rounded unit
//     - subtotal    = exact sum of line amounts       <- no further rounding
//     - tax amount  = round2(subtotal x tax rate)
//     - total       = subtotal + tax amount           <- sum of rounded values
//   Running balances add and subtract already-rounded credits/debits, so no
//   drift can accumulate at the aggregate level.
//
// =============================================================================

package consistency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/artifex-labs/artifact-engine/internal/types"
)

// minorUnitPlaces is the rounding precision for all monetary values: two
// decimal places for the currencies in scope.
const minorUnitPlaces = 2

// ErrUnorderedTransactions reports a transaction sequence whose dates are not
// non-decreasing. Running balances are only meaningful in posting order, so
// this is fatal for the document.
var ErrUnorderedTransactions = errors.New("transactions are not in date order")

// Round2 applies the engine-wide rounding policy: two decimal places,
// half to even.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(minorUnitPlaces)
}

// LineAmount computes the atomic rounded line amount for a quantity and unit
// amount pair: round2(quantity x unit amount).
func LineAmount(quantity, unitAmount decimal.Decimal) decimal.Decimal {
	return Round2(quantity.Mul(unitAmount))
}

// =============================================================================
// ENTRY-LEVEL CHECK
// =============================================================================

// CheckEntry validates the shared quantity/amount shape of a single ledger
// entry. One check serves both variants:
//
//	line item   : quantity > 0, unit amount > 0, amount == round2(qty x unit)
//	transaction : exactly one of credit/debit is positive, the other zero
func CheckEntry(e types.LedgerEntry) error {
	switch e.Kind {
	case types.EntryKindLineItem:
		if !e.Quantity.IsPositive() {
			return fmt.Errorf("line item %q: quantity %s is not positive", e.Description, e.Quantity)
		}
		if !e.UnitAmount.IsPositive() {
			return fmt.Errorf("line item %q: unit amount %s is not positive", e.Description, e.UnitAmount)
		}
		if want := LineAmount(e.Quantity, e.UnitAmount); !e.Amount.Equal(want) {
			return fmt.Errorf("line item %q: amount %s != round2(%s x %s) = %s",
				e.Description, e.Amount, e.Quantity, e.UnitAmount, want)
		}
	case types.EntryKindTransaction:
		creditSet := e.Credit.IsPositive()
		debitSet := e.Debit.IsPositive()
		if creditSet == debitSet {
			return fmt.Errorf("transaction %q: exactly one of credit (%s) and debit (%s) must be positive",
				e.Description, e.Credit, e.Debit)
		}
		if e.Credit.IsNegative() || e.Debit.IsNegative() {
			return fmt.Errorf("transaction %q: credit (%s) and debit (%s) must not be negative",
				e.Description, e.Credit, e.Debit)
		}
	default:
		return fmt.Errorf("entry %q: unknown kind %q", e.Description, e.Kind)
	}
	return nil
}

// =============================================================================
// TOTALS (INVOICES / RECEIPTS)
// =============================================================================

// ComputeTotals derives the financial totals for a line-item document and
// attaches a running subtotal to each item (in its Balance field) for the
// pagination planner to carry across page boundaries.
//
// The tax rate must lie in [0, 1]; anything else is fatal for the document.
// An empty item slice is not an error and yields all-zero totals.
//
// The items slice is modified in place (Balance only) and also returned.
func ComputeTotals(items []types.LedgerEntry, taxRate decimal.Decimal) (types.FinancialTotals, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return types.FinancialTotals{}, fmt.Errorf("tax rate %s outside [0, 1]", taxRate)
	}

	subtotal := decimal.Zero
	for i, item := range items {
		if err := CheckEntry(item); err != nil {
			return types.FinancialTotals{}, fmt.Errorf("item %d: %w", i, err)
		}
		// Line amounts are already rounded atoms; the sum itself is exact.
		subtotal = subtotal.Add(item.Amount)
		items[i].Balance = subtotal
	}

	taxAmount := Round2(subtotal.Mul(taxRate))

	return types.FinancialTotals{
		Subtotal:  subtotal,
		TaxRate:   taxRate,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}, nil
}

// VerifyTotals re-derives the totals from the items and compares them against
// the supplied aggregates. Used by the assembler's final invariant re-check;
// a mismatch there is a defect in an upstream stage.
func VerifyTotals(items []types.LedgerEntry, totals types.FinancialTotals) error {
	want, err := ComputeTotals(items, totals.TaxRate)
	if err != nil {
		return err
	}
	if !totals.Subtotal.Equal(want.Subtotal) {
		return fmt.Errorf("subtotal %s != sum of line amounts %s", totals.Subtotal, want.Subtotal)
	}
	if !totals.TaxAmount.Equal(want.TaxAmount) {
		return fmt.Errorf("tax amount %s != round2(%s x %s) = %s",
			totals.TaxAmount, want.Subtotal, totals.TaxRate, want.TaxAmount)
	}
	if !totals.Total.Equal(want.Total) {
		return fmt.Errorf("total %s != subtotal + tax = %s", totals.Total, want.Total)
	}
	return nil
}

// =============================================================================
// RUNNING BALANCES (BANK STATEMENTS)
// =============================================================================

// ComputeRunningBalances derives the running balance of every transaction by
// a single left-to-right fold from the opening balance:
//
//	balance[0] = opening + credit[0] - debit[0]
//	balance[i] = balance[i-1] + credit[i] - debit[i]
//
// The closing balance is defined as the final fold value (the opening balance
// when there are no transactions). The transactions must already be in
// posting-date order; computing balances in any other order is fatal for the
// document.
//
// The txns slice is modified in place (Balance only); the returned ledger
// holds the opening and derived closing balance.
func ComputeRunningBalances(opening decimal.Decimal, txns []types.LedgerEntry) (types.AccountLedger, error) {
	balance := opening
	for i, txn := range txns {
		if err := CheckEntry(txn); err != nil {
			return types.AccountLedger{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		if i > 0 && txn.Date.Before(txns[i-1].Date) {
			return types.AccountLedger{}, fmt.Errorf("transaction %d (%s): %w",
				i, txn.Date.Format("2006-01-02"), ErrUnorderedTransactions)
		}
		balance = balance.Add(txn.Credit).Sub(txn.Debit)
		txns[i].Balance = balance
	}

	return types.AccountLedger{
		OpeningBalance: opening,
		ClosingBalance: balance,
	}, nil
}

// VerifyLedger re-folds the transactions from the opening balance and checks
// that every stored running balance and the closing balance match exactly.
func VerifyLedger(ledger types.AccountLedger, txns []types.LedgerEntry) error {
	balance := ledger.OpeningBalance
	for i, txn := range txns {
		balance = balance.Add(txn.Credit).Sub(txn.Debit)
		if !txn.Balance.Equal(balance) {
			return fmt.Errorf("transaction %d: stored balance %s != folded balance %s",
				i, txn.Balance, balance)
		}
	}
	if !ledger.ClosingBalance.Equal(balance) {
		return fmt.Errorf("closing balance %s != folded balance %s", ledger.ClosingBalance, balance)
	}
	return nil
}
