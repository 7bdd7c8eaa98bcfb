// =============================================================================
// Artifact Engine - Entity Generator
// =============================================================================
//
// This module produces the randomized raw field values for one document:
// party names and addresses, dates, entry descriptions, quantities and unit
// amounts, store and bank metadata. No derived arithmetic happens here; the
// consistency calculator computes every total and balance from these raw
// values afterwards.
//
// RANDOMNESS:
//   A Generator owns an explicit *rand.Rand handed in by the caller. There is
//   no package-level random state, so concurrent workers never contend on or
//   accidentally share an RNG: the same seed and configuration always yield
//   the same raw-field stream.
//
// GUARANTEES:
//   - Quantities and unit amounts are strictly positive.
//   - Entry counts fall within the configured bounds, inclusive.
//   - Entry descriptions are unique within one invoice or receipt;
//     uniqueness is satisfied by bounded re-draws (ErrExhaustedRetries
//     when the vocabulary cannot supply enough distinct values).
//
// =============================================================================

package entity

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/artifex-labs/artifact-engine/internal/config"
	"github.com/artifex-labs/artifact-engine/internal/types"
)

// maxRedraws bounds how many times one entry description is re-drawn to
// satisfy the within-document uniqueness constraint before the document is
// given up as a generation defect.
const maxRedraws = 8

// ErrExhaustedRetries reports that a document-local constraint (a
// required-unique field) could not be satisfied within maxRedraws attempts.
// The batch treats it like any other per-document generation defect.
var ErrExhaustedRetries = errors.New("exhausted retries for required-unique field")

// =============================================================================
// RAW OUTPUT TYPES
// =============================================================================

// RawEntry is one unvalidated body entry. For line items the Quantity and
// UnitAmount pair is set (no line amount yet - that is derived downstream);
// for transactions exactly one of Credit and Debit is set.
type RawEntry struct {
	Description string
	Date        time.Time
	Quantity    decimal.Decimal
	UnitAmount  decimal.Decimal
	Credit      decimal.Decimal
	Debit       decimal.Decimal
}

// RawDocument is the unvalidated raw material for one document: header
// fields, the drawn tax rate or opening balance, and the raw entries.
type RawDocument struct {
	Type           types.DocumentType
	Header         types.DocumentHeader
	TaxRate        decimal.Decimal
	OpeningBalance decimal.Decimal
	Entries        []RawEntry
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator draws raw field values for one document at a time.
type Generator struct {
	cfg *config.Config
	rng *rand.Rand
	ref time.Time
}

// New creates a Generator over the given configuration and random source.
// The reference date must already have passed configuration validation.
func New(cfg *config.Config, rng *rand.Rand) (*Generator, error) {
	ref, err := cfg.ReferenceTime()
	if err != nil {
		return nil, fmt.Errorf("reference date: %w", err)
	}
	return &Generator{cfg: cfg, rng: rng, ref: ref}, nil
}

// Generate produces the raw fields for one document of the given type.
func (g *Generator) Generate(docType types.DocumentType) (*RawDocument, error) {
	switch docType {
	case types.DocumentTypeInvoice:
		return g.generateInvoice()
	case types.DocumentTypeReceipt:
		return g.generateReceipt()
	case types.DocumentTypeBankStatement:
		return g.generateStatement()
	default:
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
}

// =============================================================================
// INVOICE
// =============================================================================

// generateInvoice draws an invoice: company sender, personal recipient,
// 1-8 line items (configurable), a VAT rate from the configured set, and a
// due date a standard payment term after the issue date.
func (g *Generator) generateInvoice() (*RawDocument, error) {
	issueDate := g.dateWithinYear()

	// Standard UK payment terms.
	termDays := []int{14, 30, 45, 60}[g.rng.Intn(4)]

	header := types.DocumentHeader{
		DocumentNumber:   fmt.Sprintf("INV-%04d-%s", g.rng.Intn(10000), g.letters(4)),
		IssueDate:        issueDate,
		DueDate:          issueDate.AddDate(0, 0, termDays),
		SenderName:       g.companyName(),
		SenderAddress:    g.address(),
		RecipientName:    g.personName(),
		RecipientAddress: g.address(),
		Currency:         g.cfg.Currency,
	}

	count := g.entryCount(g.cfg.InvoiceItems)
	entries := make([]RawEntry, 0, count)
	seen := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		entry, err := g.invoiceItem(issueDate, seen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &RawDocument{
		Type:    types.DocumentTypeInvoice,
		Header:  header,
		TaxRate: g.taxRate(),
		Entries: entries,
	}, nil
}

// invoiceItem draws one invoice line item: whole quantities for services,
// fractional quantities for products, description unique within the document.
func (g *Generator) invoiceItem(issueDate time.Time, seen map[string]bool) (RawEntry, error) {
	isService := g.rng.Intn(2) == 0

	var desc string
	var quantity, unitAmount decimal.Decimal

	if isService {
		quantity = decimal.NewFromInt(int64(1 + g.rng.Intn(20)))
		unitAmount = g.minorUnits(7500, 50000) // 75.00 - 500.00
		desc = fmt.Sprintf("%s - %s", services[g.rng.Intn(len(services))], g.monthName())
	} else {
		// One decimal place of quantity, 1.0 - 10.0.
		quantity = decimal.New(int64(10+g.rng.Intn(91)), -1)
		unitAmount = g.minorUnits(2500, 35000) // 25.00 - 350.00
		desc = products[g.rng.Intn(len(products))]
	}

	desc, err := g.uniqueDescription(desc, seen, func() string {
		if isService {
			return fmt.Sprintf("%s - %s", services[g.rng.Intn(len(services))], g.monthName())
		}
		return products[g.rng.Intn(len(products))]
	})
	if err != nil {
		return RawEntry{}, err
	}

	return RawEntry{
		Description: desc,
		Date:        issueDate,
		Quantity:    quantity,
		UnitAmount:  unitAmount,
	}, nil
}

// =============================================================================
// RECEIPT
// =============================================================================

// generateReceipt draws a point-of-sale receipt: store metadata, 1-12 items
// (configurable), a payment method, and a timestamped issue date.
func (g *Generator) generateReceipt() (*RawDocument, error) {
	day := g.dateWithinYear()
	// Shop hours: 07:00 - 21:59.
	issueDate := day.Add(time.Duration(7+g.rng.Intn(15))*time.Hour +
		time.Duration(g.rng.Intn(60))*time.Minute)

	method := paymentMethods[g.rng.Intn(len(paymentMethods))]
	lastFour := ""
	if method != "CASH" {
		lastFour = fmt.Sprintf("%04d", g.rng.Intn(10000))
	}

	header := types.DocumentHeader{
		DocumentNumber: fmt.Sprintf("RCP-%06d", g.rng.Intn(1000000)),
		IssueDate:      issueDate,
		StoreName:      storeNames[g.rng.Intn(len(storeNames))],
		StoreAddress:   g.address(),
		PaymentMethod:  method,
		CardLastFour:   lastFour,
		Currency:       g.cfg.Currency,
	}

	count := g.entryCount(g.cfg.ReceiptItems)
	entries := make([]RawEntry, 0, count)
	seen := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		desc, err := g.uniqueDescription(
			retailItems[g.rng.Intn(len(retailItems))],
			seen,
			func() string { return retailItems[g.rng.Intn(len(retailItems))] },
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, RawEntry{
			Description: desc,
			Date:        issueDate,
			Quantity:    decimal.NewFromInt(int64(1 + g.rng.Intn(5))),
			UnitAmount:  g.minorUnits(50, 4999), // 0.50 - 49.99
		})
	}

	return &RawDocument{
		Type:    types.DocumentTypeReceipt,
		Header:  header,
		TaxRate: g.taxRate(),
		Entries: entries,
	}, nil
}

// =============================================================================
// BANK STATEMENT
// =============================================================================

// generateStatement draws a bank statement: account metadata, a one-month
// statement period ending near the reference date, an opening balance, and
// 10-300 transactions (configurable) in non-decreasing date order.
func (g *Generator) generateStatement() (*RawDocument, error) {
	periodEnd := g.ref.AddDate(0, 0, -g.rng.Intn(28))
	periodStart := periodEnd.AddDate(0, -1, 0)

	header := types.DocumentHeader{
		DocumentNumber: fmt.Sprintf("STMT-%06d", g.rng.Intn(1000000)),
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		BankName:       bankNames[g.rng.Intn(len(bankNames))],
		RecipientName:  g.personName(),
		AccountNumber:  fmt.Sprintf("****%04d", g.rng.Intn(10000)),
		SortCode:       fmt.Sprintf("%02d-%02d-%02d", g.rng.Intn(100), g.rng.Intn(100), g.rng.Intn(100)),
		Currency:       g.cfg.Currency,
	}

	count := g.entryCount(g.cfg.StatementTransactions)

	// Draw posting dates across the period, then sort: running balances are
	// only defined over a date-ordered sequence.
	periodDays := int(periodEnd.Sub(periodStart).Hours()/24) + 1
	offsets := make([]int, count)
	for i := range offsets {
		offsets[i] = g.rng.Intn(periodDays)
	}
	sort.Ints(offsets)

	entries := make([]RawEntry, 0, count)
	for _, offset := range offsets {
		entry := RawEntry{Date: periodStart.AddDate(0, 0, offset)}
		// Roughly two debits for every credit, like a real current account.
		if g.rng.Intn(10) < 7 {
			entry.Description = debitDescriptions[g.rng.Intn(len(debitDescriptions))]
			entry.Debit = g.minorUnits(100, 250000) // 1.00 - 2500.00
		} else {
			entry.Description = creditDescriptions[g.rng.Intn(len(creditDescriptions))]
			entry.Credit = g.minorUnits(10000, 500000) // 100.00 - 5000.00
		}
		entries = append(entries, entry)
	}

	return &RawDocument{
		Type:           types.DocumentTypeBankStatement,
		Header:         header,
		OpeningBalance: g.minorUnits(0, 1000000), // 0.00 - 10000.00
		Entries:        entries,
	}, nil
}

// =============================================================================
// DRAW HELPERS
// =============================================================================

// entryCount draws an entry count within the inclusive bounds.
func (g *Generator) entryCount(b config.EntryBounds) int {
	return b.Min + g.rng.Intn(b.Max-b.Min+1)
}

// taxRate draws one rate from the configured discrete set.
func (g *Generator) taxRate() decimal.Decimal {
	return decimal.NewFromFloat(g.cfg.TaxRates[g.rng.Intn(len(g.cfg.TaxRates))])
}

// minorUnits draws a monetary value between lo and hi minor units inclusive,
// as an exact two-decimal-place value.
func (g *Generator) minorUnits(lo, hi int64) decimal.Decimal {
	return decimal.New(lo+g.rng.Int63n(hi-lo+1), -2)
}

// dateWithinYear draws a date in the year trailing the reference date.
func (g *Generator) dateWithinYear() time.Time {
	return g.ref.AddDate(0, 0, -g.rng.Intn(365))
}

// monthName draws a month name for service descriptions.
func (g *Generator) monthName() string {
	return time.Month(1 + g.rng.Intn(12)).String()
}

// letters draws n uppercase letters.
func (g *Generator) letters(n int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return string(out)
}

// companyName draws a company name.
func (g *Generator) companyName() string {
	return companyStems[g.rng.Intn(len(companyStems))] + " " +
		companySuffixes[g.rng.Intn(len(companySuffixes))]
}

// personName draws a personal name.
func (g *Generator) personName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " +
		lastNames[g.rng.Intn(len(lastNames))]
}

// address draws a single-line UK-style address.
func (g *Generator) address() string {
	return fmt.Sprintf("%d %s %s, %s, %s%d %d%s%s",
		1+g.rng.Intn(200),
		streetNames[g.rng.Intn(len(streetNames))],
		streetTypes[g.rng.Intn(len(streetTypes))],
		towns[g.rng.Intn(len(towns))],
		postcodeAreas[g.rng.Intn(len(postcodeAreas))],
		1+g.rng.Intn(20),
		1+g.rng.Intn(9),
		g.letters(1),
		g.letters(1),
	)
}

// uniqueDescription returns desc if unseen, otherwise re-draws with redraw up
// to maxRedraws times. The accepted description is recorded in seen.
func (g *Generator) uniqueDescription(desc string, seen map[string]bool, redraw func() string) (string, error) {
	for attempt := 0; attempt <= maxRedraws; attempt++ {
		if !seen[desc] {
			seen[desc] = true
			return desc, nil
		}
		desc = redraw()
	}
	return "", fmt.Errorf("%w: item description after %d attempts", ErrExhaustedRetries, maxRedraws)
}
