// =============================================================================
// Artifact Engine - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - entity
//   - consistency
//   - pagination
//   - assembler
//   - groundtruth
//   - xlsxwriter
//
// MONETARY FIELDS:
//   Every monetary field is a shopspring decimal, never a float. All derived
//   amounts are rounded to two decimal places (the minor currency unit) using
//   round-half-to-even, and that rounding happens exactly once per derived
//   value inside the consistency package.
//
// =============================================================================

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// DocumentType identifies which kind of financial document is being fabricated.
type DocumentType string

const (
	// DocumentTypeInvoice is a business-to-business invoice with line items
	// and VAT totals.
	DocumentTypeInvoice DocumentType = "invoice"

	// DocumentTypeReceipt is a point-of-sale receipt with purchased items
	// and VAT totals.
	DocumentTypeReceipt DocumentType = "receipt"

	// DocumentTypeBankStatement is an account statement with an ordered list
	// of transactions and running balances.
	DocumentTypeBankStatement DocumentType = "bank_statement"
)

// AllDocumentTypes lists every supported document type in generation order.
var AllDocumentTypes = []DocumentType{
	DocumentTypeInvoice,
	DocumentTypeReceipt,
	DocumentTypeBankStatement,
}

// =============================================================================
// LEDGER ENTRY
// =============================================================================

// EntryKind tags the variant of a LedgerEntry.
type EntryKind string

const (
	// EntryKindLineItem is an invoice or receipt line item: quantity times
	// unit amount, rounded once, gives the line amount.
	EntryKindLineItem EntryKind = "line_item"

	// EntryKindTransaction is a bank statement transaction: a credit or a
	// debit applied to the previous running balance.
	EntryKindTransaction EntryKind = "transaction"
)

// LedgerEntry is the shared shape for one row of a document body.
//
// Line items and transactions overlap enough (description, date, a signed
// amount, a running figure) that they share one struct with a variant tag,
// rather than two duck-typed shapes. Which fields are meaningful depends on
// the Kind:
//
//	EntryKindLineItem    : Quantity, UnitAmount, Amount, Balance (running subtotal)
//	EntryKindTransaction : Credit, Debit, Balance (running account balance)
type LedgerEntry struct {
	// Kind selects the variant.
	Kind EntryKind

	// Description is the human-readable text for this entry.
	Description string

	// Date is the entry date. For line items this equals the document issue
	// date; for transactions it is the posting date within the statement
	// period, non-decreasing across the body.
	Date time.Time

	// Quantity is the number of units (line items only). Strictly positive.
	Quantity decimal.Decimal

	// UnitAmount is the price per unit (line items only). Strictly positive.
	UnitAmount decimal.Decimal

	// Amount is the signed line amount: Quantity x UnitAmount rounded to the
	// minor currency unit. The line amount is the atomic rounded value that
	// aggregates sum over.
	Amount decimal.Decimal

	// Credit is the amount paid into the account (transactions only).
	// Zero for debits.
	Credit decimal.Decimal

	// Debit is the amount paid out of the account (transactions only).
	// Zero for credits.
	Debit decimal.Decimal

	// Balance is the running figure immediately after this entry: the running
	// account balance for transactions, the running subtotal for line items.
	// Derived by the consistency calculator, carried across page boundaries
	// by the pagination planner.
	Balance decimal.Decimal
}

// =============================================================================
// DOCUMENT HEADER
// =============================================================================

// DocumentHeader holds the identifying and descriptive fields of a document.
// It is populated by the entity generator and immutable once the document is
// assembled. Which fields are set depends on the document type; unset fields
// stay zero-valued and are omitted downstream.
type DocumentHeader struct {
	// DocumentNumber is the printed identifier, e.g. "INV-4821-QZTX" or a
	// statement reference. Distinct from Document.ID, which names the files.
	DocumentNumber string

	// IssueDate is the invoice/receipt date.
	IssueDate time.Time

	// DueDate is the invoice payment deadline (invoices only).
	DueDate time.Time

	// PeriodStart and PeriodEnd bound the statement period (statements only).
	PeriodStart time.Time
	PeriodEnd   time.Time

	// SenderName and SenderAddress identify the issuing party (invoices).
	SenderName    string
	SenderAddress string

	// RecipientName and RecipientAddress identify the billed party (invoices)
	// or the account holder (statements).
	RecipientName    string
	RecipientAddress string

	// StoreName and StoreAddress identify the shop (receipts only).
	StoreName    string
	StoreAddress string

	// PaymentMethod and CardLastFour describe how a receipt was paid
	// (receipts only).
	PaymentMethod string
	CardLastFour  string

	// BankName, AccountNumber and SortCode identify the account
	// (statements only). AccountNumber is stored pre-masked.
	BankName      string
	AccountNumber string
	SortCode      string

	// Currency is the ISO 4217 code, e.g. "GBP".
	Currency string
}

// =============================================================================
// TOTALS AND LEDGER
// =============================================================================

// FinancialTotals holds the derived monetary aggregates of an invoice or
// receipt. Invariants, exact at minor-unit precision:
//
//	Subtotal  = sum of line amounts
//	TaxAmount = round2(Subtotal x TaxRate)
//	Total     = Subtotal + TaxAmount
type FinancialTotals struct {
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// AccountLedger holds the balance frame of a bank statement. Invariant: the
// left-to-right fold of credits and debits from OpeningBalance over the
// document body yields exactly ClosingBalance.
type AccountLedger struct {
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}

// =============================================================================
// PAGE
// =============================================================================

// Page is a capacity-bounded, order-preserving view into a document body.
//
// A page stores an index range rather than a copy of its entries, so
// concatenating all pages trivially reproduces the original body: the ranges
// are contiguous and non-overlapping by construction.
type Page struct {
	// Number is the 1-based page index in page order. It matches the page
	// suffix in the rasterizer filename convention.
	Number int

	// Start and End delimit the half-open range [Start, End) into the
	// document body.
	Start int
	End   int

	// StartingBalance is the running figure carried into this page: the
	// previous page's EndingBalance, or the document opening balance for the
	// first page.
	StartingBalance decimal.Decimal

	// EndingBalance is the running figure after this page's last entry, or
	// StartingBalance for an empty page.
	EndingBalance decimal.Decimal
}

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is one fully assembled, internally consistent synthetic document.
//
// A Document is created fully formed by the assembler and never mutated
// afterwards; the renderer and the ground-truth projector receive it
// read-only. Exactly one of Totals or Ledger is non-nil, matching Type.
type Document struct {
	// ID is the stable, content-independent identifier linking this logical
	// document to its rendered files. A randomly drawn UUID.
	ID string

	// Type is the document type.
	Type DocumentType

	// Header holds the descriptive fields.
	Header DocumentHeader

	// Body is the ordered entry sequence: line items for invoices and
	// receipts, transactions for bank statements.
	Body []LedgerEntry

	// Totals is set for invoices and receipts, nil for statements.
	Totals *FinancialTotals

	// Ledger is set for bank statements, nil otherwise.
	Ledger *AccountLedger

	// Pages partitions Body in order. A document always has at least one
	// page; a single page is the common case.
	Pages []Page
}

// PageEntries returns the slice of the document body covered by the given
// page. The returned slice aliases Body; callers must not modify it.
func (d *Document) PageEntries(p Page) []LedgerEntry {
	return d.Body[p.Start:p.End]
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// =============================================================================
// GROUND TRUTH PROJECTION TYPES
// =============================================================================

// GroundTruthRow is one denormalized row of extraction ground truth: one row
// per body entry, with the owning document's header and totals repeated on
// every row so that each row is self-contained.
type GroundTruthRow struct {
	// DocumentID is the owning document's ID.
	DocumentID string

	// Filename is the rendered image file containing this entry, following
	// the rasterizer convention: "{id}.{ext}" for single-page documents,
	// "{id}_page{N}.{ext}" for page N of a multi-page document.
	Filename string

	// PageNumber is the 1-based page containing this entry (1 for
	// single-page documents).
	PageNumber int

	// DocumentType is the owning document's type tag.
	DocumentType DocumentType

	// Header fields, denormalized.
	DocumentNumber   string
	IssueDate        time.Time
	DueDate          time.Time
	PeriodStart      time.Time
	PeriodEnd        time.Time
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	StoreName        string
	PaymentMethod    string
	CardLastFour     string
	BankName         string
	AccountNumber    string
	SortCode         string
	Currency         string

	// EntryIndex is the 0-based index of the entry within the document body.
	EntryIndex int

	// Entry fields.
	EntryDescription string
	EntryDate        time.Time
	Quantity         decimal.Decimal
	UnitAmount       decimal.Decimal
	Amount           decimal.Decimal
	Credit           decimal.Decimal
	Debit            decimal.Decimal
	RunningBalance   decimal.Decimal

	// Document aggregates, denormalized.
	Subtotal       decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}

// DocumentSummary is the document-level companion view: one row per document,
// recording its existence, identity and aggregates even when no entry rows
// were emitted.
type DocumentSummary struct {
	DocumentID     string
	DocumentType   DocumentType
	DocumentNumber string
	IssueDate      time.Time
	PeriodStart    time.Time
	PeriodEnd      time.Time
	SenderName     string
	RecipientName  string
	StoreName      string
	BankName       string
	EntryCount     int
	PageCount      int
	Subtotal       decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Currency       string
}
