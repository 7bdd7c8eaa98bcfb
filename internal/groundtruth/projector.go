// =============================================================================
// Artifact Engine - Ground Truth Projector
// =============================================================================
//
// This module flattens an assembled document into row-level ground truth: one
// denormalized row per body entry, each self-contained (all header and totals
// fields repeated), keyed by document id and 1-based page number.
//
// FILENAME CONVENTION:
//   The page number on each row must agree with the filename suffix the
//   rasterizer produces for that page:
//     {id}.{ext}           single-page document
//     {id}_page{N}.{ext}   page N of a multi-page document, N starting at 1
//   Filename builds that name; Project uses it for every row so downstream
//   scoring can join rows to image files directly.
//
// The projector performs no serialization: the xlsxwriter package turns the
// rows it emits into workbooks.
//
// =============================================================================

package groundtruth

import (
	"fmt"

	"github.com/artifex-labs/artifact-engine/internal/types"
)

// DefaultImageExt is the raster extension the downstream rasterizer emits.
const DefaultImageExt = "png"

// Filename returns the rendered image name for one page of a document under
// the rasterizer naming convention.
func Filename(documentID string, pageNumber, pageCount int, ext string) string {
	if pageCount <= 1 {
		return fmt.Sprintf("%s.%s", documentID, ext)
	}
	return fmt.Sprintf("%s_page%d.%s", documentID, pageNumber, ext)
}

// =============================================================================
// ROW PROJECTION
// =============================================================================

// Project flattens a document into one ground-truth row per body entry, in
// body order. A document with an empty body (the degenerate single empty
// page) yields no rows; its existence is still recorded by Summarize.
func Project(doc *types.Document) []types.GroundTruthRow {
	rows := make([]types.GroundTruthRow, 0, len(doc.Body))
	pageCount := doc.PageCount()

	for _, page := range doc.Pages {
		filename := Filename(doc.ID, page.Number, pageCount, DefaultImageExt)

		for i, entry := range doc.PageEntries(page) {
			row := types.GroundTruthRow{
				DocumentID:   doc.ID,
				Filename:     filename,
				PageNumber:   page.Number,
				DocumentType: doc.Type,

				DocumentNumber:   doc.Header.DocumentNumber,
				IssueDate:        doc.Header.IssueDate,
				DueDate:          doc.Header.DueDate,
				PeriodStart:      doc.Header.PeriodStart,
				PeriodEnd:        doc.Header.PeriodEnd,
				SenderName:       doc.Header.SenderName,
				SenderAddress:    doc.Header.SenderAddress,
				RecipientName:    doc.Header.RecipientName,
				RecipientAddress: doc.Header.RecipientAddress,
				StoreName:        doc.Header.StoreName,
				PaymentMethod:    doc.Header.PaymentMethod,
				CardLastFour:     doc.Header.CardLastFour,
				BankName:         doc.Header.BankName,
				AccountNumber:    doc.Header.AccountNumber,
				SortCode:         doc.Header.SortCode,
				Currency:         doc.Header.Currency,

				EntryIndex:       page.Start + i,
				EntryDescription: entry.Description,
				EntryDate:        entry.Date,
				Quantity:         entry.Quantity,
				UnitAmount:       entry.UnitAmount,
				Amount:           entry.Amount,
				Credit:           entry.Credit,
				Debit:            entry.Debit,
				RunningBalance:   entry.Balance,
			}

			if doc.Totals != nil {
				row.Subtotal = doc.Totals.Subtotal
				row.TaxRate = doc.Totals.TaxRate
				row.TaxAmount = doc.Totals.TaxAmount
				row.Total = doc.Totals.Total
			}
			if doc.Ledger != nil {
				row.OpeningBalance = doc.Ledger.OpeningBalance
				row.ClosingBalance = doc.Ledger.ClosingBalance
			}

			rows = append(rows, row)
		}
	}

	return rows
}

// =============================================================================
// DOCUMENT SUMMARY
// =============================================================================

// Summarize produces the document-level summary row: one per document,
// recording identity, aggregates and page count even when Project emitted no
// entry rows.
func Summarize(doc *types.Document) types.DocumentSummary {
	summary := types.DocumentSummary{
		DocumentID:     doc.ID,
		DocumentType:   doc.Type,
		DocumentNumber: doc.Header.DocumentNumber,
		IssueDate:      doc.Header.IssueDate,
		PeriodStart:    doc.Header.PeriodStart,
		PeriodEnd:      doc.Header.PeriodEnd,
		SenderName:     doc.Header.SenderName,
		RecipientName:  doc.Header.RecipientName,
		StoreName:      doc.Header.StoreName,
		BankName:       doc.Header.BankName,
		EntryCount:     len(doc.Body),
		PageCount:      doc.PageCount(),
		Currency:       doc.Header.Currency,
	}

	if doc.Totals != nil {
		summary.Subtotal = doc.Totals.Subtotal
		summary.TaxRate = doc.Totals.TaxRate
		summary.TaxAmount = doc.Totals.TaxAmount
		summary.Total = doc.Totals.Total
	}
	if doc.Ledger != nil {
		summary.OpeningBalance = doc.Ledger.OpeningBalance
		summary.ClosingBalance = doc.Ledger.ClosingBalance
	}

	return summary
}
