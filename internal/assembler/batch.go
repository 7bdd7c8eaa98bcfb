// =============================================================================
// Artifact Engine - Batch Runner
// =============================================================================
//
// This module fans a batch of documents out over a pool of workers. Document
// generation is embarrassingly parallel: each assemble call is a pure unit of
// work, so the only coordination needed is a job channel, a results channel
// and a WaitGroup.
//
// REPRODUCIBILITY:
//   Every document's random source is seeded before fan-out, on the
//   coordinating goroutine: from the batch seed and the document's ordinal
//   when a seed is configured, from a time-seeded source otherwise. Workers
//   never share RNG state, so the same batch seed reproduces bit-identical
//   documents regardless of how many workers run.
//
// ISOLATION:
//   A defect in one document (a failed invariant re-check, exhausted
//   re-draws) is logged with the document's ordinal and type, counted, and
//   excluded from the output; sibling documents are unaffected.
//
// CANCELLATION:
//   Cancelling the context stops issuing new assemble calls; in-flight ones
//   complete normally, so no partial document is ever exposed.
//
// =============================================================================

package assembler

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/artifex-labs/artifact-engine/internal/types"
)

// =============================================================================
// ERROR AND RESULT TYPES
// =============================================================================

// DefectError is a per-document generation failure: fatal for that document,
// harmless for its batch siblings.
type DefectError struct {
	// Ordinal is the document's position in the batch, 0-based.
	Ordinal int

	// Type is the document type that failed.
	Type types.DocumentType

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *DefectError) Error() string {
	return fmt.Sprintf("document %d (%s): %v", e.Ordinal, e.Type, e.Err)
}

// Unwrap exposes the underlying failure to errors.Is / errors.As.
func (e *DefectError) Unwrap() error {
	return e.Err
}

// BatchResult is the outcome of one batch run.
type BatchResult struct {
	// Documents holds the successfully assembled documents in ordinal order.
	Documents []*types.Document

	// Defects holds the per-document failures in ordinal order.
	Defects []*DefectError

	// Skipped is the number of documents never attempted because the batch
	// was cancelled.
	Skipped int

	// Elapsed is the wall-clock batch duration.
	Elapsed time.Duration
}

// =============================================================================
// INTERNAL JOB TYPES
// =============================================================================

// job is one planned document: its ordinal, type and pre-derived seed.
type job struct {
	ordinal int
	docType types.DocumentType
	seed    int64
}

// outcome is one worker result, successful or not.
type outcome struct {
	ordinal int
	doc     *types.Document
	defect  *DefectError
}

// seedStride spaces per-ordinal seeds far apart (the splitmix64 golden-ratio
// increment) so neighbouring ordinals never produce overlapping draw streams.
const seedStride uint64 = 0x9E3779B97F4A7C15

// deriveSeed maps a batch seed and a document ordinal onto that document's
// private seed.
func deriveSeed(batchSeed int64, ordinal int) int64 {
	return int64(uint64(batchSeed) + uint64(ordinal)*seedStride)
}

// =============================================================================
// BATCH EXECUTION
// =============================================================================

// RunBatch fabricates the configured batch (invoices, then receipts, then
// bank statements, in ordinal order) across cfg.Workers concurrent workers.
// Per-document defects are logged and collected; only configuration-level
// problems return an error.
func (a *Assembler) RunBatch(ctx context.Context, log zerolog.Logger) (*BatchResult, error) {
	start := time.Now()

	jobs := a.planJobs()
	log.Info().
		Int("invoices", a.cfg.Invoices).
		Int("receipts", a.cfg.Receipts).
		Int("statements", a.cfg.Statements).
		Int("workers", a.cfg.Workers).
		Bool("seeded", a.cfg.Seed != nil).
		Msg("starting batch")

	jobCh := make(chan job)
	outcomeCh := make(chan outcome, len(jobs))

	// Workers: each owns the RNG for one document at a time.
	var wg sync.WaitGroup
	for w := 0; w < a.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				rng := rand.New(rand.NewSource(j.seed))
				doc, err := a.Assemble(j.docType, rng)
				if err != nil {
					outcomeCh <- outcome{
						ordinal: j.ordinal,
						defect:  &DefectError{Ordinal: j.ordinal, Type: j.docType, Err: err},
					}
					continue
				}
				outcomeCh <- outcome{ordinal: j.ordinal, doc: doc}
			}
		}()
	}

	// Feeder: stop issuing on cancellation, let in-flight work finish.
	issued := 0
feed:
	for _, j := range jobs {
		select {
		case jobCh <- j:
			issued++
		case <-ctx.Done():
			log.Warn().Int("issued", issued).Int("planned", len(jobs)).Msg("batch cancelled")
			break feed
		}
	}
	close(jobCh)

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()

	// Collect by ordinal so output order is stable across worker schedules.
	docs := make([]*types.Document, len(jobs))
	defects := make([]*DefectError, len(jobs))
	for out := range outcomeCh {
		if out.defect != nil {
			log.Error().
				Int("ordinal", out.defect.Ordinal).
				Str("type", string(out.defect.Type)).
				Err(out.defect.Err).
				Msg("document generation failed")
			defects[out.ordinal] = out.defect
			continue
		}
		docs[out.ordinal] = out.doc
	}

	result := &BatchResult{
		Skipped: len(jobs) - issued,
		Elapsed: time.Since(start),
	}
	for i := range jobs {
		if docs[i] != nil {
			result.Documents = append(result.Documents, docs[i])
		}
		if defects[i] != nil {
			result.Defects = append(result.Defects, defects[i])
		}
	}

	log.Info().
		Int("generated", len(result.Documents)).
		Int("failed", len(result.Defects)).
		Int("skipped", result.Skipped).
		Dur("elapsed", result.Elapsed).
		Msg("batch complete")

	return result, nil
}

// planJobs lays out the batch in ordinal order and assigns every document its
// seed up front, so fan-out never touches a shared random source.
func (a *Assembler) planJobs() []job {
	total := a.cfg.Invoices + a.cfg.Receipts + a.cfg.Statements
	jobs := make([]job, 0, total)

	byType := []struct {
		docType types.DocumentType
		count   int
	}{
		{types.DocumentTypeInvoice, a.cfg.Invoices},
		{types.DocumentTypeReceipt, a.cfg.Receipts},
		{types.DocumentTypeBankStatement, a.cfg.Statements},
	}

	var entropy *rand.Rand
	if a.cfg.Seed == nil {
		entropy = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ordinal := 0
	for _, t := range byType {
		for i := 0; i < t.count; i++ {
			var seed int64
			if a.cfg.Seed != nil {
				seed = deriveSeed(*a.cfg.Seed, ordinal)
			} else {
				seed = entropy.Int63()
			}
			jobs = append(jobs, job{ordinal: ordinal, docType: t.docType, seed: seed})
			ordinal++
		}
	}

	return jobs
}
