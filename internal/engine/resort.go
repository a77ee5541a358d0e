package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/common"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/service"
)

// OverwritePolicy controls how resort treats listings that already carry a
// category assignment.
type OverwritePolicy string

// Overwrite policy constants.
const (
	// OverwriteAlways replaces the stored classification with the fresh
	// result unconditionally.
	OverwriteAlways OverwritePolicy = "always"
	// OverwriteKeepConfident keeps the stored assignment when the fresh
	// result is Unknown or less confident than what is already recorded.
	OverwriteKeepConfident OverwritePolicy = "keep-confident"
)

// ResortOptions configures a bulk resort run.
type ResortOptions struct {
	Filter     service.ListingFilter
	Overwrite  OverwritePolicy
	Workers    int
	DryRun     bool
	OnProgress func(processed, total int)
}

// DefaultResortOptions sizes the worker pool to the available CPUs; resort
// is CPU-bound with no network calls.
func DefaultResortOptions() ResortOptions {
	return ResortOptions{
		Overwrite: OverwriteKeepConfident,
		Workers:   runtime.NumCPU(),
	}
}

// ResortChange records one listing whose category assignment changed.
type ResortChange struct {
	ID         string
	From       model.Category
	To         model.Category
	Confidence int
}

// ResortError records a per-item failure. Failures never abort the batch.
type ResortError struct {
	Err error
	ID  string
}

// ResortSummary is the aggregate report of a resort run. Re-running resort
// on an already-correct catalog reports zero reclassifications.
type ResortSummary struct {
	Changes        []ResortChange
	Errors         []ResortError
	TotalProcessed int
	Reclassified   int
}

// Resorter reclassifies the catalog index, or a filtered subset of it,
// concurrently.
type Resorter struct {
	classifier *Classifier
	storage    service.Storage
}

// NewResorter creates a resort engine. The classifier's rule table snapshot
// stays fixed for every run started from this resorter, keeping a single
// batch internally consistent.
func NewResorter(classifier *Classifier, storage service.Storage) *Resorter {
	return &Resorter{
		classifier: classifier,
		storage:    storage,
	}
}

type resortResult struct {
	err     error
	id      string
	change  *ResortChange
	changed bool
}

// Run reclassifies every listing the filter selects. Items are processed
// independently; per-item failures are accumulated, and cancellation stops
// the run cooperatively after in-flight items finish.
func (r *Resorter) Run(ctx context.Context, opts ResortOptions) (*ResortSummary, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Overwrite == "" {
		opts.Overwrite = OverwriteKeepConfident
	}

	listings, err := r.storage.ListListings(ctx, opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog index: %w", err)
	}

	summary := &ResortSummary{}
	if len(listings) == 0 {
		slog.Info("No listings to resort")
		return summary, nil
	}

	slog.Info("Starting resort",
		"listings", len(listings),
		"workers", opts.Workers,
		"overwrite", opts.Overwrite,
		"dry_run", opts.DryRun)

	workChan := make(chan service.StoredListing, len(listings))
	for _, l := range listings {
		workChan <- l
	}
	close(workChan)

	resultsChan := make(chan resortResult, len(listings))

	var wg sync.WaitGroup
	wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go func() {
			defer wg.Done()
			r.resortWorker(ctx, workChan, resultsChan, opts)
		}()
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for result := range resultsChan {
		summary.TotalProcessed++
		if opts.OnProgress != nil {
			opts.OnProgress(summary.TotalProcessed, len(listings))
		}
		if result.err != nil {
			common.LogError(result.err, "Failed to reclassify listing", common.Fields{"id": result.id})
			summary.Errors = append(summary.Errors, ResortError{ID: result.id, Err: result.err})
			continue
		}
		if result.changed {
			summary.Reclassified++
			summary.Changes = append(summary.Changes, *result.change)
		}
	}

	if ctx.Err() != nil {
		slog.Info("Resort canceled",
			"processed", summary.TotalProcessed,
			"reclassified", summary.Reclassified)
		return summary, ctx.Err()
	}

	slog.Info("Resort complete",
		"processed", summary.TotalProcessed,
		"reclassified", summary.Reclassified,
		"errors", len(summary.Errors))
	return summary, nil
}

func (r *Resorter) resortWorker(ctx context.Context, workChan <-chan service.StoredListing, resultsChan chan<- resortResult, opts ResortOptions) {
	for listing := range workChan {
		select {
		case <-ctx.Done():
			return
		default:
		}
		resultsChan <- r.resortOne(ctx, listing, opts)
	}
}

// resortOne reclassifies a single listing. Classification is pure, so
// re-running on an already-correct listing yields the same result and a
// no-op persistence diff.
func (r *Resorter) resortOne(ctx context.Context, listing service.StoredListing, opts ResortOptions) resortResult {
	result := r.classifier.Classify(listing.Name, listing.Description)

	if !r.shouldOverwrite(listing, result, opts.Overwrite) {
		return resortResult{id: listing.ID}
	}
	if result.Category == listing.Category && result.Confidence == listing.Confidence {
		return resortResult{id: listing.ID}
	}

	if !opts.DryRun {
		if err := r.storage.UpdateClassification(ctx, listing.ID, result); err != nil {
			return resortResult{id: listing.ID, err: fmt.Errorf("failed to update classification: %w", err)}
		}
	}

	return resortResult{
		id:      listing.ID,
		changed: true,
		change: &ResortChange{
			ID:         listing.ID,
			From:       listing.Category,
			To:         result.Category,
			Confidence: result.Confidence,
		},
	}
}

// shouldOverwrite applies the existing-category policy. Under
// keep-confident a fresh result never lowers an established assignment.
func (r *Resorter) shouldOverwrite(listing service.StoredListing, result model.ClassificationResult, policy OverwritePolicy) bool {
	if policy == OverwriteAlways {
		return true
	}
	if !listing.Category.IsKnown() {
		return true
	}
	if result.Category == model.CategoryUnknown {
		return false
	}
	return result.Confidence >= listing.Confidence
}
