// Package service defines the interfaces between the classification engine
// and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
)

// Classifier decides which category a raw listing belongs to.
type Classifier interface {
	Classify(name, description string) model.ClassificationResult
}

// VariantDetector finds enumerated-value bundles and proposes split plans.
// A nil plan means the listing is not a bundle; that is the common case,
// not an error.
type VariantDetector interface {
	DetectVariants(name, description string, category model.Category) *model.SplitPlan
}

// DuplicateFinder compares a classified listing against existing catalog
// fingerprints.
type DuplicateFinder interface {
	FindDuplicates(listing model.Listing, pool []model.CatalogEntry) []model.DuplicateCandidate
}

// StoredListing is a catalog-index row: a listing together with its most
// recent classification.
type StoredListing struct {
	ID          string
	Name        string
	Description string
	Vendor      string
	Fingerprint string
	Category    model.Category
	Method      model.Method
	Confidence  int
}

// ListingFilter defines filtering options for catalog-index queries.
type ListingFilter struct {
	Category *model.Category
	Vendor   string
	Limit    int
	Offset   int
}

// Storage defines the contract for the engine's local persistence points:
// the catalog index used by resort and duplicate matching, and the
// append-only feedback log. The product database proper stays external.
type Storage interface {
	// Catalog index operations
	UpsertListing(ctx context.Context, listing *StoredListing) error
	GetListing(ctx context.Context, id string) (*StoredListing, error)
	ListListings(ctx context.Context, filter ListingFilter) ([]StoredListing, error)
	UpdateClassification(ctx context.Context, id string, result model.ClassificationResult) error
	CatalogEntries(ctx context.Context) ([]model.CatalogEntry, error)

	// Feedback log operations (append-only, never read during classification)
	AppendFeedback(ctx context.Context, entry model.FeedbackEntry) error
	ListFeedback(ctx context.Context, since time.Time) ([]model.FeedbackEntry, error)

	// Migrate brings the schema up to the expected version.
	Migrate(ctx context.Context) error
	Close() error
}
