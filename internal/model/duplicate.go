package model

// DuplicateAction indicates how a duplicate candidate should be handled.
type DuplicateAction string

// Duplicate action constants.
const (
	ActionAutoMerge   DuplicateAction = "AUTO_MERGE"
	ActionNeedsReview DuplicateAction = "NEEDS_REVIEW"
)

// DuplicateCandidate is an existing catalog entry suspected of representing
// the same physical product as a new listing.
type DuplicateCandidate struct {
	CandidateID string
	Action      DuplicateAction
	Similarity  float64 // 0..1
}

// CatalogEntry is the externally supplied signal fingerprint of an existing
// catalog product, used for duplicate matching.
type CatalogEntry struct {
	ID       string
	Name     string
	Brand    string
	Category Category
	Specs    []Signal
}
