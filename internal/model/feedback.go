package model

import "time"

// FeedbackEntry records a human category correction for a listing.
// Entries are append-only and consumed by an offline weight-tuning pass;
// they are never read synchronously during classification.
type FeedbackEntry struct {
	Timestamp   time.Time
	Fingerprint string
	Category    Category
}
