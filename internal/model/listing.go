// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Listing represents a single scraped vendor product entry.
// It is immutable input; the engine never mutates it.
type Listing struct {
	Name             string
	Description      string
	Vendor           string
	ExistingCategory Category
}

// Fingerprint creates a stable hash for duplicate detection and feedback
// correlation. Listings differing only in casing or surrounding whitespace
// produce the same fingerprint.
func (l Listing) Fingerprint() string {
	data := fmt.Sprintf("%s:%s",
		strings.ToLower(strings.TrimSpace(l.Name)),
		strings.ToLower(strings.TrimSpace(l.Vendor)))
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
