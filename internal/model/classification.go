package model

import (
	"fmt"
	"sort"
)

// Method records which rule class decided a classification outcome.
type Method string

// Method constants.
const (
	MethodStructural          Method = "structural"
	MethodKeyword             Method = "keyword"
	MethodBrandBias           Method = "brand-bias"
	MethodAccessorySuppressed Method = "accessory-suppressed"
	MethodBelowThreshold      Method = "below-threshold"
)

// ClassificationResult is the durable output of a classification call.
// Confidence and reasoning are always populated, even for Unknown.
type ClassificationResult struct {
	Category   Category
	Method     Method
	Reasoning  []string
	Warnings   []string
	Confidence int // 0..100
}

// Validate ensures the result honors its bounds.
func (r *ClassificationResult) Validate() error {
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return fmt.Errorf("confidence must be between 0 and 100, got %d", r.Confidence)
	}
	if r.Category == CategoryUnknown && len(r.Warnings) == 0 {
		return fmt.Errorf("unknown results must carry at least one warning")
	}
	return nil
}

// CategoryScore is one scorer's weighted verdict for a single category.
// Scores are discarded after aggregation and never persisted.
type CategoryScore struct {
	Category Category
	Method   Method // strongest rule class that contributed
	Reasons  []string
	Raw      float64
}

// CategoryScores is a slice of CategoryScore supporting ranking.
type CategoryScores []CategoryScore

// Len implements sort.Interface.
func (s CategoryScores) Len() int { return len(s) }

// Less implements sort.Interface - higher raw scores come first.
func (s CategoryScores) Less(i, j int) bool {
	if s[i].Raw != s[j].Raw {
		return s[i].Raw > s[j].Raw
	}
	// Equal scores fall back to rule-class priority, then name for stability.
	if pi, pj := s[i].Method.priority(), s[j].Method.priority(); pi != pj {
		return pi > pj
	}
	return s[i].Category < s[j].Category
}

// Swap implements sort.Interface.
func (s CategoryScores) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Sort ranks the scores best-first.
func (s CategoryScores) Sort() { sort.Sort(s) }

// Top returns the best-ranked score, or nil if empty.
func (s CategoryScores) Top() *CategoryScore {
	if len(s) == 0 {
		return nil
	}
	s.Sort()
	return &s[0]
}

// priority orders rule classes for tie-breaking:
// definitive structural > keyword > brand bias.
func (m Method) priority() int {
	switch m {
	case MethodStructural:
		return 3
	case MethodKeyword:
		return 2
	case MethodBrandBias:
		return 1
	default:
		return 0
	}
}
