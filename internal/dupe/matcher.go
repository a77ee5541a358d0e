// Package dupe flags catalog entries that likely represent the same
// physical product as a freshly classified listing.
package dupe

import (
	"sort"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/normalize"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/ruleset"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/signal"
)

// Similarity weights. Name overlap dominates; brand, category, and spec
// agreement refine it.
const (
	nameWeight     = 0.5
	brandWeight    = 0.15
	categoryWeight = 0.15
	specWeight     = 0.2
)

// Matcher scores listings against existing catalog signal fingerprints.
type Matcher struct {
	extractor          *signal.Extractor
	autoMergeThreshold float64
	reviewThreshold    float64
}

// NewMatcher creates a matcher using the table's duplicate thresholds.
func NewMatcher(table *ruleset.Table) *Matcher {
	return &Matcher{
		extractor:          signal.NewExtractor(table),
		autoMergeThreshold: table.Thresholds.AutoMerge,
		reviewThreshold:    table.Thresholds.Review,
	}
}

// FindDuplicates ranks candidate catalog entries by similarity. Candidates
// below the review threshold are dropped entirely, keeping the admin
// review queue small.
func (m *Matcher) FindDuplicates(listing model.Listing, pool []model.CatalogEntry) []model.DuplicateCandidate {
	norm := normalize.Listing(listing.Name, listing.Description)
	if norm.Empty() {
		return nil
	}

	tokens := normalize.TokenSet(norm.Name)
	signals := m.extractor.Extract(norm)
	brand := signal.BrandOf(signals)
	specs := specSet(signals)

	var candidates []model.DuplicateCandidate
	for _, entry := range pool {
		sim := m.similarity(listing, tokens, brand, specs, entry)
		if sim < m.reviewThreshold {
			continue
		}

		action := model.ActionNeedsReview
		if sim >= m.autoMergeThreshold {
			action = model.ActionAutoMerge
		}
		candidates = append(candidates, model.DuplicateCandidate{
			CandidateID: entry.ID,
			Similarity:  sim,
			Action:      action,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].CandidateID < candidates[j].CandidateID
	})
	return candidates
}

func (m *Matcher) similarity(listing model.Listing, tokens map[string]struct{}, brand string, specs map[string]struct{}, entry model.CatalogEntry) float64 {
	sim := nameWeight * jaccard(tokens, normalize.TokenSet(normalize.Text(entry.Name)))

	entryBrand := entry.Brand
	if entryBrand == "" {
		entryBrand = signal.BrandOf(m.extractor.Extract(normalize.Listing(entry.Name, "")))
	}
	if brand != "" && brand == entryBrand {
		sim += brandWeight
	}
	if listing.ExistingCategory.IsKnown() && listing.ExistingCategory == entry.Category {
		sim += categoryWeight
	}

	entrySpecs := specSet(entry.Specs)
	sim += specWeight * jaccard(specs, entrySpecs)

	return sim
}

func specSet(signals []model.Signal) map[string]struct{} {
	set := make(map[string]struct{})
	for _, s := range signals {
		if s.Kind != model.SignalNumericSpec {
			continue
		}
		set[string(s.Spec)+":"+s.Value] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
