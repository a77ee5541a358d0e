// Package engine implements the core classification engine for categorizing
// scraped drone-part listings.
package engine

import (
	"fmt"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/common"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/normalize"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/ruleset"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/signal"
)

// Classifier turns raw listing text into an auditable category decision.
// It is a pure function of (listing, rule table): no hidden state, no I/O.
type Classifier struct {
	table     *ruleset.Table
	extractor *signal.Extractor
	kwWeights map[string]float64
}

// New creates a classifier bound to one immutable rule table snapshot.
// An invalid table is a fatal configuration error.
func New(table *ruleset.Table) (*Classifier, error) {
	if table == nil {
		return nil, fmt.Errorf("rule table is required")
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidRuleSet, err)
	}

	kwWeights := make(map[string]float64, len(table.Keywords))
	for _, kw := range table.Keywords {
		kwWeights[kw.Term] = kw.Weight
	}

	return &Classifier{
		table:     table,
		extractor: signal.NewExtractor(table),
		kwWeights: kwWeights,
	}, nil
}

// Table returns the rule table snapshot this classifier observes.
func (c *Classifier) Table() *ruleset.Table {
	return c.table
}

// Classify decides which category a listing belongs to. Malformed or empty
// text never fails; it degrades to Unknown with explanatory warnings.
func (c *Classifier) Classify(name, description string) model.ClassificationResult {
	norm := normalize.Listing(name, description)
	if norm.Empty() {
		return model.ClassificationResult{
			Category:   model.CategoryUnknown,
			Method:     model.MethodBelowThreshold,
			Confidence: 0,
			Reasoning:  []string{"no-signals"},
			Warnings:   []string{"no extractable text"},
		}
	}

	signals := c.extractor.Extract(norm)
	scores, suppression := c.scoreAll(signals)
	return c.decide(scores, suppression)
}

// ClassifyListing is a convenience wrapper over Classify.
func (c *Classifier) ClassifyListing(l model.Listing) model.ClassificationResult {
	return c.Classify(l.Name, l.Description)
}
