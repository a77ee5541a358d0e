// Package ruleset holds the read-only weight and pattern tables that drive
// classification. Tables are immutable values; refreshing means building a
// new table and swapping a reference, never mutating in place.
package ruleset

import (
	"fmt"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
)

// Weights holds the scoring weights for each rule class.
type Weights struct {
	Definitive      float64 `mapstructure:"definitive"`
	StrongKeyword   float64 `mapstructure:"strong_keyword"`
	Brand           float64 `mapstructure:"brand"`
	NegativePenalty float64 `mapstructure:"negative_penalty"`
	RepeatFactor    float64 `mapstructure:"repeat_factor"`
}

// Thresholds holds the decision boundaries for classification and matching.
type Thresholds struct {
	MinScore       float64 `mapstructure:"min_score"`
	TieMargin      float64 `mapstructure:"tie_margin"`
	ConfidenceKnee float64 `mapstructure:"confidence_knee"`
	HighConfidence int     `mapstructure:"high_confidence"`
	AutoMerge      float64 `mapstructure:"auto_merge"`
	Review         float64 `mapstructure:"review"`
}

// Brand describes a known manufacturer, its vendor-text aliases, and the
// product lines it is known for. Bias is advisory, never decisive.
type Brand struct {
	Name    string           `mapstructure:"name"`
	Aliases []string         `mapstructure:"aliases"`
	Bias    []model.Category `mapstructure:"bias"`
}

// Keyword maps a category-indicative term to a category with a weight.
// Multi-word terms shadow their constituent words when they match.
type Keyword struct {
	Term     string         `mapstructure:"term"`
	Category model.Category `mapstructure:"category"`
	Weight   float64        `mapstructure:"weight"`
}

// Table is the complete immutable rule table a classification run observes.
type Table struct {
	Weights        Weights    `mapstructure:"weights"`
	Thresholds     Thresholds `mapstructure:"thresholds"`
	Brands         []Brand    `mapstructure:"brands"`
	Keywords       []Keyword  `mapstructure:"keywords"`
	AccessoryTerms []string   `mapstructure:"accessory_terms"`
}

// Validate checks the table for configuration errors. A corrupt table is
// fatal at startup, never per-call.
func (t *Table) Validate() error {
	if t.Weights.Definitive <= 0 {
		return fmt.Errorf("weights.definitive must be positive, got %g", t.Weights.Definitive)
	}
	if t.Weights.StrongKeyword <= 0 || t.Weights.StrongKeyword > t.Weights.Definitive {
		return fmt.Errorf("weights.strong_keyword must be within (0, definitive], got %g", t.Weights.StrongKeyword)
	}
	if t.Weights.NegativePenalty >= 0 {
		return fmt.Errorf("weights.negative_penalty must be negative, got %g", t.Weights.NegativePenalty)
	}
	if t.Weights.RepeatFactor < 0 || t.Weights.RepeatFactor > 1 {
		return fmt.Errorf("weights.repeat_factor must be within [0,1], got %g", t.Weights.RepeatFactor)
	}
	if t.Thresholds.MinScore <= 0 {
		return fmt.Errorf("thresholds.min_score must be positive, got %g", t.Thresholds.MinScore)
	}
	if t.Thresholds.ConfidenceKnee <= 0 {
		return fmt.Errorf("thresholds.confidence_knee must be positive, got %g", t.Thresholds.ConfidenceKnee)
	}
	if t.Thresholds.HighConfidence < 0 || t.Thresholds.HighConfidence > 100 {
		return fmt.Errorf("thresholds.high_confidence must be within [0,100], got %d", t.Thresholds.HighConfidence)
	}
	if t.Thresholds.Review > t.Thresholds.AutoMerge {
		return fmt.Errorf("thresholds.review (%g) must not exceed thresholds.auto_merge (%g)",
			t.Thresholds.Review, t.Thresholds.AutoMerge)
	}
	for _, kw := range t.Keywords {
		if kw.Term == "" {
			return fmt.Errorf("keyword with empty term")
		}
		if !kw.Category.IsKnown() {
			return fmt.Errorf("keyword %q targets unknown category %q", kw.Term, kw.Category)
		}
		if kw.Weight <= 0 {
			return fmt.Errorf("keyword %q has non-positive weight %g", kw.Term, kw.Weight)
		}
	}
	for _, b := range t.Brands {
		if b.Name == "" {
			return fmt.Errorf("brand with empty name")
		}
		for _, bias := range b.Bias {
			if !bias.IsKnown() {
				return fmt.Errorf("brand %q biased toward unknown category %q", b.Name, bias)
			}
		}
	}
	if len(t.AccessoryTerms) == 0 {
		return fmt.Errorf("accessory_terms must not be empty")
	}
	return nil
}
