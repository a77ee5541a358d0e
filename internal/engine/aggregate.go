package engine

import (
	"math"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
)

// decide ranks the category scores, breaks near-ties, and maps the winner
// onto a bounded confidence with an auditable method and reasoning trail.
func (c *Classifier) decide(scores model.CategoryScores, sup suppression) model.ClassificationResult {
	scores.Sort()
	top := scores[0]

	// Near-ties are broken by rule-class priority: definitive structural
	// beats keyword beats brand bias.
	for _, s := range scores[1:] {
		if scores[0].Raw-s.Raw >= c.table.Thresholds.TieMargin {
			break
		}
		if methodStronger(s.Method, top.Method) {
			top = s
		}
	}

	if sup.active {
		reasoning := append([]string{}, top.Reasons...)
		if len(reasoning) == 0 {
			reasoning = []string{"no-signals"}
		}
		warnings := []string{"accessory language suppressed classification"}
		for _, term := range sup.terms {
			warnings = append(warnings, "accessory:"+term)
		}
		return model.ClassificationResult{
			Category:   model.CategoryUnknown,
			Method:     model.MethodAccessorySuppressed,
			Confidence: c.confidence(top.Raw),
			Reasoning:  reasoning,
			Warnings:   warnings,
		}
	}

	if top.Raw < c.table.Thresholds.MinScore {
		reasoning := append([]string{}, top.Reasons...)
		if len(reasoning) == 0 {
			reasoning = []string{"no-signals"}
		}
		return model.ClassificationResult{
			Category:   model.CategoryUnknown,
			Method:     model.MethodBelowThreshold,
			Confidence: c.confidence(top.Raw),
			Reasoning:  reasoning,
			Warnings:   []string{"no category cleared minimum confidence"},
		}
	}

	return model.ClassificationResult{
		Category:   top.Category,
		Method:     top.Method,
		Confidence: c.confidence(top.Raw),
		Reasoning:  append([]string{}, top.Reasons...),
		Warnings:   []string{},
	}
}

// confidence maps an open-ended raw score onto 0..100 with a monotonic
// saturating curve. Redundant evidence shows diminishing returns.
func (c *Classifier) confidence(raw float64) int {
	if raw <= 0 {
		return 0
	}
	conf := int(math.Round(100 * raw / (raw + c.table.Thresholds.ConfidenceKnee)))
	if conf > 100 {
		conf = 100
	}
	return conf
}
