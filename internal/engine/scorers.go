package engine

import (
	"strconv"
	"strings"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
)

// Weight for spec hits that hint at a category without being conclusive
// on their own (single capacity token, bare amperage, sub-wheelbase mm).
const supportingSpecWeight = 1.5

// Wheelbase-scale millimeter values are near-conclusive for frames;
// smaller mm tokens are mounting-hole or camera dimensions.
const wheelbaseMinMM = 90

// suppression describes an accessory-language cap applied to all scores.
type suppression struct {
	terms  []string
	active bool
}

// accumulator gathers one category's rule hits. Repeated evidence of the
// same reason code contributes with diminishing returns.
type accumulator struct {
	counts     map[string]int
	score      model.CategoryScore
	c          *Classifier
	definitive bool
}

func (c *Classifier) newAccumulator(cat model.Category) *accumulator {
	return &accumulator{
		counts: make(map[string]int),
		score: model.CategoryScore{
			Category: cat,
			Method:   model.MethodBelowThreshold,
		},
		c: c,
	}
}

func (a *accumulator) add(method model.Method, code string, weight float64) {
	if method == model.MethodStructural && weight >= a.c.table.Weights.Definitive {
		a.definitive = true
	}
	if n := a.counts[code]; n > 0 {
		weight *= a.c.table.Weights.RepeatFactor
	}
	a.counts[code]++
	a.score.Raw += weight
	a.score.Reasons = append(a.score.Reasons, code)

	if weight > 0 && methodStronger(method, a.score.Method) {
		a.score.Method = method
	}
}

func (a *accumulator) penalize(code string) {
	a.score.Raw += a.c.table.Weights.NegativePenalty
	a.score.Reasons = append(a.score.Reasons, code)
}

// strongKeyword reports whether a keyword conclusive on its own matched
// (weight at or above the strong-keyword threshold).
func (a *accumulator) strongKeyword() bool {
	for code, n := range a.counts {
		if n == 0 {
			continue
		}
		term, ok := strings.CutPrefix(code, "keyword:")
		if !ok {
			continue
		}
		if a.c.kwWeights[term] >= a.c.table.Weights.StrongKeyword {
			return true
		}
	}
	return false
}

// strong reports whether the accumulated evidence is conclusive enough to
// trigger cross-reference penalties against weaker categories.
func (a *accumulator) strong() bool {
	return a.definitive || a.strongKeyword()
}

// scoreAll runs every category scorer over the extracted signals and applies
// the cross-category rules: brand bias gating, negative cross-reference
// penalties, and accessory suppression.
func (c *Classifier) scoreAll(signals []model.Signal) (model.CategoryScores, suppression) {
	accs := make(map[model.Category]*accumulator, len(model.Categories()))
	for _, cat := range model.Categories() {
		accs[cat] = c.newAccumulator(cat)
	}

	specs := make(map[model.SpecKind][]model.Signal)
	var structural []model.Signal
	var brands []model.Signal
	keywordCats := make(map[model.Category]bool)

	for _, s := range signals {
		switch s.Kind {
		case model.SignalNumericSpec:
			specs[s.Spec] = append(specs[s.Spec], s)
		case model.SignalStructural:
			structural = append(structural, s)
		case model.SignalBrand:
			brands = append(brands, s)
		case model.SignalKeyword:
			keywordCats[s.Category] = true
		}
	}

	// Rule class 1: definitive structural rules.
	c.scoreMotorSpecs(accs[model.CategoryMotor], specs)
	c.scoreFrameSpecs(accs[model.CategoryFrame], specs)
	c.scoreStackSpecs(accs[model.CategoryStack], specs, keywordCats[model.CategoryStack])
	c.scorePropSpecs(accs[model.CategoryProp], specs)
	c.scoreBatterySpecs(accs[model.CategoryBattery], specs)

	// Rule class 2: keyword rules.
	for _, s := range signals {
		if s.Kind != model.SignalKeyword {
			continue
		}
		acc, ok := accs[s.Category]
		if !ok {
			continue
		}
		acc.add(model.MethodKeyword, "keyword:"+s.Value, c.kwWeights[s.Value])
	}

	// Rule class 3: brand bias, applied only where no stronger category
	// already dominates. Prevents a bare brand match from winning outright.
	preBest := 0.0
	for _, acc := range accs {
		if acc.score.Raw > preBest {
			preBest = acc.score.Raw
		}
	}
	for _, s := range brands {
		acc, ok := accs[s.Category]
		if !ok {
			continue
		}
		if preBest-acc.score.Raw > c.table.Thresholds.TieMargin {
			continue
		}
		acc.add(model.MethodBrandBias, "brand-bias:"+s.Value, c.table.Weights.Brand)
	}

	// Rule class 4: negative rules. Compatibility mentions are
	// cross-references, not self-description: categories with keyword-only
	// evidence are penalized when another category holds conclusive evidence.
	anyStrong := false
	for _, acc := range accs {
		if acc.strong() {
			anyStrong = true
			break
		}
	}
	if anyStrong {
		for _, acc := range accs {
			if !acc.strong() && acc.score.Raw > 0 {
				acc.penalize("penalty:cross-reference")
			}
		}
	}

	// Rule class 5: accessory suppression. Mount/tray/protection language
	// forces Unknown regardless of spec hits: a KV rating or dimension
	// triplet on an accessory listing describes the parent product, not the
	// listing. Only a keyword conclusive on its own ("frame kit", "lipo
	// battery") overrides the suppression.
	anyStrongKeyword := false
	for _, acc := range accs {
		if acc.strongKeyword() {
			anyStrongKeyword = true
			break
		}
	}
	sup := suppression{}
	if len(structural) > 0 && !anyStrongKeyword {
		sup.active = true
		seen := make(map[string]struct{}, len(structural))
		for _, s := range structural {
			if _, ok := seen[s.Value]; ok {
				continue
			}
			seen[s.Value] = struct{}{}
			sup.terms = append(sup.terms, s.Value)
		}
		ceiling := c.table.Thresholds.MinScore / 2
		for _, acc := range accs {
			if acc.score.Raw > ceiling {
				acc.score.Raw = ceiling
				acc.score.Reasons = append(acc.score.Reasons, "accessory-capped")
			}
		}
	}

	scores := make(model.CategoryScores, 0, len(accs))
	for _, cat := range model.Categories() {
		score := accs[cat].score
		if score.Raw < 0 {
			score.Raw = 0
		}
		scores = append(scores, score)
	}
	return scores, sup
}

// An explicit KV rating is near-conclusive for motors.
func (c *Classifier) scoreMotorSpecs(acc *accumulator, specs map[model.SpecKind][]model.Signal) {
	for range specs[model.SpecKV] {
		acc.add(model.MethodStructural, "kv-spec", c.table.Weights.Definitive)
	}
}

// Wheelbase-scale mm values are near-conclusive for frames regardless of
// any other text; small mm tokens only hint.
func (c *Classifier) scoreFrameSpecs(acc *accumulator, specs map[model.SpecKind][]model.Signal) {
	for _, s := range specs[model.SpecSizeMM] {
		if parseLeadingNumber(s.Value) >= wheelbaseMinMM {
			acc.add(model.MethodStructural, "wheelbase-spec", c.table.Weights.Definitive)
		} else {
			acc.add(model.MethodStructural, "size-spec", supportingSpecWeight)
		}
	}
}

// Amperage is conclusive for stacks only alongside ESC/FC language; a bare
// current rating also shows up on battery C-ratings and chargers.
func (c *Classifier) scoreStackSpecs(acc *accumulator, specs map[model.SpecKind][]model.Signal, stackContext bool) {
	for range specs[model.SpecCurrent] {
		if stackContext {
			acc.add(model.MethodStructural, "esc-current-spec", c.table.Weights.Definitive)
		} else {
			acc.add(model.MethodStructural, "current-spec", supportingSpecWeight)
		}
	}
}

// A dimension triplet (e.g. 5.1x3.1x3) is near-conclusive for props.
func (c *Classifier) scorePropSpecs(acc *accumulator, specs map[model.SpecKind][]model.Signal) {
	for range specs[model.SpecPropSize] {
		acc.add(model.MethodStructural, "prop-dimension-spec", c.table.Weights.Definitive)
	}
}

// A capacity plus cell-count pair is near-conclusive for batteries; either
// alone only hints.
func (c *Classifier) scoreBatterySpecs(acc *accumulator, specs map[model.SpecKind][]model.Signal) {
	for range specs[model.SpecCapacity] {
		acc.add(model.MethodStructural, "capacity-spec", supportingSpecWeight)
	}
	for range specs[model.SpecCells] {
		acc.add(model.MethodStructural, "cell-count-spec", supportingSpecWeight)
	}
	if len(specs[model.SpecCapacity]) > 0 && len(specs[model.SpecCells]) > 0 {
		acc.add(model.MethodStructural, "capacity-cells-pair", c.table.Weights.Definitive)
	}
}

func methodStronger(a, b model.Method) bool {
	rank := func(m model.Method) int {
		switch m {
		case model.MethodStructural:
			return 3
		case model.MethodKeyword:
			return 2
		case model.MethodBrandBias:
			return 1
		default:
			return 0
		}
	}
	return rank(a) > rank(b)
}

func parseLeadingNumber(value string) float64 {
	i := 0
	for i < len(value) && (value[i] >= '0' && value[i] <= '9' || value[i] == '.') {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.ParseFloat(value[:i], 64)
	if err != nil {
		return 0
	}
	return n
}
