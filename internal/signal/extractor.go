// Package signal extracts units of classification evidence from normalized
// listing text. Each extractor is independent and may emit zero or more
// signals; duplicates are allowed and strengthen confidence downstream.
package signal

import (
	"regexp"
	"sort"
	"strings"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/normalize"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/ruleset"
)

// Numeric spec patterns. Text is already lower-cased by the normalizer.
var specPatterns = []struct {
	re   *regexp.Regexp
	spec model.SpecKind
}{
	{regexp.MustCompile(`\b\d+(?:\.\d+)?\s*kv\b`), model.SpecKV},
	{regexp.MustCompile(`\b\d+\s*mah\b`), model.SpecCapacity},
	{regexp.MustCompile(`\b\d+s\b`), model.SpecCells},
	{regexp.MustCompile(`\b\d+a\b`), model.SpecCurrent},
	{regexp.MustCompile(`\b\d+(?:\.\d+)?\s*mm\b`), model.SpecSizeMM},
	{regexp.MustCompile(`\b\d+(?:\.\d+)?x\d+(?:\.\d+)?x\d+(?:\.\d+)?\b`), model.SpecPropSize},
}

type compiledTerm struct {
	re       *regexp.Regexp
	term     string
	category model.Category
}

type compiledBrand struct {
	re    *regexp.Regexp
	brand ruleset.Brand
}

// Extractor runs all signal extractors against a listing using one
// immutable rule table snapshot.
type Extractor struct {
	keywords   []compiledTerm
	accessives []compiledTerm
	brands     []compiledBrand
}

// NewExtractor precompiles the table's keyword, brand, and accessory terms.
func NewExtractor(table *ruleset.Table) *Extractor {
	e := &Extractor{}

	// Longer terms first so that phrase matches shadow their constituents.
	keywords := make([]ruleset.Keyword, len(table.Keywords))
	copy(keywords, table.Keywords)
	sort.SliceStable(keywords, func(i, j int) bool {
		return len(keywords[i].Term) > len(keywords[j].Term)
	})
	for _, kw := range keywords {
		e.keywords = append(e.keywords, compiledTerm{
			re:       termRegexp(kw.Term),
			term:     kw.Term,
			category: kw.Category,
		})
	}

	for _, term := range table.AccessoryTerms {
		e.accessives = append(e.accessives, compiledTerm{
			re:   termRegexp(term),
			term: term,
		})
	}

	for _, b := range table.Brands {
		aliases := b.Aliases
		if len(aliases) == 0 {
			aliases = []string{strings.ToLower(b.Name)}
		}
		quoted := make([]string, len(aliases))
		for i, a := range aliases {
			quoted[i] = regexp.QuoteMeta(a)
		}
		e.brands = append(e.brands, compiledBrand{
			re:    regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`),
			brand: b,
		})
	}

	return e
}

// termRegexp builds a word-bounded, plural-tolerant matcher for a term.
func termRegexp(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `s?\b`)
}

// Extract runs every extractor against the normalized listing text.
func (e *Extractor) Extract(norm normalize.Normalized) []model.Signal {
	if norm.Empty() {
		return nil
	}

	var signals []model.Signal
	signals = append(signals, ExtractNumericSpecs(norm.Text)...)
	signals = append(signals, e.extractBrands(norm.Text)...)
	signals = append(signals, e.extractKeywords(norm.Text)...)
	signals = append(signals, e.extractStructural(norm.Text)...)
	return signals
}

// ExtractNumericSpecs recognizes KV, capacity, cell count, amperage,
// millimeter, and prop dimension-triplet tokens.
func ExtractNumericSpecs(text string) []model.Signal {
	var signals []model.Signal
	for _, p := range specPatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			signals = append(signals, model.Signal{
				Kind:       model.SignalNumericSpec,
				Spec:       p.spec,
				Value:      strings.Join(strings.Fields(text[loc[0]:loc[1]]), ""),
				SourceSpan: [2]int{loc[0], loc[1]},
			})
		}
	}
	return signals
}

// extractBrands matches the curated brand-alias table. A brand signal is
// emitted once per biased category so scorers can consume it independently.
func (e *Extractor) extractBrands(text string) []model.Signal {
	var signals []model.Signal
	for _, cb := range e.brands {
		loc := cb.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if len(cb.brand.Bias) == 0 {
			signals = append(signals, model.Signal{
				Kind:       model.SignalBrand,
				Value:      cb.brand.Name,
				SourceSpan: [2]int{loc[0], loc[1]},
			})
			continue
		}
		for _, bias := range cb.brand.Bias {
			signals = append(signals, model.Signal{
				Kind:       model.SignalBrand,
				Value:      cb.brand.Name,
				Category:   bias,
				SourceSpan: [2]int{loc[0], loc[1]},
			})
		}
	}
	return signals
}

// extractKeywords matches category-indicative terms. Longer phrases are
// matched first and shadow any shorter term overlapping the same span.
func (e *Extractor) extractKeywords(text string) []model.Signal {
	var signals []model.Signal
	var covered [][2]int

	for _, ct := range e.keywords {
		for _, loc := range ct.re.FindAllStringIndex(text, -1) {
			if overlaps(covered, loc[0], loc[1]) {
				continue
			}
			covered = append(covered, [2]int{loc[0], loc[1]})
			signals = append(signals, model.Signal{
				Kind:       model.SignalKeyword,
				Value:      ct.term,
				Category:   ct.category,
				SourceSpan: [2]int{loc[0], loc[1]},
			})
		}
	}
	return signals
}

// extractStructural flags accessory, mount, and tray language that
// suppresses main-category classification.
func (e *Extractor) extractStructural(text string) []model.Signal {
	var signals []model.Signal
	for _, ct := range e.accessives {
		for _, loc := range ct.re.FindAllStringIndex(text, -1) {
			signals = append(signals, model.Signal{
				Kind:       model.SignalStructural,
				Value:      ct.term,
				SourceSpan: [2]int{loc[0], loc[1]},
			})
		}
	}
	return signals
}

func overlaps(covered [][2]int, start, end int) bool {
	for _, c := range covered {
		if start < c[1] && end > c[0] {
			return true
		}
	}
	return false
}

// BrandOf returns the first brand signal's name, or "".
func BrandOf(signals []model.Signal) string {
	for _, s := range signals {
		if s.Kind == model.SignalBrand {
			return s.Value
		}
	}
	return ""
}

// SpecValues collects the distinct values of one numeric spec kind, in
// order of first appearance.
func SpecValues(signals []model.Signal, spec model.SpecKind) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, s := range signals {
		if s.Kind != model.SignalNumericSpec || s.Spec != spec {
			continue
		}
		if _, ok := seen[s.Value]; ok {
			continue
		}
		seen[s.Value] = struct{}{}
		values = append(values, s.Value)
	}
	return values
}
