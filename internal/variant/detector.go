// Package variant detects vendor listings that bundle multiple SKUs behind
// one product entry and proposes how to split them.
package variant

import (
	"regexp"
	"strings"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
)

type unitPattern struct {
	re    *regexp.Regexp
	vtype model.VariantType
	unit  string
}

// listPattern matches a run of two or more numeric values of one unit,
// separated by bundling punctuation (slash, comma, "or"). The unit may
// trail each value or only the last one.
func listPattern(unit string) *regexp.Regexp {
	value := `\d+(?:\.\d+)?`
	sep := `\s*(?:/|,|\bor\b)\s*`
	return regexp.MustCompile(`(?i)\b` + value + `\s*(?:` + unit + `)?(?:` + sep + value + `\s*(?:` + unit + `)?)+\s*` + unit + `\b`)
}

// Checked in order; the first type with an enumerated run wins.
var unitPatterns = []unitPattern{
	{listPattern(`kv`), model.VariantKV, "KV"},
	{listPattern(`mah`), model.VariantCapacity, "MAH"},
	{listPattern(`s`), model.VariantCells, "S"},
	{listPattern(`a`), model.VariantCurrent, "A"},
	{listPattern(`mm`), model.VariantSize, "MM"},
}

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Detector scans classified listings for enumerated-value bundles.
type Detector struct{}

// NewDetector creates a variant detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectVariants scans name and description for an enumerated run of
// same-type values. It returns a split plan with one child listing per
// value, or nil when the listing is not a bundle. A single value is the
// expected common case and produces no plan.
func (d *Detector) DetectVariants(name, description string, category model.Category) *model.SplitPlan {
	original := model.Listing{
		Name:             name,
		Description:      description,
		ExistingCategory: category,
	}

	for _, up := range unitPatterns {
		baseName, values := d.findRun(up, name, description)
		if len(values) < 2 {
			continue
		}

		group := model.VariantGroup{
			BaseName: baseName,
			Type:     up.vtype,
			Unit:     up.unit,
			Values:   values,
		}

		children := make([]model.Listing, 0, len(values))
		for _, value := range values {
			childName := strings.ToUpper(value)
			if baseName != "" {
				childName = baseName + " - " + childName
			}
			children = append(children, model.Listing{
				Name:             childName,
				Description:      description,
				Vendor:           original.Vendor,
				ExistingCategory: category,
			})
		}

		return &model.SplitPlan{
			Original: original,
			Group:    group,
			Children: children,
		}
	}

	return nil
}

// findRun locates an enumerated run in the name first, falling back to the
// description. When the run sits in the name, the base name is the name
// with the run removed; a run that spans the whole name leaves it empty.
func (d *Detector) findRun(up unitPattern, name, description string) (string, []string) {
	if loc := up.re.FindStringIndex(name); loc != nil {
		values := extractValues(name[loc[0]:loc[1]], up.unit)
		return trimBase(name[:loc[0]] + name[loc[1]:]), values
	}
	if match := up.re.FindString(description); match != "" {
		return trimBase(name), extractValues(match, up.unit)
	}
	return "", nil
}

// extractValues normalizes each enumerated number to "<number><UNIT>" form.
// Duplicated values collapse; a run of identical values is not a bundle.
func extractValues(run, unit string) []string {
	numbers := numberRe.FindAllString(run, -1)
	seen := make(map[string]struct{}, len(numbers))
	values := make([]string, 0, len(numbers))
	for _, n := range numbers {
		value := n + unit
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}

func trimBase(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " -,/")
}
