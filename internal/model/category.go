package model

// Category is the closed set of drone-part categories the engine can assign.
type Category string

// Category constants. Unknown is a first-class outcome, not an error.
const (
	CategoryMotor   Category = "motor"
	CategoryFrame   Category = "frame"
	CategoryStack   Category = "stack"
	CategoryCamera  Category = "camera"
	CategoryProp    Category = "prop"
	CategoryBattery Category = "battery"
	CategoryUnknown Category = "unknown"
)

// Categories returns every assignable category, excluding Unknown.
func Categories() []Category {
	return []Category{
		CategoryMotor,
		CategoryFrame,
		CategoryStack,
		CategoryCamera,
		CategoryProp,
		CategoryBattery,
	}
}

// ParseCategory maps a string onto the closed category set.
// Anything unrecognized maps to Unknown.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryMotor, CategoryFrame, CategoryStack, CategoryCamera, CategoryProp, CategoryBattery:
		return Category(s)
	default:
		return CategoryUnknown
	}
}

// IsKnown reports whether the category is a concrete part category.
func (c Category) IsKnown() bool {
	return c != CategoryUnknown && c != ""
}
