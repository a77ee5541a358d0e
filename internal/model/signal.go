package model

// SignalKind identifies which extractor produced a unit of evidence.
type SignalKind string

// Signal kind constants.
const (
	SignalNumericSpec SignalKind = "numeric-spec"
	SignalBrand       SignalKind = "brand"
	SignalKeyword     SignalKind = "keyword"
	SignalStructural  SignalKind = "structural"
)

// SpecKind identifies the numeric spec a NumericSpec signal carries.
type SpecKind string

// Numeric spec constants.
const (
	SpecKV       SpecKind = "kv"
	SpecCapacity SpecKind = "mah"
	SpecCells    SpecKind = "cells"
	SpecCurrent  SpecKind = "amps"
	SpecSizeMM   SpecKind = "mm"
	SpecPropSize SpecKind = "prop-size"
)

// Signal is one unit of evidence extracted from a Listing's text.
// Order is irrelevant and duplicates are allowed; repeated evidence
// strengthens confidence with diminishing returns.
type Signal struct {
	Kind       SignalKind
	Spec       SpecKind // set only for SignalNumericSpec
	Value      string
	Category   Category // advisory category hint for brand/keyword signals
	SourceSpan [2]int   // byte offsets into the normalized text
}
