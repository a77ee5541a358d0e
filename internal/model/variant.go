package model

// VariantType identifies the spec along which a bundled listing enumerates SKUs.
type VariantType string

// Variant type constants.
const (
	VariantKV       VariantType = "kv"
	VariantCapacity VariantType = "capacity"
	VariantCells    VariantType = "cells"
	VariantCurrent  VariantType = "current"
	VariantSize     VariantType = "size"
)

// VariantGroup is an enumerated run of two or more distinct values of the
// same variant type found inside one listing.
type VariantGroup struct {
	BaseName string
	Unit     string
	Type     VariantType
	Values   []string
}

// SplitPlan is the engine's proposed decomposition of a bundled listing.
// The engine never performs the split itself; persistence of the children
// is an external responsibility.
type SplitPlan struct {
	Original Listing
	Group    VariantGroup
	Children []Listing
}
