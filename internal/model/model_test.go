package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryMotor, ParseCategory("motor"))
	assert.Equal(t, CategoryBattery, ParseCategory("battery"))
	assert.Equal(t, CategoryUnknown, ParseCategory("unknown"))
	assert.Equal(t, CategoryUnknown, ParseCategory("gimbal"))
	assert.Equal(t, CategoryUnknown, ParseCategory(""))
}

func TestCategoryIsKnown(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsKnown(), "%s", c)
	}
	assert.False(t, CategoryUnknown.IsKnown())
	assert.False(t, Category("").IsKnown())
}

func TestListingFingerprint(t *testing.T) {
	a := Listing{Name: "Velox V2 Motor", Vendor: "GetFPV"}
	b := Listing{Name: "velox v2 motor", Vendor: "getfpv"}
	c := Listing{Name: "Velox V2 Motor", Vendor: "Pyrodrone"}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "case-insensitive")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "vendor-scoped")
	assert.Len(t, a.Fingerprint(), 64)

	// Description changes never move the fingerprint.
	d := a
	d.Description = "updated copy"
	assert.Equal(t, a.Fingerprint(), d.Fingerprint())
}

func TestClassificationResultValidate(t *testing.T) {
	valid := ClassificationResult{
		Category:   CategoryMotor,
		Method:     MethodStructural,
		Confidence: 85,
	}
	require.NoError(t, valid.Validate())

	missing := ClassificationResult{Confidence: 50}
	assert.Error(t, missing.Validate())

	outOfRange := valid
	outOfRange.Confidence = 101
	assert.Error(t, outOfRange.Validate())

	bareUnknown := ClassificationResult{
		Category: CategoryUnknown,
		Method:   MethodBelowThreshold,
	}
	assert.Error(t, bareUnknown.Validate(), "unknown needs a warning")

	bareUnknown.Warnings = []string{"no category cleared minimum confidence"}
	assert.NoError(t, bareUnknown.Validate())
}

func TestCategoryScoresSort(t *testing.T) {
	scores := CategoryScores{
		{Category: CategoryCamera, Raw: 2.5, Method: MethodKeyword},
		{Category: CategoryMotor, Raw: 8.5, Method: MethodStructural},
		{Category: CategoryProp, Raw: 8.5, Method: MethodBrandBias},
		{Category: CategoryFrame, Raw: 8.5, Method: MethodStructural},
	}
	scores.Sort()

	// Raw first; ties fall to rule-class priority, then category name.
	assert.Equal(t, CategoryFrame, scores[0].Category)
	assert.Equal(t, CategoryMotor, scores[1].Category)
	assert.Equal(t, CategoryProp, scores[2].Category)
	assert.Equal(t, CategoryCamera, scores[3].Category)
}

func TestCategoryScoresTop(t *testing.T) {
	assert.Nil(t, CategoryScores{}.Top())

	scores := CategoryScores{
		{Category: CategoryProp, Raw: 1},
		{Category: CategoryStack, Raw: 4},
	}
	top := scores.Top()
	require.NotNil(t, top)
	assert.Equal(t, CategoryStack, top.Category)
}
