package variant

import (
	"testing"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVariants_KVBundle(t *testing.T) {
	d := NewDetector()

	plan := d.DetectVariants("Badass 2 - 2207.5 Motor - 1400KV/1900KV/2400KV", "", model.CategoryMotor)
	require.NotNil(t, plan)

	assert.Equal(t, model.VariantKV, plan.Group.Type)
	assert.Equal(t, "Badass 2 - 2207.5 Motor", plan.Group.BaseName)
	assert.Equal(t, []string{"1400KV", "1900KV", "2400KV"}, plan.Group.Values)

	require.Len(t, plan.Children, 3)
	assert.Equal(t, "Badass 2 - 2207.5 Motor - 1400KV", plan.Children[0].Name)
	assert.Equal(t, "Badass 2 - 2207.5 Motor - 1900KV", plan.Children[1].Name)
	assert.Equal(t, "Badass 2 - 2207.5 Motor - 2400KV", plan.Children[2].Name)
	for _, child := range plan.Children {
		assert.Equal(t, model.CategoryMotor, child.ExistingCategory,
			"children inherit the parent category")
	}
}

func TestDetectVariants_RoundTrip(t *testing.T) {
	d := NewDetector()

	plan := d.DetectVariants("Badass 2 - 2207.5 Motor - 1400KV/1900KV/2400KV", "", model.CategoryMotor)
	require.NotNil(t, plan)

	// Re-running on any child alone finds a single value, so no split.
	for _, child := range plan.Children {
		assert.Nil(t, d.DetectVariants(child.Name, child.Description, child.ExistingCategory))
	}
}

func TestDetectVariants_RunSpansWholeName(t *testing.T) {
	d := NewDetector()

	plan := d.DetectVariants("1400KV/1900KV/2400KV", "", model.CategoryMotor)
	require.NotNil(t, plan)

	assert.Empty(t, plan.Group.BaseName)
	require.Len(t, plan.Children, 3)
	assert.Equal(t, "1400KV", plan.Children[0].Name)
	assert.Equal(t, "1900KV", plan.Children[1].Name)
	assert.Equal(t, "2400KV", plan.Children[2].Name)

	// The children are leaf SKUs; splitting must not recurse.
	for _, child := range plan.Children {
		assert.Nil(t, d.DetectVariants(child.Name, child.Description, child.ExistingCategory))
	}
}

func TestDetectVariants_Table(t *testing.T) {
	tests := []struct {
		name        string
		listingName string
		description string
		wantType    model.VariantType
		wantBase    string
		wantValues  []string
		wantNil     bool
	}{
		{
			name:        "capacity bundle with shared trailing unit",
			listingName: "R-Line 6S 1000/1300/1400mAh",
			wantType:    model.VariantCapacity,
			wantBase:    "R-Line 6S",
			wantValues:  []string{"1000MAH", "1300MAH", "1400MAH"},
		},
		{
			name:        "cell count bundle separated by or",
			listingName: "Nitro Nectar Gold LiPo 4S or 6S",
			wantType:    model.VariantCells,
			wantBase:    "Nitro Nectar Gold LiPo",
			wantValues:  []string{"4S", "6S"},
		},
		{
			name:        "current bundle with commas",
			listingName: "BLHeli ESC 30A, 45A, 60A",
			wantType:    model.VariantCurrent,
			wantBase:    "BLHeli ESC",
			wantValues:  []string{"30A", "45A", "60A"},
		},
		{
			name:        "bundle in description keeps the listing name",
			listingName: "Velox V2 Motor",
			description: "available in 1750KV or 1950KV",
			wantType:    model.VariantKV,
			wantBase:    "Velox V2 Motor",
			wantValues:  []string{"1750KV", "1950KV"},
		},
		{
			name:        "single value is not a bundle",
			listingName: "Badass 2 - 2207.5 Motor - 1900KV",
			wantNil:     true,
		},
		{
			name:        "repeated identical values are not a bundle",
			listingName: "Pack of 2 - 1500mAh/1500mAh",
			wantNil:     true,
		},
		{
			name:        "prop dimension triplet is not a bundle",
			listingName: "Gemfan 5.1x4.6x6 Propeller",
			wantNil:     true,
		},
		{
			name:    "empty listing",
			wantNil: true,
		},
	}

	d := NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := d.DetectVariants(tt.listingName, tt.description, model.CategoryUnknown)
			if tt.wantNil {
				assert.Nil(t, plan)
				return
			}
			require.NotNil(t, plan)
			assert.Equal(t, tt.wantType, plan.Group.Type)
			assert.Equal(t, tt.wantBase, plan.Group.BaseName)
			assert.Equal(t, tt.wantValues, plan.Group.Values)
			assert.Len(t, plan.Children, len(tt.wantValues))
		})
	}
}
