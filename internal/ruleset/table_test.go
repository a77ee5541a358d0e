package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/common"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable_IsValid(t *testing.T) {
	require.NoError(t, DefaultTable().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr string
	}{
		{
			name:    "non-positive definitive weight",
			mutate:  func(tbl *Table) { tbl.Weights.Definitive = 0 },
			wantErr: "weights.definitive",
		},
		{
			name:    "strong keyword above definitive",
			mutate:  func(tbl *Table) { tbl.Weights.StrongKeyword = tbl.Weights.Definitive + 1 },
			wantErr: "weights.strong_keyword",
		},
		{
			name:    "positive negative penalty",
			mutate:  func(tbl *Table) { tbl.Weights.NegativePenalty = 1 },
			wantErr: "weights.negative_penalty",
		},
		{
			name:    "repeat factor above one",
			mutate:  func(tbl *Table) { tbl.Weights.RepeatFactor = 1.5 },
			wantErr: "weights.repeat_factor",
		},
		{
			name:    "non-positive min score",
			mutate:  func(tbl *Table) { tbl.Thresholds.MinScore = 0 },
			wantErr: "thresholds.min_score",
		},
		{
			name:    "high confidence out of range",
			mutate:  func(tbl *Table) { tbl.Thresholds.HighConfidence = 101 },
			wantErr: "thresholds.high_confidence",
		},
		{
			name:    "review above auto merge",
			mutate:  func(tbl *Table) { tbl.Thresholds.Review = tbl.Thresholds.AutoMerge + 0.1 },
			wantErr: "thresholds.review",
		},
		{
			name:    "keyword with empty term",
			mutate:  func(tbl *Table) { tbl.Keywords = append(tbl.Keywords, Keyword{Category: model.CategoryMotor, Weight: 1}) },
			wantErr: "empty term",
		},
		{
			name: "keyword targeting unknown category",
			mutate: func(tbl *Table) {
				tbl.Keywords = append(tbl.Keywords, Keyword{Term: "gimbal", Category: "gimbal", Weight: 1})
			},
			wantErr: "unknown category",
		},
		{
			name: "brand biased toward unknown category",
			mutate: func(tbl *Table) {
				tbl.Brands = append(tbl.Brands, Brand{Name: "Acme", Bias: []model.Category{"gimbal"}})
			},
			wantErr: "unknown category",
		},
		{
			name:    "no accessory terms",
			mutate:  func(tbl *Table) { tbl.AccessoryTerms = nil },
			wantErr: "accessory_terms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := DefaultTable()
			tt.mutate(tbl)
			err := tbl.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestHolder_SwapKeepsOldSnapshotValid(t *testing.T) {
	first := DefaultTable()
	holder := NewHolder(first)
	assert.Same(t, first, holder.Current())

	second := DefaultTable()
	second.Thresholds.MinScore = 3.0
	holder.Swap(second)

	assert.Same(t, second, holder.Current())
	// A batch still holding the first snapshot keeps reading it unchanged.
	assert.Equal(t, 2.0, first.Thresholds.MinScore)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
thresholds:
  min_score: 3.5
  high_confidence: 80
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3.5, table.Thresholds.MinScore)
	assert.Equal(t, 80, table.Thresholds.HighConfidence)
	// Sections the file omits keep their defaults.
	defaults := DefaultTable()
	assert.Equal(t, defaults.Weights, table.Weights)
	assert.NotEmpty(t, table.Brands)
	assert.NotEmpty(t, table.Keywords)
}

func TestLoad_RejectsInvalidTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
weights:
  definitive: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidRuleSet)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
