package ruleset

import (
	"fmt"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/common"
	"github.com/spf13/viper"
)

// Load reads a rule table from a YAML file, applying the defaults for any
// section the file omits. A table that fails validation is a fatal
// configuration error.
func Load(path string) (*Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rule table %s: %w", path, err)
	}

	table := DefaultTable()
	if err := v.Unmarshal(table); err != nil {
		return nil, fmt.Errorf("failed to parse rule table %s: %w", path, err)
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w %s: %v", common.ErrInvalidRuleSet, path, err)
	}

	return table, nil
}
