package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/common"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/engine"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/ruleset"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/service"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/storage"
	"github.com/spf13/viper"
)

func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "partflow", "partflow.db"), nil
}

func openStorage() (service.Storage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, common.NewUserError("failed to open catalog index", err)
	}
	return store, nil
}

// loadTable builds the rule table snapshot for this invocation. A corrupt
// table is fatal here, at startup, never per-call.
func loadTable() (*ruleset.Table, error) {
	path := viper.GetString("rules.path")
	if path == "" {
		return ruleset.DefaultTable(), nil
	}
	table, err := ruleset.Load(path)
	if err != nil {
		return nil, common.NewUserError("failed to load rule table", err)
	}
	return table, nil
}

func buildClassifier() (*engine.Classifier, error) {
	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	classifier, err := engine.New(table)
	if err != nil {
		return nil, common.NewUserError("failed to build classifier", err)
	}
	return classifier, nil
}
