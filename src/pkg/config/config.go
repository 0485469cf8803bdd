// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"wastewise/local-app/src/pkg/model"
)

// Global variables to store the current configuration and its file path.
var (
	currentConfig *model.Config
	configPath    = "./data/config.json"
)

// defaultConfig returns the configuration written on first run.
func defaultConfig() *model.Config {
	return &model.Config{
		DatabaseType:   "sqlite",
		DatabaseDir:    "./data",
		DatabaseFile:   "wastewise.db",
		LogFolder:      "./logs",
		CommandLog:     "commands.log",
		ErrorLog:       "errors.log",
		InfoLog:        "info.log",
		PickupDays:     []int{1, 4}, // Monday and Thursday
		PickupTimeSlot: "07:00 - 12:00 (Slot Pagi)",
		GeocodeBaseURL: "https://nominatim.openstreetmap.org",
	}
}

// ConfigLoad loads the configuration from the JSON file, with environment
// variables (WASTEWISE_*) taking precedence over file values. If the file
// doesn't exist, it creates a default configuration.
func ConfigLoad() error {
	// Ensure the data directory exists
	dataDir := filepath.Dir(configPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	// Check if the config file exists, if not create a default one
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := ConfigSave(defaultConfig()); err != nil {
			return fmt.Errorf("failed to create default config: %v", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix("wastewise")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := defaultConfig()
	v.SetDefault("database_type", defaults.DatabaseType)
	v.SetDefault("database_dir", defaults.DatabaseDir)
	v.SetDefault("database_file", defaults.DatabaseFile)
	v.SetDefault("log_folder", defaults.LogFolder)
	v.SetDefault("command_log", defaults.CommandLog)
	v.SetDefault("error_log", defaults.ErrorLog)
	v.SetDefault("info_log", defaults.InfoLog)
	v.SetDefault("pickup_days", defaults.PickupDays)
	v.SetDefault("pickup_time_slot", defaults.PickupTimeSlot)
	v.SetDefault("geocode_base_url", defaults.GeocodeBaseURL)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	currentConfig = &model.Config{}
	if err := v.Unmarshal(currentConfig); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	return nil
}

// ConfigSave saves the provided configuration to the JSON file.
func ConfigSave(cfg *model.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// ConfigGet returns the current configuration.
func ConfigGet() *model.Config {
	return currentConfig
}
