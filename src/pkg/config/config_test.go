package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTempConfig redirects the config path into a temp dir for one test.
func withTempConfig(t *testing.T) {
	t.Helper()
	original := configPath
	configPath = filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(func() {
		configPath = original
		currentConfig = nil
	})
}

func TestConfigLoadCreatesDefaults(t *testing.T) {
	withTempConfig(t)

	require.NoError(t, ConfigLoad())

	_, err := os.Stat(configPath)
	assert.NoError(t, err, "default config file should be written")

	cfg := ConfigGet()
	require.NotNil(t, cfg)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, "wastewise.db", cfg.DatabaseFile)
	assert.Equal(t, []int{1, 4}, cfg.PickupDays)
	assert.Equal(t, "07:00 - 12:00 (Slot Pagi)", cfg.PickupTimeSlot)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.GeocodeBaseURL)
}

func TestConfigLoadReadsExistingFile(t *testing.T) {
	withTempConfig(t)

	custom := defaultConfig()
	custom.DatabaseFile = "custom.db"
	custom.PickupDays = []int{2, 5}
	require.NoError(t, ConfigSave(custom))

	require.NoError(t, ConfigLoad())

	cfg := ConfigGet()
	assert.Equal(t, "custom.db", cfg.DatabaseFile)
	assert.Equal(t, []int{2, 5}, cfg.PickupDays)
}

func TestConfigEnvOverride(t *testing.T) {
	withTempConfig(t)
	t.Setenv("WASTEWISE_DATABASE_FILE", "env.db")

	require.NoError(t, ConfigLoad())

	assert.Equal(t, "env.db", ConfigGet().DatabaseFile)
}
