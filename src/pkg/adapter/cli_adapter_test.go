package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise/local-app/src/pkg/data"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
	"wastewise/local-app/src/pkg/session"
	"wastewise/local-app/src/pkg/storage"
)

// newTestCLIAdapter wires the full adapter stack over a throwaway database.
func newTestCLIAdapter(t *testing.T) *CLIAdapter {
	t.Helper()

	dir := t.TempDir()
	cfg := &model.Config{
		DatabaseType:   "sqlite",
		DatabaseDir:    dir,
		DatabaseFile:   "test.db",
		LogFolder:      filepath.Join(dir, "logs"),
		CommandLog:     "commands.log",
		ErrorLog:       "errors.log",
		InfoLog:        "info.log",
		PickupDays:     []int{1, 4},
		PickupTimeSlot: "07:00 - 12:00 (Slot Pagi)",
	}

	logger, err := log.NewLogger(cfg, log.LevelError)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	store, err := storage.NewStorage(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	dm, err := data.NewDataManager(store, cfg, logger)
	require.NoError(t, err)

	sessionManager := session.NewSessionManager(dm, nil, logger)
	t.Cleanup(sessionManager.StopCleanupRoutine)

	adapterManager := NewAdapterManager(sessionManager, logger)
	t.Cleanup(adapterManager.Shutdown)

	cliAdapter, err := NewCLIAdapter(adapterManager, logger)
	require.NoError(t, err)

	return cliAdapter
}

func TestParseCommand(t *testing.T) {
	a := newTestCLIAdapter(t)

	cmd, err := a.parseCommand("Account Login budi rahasia")
	require.NoError(t, err)
	assert.Equal(t, "account", cmd.Scope)
	assert.Equal(t, "login", cmd.Operation)
	assert.Equal(t, []string{"budi", "rahasia"}, cmd.Args)

	cmd, err = a.parseCommand("help")
	require.NoError(t, err)
	assert.Equal(t, "help", cmd.Scope)
	assert.Empty(t, cmd.Operation)

	_, err = a.parseCommand("   ")
	assert.Error(t, err)
}

func TestProcessInputEndToEnd(t *testing.T) {
	a := newTestCLIAdapter(t)

	sessionID, err := a.SessionAdd()
	require.NoError(t, err)

	_, err = a.ProcessInput(sessionID, "account register budi budi@mail.com rahasia Budi")
	require.NoError(t, err)

	result, err := a.ProcessInput(sessionID, "account login budi rahasia")
	require.NoError(t, err)
	assert.Contains(t, result.(string), "Budi")

	_, err = a.ProcessInput(sessionID, "account login budi salah")
	assert.Error(t, err)
}

func TestPromptReflectsSessionState(t *testing.T) {
	a := newTestCLIAdapter(t)

	sessionID, err := a.SessionAdd()
	require.NoError(t, err)

	assert.Equal(t, "> ", a.PromptGet(sessionID))
	assert.Equal(t, "> ", a.PromptGet("no-such-session"))

	_, err = a.ProcessInput(sessionID, "account register budi budi@mail.com rahasia")
	require.NoError(t, err)
	_, err = a.ProcessInput(sessionID, "account login budi rahasia")
	require.NoError(t, err)

	// The welcome notification is unread, so the badge shows
	assert.Equal(t, "budi [1🔔] > ", a.PromptGet(sessionID))

	_, err = a.ProcessInput(sessionID, "notification list")
	require.NoError(t, err)
	assert.Equal(t, "budi > ", a.PromptGet(sessionID))
}
