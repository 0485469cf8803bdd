package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

// newTestStorage opens a Storage over a throwaway SQLite database.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dir := t.TempDir()
	cfg := &model.Config{
		DatabaseType: "sqlite",
		DatabaseDir:  dir,
		DatabaseFile: "test.db",
		LogFolder:    filepath.Join(dir, "logs"),
		CommandLog:   "commands.log",
		ErrorLog:     "errors.log",
		InfoLog:      "info.log",
	}

	logger, err := log.NewLogger(cfg, log.LevelError)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	store, err := NewStorage(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRecordStoreRoundtrip(t *testing.T) {
	store := newTestStorage(t)

	_, ok, err := store.RecordGet("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.RecordSet("greeting", "halo"))

	value, ok, err := store.RecordGet("greeting")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "halo", value)

	// Upsert overwrites
	require.NoError(t, store.RecordSet("greeting", "selamat pagi"))
	value, _, err = store.RecordGet("greeting")
	require.NoError(t, err)
	assert.Equal(t, "selamat pagi", value)

	require.NoError(t, store.RecordDelete("greeting"))
	_, ok, err = store.RecordGet("greeting")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordDeleteMissingIsNoop(t *testing.T) {
	store := newTestStorage(t)
	assert.NoError(t, store.RecordDelete("never-existed"))
}

func TestAccountStoreRoundtrip(t *testing.T) {
	store := newTestStorage(t)

	accounts, err := store.AccountAll()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	saved := []model.Account{
		{Name: "Budi Santoso", Email: "budi@mail.com", Username: "budi", Password: "rahasia"},
		{Name: "Siti Aminah", Email: "siti@mail.com", Username: "siti", Password: "rahasia2"},
	}
	require.NoError(t, store.AccountSaveAll(saved))

	accounts, err = store.AccountAll()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "budi", accounts[0].Username)
	assert.Equal(t, "siti@mail.com", accounts[1].Email)
}

func TestSessionStoreRoundtrip(t *testing.T) {
	store := newTestStorage(t)

	_, ok, err := store.SessionGet()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SessionSet(model.Session{
		Name:     "Budi Santoso",
		Email:    "budi@mail.com",
		Username: "budi",
	}))

	session, ok, err := store.SessionGet()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "budi", session.Username)

	require.NoError(t, store.SessionClear())
	_, ok, err = store.SessionGet()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWorkspaceStoreRoundtrip(t *testing.T) {
	store := newTestStorage(t)

	_, ok, err := store.WorkspaceGet("budi")
	require.NoError(t, err)
	assert.False(t, ok)

	workspace := model.NewWorkspace()
	workspace.Points = 75
	workspace.TotalWasteCollected = 7.5
	workspace.Schedules = append(workspace.Schedules, model.Schedule{
		ID:     1756378954123,
		Type:   model.WasteOrganik,
		Date:   "2026-09-03",
		Weight: 2.5,
		Status: model.SchedulePending,
	})

	require.NoError(t, store.WorkspaceSet("budi", workspace))

	loaded, ok, err := store.WorkspaceGet("budi")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 75, loaded.Points)
	assert.InDelta(t, 7.5, loaded.TotalWasteCollected, 1e-9)
	require.Len(t, loaded.Schedules, 1)
	assert.Equal(t, model.SchedulePending, loaded.Schedules[0].Status)

	// Workspaces are stored per username
	_, ok, err = store.WorkspaceGet("siti")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileExportImport(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "export", "backup.json")

	workspace := model.NewWorkspace()
	workspace.Points = 120
	workspace.Vouchers = append(workspace.Vouchers, model.Voucher{
		ID:   1,
		Name: "Bibit Tanaman",
		Code: "AB12CD34",
		Cost: 50,
	})

	require.NoError(t, FileExport(workspace, filename))

	imported, err := FileImport(filename)
	require.NoError(t, err)
	assert.Equal(t, 120, imported.Points)
	require.Len(t, imported.Vouchers, 1)
	assert.Equal(t, "AB12CD34", imported.Vouchers[0].Code)
}

func TestFileImportMissingFile(t *testing.T) {
	_, err := FileImport(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
