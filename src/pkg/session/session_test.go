package session

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise/local-app/src/pkg/data"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
	"wastewise/local-app/src/pkg/storage"
)

// newTestSession wires a Session over a throwaway SQLite database.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	dm, logger := newTestDataManager(t)
	return NewSession("test-session", dm, nil, logger)
}

func newTestDataManager(t *testing.T) (*data.DataManager, *log.Logger) {
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

	return dm, logger
}

func run(t *testing.T, s *Session, scope, operation string, args ...string) (interface{}, error) {
	t.Helper()
	return s.CommandRun(model.Command{Scope: scope, Operation: operation, Args: args})
}

func register(t *testing.T, s *Session) {
	t.Helper()
	_, err := run(t, s, "account", "register", "budi", "budi@mail.com", "rahasia", "Budi", "Santoso")
	require.NoError(t, err)
}

func login(t *testing.T, s *Session) {
	t.Helper()
	_, err := run(t, s, "account", "login", "budi", "rahasia")
	require.NoError(t, err)
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	s := newTestSession(t)
	register(t, s)

	assert.Nil(t, s.Account)
	_, err := s.WorkspaceGet()
	assert.Error(t, err)
}

func TestRegisterDuplicate(t *testing.T) {
	s := newTestSession(t)
	register(t, s)

	_, err := run(t, s, "account", "register", "budi", "lain@mail.com", "pw")
	assert.Error(t, err)
}

func TestLoginBindsAccountAndWorkspace(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)

	require.NotNil(t, s.Account)
	assert.Equal(t, "Budi Santoso", s.Account.Name)

	workspace, err := s.WorkspaceGet()
	require.NoError(t, err)
	assert.NotEmpty(t, workspace.LastLoginDate)

	// First-ever login gets the welcome notification
	require.Len(t, workspace.Notifications, 1)
	assert.Equal(t, "Selamat Datang! 🎉", workspace.Notifications[0].Title)

	// The session record is persisted for the next run
	persisted, ok, err := s.DataManager.SessionStore.SessionGet()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "budi", persisted.Username)
}

func TestLoginByEmail(t *testing.T) {
	s := newTestSession(t)
	register(t, s)

	_, err := run(t, s, "account", "login", "budi@mail.com", "rahasia")
	require.NoError(t, err)
	require.NotNil(t, s.Account)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestSession(t)
	register(t, s)

	_, err := run(t, s, "account", "login", "budi", "salah")
	assert.Error(t, err)
	assert.Nil(t, s.Account)
}

func TestWelcomeNotificationOnlyOnFirstLogin(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)
	s.Logout()
	login(t, s)

	workspace, err := s.WorkspaceGet()
	require.NoError(t, err)

	welcomes := 0
	for _, n := range workspace.Notifications {
		if n.Title == "Selamat Datang! 🎉" {
			welcomes++
		}
	}
	assert.Equal(t, 1, welcomes)
}

func TestLogoutClearsSessionButKeepsWorkspace(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)

	workspace, err := s.WorkspaceGet()
	require.NoError(t, err)
	workspace.Points = 77
	s.DataManager.WorkspaceManager.WorkspaceSave("budi", workspace)

	s.Logout()

	assert.Nil(t, s.Account)
	_, ok, err := s.DataManager.SessionStore.SessionGet()
	require.NoError(t, err)
	assert.False(t, ok)

	// The per-user record survives for the next login
	login(t, s)
	workspace, err = s.WorkspaceGet()
	require.NoError(t, err)
	assert.Equal(t, 77, workspace.Points)
}

func TestRestorePersistedSession(t *testing.T) {
	dm, logger := newTestDataManager(t)

	first := NewSession("first", dm, nil, logger)
	_, err := run(t, first, "account", "register", "budi", "budi@mail.com", "rahasia")
	require.NoError(t, err)
	_, err = run(t, first, "account", "login", "budi", "rahasia")
	require.NoError(t, err)

	// A fresh session picks the persisted record back up
	second := NewSession("second", dm, nil, logger)
	require.True(t, second.Restore())
	require.NotNil(t, second.Account)
	assert.Equal(t, "budi", second.Account.Username)
	require.NotNil(t, second.Workspace)
}

func TestRestoreWithoutRecord(t *testing.T) {
	s := newTestSession(t)
	assert.False(t, s.Restore())
	assert.Nil(t, s.Account)
}

func TestCommandsRequireLogin(t *testing.T) {
	s := newTestSession(t)

	_, err := run(t, s, "schedule", "add", "organik", "2026-09-03", "2.5")
	assert.Error(t, err)

	_, err = run(t, s, "reward", "redeem", "Bibit", "Tanaman")
	assert.Error(t, err)

	_, err = run(t, s, "notification", "list")
	assert.Error(t, err)
}

func TestInvalidScopeAndOperation(t *testing.T) {
	s := newTestSession(t)

	_, err := run(t, s, "garbage", "add")
	assert.Error(t, err)

	_, err = run(t, s, "account", "garbage")
	assert.Error(t, err)
}

func TestScheduleCommands(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)

	// 2026-09-03 is a Thursday
	_, err := run(t, s, "schedule", "add", "organik", "2026-09-03", "2.5")
	require.NoError(t, err)

	workspace, err := s.WorkspaceGet()
	require.NoError(t, err)
	require.Len(t, workspace.Schedules, 1)
	schedule := workspace.Schedules[0]
	assert.Equal(t, model.SchedulePending, schedule.Status)
	assert.Equal(t, "07:00 - 12:00 (Slot Pagi)", schedule.Time)

	result, err := run(t, s, "schedule", "complete", fmt.Sprintf("%d", schedule.ID))
	require.NoError(t, err)
	assert.Contains(t, result.(string), "+25 points")
	assert.Equal(t, 25, workspace.Points)

	_, err = run(t, s, "schedule", "delete", fmt.Sprintf("%d", schedule.ID))
	require.NoError(t, err)
	assert.Empty(t, workspace.Schedules)
}

func TestScheduleAddRejectsOffDays(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)

	// 2026-09-05 is a Saturday
	_, err := run(t, s, "schedule", "add", "organik", "2026-09-05", "2.5")
	assert.Error(t, err)

	workspace, _ := s.WorkspaceGet()
	assert.Empty(t, workspace.Schedules)
}

func TestScheduleAddParsesCoordinatesAndAddress(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)

	_, err := run(t, s, "schedule", "add", "anorganik", "2026-09-07", "4", "-6.2,106.8", "Jl.", "Sudirman", "10")
	require.NoError(t, err)

	workspace, _ := s.WorkspaceGet()
	require.Len(t, workspace.Schedules, 1)
	schedule := workspace.Schedules[0]
	require.NotNil(t, schedule.Coordinates)
	assert.InDelta(t, -6.2, schedule.Coordinates.Lat, 1e-9)
	assert.InDelta(t, 106.8, schedule.Coordinates.Lng, 1e-9)
	assert.Equal(t, "Jl. Sudirman 10", schedule.Address)
}

func TestRewardCommands(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)

	workspace, err := s.WorkspaceGet()
	require.NoError(t, err)
	workspace.Points = 60

	result, err := run(t, s, "reward", "redeem", "Bibit", "Tanaman")
	require.NoError(t, err)
	assert.Contains(t, result.(string), "voucher code")
	assert.Equal(t, 10, workspace.Points)

	_, err = run(t, s, "reward", "redeem", "Sertifikat", "Hero")
	assert.Error(t, err)

	result, err = run(t, s, "reward", "vouchers")
	require.NoError(t, err)
	assert.Contains(t, result.(string), "Bibit Tanaman")
}

func TestNotificationListMarksRead(t *testing.T) {
	s := newTestSession(t)
	register(t, s)
	login(t, s)

	workspace, err := s.WorkspaceGet()
	require.NoError(t, err)
	require.Equal(t, 1, workspace.UnreadCount())

	_, err = run(t, s, "notification", "list")
	require.NoError(t, err)
	assert.Equal(t, 0, workspace.UnreadCount())

	result, err := run(t, s, "notification", "unread")
	require.NoError(t, err)
	assert.Equal(t, "0 unread", result)
}

func TestValidatePickupDay(t *testing.T) {
	pickupDays := []int{1, 4}

	assert.NoError(t, validatePickupDay("2026-09-07", pickupDays)) // Monday
	assert.NoError(t, validatePickupDay("2026-09-03", pickupDays)) // Thursday
	assert.Error(t, validatePickupDay("2026-09-05", pickupDays))   // Saturday
	assert.Error(t, validatePickupDay("03-09-2026", pickupDays))
	assert.Error(t, validatePickupDay("not-a-date", pickupDays))
}

func TestParseCoordinates(t *testing.T) {
	coords, ok := parseCoordinates("-6.2,106.8")
	require.True(t, ok)
	assert.InDelta(t, -6.2, coords.Lat, 1e-9)
	assert.InDelta(t, 106.8, coords.Lng, 1e-9)

	_, ok = parseCoordinates("Jl.Sudirman")
	assert.False(t, ok)

	_, ok = parseCoordinates("1,2,3")
	assert.False(t, ok)
}
