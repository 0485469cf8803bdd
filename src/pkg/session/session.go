package session

import (
	"context"
	"errors"
	"time"

	"wastewise/local-app/src/pkg/data"
	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/geo"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

// CommandHandler is a function type for command handlers
type CommandHandler func(*Session, model.Command) (interface{}, error)

// Session represents an individual user session. It binds the authenticated
// account and its loaded workspace; exactly one workspace is active per
// session at a time.
type Session struct {
	ID              string
	DataManager     *data.DataManager
	Account         *model.Account
	Workspace       *model.Workspace
	LastActivity    time.Time
	commandHandlers map[string]map[string]CommandHandler
	geocoder        *geo.Client
	logger          *log.Logger
}

// NewSession creates a new Session instance.
func NewSession(id string, dataManager *data.DataManager, geocoder *geo.Client, logger *log.Logger) *Session {
	ctx := context.Background()
	logger.Info(ctx, "Creating new Session", log.Fields{"sessionID": id})

	s := &Session{
		ID:           id,
		DataManager:  dataManager,
		LastActivity: time.Now(),
		geocoder:     geocoder,
		logger:       logger,
	}
	s.initCommandHandlers()

	return s
}

// initCommandHandlers initializes the command handlers map
func (s *Session) initCommandHandlers() {
	s.commandHandlers = map[string]map[string]CommandHandler{
		"account":      initAccountCommandHandlers(),
		"schedule":     initScheduleCommandHandlers(),
		"reward":       initRewardCommandHandlers(),
		"notification": initNotificationCommandHandlers(),
		"system":       initSystemCommandHandlers(),
	}
}

// CommandRun executes a command within the session context
func (s *Session) CommandRun(cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Debug(ctx, "Running command", log.Fields{"scope": cmd.Scope, "operation": cmd.Operation})

	s.LastActivity = time.Now()

	scopeHandlers, ok := s.commandHandlers[cmd.Scope]
	if !ok {
		s.logger.Error(ctx, "Invalid command scope", log.Fields{"scope": cmd.Scope})
		return nil, errors.New("invalid command scope")
	}

	handler, ok := scopeHandlers[cmd.Operation]
	if !ok {
		s.logger.Error(ctx, "Invalid command operation", log.Fields{"operation": cmd.Operation})
		return nil, errors.New("invalid command operation")
	}

	result, err := handler(s, cmd)
	if err != nil {
		s.logger.Error(ctx, "Command execution failed", log.Fields{"error": err})
	}

	return result, err
}

// AccountGet retrieves the current account, failing when nobody is logged in.
func (s *Session) AccountGet() (*model.Account, error) {
	if s.Account == nil {
		return nil, errors.New("not logged in")
	}
	return s.Account, nil
}

// WorkspaceGet retrieves the active workspace, failing when nobody is logged in.
func (s *Session) WorkspaceGet() (*model.Workspace, error) {
	if s.Account == nil || s.Workspace == nil {
		return nil, errors.New("not logged in")
	}
	return s.Workspace, nil
}

// SessionInfo returns the public projection of the active account.
func (s *Session) SessionInfo() (model.Session, bool) {
	if s.Account == nil {
		return model.Session{}, false
	}
	return model.SessionOf(s.Account), true
}

// Login binds the account to this session, loads its workspace, records the
// login date and persists the session projection. A welcome notification is
// emitted only when the loaded workspace has no notifications at all, which
// marks a first-ever login.
func (s *Session) Login(account *model.Account) {
	ctx := context.Background()
	s.logger.Info(ctx, "Logging in", log.Fields{"username": account.Username})

	dm := s.DataManager
	workspace := dm.WorkspaceManager.WorkspaceLoad(account.Username)
	workspace.LastLoginDate = time.Now().Format(time.RFC3339)

	s.Account = account
	s.Workspace = workspace

	if err := dm.SessionStore.SessionSet(model.SessionOf(account)); err != nil {
		s.logger.Error(ctx, "Failed to persist session record", log.Fields{"error": err})
	}

	if len(workspace.Notifications) == 0 {
		dm.NotificationManager.NotificationAdd(account.Username, workspace,
			"Selamat Datang! 🎉",
			"Terima kasih telah menggunakan WasteWise. Mari kelola sampah dengan bijak!",
			model.NotificationSuccess,
		)
	} else {
		dm.WorkspaceManager.WorkspaceSave(account.Username, workspace)
	}

	dm.EventManager.Publish(event.Event{Type: event.SessionStarted, Data: model.SessionOf(account)})
}

// Logout clears the session binding and the persisted session record. The
// per-user workspace record stays on disk for the next login. The
// presentation layer is expected to confirm with the user before calling.
func (s *Session) Logout() {
	ctx := context.Background()

	account, err := s.AccountGet()
	if err != nil {
		return
	}
	s.logger.Info(ctx, "Logging out", log.Fields{"username": account.Username})

	if err := s.DataManager.SessionStore.SessionClear(); err != nil {
		s.logger.Error(ctx, "Failed to clear session record", log.Fields{"error": err})
	}

	s.Account = nil
	s.Workspace = nil

	s.DataManager.EventManager.Publish(event.Event{Type: event.SessionEnded, Data: account.Username})
}

// Restore re-binds a persisted session from a previous run, loading the
// associated workspace. It reports whether a session was restored.
func (s *Session) Restore() bool {
	ctx := context.Background()

	persisted, ok, err := s.DataManager.SessionStore.SessionGet()
	if err != nil {
		s.logger.Error(ctx, "Failed to read persisted session", log.Fields{"error": err})
		return false
	}
	if !ok {
		return false
	}

	accounts, err := s.DataManager.AccountManager.AccountAll()
	if err != nil {
		s.logger.Error(ctx, "Failed to load account directory for restore", log.Fields{"error": err})
		return false
	}

	for i := range accounts {
		if accounts[i].Username == persisted.Username {
			account := accounts[i]
			s.Account = &account
			s.Workspace = s.DataManager.WorkspaceManager.WorkspaceLoad(account.Username)
			s.logger.Info(ctx, "Session restored", log.Fields{"username": account.Username})
			s.DataManager.EventManager.Publish(event.Event{Type: event.SessionStarted, Data: *persisted})
			return true
		}
	}

	// The persisted session points at an account that no longer exists.
	s.logger.Warn(ctx, "Stale session record, clearing", log.Fields{"username": persisted.Username})
	if err := s.DataManager.SessionStore.SessionClear(); err != nil {
		s.logger.Error(ctx, "Failed to clear stale session record", log.Fields{"error": err})
	}
	return false
}

// initAccountCommandHandlers initializes account command handlers
func initAccountCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"register": handleAccountRegister,
		"login":    handleAccountLogin,
		"logout":   handleAccountLogout,
		"show":     handleAccountShow,
		"export":   handleAccountExport,
		"import":   handleAccountImport,
	}
}

// initScheduleCommandHandlers initializes schedule command handlers
func initScheduleCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":      handleScheduleAdd,
		"complete": handleScheduleComplete,
		"delete":   handleScheduleDelete,
		"list":     handleScheduleList,
	}
}

// initRewardCommandHandlers initializes reward command handlers
func initRewardCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"list":     handleRewardList,
		"redeem":   handleRewardRedeem,
		"vouchers": handleRewardVouchers,
	}
}

// initNotificationCommandHandlers initializes notification command handlers
func initNotificationCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"list":   handleNotificationList,
		"unread": handleNotificationUnread,
	}
}

// initSystemCommandHandlers initializes system command handlers
func initSystemCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"exit": handleSystemExit,
		"quit": handleSystemExit,
	}
}
