// Package data provides data management functionality for the WasteWise
// application. It coordinates operations between the account, workspace,
// schedule, reward and notification managers.
package data

import (
	"fmt"

	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
	"wastewise/local-app/src/pkg/storage"
)

// DataManager is the main struct that coordinates all data operations
type DataManager struct {
	AccountManager      *AccountManager
	WorkspaceManager    *WorkspaceManager
	ScheduleManager     *ScheduleManager
	RewardManager       *RewardManager
	NotificationManager *NotificationManager
	EventManager        *event.EventManager
	SessionStore        storage.SessionStore
	Config              *model.Config
	Logger              *log.Logger
}

// NewDataManager creates a new Manager instance
func NewDataManager(store *storage.Storage, cfg *model.Config, logger *log.Logger) (*DataManager, error) {
	eventManager := event.NewEventManager(logger)
	m := &DataManager{
		EventManager: eventManager,
		SessionStore: store,
		Config:       cfg,
		Logger:       logger,
	}

	var err error
	m.AccountManager, err = NewAccountManager(store, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AccountManager: %w", err)
	}

	m.WorkspaceManager, err = NewWorkspaceManager(store, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create WorkspaceManager: %w", err)
	}

	m.NotificationManager, err = NewNotificationManager(m.WorkspaceManager, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NotificationManager: %w", err)
	}

	m.ScheduleManager, err = NewScheduleManager(m.WorkspaceManager, m.NotificationManager, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ScheduleManager: %w", err)
	}

	m.RewardManager, err = NewRewardManager(m.WorkspaceManager, m.NotificationManager, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RewardManager: %w", err)
	}

	return m, nil
}

// WorkspaceExport exports a workspace snapshot to a JSON file.
func (m *DataManager) WorkspaceExport(workspace *model.Workspace, filename string) error {
	if err := storage.FileExport(workspace, filename); err != nil {
		return fmt.Errorf("failed to export workspace: %w", err)
	}
	return nil
}

// WorkspaceImport replaces the stored workspace of username with the
// snapshot read from filename and returns the imported workspace.
func (m *DataManager) WorkspaceImport(username, filename string) (*model.Workspace, error) {
	imported, err := storage.FileImport(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to import workspace: %w", err)
	}

	if imported.Points < 0 {
		return nil, fmt.Errorf("invalid workspace snapshot: negative points")
	}
	if imported.Schedules == nil {
		imported.Schedules = []model.Schedule{}
	}
	if imported.Notifications == nil {
		imported.Notifications = []model.Notification{}
	}
	if imported.Vouchers == nil {
		imported.Vouchers = []model.Voucher{}
	}

	m.WorkspaceManager.WorkspaceSave(username, imported)
	return imported, nil
}
