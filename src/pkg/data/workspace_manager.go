package data

import (
	"context"
	"fmt"

	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
	"wastewise/local-app/src/pkg/storage"
)

// WorkspaceManager handles loading and saving per-user workspaces. Saving is
// best-effort: a storage failure is logged and swallowed so the in-memory
// state remains the source of truth for the running session.
type WorkspaceManager struct {
	workspaceStore storage.WorkspaceStore
	eventManager   *event.EventManager
	logger         *log.Logger
}

// NewWorkspaceManager creates a new WorkspaceManager instance.
func NewWorkspaceManager(workspaceStore storage.WorkspaceStore, eventManager *event.EventManager, logger *log.Logger) (*WorkspaceManager, error) {
	if workspaceStore == nil {
		return nil, fmt.Errorf("workspaceStore not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &WorkspaceManager{
		workspaceStore: workspaceStore,
		eventManager:   eventManager,
		logger:         logger,
	}, nil
}

// WorkspaceLoad returns the persisted workspace for username, or a fresh
// default workspace when none exists (the normal first-login path). A
// corrupt or unreadable record also degrades to defaults.
func (wm *WorkspaceManager) WorkspaceLoad(username string) *model.Workspace {
	ctx := context.Background()
	wm.logger.Info(ctx, "Loading workspace", log.Fields{"username": username})

	workspace, ok, err := wm.workspaceStore.WorkspaceGet(username)
	if err != nil {
		wm.logger.Error(ctx, "Failed to load workspace, using defaults", log.Fields{"error": err, "username": username})
		return model.NewWorkspace()
	}
	if !ok {
		wm.logger.Info(ctx, "No workspace record, initializing defaults", log.Fields{"username": username})
		return model.NewWorkspace()
	}

	// Guard against nil slices from hand-edited or partial snapshots.
	if workspace.Schedules == nil {
		workspace.Schedules = []model.Schedule{}
	}
	if workspace.Notifications == nil {
		workspace.Notifications = []model.Notification{}
	}
	if workspace.Vouchers == nil {
		workspace.Vouchers = []model.Voucher{}
	}

	return workspace
}

// WorkspaceSave persists the full workspace snapshot and signals the
// presentation layer to redraw. Persistence errors never abort the calling
// operation.
func (wm *WorkspaceManager) WorkspaceSave(username string, workspace *model.Workspace) {
	ctx := context.Background()

	if err := wm.workspaceStore.WorkspaceSet(username, workspace); err != nil {
		wm.logger.Error(ctx, "Failed to persist workspace", log.Fields{"error": err, "username": username})
	}

	wm.eventManager.Publish(event.Event{Type: event.StateChanged, Data: username})
}
