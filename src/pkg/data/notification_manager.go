package data

import (
	"context"
	"fmt"
	"time"

	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

// NotificationManager handles the notification list of a workspace.
type NotificationManager struct {
	workspaceManager *WorkspaceManager
	eventManager     *event.EventManager
	logger           *log.Logger
}

// NewNotificationManager creates a new NotificationManager instance.
func NewNotificationManager(workspaceManager *WorkspaceManager, eventManager *event.EventManager, logger *log.Logger) (*NotificationManager, error) {
	if workspaceManager == nil {
		return nil, fmt.Errorf("workspaceManager not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &NotificationManager{
		workspaceManager: workspaceManager,
		eventManager:     eventManager,
		logger:           logger,
	}, nil
}

// NotificationAdd prepends a new unread notification and persists the
// workspace.
func (nm *NotificationManager) NotificationAdd(username string, workspace *model.Workspace, title, message string, notificationType model.NotificationType) model.Notification {
	ctx := context.Background()
	nm.logger.Info(ctx, "Adding notification", log.Fields{"username": username, "title": title, "type": notificationType})

	notification := model.Notification{
		ID:        nm.freshNotificationID(workspace),
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Timestamp: time.Now(),
		Read:      false,
	}
	workspace.Notifications = append([]model.Notification{notification}, workspace.Notifications...)

	nm.workspaceManager.WorkspaceSave(username, workspace)
	nm.eventManager.Publish(event.Event{Type: event.NotificationAdded, Data: notification})

	return notification
}

// NotificationsMarkRead marks every notification as read, leaving ordering
// and content untouched, and persists the workspace.
func (nm *NotificationManager) NotificationsMarkRead(username string, workspace *model.Workspace) {
	ctx := context.Background()
	nm.logger.Info(ctx, "Marking all notifications as read", log.Fields{"username": username})

	for i := range workspace.Notifications {
		workspace.Notifications[i].Read = true
	}

	nm.workspaceManager.WorkspaceSave(username, workspace)
	nm.eventManager.Publish(event.Event{Type: event.NotificationsRead, Data: username})
}

// freshNotificationID returns a creation-time millisecond id, bumped past
// any collision with an existing notification.
func (nm *NotificationManager) freshNotificationID(workspace *model.Workspace) int64 {
	id := time.Now().UnixMilli()
	for {
		taken := false
		for i := range workspace.Notifications {
			if workspace.Notifications[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}
