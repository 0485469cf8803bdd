package session

import (
	"fmt"
	"strings"
	"time"

	"wastewise/local-app/src/pkg/model"
)

// handleNotificationList handles the notification list command. Viewing the
// list marks everything as read, so the unread badge drops to zero afterwards.
func handleNotificationList(s *Session, cmd model.Command) (interface{}, error) {
	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	if len(workspace.Notifications) == 0 {
		return "No notifications", nil
	}

	now := time.Now()
	var sb strings.Builder
	for i := range workspace.Notifications {
		notification := &workspace.Notifications[i]
		marker := " "
		if !notification.Read {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s [%s] %s\n    %s (%s)\n",
			marker, notification.Type, notification.Title,
			notification.Message, model.RelativeTime(notification.Timestamp, now)))
	}

	s.DataManager.NotificationManager.NotificationsMarkRead(account.Username, workspace)

	return strings.TrimRight(sb.String(), "\n"), nil
}

// handleNotificationUnread handles the notification unread command
func handleNotificationUnread(s *Session, cmd model.Command) (interface{}, error) {
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%d unread", workspace.UnreadCount()), nil
}
