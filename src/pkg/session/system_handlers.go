package session

import (
	"wastewise/local-app/src/pkg/model"
)

// handleSystemExit handles the system exit command
func handleSystemExit(s *Session, cmd model.Command) (interface{}, error) {
	return "exit", nil
}
