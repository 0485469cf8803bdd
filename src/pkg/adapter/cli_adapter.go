// Package adapter provides an adapter for the CLI interface to interact with the session package.
package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
	"wastewise/local-app/src/pkg/session"
)

// CLIAdapter provides command-line interface support for managing multiple CLI connections
type CLIAdapter struct {
	sessions       map[string]*session.Session
	sessionMutex   sync.RWMutex
	adapterManager *AdapterManager
	logger         *log.Logger
}

// NewCLIAdapter creates a new instance of CLIAdapter using the provided AdapterManager
func NewCLIAdapter(am *AdapterManager, logger *log.Logger) (*CLIAdapter, error) {
	logger.Info(context.Background(), "Creating new CLI adapter", nil)
	return &CLIAdapter{
		sessions:       make(map[string]*session.Session),
		adapterManager: am,
		logger:         logger,
	}, nil
}

// AdapterStop signals the CLI adapter to stop
func (a *CLIAdapter) AdapterStop() error {
	ctx := context.Background()
	a.logger.Info(ctx, "CLI adapter stopping", nil)

	a.sessionMutex.Lock()
	for sessionID := range a.sessions {
		delete(a.sessions, sessionID)
		a.logger.Debug(ctx, "Removed session during adapter stop", log.Fields{"sessionID": sessionID})
	}
	a.sessionMutex.Unlock()

	a.logger.Info(ctx, "CLI adapter stopped", nil)
	return nil
}

// SessionAdd adds a new cli session
func (a *CLIAdapter) SessionAdd() (string, error) {
	sessionID, err := a.adapterManager.SessionAdd()
	if err != nil {
		return "", err
	}

	sess, exists := a.adapterManager.SessionGet(sessionID)
	if !exists {
		a.logger.Error(context.Background(), "Session does not exist", log.Fields{"sessionID": sessionID})
		return "", fmt.Errorf("session %s does not exist after addition by cli adapter", sessionID)
	}

	a.sessionMutex.Lock()
	a.sessions[sessionID] = sess
	a.sessionMutex.Unlock()
	a.logger.Info(context.Background(), "New CLI session added", log.Fields{"sessionID": sessionID})

	return sessionID, nil
}

// SessionDelete deletes a cli session
func (a *CLIAdapter) SessionDelete(sessionID string) {
	a.sessionMutex.Lock()
	delete(a.sessions, sessionID)
	a.sessionMutex.Unlock()
	a.adapterManager.SessionDelete(sessionID)
	a.logger.Info(context.Background(), "CLI session removed", log.Fields{"sessionID": sessionID})
}

// ProcessInput converts the input string into command and runs it
func (a *CLIAdapter) ProcessInput(sessionID string, input string) (interface{}, error) {
	cmd, err := a.parseCommand(input)
	if err != nil {
		return nil, err
	}
	return a.adapterManager.CommandRun(sessionID, cmd)
}

func (a *CLIAdapter) parseCommand(input string) (model.Command, error) {
	args := strings.Fields(input)
	if len(args) == 0 {
		return model.Command{}, fmt.Errorf("empty command")
	}

	cmd := model.Command{
		Scope:     strings.ToLower(args[0]),
		Operation: "",
		Args:      []string{},
	}

	if len(args) > 1 {
		cmd.Operation = strings.ToLower(args[1])
		cmd.Args = args[2:]
	}

	a.logger.Debug(context.Background(), "Command parsed", log.Fields{"command": cmd})
	return cmd, nil
}

// PromptGet gets the current prompt of the session. A logged-in prompt shows
// the username and the unread notification badge.
func (a *CLIAdapter) PromptGet(sessionID string) string {
	a.sessionMutex.RLock()
	defer a.sessionMutex.RUnlock()

	sess, exists := a.sessions[sessionID]
	if !exists {
		a.logger.Warn(context.Background(), "Session not found", log.Fields{"sessionID": sessionID})
		return "> "
	}

	info, ok := sess.SessionInfo()
	if !ok {
		return "> "
	}

	workspace, err := sess.WorkspaceGet()
	if err != nil {
		return fmt.Sprintf("%s > ", info.Username)
	}

	unread := workspace.UnreadCount()
	if unread > 0 {
		return fmt.Sprintf("%s [%d🔔] > ", info.Username, unread)
	}
	return fmt.Sprintf("%s > ", info.Username)
}
