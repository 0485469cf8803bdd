package adapter

import (
	"fmt"
	"sync"

	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
	"wastewise/local-app/src/pkg/session"
)

// AdapterInstance represents an instance of an adapter
type AdapterInstance interface {
	// CommandProcess processes a command and returns the result
	CommandProcess(cmd model.Command) (interface{}, error)

	// AdapterStart starts the adapter instance
	AdapterStart() error

	// AdapterStop terminates the adapter instance
	AdapterStop() error

	// GetType returns the type of the adapter
	GetType() string
}

// AdapterFactory creates new instances of adapters
type AdapterFactory func() (AdapterInstance, error)

// AdapterManager manages all adapter instances
type AdapterManager struct {
	factories      map[string]AdapterFactory
	instances      sync.Map // map[string]AdapterInstance
	sessionManager *session.SessionManager
	cmdChan        chan commandRequest
	stopChan       chan struct{}
	logger         *log.Logger
}

// commandRequest represents a request to execute a command within a specific session and carries a result channel
type commandRequest struct {
	SessionID  string
	Command    model.Command
	ResultChan chan interface{}
}

// NewAdapterManager creates a new AdapterManager
func NewAdapterManager(sm *session.SessionManager, logger *log.Logger) *AdapterManager {
	am := &AdapterManager{
		factories:      make(map[string]AdapterFactory),
		sessionManager: sm,
		cmdChan:        make(chan commandRequest),
		stopChan:       make(chan struct{}),
		logger:         logger,
	}
	go am.commandHandler()
	return am
}

// FactoryRegister registers a factory for the given adapter type
func (am *AdapterManager) FactoryRegister(adapterType string, factory AdapterFactory) {
	am.factories[adapterType] = factory
}

// AdapterAdd creates a new adapter instance with its own session and returns
// the session ID
func (am *AdapterManager) AdapterAdd(adapterType string) (string, error) {
	factory, ok := am.factories[adapterType]
	if !ok {
		return "", fmt.Errorf("unknown adapter type: %s", adapterType)
	}

	instance, err := factory()
	if err != nil {
		return "", err
	}

	sessionID, err := am.sessionManager.SessionAdd()
	if err != nil {
		return "", fmt.Errorf("failed to add session: %w", err)
	}

	am.instances.Store(sessionID, instance)

	return sessionID, nil
}

// SessionAdd creates a bare session without an adapter instance
func (am *AdapterManager) SessionAdd() (string, error) {
	return am.sessionManager.SessionAdd()
}

// SessionGet retrieves the session for an ID
func (am *AdapterManager) SessionGet(sessionID string) (*session.Session, bool) {
	return am.sessionManager.SessionGet(sessionID)
}

// SessionDelete removes the session for an ID
func (am *AdapterManager) SessionDelete(sessionID string) {
	am.sessionManager.SessionDelete(sessionID)
}

// CommandRun runs a command in the session identified by sessionID
func (am *AdapterManager) CommandRun(sessionID string, cmd model.Command) (interface{}, error) {
	resultChan := make(chan interface{})
	am.cmdChan <- commandRequest{SessionID: sessionID, Command: cmd, ResultChan: resultChan}
	result := <-resultChan
	if err, ok := result.(error); ok {
		return nil, err
	}
	return result, nil
}

// Shutdown stops all adapter instances and the command handler
func (am *AdapterManager) Shutdown() {
	close(am.stopChan)
	am.instances.Range(func(key, value interface{}) bool {
		instance := value.(AdapterInstance)
		instance.AdapterStop()
		return true
	})
}

func (am *AdapterManager) commandHandler() {
	for {
		select {
		case req := <-am.cmdChan:
			result, err := am.sessionManager.SessionRun(req.SessionID, req.Command)
			if err != nil {
				req.ResultChan <- err
			} else {
				req.ResultChan <- result
			}
		case <-am.stopChan:
			return
		}
	}
}
