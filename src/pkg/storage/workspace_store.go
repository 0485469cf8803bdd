package storage

import (
	"encoding/json"
	"fmt"

	"wastewise/local-app/src/pkg/model"
)

// workspaceKey returns the record key of a user's workspace snapshot.
func workspaceKey(username string) string {
	return "data_" + username
}

// WorkspaceStore defines the interface for per-user workspace persistence.
type WorkspaceStore interface {
	WorkspaceGet(username string) (*model.Workspace, bool, error)
	WorkspaceSet(username string, workspace *model.Workspace) error
}

// WorkspaceStorage implements the WorkspaceStore interface.
type WorkspaceStorage struct {
	storage *Storage
}

// NewWorkspaceStorage creates a new WorkspaceStorage instance.
func NewWorkspaceStorage(storage *Storage) *WorkspaceStorage {
	return &WorkspaceStorage{storage: storage}
}

// WorkspaceGet loads the persisted workspace for username. A missing record
// is the normal first-login path, reported through the bool return.
func (s *WorkspaceStorage) WorkspaceGet(username string) (*model.Workspace, bool, error) {
	value, ok, err := s.storage.RecordGet(workspaceKey(username))
	if err != nil {
		return nil, false, fmt.Errorf("failed to load workspace for '%s': %w", username, err)
	}
	if !ok {
		return nil, false, nil
	}

	var workspace model.Workspace
	if err := json.Unmarshal([]byte(value), &workspace); err != nil {
		return nil, false, fmt.Errorf("failed to parse workspace for '%s': %w", username, err)
	}

	return &workspace, true, nil
}

// WorkspaceSet persists the full workspace snapshot for username.
func (s *WorkspaceStorage) WorkspaceSet(username string, workspace *model.Workspace) error {
	data, err := json.Marshal(workspace)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace for '%s': %w", username, err)
	}

	if err := s.storage.RecordSet(workspaceKey(username), string(data)); err != nil {
		return fmt.Errorf("failed to save workspace for '%s': %w", username, err)
	}

	return nil
}
