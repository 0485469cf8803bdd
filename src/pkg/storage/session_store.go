package storage

import (
	"encoding/json"
	"fmt"

	"wastewise/local-app/src/pkg/model"
)

// Key of the persisted session record. Absent while logged out.
const sessionKey = "session"

// SessionStore defines the interface for session persistence.
type SessionStore interface {
	SessionGet() (*model.Session, bool, error)
	SessionSet(session model.Session) error
	SessionClear() error
}

// SessionStorage implements the SessionStore interface.
type SessionStorage struct {
	storage *Storage
}

// NewSessionStorage creates a new SessionStorage instance.
func NewSessionStorage(storage *Storage) *SessionStorage {
	return &SessionStorage{storage: storage}
}

// SessionGet returns the persisted session, if any.
func (s *SessionStorage) SessionGet() (*model.Session, bool, error) {
	value, ok, err := s.storage.RecordGet(sessionKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load session record: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var session model.Session
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		return nil, false, fmt.Errorf("failed to parse session record: %w", err)
	}

	return &session, true, nil
}

// SessionSet persists the given session projection.
func (s *SessionStorage) SessionSet(session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.storage.RecordSet(sessionKey, string(data)); err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}

	return nil
}

// SessionClear removes the persisted session record.
func (s *SessionStorage) SessionClear() error {
	if err := s.storage.RecordDelete(sessionKey); err != nil {
		return fmt.Errorf("failed to clear session record: %w", err)
	}
	return nil
}
