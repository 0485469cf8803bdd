package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RecordStore defines the interface for the string-keyed durable store. All
// higher-level stores are layered on top of it.
type RecordStore interface {
	RecordGet(key string) (string, bool, error)
	RecordSet(key, value string) error
	RecordDelete(key string) error
}

// RecordStorage implements the RecordStore interface.
type RecordStorage struct {
	storage *Storage
}

// NewRecordStorage creates a new RecordStorage instance.
func NewRecordStorage(storage *Storage) *RecordStorage {
	return &RecordStorage{storage: storage}
}

// RecordGet retrieves the value stored under key. The second return value
// reports whether the key exists; a missing key is not an error.
func (s *RecordStorage) RecordGet(key string) (string, bool, error) {
	db := s.storage.GetDatabase()

	var value string
	row := db.QueryRow("SELECT value FROM records WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read record '%s': %w", key, err)
	}

	return value, true, nil
}

// RecordSet stores value under key, replacing any previous value.
func (s *RecordStorage) RecordSet(key, value string) error {
	db := s.storage.GetDatabase()

	_, err := db.Exec(
		"INSERT INTO records (key, value, updated) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated = excluded.updated",
		key, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to write record '%s': %w", key, err)
	}

	return nil
}

// RecordDelete removes the record stored under key. Deleting a missing key
// is a no-op.
func (s *RecordStorage) RecordDelete(key string) error {
	db := s.storage.GetDatabase()

	_, err := db.Exec("DELETE FROM records WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete record '%s': %w", key, err)
	}

	return nil
}
