package storage

import (
	"fmt"
	"path/filepath"

	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

// Storage represents the main storage implementation.
type Storage struct {
	db Database
	RecordStore
	AccountStore
	SessionStore
	WorkspaceStore
}

// NewStorage creates a new Storage instance and initializes the database.
func NewStorage(config *model.Config, logger *log.Logger) (*Storage, error) {
	dbDriver, err := validateDBDriver(config.DatabaseType)
	if err != nil {
		return nil, fmt.Errorf("invalid database driver '%s': %w", config.DatabaseType, err)
	}

	db, err := NewDatabase(dbDriver, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database instance: %w", err)
	}

	// Construct the full path for the database file
	dataSourceName := filepath.Join(config.DatabaseDir, config.DatabaseFile)

	// Open the database connection
	if err := db.Open(dataSourceName); err != nil {
		return nil, fmt.Errorf("failed to open database connection '%s': %w", dataSourceName, err)
	}

	storage := &Storage{
		db: db,
	}

	// Create the record table
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Create storages
	storage.RecordStore = NewRecordStorage(storage)
	storage.AccountStore = NewAccountStorage(storage)
	storage.SessionStore = NewSessionStorage(storage)
	storage.WorkspaceStore = NewWorkspaceStorage(storage)

	return storage, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// initSchema initializes the database schema.
func (s *Storage) initSchema() error {
	if err := s.db.InitSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// GetDatabase returns the database instance
func (s *Storage) GetDatabase() Database {
	return s.db
}
