package storage

import (
	"encoding/json"
	"fmt"

	"wastewise/local-app/src/pkg/model"
)

// Key of the global account directory record.
const accountsKey = "users"

// AccountStore defines the interface for account-directory storage
// operations. The directory is stored as one ordered JSON list.
type AccountStore interface {
	AccountAll() ([]model.Account, error)
	AccountSaveAll(accounts []model.Account) error
}

// AccountStorage implements the AccountStore interface.
type AccountStorage struct {
	storage *Storage
}

// NewAccountStorage creates a new AccountStorage instance.
func NewAccountStorage(storage *Storage) *AccountStorage {
	return &AccountStorage{storage: storage}
}

// AccountAll returns every registered account in registration order. A
// missing directory record means no accounts exist yet.
func (s *AccountStorage) AccountAll() ([]model.Account, error) {
	value, ok, err := s.storage.RecordGet(accountsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load account directory: %w", err)
	}
	if !ok {
		return []model.Account{}, nil
	}

	var accounts []model.Account
	if err := json.Unmarshal([]byte(value), &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse account directory: %w", err)
	}

	return accounts, nil
}

// AccountSaveAll persists the full account directory.
func (s *AccountStorage) AccountSaveAll(accounts []model.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to marshal account directory: %w", err)
	}

	if err := s.storage.RecordSet(accountsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save account directory: %w", err)
	}

	return nil
}
