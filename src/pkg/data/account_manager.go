// Package data provides data management functionality for the WasteWise
// application. This file contains operations related to the account directory.
package data

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
	"wastewise/local-app/src/pkg/storage"
)

// AccountOperations defines the interface for account-related operations
type AccountOperations interface {
	AccountAdd(name, email, username, password string) error
	AccountAuthenticate(identifier, password string) (*model.Account, error)
	AccountAll() ([]model.Account, error)
}

// AccountManager handles registration and authentication against the global
// account directory.
type AccountManager struct {
	accountStore storage.AccountStore
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewAccountManager creates a new AccountManager instance.
func NewAccountManager(accountStore storage.AccountStore, eventManager *event.EventManager, logger *log.Logger) (*AccountManager, error) {
	if accountStore == nil {
		return nil, fmt.Errorf("accountStore not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &AccountManager{
		accountStore: accountStore,
		eventManager: eventManager,
		logger:       logger,
	}, nil
}

// AccountAdd registers a new account. It fails with ErrDuplicateAccount when
// an account with the same username or email already exists (case-sensitive
// exact match). Registration never logs the new user in.
func (am *AccountManager) AccountAdd(name, email, username, password string) error {
	ctx := context.Background()
	am.logger.Info(ctx, "Registering new account", log.Fields{"username": username})

	accounts, err := am.accountStore.AccountAll()
	if err != nil {
		am.logger.Error(ctx, "Error loading account directory", log.Fields{"error": err})
		return fmt.Errorf("error checking account existence: %w", err)
	}

	for _, existing := range accounts {
		if existing.Username == username || existing.Email == email {
			am.logger.Warn(ctx, "Account already exists", log.Fields{"username": username})
			return model.ErrDuplicateAccount
		}
	}

	accounts = append(accounts, model.Account{
		Name:     name,
		Email:    email,
		Username: username,
		Password: password,
	})

	// A failed write is logged and swallowed; the registration stands for
	// this process run.
	if err := am.accountStore.AccountSaveAll(accounts); err != nil {
		am.logger.Error(ctx, "Failed to persist account directory", log.Fields{"error": err, "username": username})
	}

	am.eventManager.Publish(event.Event{
		Type: event.AccountAdded,
		Data: username,
	})

	am.logger.Info(ctx, "Account registered successfully", log.Fields{"username": username})
	return nil
}

// AccountAuthenticate verifies credentials. The identifier matches either
// username or email; the password must match exactly. The first record where
// both match wins.
func (am *AccountManager) AccountAuthenticate(identifier, password string) (*model.Account, error) {
	ctx := context.Background()
	am.logger.Info(ctx, "Authenticating account", log.Fields{"identifier": identifier})

	accounts, err := am.accountStore.AccountAll()
	if err != nil {
		am.logger.Error(ctx, "Error loading account directory", log.Fields{"error": err})
		return nil, fmt.Errorf("error retrieving accounts: %w", err)
	}

	for i := range accounts {
		account := &accounts[i]
		if account.Username != identifier && account.Email != identifier {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) == 1 {
			am.logger.Info(ctx, "Account authenticated successfully", log.Fields{"username": account.Username})
			return account, nil
		}
	}

	am.logger.Warn(ctx, "Authentication failed", log.Fields{"identifier": identifier})
	return nil, model.ErrInvalidCredentials
}

// AccountAll returns every registered account.
func (am *AccountManager) AccountAll() ([]model.Account, error) {
	accounts, err := am.accountStore.AccountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// IsValidationError reports whether err is one of the user-facing
// validation errors rather than an infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, model.ErrDuplicateAccount) ||
		errors.Is(err, model.ErrInvalidCredentials) ||
		errors.Is(err, model.ErrInsufficientPoints)
}
