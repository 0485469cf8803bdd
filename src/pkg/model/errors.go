package model

import "errors"

// Validation errors surfaced directly to the user. They are detected before
// any mutation, so a failed operation leaves all state unchanged.
var (
	ErrDuplicateAccount   = errors.New("an account with that username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrInsufficientPoints = errors.New("not enough points for this reward")
)
