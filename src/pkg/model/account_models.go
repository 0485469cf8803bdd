// Package model defines the data structures used throughout the WasteWise application.
package model

// Account represents a registered user in the account directory.
// Accounts are immutable after registration; there is no edit or delete path.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the public projection of the active account. The password is
// deliberately excluded; this is the record persisted under the "session" key
// while a user is logged in.
type Session struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SessionOf builds the public projection of an account.
func SessionOf(account *Account) Session {
	return Session{
		Name:     account.Name,
		Email:    account.Email,
		Username: account.Username,
	}
}
