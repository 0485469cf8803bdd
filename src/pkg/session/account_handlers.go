package session

import (
	"errors"
	"fmt"
	"strings"

	"wastewise/local-app/src/pkg/model"
)

// handleAccountRegister handles the account register command
// register <username> <email> <password> [name...]
func handleAccountRegister(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 3 {
		return nil, errors.New("usage: account register <username> <email> <password> [name]")
	}

	username := cmd.Args[0]
	email := cmd.Args[1]
	password := cmd.Args[2]
	name := username
	if len(cmd.Args) > 3 {
		name = strings.Join(cmd.Args[3:], " ")
	}

	if err := s.DataManager.AccountManager.AccountAdd(name, email, username, password); err != nil {
		if errors.Is(err, model.ErrDuplicateAccount) {
			return nil, errors.New("username atau email sudah terdaftar")
		}
		return nil, err
	}

	return fmt.Sprintf("Account '%s' registered successfully", username), nil
}

// handleAccountLogin handles the account login command
// login <identifier> <password>
func handleAccountLogin(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 2 {
		return nil, errors.New("usage: account login <username|email> <password>")
	}

	account, err := s.DataManager.AccountManager.AccountAuthenticate(cmd.Args[0], cmd.Args[1])
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return nil, errors.New("username/email atau password salah")
		}
		return nil, err
	}

	s.Login(account)

	return fmt.Sprintf("Selamat datang kembali, %s! 👋", account.Name), nil
}

// handleAccountLogout handles the account logout command
func handleAccountLogout(s *Session, cmd model.Command) (interface{}, error) {
	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}

	username := account.Username
	s.Logout()

	return fmt.Sprintf("Logged out '%s'", username), nil
}

// handleAccountShow handles the account show command
func handleAccountShow(s *Session, cmd model.Command) (interface{}, error) {
	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", account.Name))
	sb.WriteString(fmt.Sprintf("Username: %s\n", account.Username))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", account.Email))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", workspace.Level()))
	sb.WriteString(fmt.Sprintf("Points:   %d\n", workspace.Points))
	sb.WriteString(fmt.Sprintf("Total waste collected: %.1f kg", workspace.TotalWasteCollected))

	return sb.String(), nil
}

// handleAccountExport handles the account export command
// export <filename>
func handleAccountExport(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 1 {
		return nil, errors.New("usage: account export <filename>")
	}

	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	if err := s.DataManager.WorkspaceExport(workspace, cmd.Args[0]); err != nil {
		return nil, err
	}

	return fmt.Sprintf("Workspace exported to '%s'", cmd.Args[0]), nil
}

// handleAccountImport handles the account import command
// import <filename>
func handleAccountImport(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 1 {
		return nil, errors.New("usage: account import <filename>")
	}

	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}

	imported, err := s.DataManager.WorkspaceImport(account.Username, cmd.Args[0])
	if err != nil {
		return nil, err
	}
	s.Workspace = imported

	return fmt.Sprintf("Workspace imported from '%s'", cmd.Args[0]), nil
}
