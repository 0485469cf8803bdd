// Package cli implements the interactive command-line interface of the
// WasteWise application.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"wastewise/local-app/src/pkg/adapter"
	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/log"
)

// CLI represents the command-line interface
type CLI struct {
	cliAdapter   *adapter.CLIAdapter
	eventManager *event.EventManager
	sessionID    string
	rl           *readline.Instance
	stopCh       chan struct{}
	logger       *log.Logger
}

// NewCLI creates a new CLI instance bound to its own session
func NewCLI(cliAdapter *adapter.CLIAdapter, eventManager *event.EventManager, logger *log.Logger) (*CLI, error) {
	sessionID, err := cliAdapter.SessionAdd()
	if err != nil {
		return nil, fmt.Errorf("failed to add cli session: %w", err)
	}

	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	c := &CLI{
		cliAdapter:   cliAdapter,
		eventManager: eventManager,
		sessionID:    sessionID,
		rl:           rl,
		stopCh:       make(chan struct{}),
		logger:       logger,
	}
	c.subscribeToasts()

	return c, nil
}

// subscribeToasts prints transient feedback messages as they are published
func (c *CLI) subscribeToasts() {
	c.eventManager.Subscribe(event.Toast, func(e event.Event) {
		toast, ok := e.Data.(event.ToastData)
		if !ok {
			return
		}
		fmt.Printf("\n%s %s\n", severityBadge(toast.Severity), toast.Message)
	})
}

func severityBadge(severity string) string {
	switch severity {
	case "success":
		return "✅"
	case "warning":
		return "⚠️"
	case "error":
		return "❌"
	}
	return "ℹ️"
}

// Run starts the CLI and handles user input
func (c *CLI) Run() error {
	ctx := context.Background()
	defer c.rl.Close()

	fmt.Println("Welcome to WasteWise CLI! ♻️")
	fmt.Println("Type 'help' for a list of commands or 'exit' to quit.")

	for {
		select {
		case <-c.stopCh:
			return nil
		default:
		}

		c.rl.SetPrompt(c.cliAdapter.PromptGet(c.sessionID))
		input, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			fmt.Printf("Error reading input: %v\n", err)
			c.logger.Error(ctx, "Error reading input", log.Fields{"error": err})
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		fields := strings.Fields(input)
		if fields[0] == "help" {
			c.printHelp(fields[1:])
			continue
		}

		// Logout is destructive enough to confirm first
		if strings.HasPrefix(input, "account logout") {
			if !c.confirm("Yakin ingin keluar? (y/n): ") {
				fmt.Println("Logout dibatalkan")
				continue
			}
		}

		result, err := c.cliAdapter.ProcessInput(c.sessionID, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if result != nil {
			fmt.Printf("%v\n", result)
		}
	}

	c.cliAdapter.SessionDelete(c.sessionID)
	return nil
}

// confirm prompts for a yes/no answer; anything but y/yes cancels
func (c *CLI) confirm(prompt string) bool {
	c.rl.SetPrompt(prompt)
	answer, err := c.rl.Readline()
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Stop signals the CLI to stop its main loop
func (c *CLI) Stop() {
	close(c.stopCh)
}

// printHelp prints the help message based on the provided arguments
func (c *CLI) printHelp(args []string) {
	switch len(args) {
	case 0:
		c.showGeneralHelp()
	case 1:
		c.showScopeHelp(args[0])
	case 2:
		c.showOperationHelp(args[0], args[1])
	default:
		fmt.Println("Invalid help command. Use 'help [scope] [operation]'")
	}
}

// showGeneralHelp displays an overview of all available commands grouped by scope
func (c *CLI) showGeneralHelp() {
	fmt.Println("Command syntax: <scope> [operation] [arguments]")
	fmt.Println("\nAvailable commands:")
	currentScope := ""
	for _, cmd := range commandHelps {
		if cmd.Scope != currentScope {
			fmt.Printf("\n%s:\n", cmd.Scope)
			currentScope = cmd.Scope
		}
		fmt.Printf("  %-15s %s\n", cmd.Operation, cmd.ShortDesc)
	}
}

// showScopeHelp displays help information for all commands within a specific scope
func (c *CLI) showScopeHelp(scope string) {
	fmt.Printf("Commands for %s:\n\n", scope)
	for _, cmd := range commandHelps {
		if cmd.Scope == scope {
			fmt.Printf("%-15s %s\n", cmd.Operation, cmd.ShortDesc)
		}
	}
}

// showOperationHelp displays detailed help information for a specific operation within a scope
func (c *CLI) showOperationHelp(scope, operation string) {
	for _, cmd := range commandHelps {
		if cmd.Scope == scope && cmd.Operation == operation {
			fmt.Printf("Command: %s %s\n", scope, operation)
			fmt.Printf("Description: %s\n", cmd.LongDesc)
			fmt.Printf("Syntax: %s\n", cmd.Syntax)
			if len(cmd.Arguments) > 0 {
				fmt.Println("Arguments:")
				for _, arg := range cmd.Arguments {
					fmt.Printf("  %s\n", arg)
				}
			}
			if len(cmd.Examples) > 0 {
				fmt.Println("Examples:")
				for _, ex := range cmd.Examples {
					fmt.Printf("  %s\n", ex)
				}
			}
			return
		}
	}
	fmt.Printf("No help found for %s %s\n", scope, operation)
}
