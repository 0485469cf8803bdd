package model

// Command represents a parsed user command: a scope (account, schedule,
// reward, notification, system), an operation within it, and its arguments.
type Command struct {
	Scope     string
	Operation string
	Args      []string
}
