package cli

// CommandHelp represents the structure of help information for a specific command.
type CommandHelp struct {
	Scope     string
	Operation string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Arguments []string
	Examples  []string
}

// commandHelps is a slice of CommandHelp structs containing help information for all commands.
var commandHelps = []CommandHelp{
	{
		Scope:     "account",
		Operation: "register",
		ShortDesc: "Register a new account",
		LongDesc:  "Creates a new account with the given username, email and password.",
		Syntax:    "account register <username> <email> <password> [name]",
		Arguments: []string{"username: The unique username", "email: The unique email address", "password: The account password", "name: (Optional) Display name, defaults to the username"},
		Examples:  []string{"account register budi budi@mail.com rahasia", "account register budi budi@mail.com rahasia Budi Santoso"},
	},
	{
		Scope:     "account",
		Operation: "login",
		ShortDesc: "Log in to an account",
		LongDesc:  "Logs in using either the username or the email address, loading the account's waste-tracking data.",
		Syntax:    "account login <username|email> <password>",
		Arguments: []string{"identifier: Username or email", "password: The account password"},
		Examples:  []string{"account login budi rahasia", "account login budi@mail.com rahasia"},
	},
	{
		Scope:     "account",
		Operation: "logout",
		ShortDesc: "Log out of the current account",
		LongDesc:  "Logs out after confirmation. Collected data stays saved for the next login.",
		Syntax:    "account logout",
		Examples:  []string{"account logout"},
	},
	{
		Scope:     "account",
		Operation: "show",
		ShortDesc: "Show account and progress",
		LongDesc:  "Displays the account profile, level, point balance and total waste collected.",
		Syntax:    "account show",
		Examples:  []string{"account show"},
	},
	{
		Scope:     "account",
		Operation: "export",
		ShortDesc: "Export tracking data to a file",
		LongDesc:  "Exports the account's waste-tracking data to a JSON file.",
		Syntax:    "account export <filename>",
		Arguments: []string{"filename: The name of the file to save to"},
		Examples:  []string{"account export backup.json"},
	},
	{
		Scope:     "account",
		Operation: "import",
		ShortDesc: "Import tracking data from a file",
		LongDesc:  "Replaces the account's waste-tracking data with a previously exported JSON snapshot.",
		Syntax:    "account import <filename>",
		Arguments: []string{"filename: The name of the file to import from"},
		Examples:  []string{"account import backup.json"},
	},
	{
		Scope:     "schedule",
		Operation: "add",
		ShortDesc: "Schedule a waste pickup",
		LongDesc:  "Schedules a pickup for the given waste type, date and estimated weight. Pickups run on Monday and Thursday only. Coordinates may be given as lat,lng; without a typed address the street is looked up from the coordinates.",
		Syntax:    "schedule add <organik|anorganik|campuran> <YYYY-MM-DD> <weight-kg> [lat,lng] [address]",
		Arguments: []string{"type: Waste type", "date: Pickup date, must fall on a pickup day", "weight-kg: Estimated weight in kilograms", "lat,lng: (Optional) Pickup coordinates", "address: (Optional) Pickup address"},
		Examples:  []string{"schedule add organik 2026-09-03 2.5", "schedule add anorganik 2026-09-07 4 -6.2,106.8 Jl. Sudirman 10"},
	},
	{
		Scope:     "schedule",
		Operation: "complete",
		ShortDesc: "Mark a pickup as completed",
		LongDesc:  "Marks the pickup as completed and credits points at 10 per kilogram.",
		Syntax:    "schedule complete <id>",
		Arguments: []string{"id: The schedule id"},
		Examples:  []string{"schedule complete 1756378954123"},
	},
	{
		Scope:     "schedule",
		Operation: "delete",
		ShortDesc: "Delete a pickup schedule",
		LongDesc:  "Removes the schedule from the list.",
		Syntax:    "schedule delete <id>",
		Arguments: []string{"id: The schedule id"},
		Examples:  []string{"schedule delete 1756378954123"},
	},
	{
		Scope:     "schedule",
		Operation: "list",
		ShortDesc: "List pickup schedules",
		LongDesc:  "Displays all pickup schedules with their status.",
		Syntax:    "schedule list",
		Examples:  []string{"schedule list"},
	},
	{
		Scope:     "reward",
		Operation: "list",
		ShortDesc: "Show the reward catalog",
		LongDesc:  "Displays the rewards available for redemption and their point costs.",
		Syntax:    "reward list",
		Examples:  []string{"reward list"},
	},
	{
		Scope:     "reward",
		Operation: "redeem",
		ShortDesc: "Redeem a reward",
		LongDesc:  "Exchanges points for the named reward and issues a voucher code.",
		Syntax:    "reward redeem <reward name>",
		Arguments: []string{"reward name: The exact catalog name"},
		Examples:  []string{"reward redeem Bibit Tanaman", "reward redeem Voucher Pulsa 20rb"},
	},
	{
		Scope:     "reward",
		Operation: "vouchers",
		ShortDesc: "List redeemed vouchers",
		LongDesc:  "Displays the vouchers already redeemed, most recent first.",
		Syntax:    "reward vouchers",
		Examples:  []string{"reward vouchers"},
	},
	{
		Scope:     "notification",
		Operation: "list",
		ShortDesc: "Show notifications",
		LongDesc:  "Displays all notifications, most recent first, and marks them as read.",
		Syntax:    "notification list",
		Examples:  []string{"notification list"},
	},
	{
		Scope:     "notification",
		Operation: "unread",
		ShortDesc: "Show the unread count",
		LongDesc:  "Displays the number of unread notifications.",
		Syntax:    "notification unread",
		Examples:  []string{"notification unread"},
	},
	{
		Scope:     "system",
		Operation: "exit",
		ShortDesc: "Exit the program",
		LongDesc:  "Exits the WasteWise program, saving all changes.",
		Syntax:    "system exit",
		Examples:  []string{"system exit"},
	},
	{
		Scope:     "system",
		Operation: "quit",
		ShortDesc: "Quit the program",
		LongDesc:  "Quits the WasteWise program, saving all changes. Equivalent to 'system exit'.",
		Syntax:    "system quit",
		Examples:  []string{"system quit"},
	},
}
