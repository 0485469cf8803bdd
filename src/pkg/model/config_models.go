package model

// Config holds the application configuration settings.
// PickupDays are time.Weekday values on which pickups may be scheduled.
type Config struct {
	DatabaseType   string `json:"database_type" mapstructure:"database_type"`
	DatabaseDir    string `json:"database_dir" mapstructure:"database_dir"`
	DatabaseFile   string `json:"database_file" mapstructure:"database_file"`
	LogFolder      string `json:"log_folder" mapstructure:"log_folder"`
	CommandLog     string `json:"command_log" mapstructure:"command_log"`
	ErrorLog       string `json:"error_log" mapstructure:"error_log"`
	InfoLog        string `json:"info_log" mapstructure:"info_log"`
	PickupDays     []int  `json:"pickup_days" mapstructure:"pickup_days"`
	PickupTimeSlot string `json:"pickup_time_slot" mapstructure:"pickup_time_slot"`
	GeocodeBaseURL string `json:"geocode_base_url" mapstructure:"geocode_base_url"`
}
