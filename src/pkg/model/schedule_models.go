package model

import "time"

// ScheduleStatus represents the lifecycle state of a pickup schedule.
// The only transition is pending -> completed; completion is terminal.
// Deletion is a transition out of the machine, not a third state.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleCompleted ScheduleStatus = "completed"
)

// Waste types accepted for pickup.
const (
	WasteOrganik   = "organik"
	WasteAnorganik = "anorganik"
	WasteCampuran  = "campuran"
)

// WasteTypeValid reports whether the given waste type is one of the accepted kinds.
func WasteTypeValid(wasteType string) bool {
	switch wasteType {
	case WasteOrganik, WasteAnorganik, WasteCampuran:
		return true
	}
	return false
}

// Coordinates is a latitude/longitude pair for a pickup location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Schedule represents one waste-pickup request and its lifecycle status.
type Schedule struct {
	ID          int64          `json:"id"`
	Type        string         `json:"type"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Weight      float64        `json:"weight"`
	Address     string         `json:"address"`
	Coordinates *Coordinates   `json:"coordinates"`
	Status      ScheduleStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ScheduleInfo carries the caller-supplied fields for schedule creation.
type ScheduleInfo struct {
	Type        string
	Date        string
	Time        string
	Weight      float64
	Address     string
	Coordinates *Coordinates
}
