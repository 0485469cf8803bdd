package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wastewise/local-app/src/pkg/model"
)

var indonesianDays = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// handleScheduleAdd handles the schedule add command
// add <type> <date> <weight> [lat,lng] [address...]
func handleScheduleAdd(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 3 {
		return nil, errors.New("usage: schedule add <organik|anorganik|campuran> <YYYY-MM-DD> <weight-kg> [lat,lng] [address]")
	}

	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	wasteType := strings.ToLower(cmd.Args[0])
	date := cmd.Args[1]

	weight, err := strconv.ParseFloat(cmd.Args[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid weight: %s", cmd.Args[2])
	}

	if err := validatePickupDay(date, s.DataManager.Config.PickupDays); err != nil {
		return nil, err
	}

	info := model.ScheduleInfo{
		Type:   wasteType,
		Date:   date,
		Time:   s.DataManager.Config.PickupTimeSlot,
		Weight: weight,
	}

	rest := cmd.Args[3:]
	if len(rest) > 0 {
		if coords, ok := parseCoordinates(rest[0]); ok {
			info.Coordinates = coords
			rest = rest[1:]
		}
	}
	info.Address = strings.Join(rest, " ")

	// With a map pin but no typed address, look the street up; a failed
	// lookup just leaves the address blank.
	if info.Address == "" && info.Coordinates != nil && s.geocoder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		info.Address = s.geocoder.ReverseGeocode(ctx, info.Coordinates.Lat, info.Coordinates.Lng)
	}

	schedule, err := s.DataManager.ScheduleManager.ScheduleAdd(account.Username, workspace, info)
	if err != nil {
		return nil, err
	}

	return fmt.Sprintf("Schedule %d created: %s on %s (%s)", schedule.ID, schedule.Type, schedule.Date, schedule.Time), nil
}

// handleScheduleComplete handles the schedule complete command
// complete <id>
func handleScheduleComplete(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 1 {
		return nil, errors.New("usage: schedule complete <id>")
	}

	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule id: %s", cmd.Args[0])
	}

	pointsEarned, ok := s.DataManager.ScheduleManager.ScheduleComplete(account.Username, workspace, id)
	if !ok {
		return "Schedule not found or already completed", nil
	}

	return fmt.Sprintf("Schedule %d completed, +%d points", id, pointsEarned), nil
}

// handleScheduleDelete handles the schedule delete command
// delete <id>
func handleScheduleDelete(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 1 {
		return nil, errors.New("usage: schedule delete <id>")
	}

	account, err := s.AccountGet()
	if err != nil {
		return nil, err
	}
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule id: %s", cmd.Args[0])
	}

	if !s.DataManager.ScheduleManager.ScheduleDelete(account.Username, workspace, id) {
		return "Schedule not found", nil
	}

	return fmt.Sprintf("Schedule %d deleted", id), nil
}

// handleScheduleList handles the schedule list command
func handleScheduleList(s *Session, cmd model.Command) (interface{}, error) {
	workspace, err := s.WorkspaceGet()
	if err != nil {
		return nil, err
	}

	if len(workspace.Schedules) == 0 {
		return "No schedules yet", nil
	}

	var sb strings.Builder
	for i := range workspace.Schedules {
		sched := &workspace.Schedules[i]
		status := "⏳ pending"
		if sched.Status == model.ScheduleCompleted {
			status = "✅ completed"
		}
		sb.WriteString(fmt.Sprintf("%d | %-9s | %s | %s | %.1f kg | %s", sched.ID, sched.Type, sched.Date, sched.Time, sched.Weight, status))
		if sched.Address != "" {
			sb.WriteString(" | " + sched.Address)
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

// validatePickupDay rejects dates whose weekday is not in the configured
// pickup days.
func validatePickupDay(date string, pickupDays []int) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date (want YYYY-MM-DD): %s", date)
	}

	weekday := int(parsed.Weekday())
	for _, day := range pickupDays {
		if weekday == day {
			return nil
		}
	}

	names := make([]string, 0, len(pickupDays))
	for _, day := range pickupDays {
		if day >= 0 && day < len(indonesianDays) {
			names = append(names, indonesianDays[day])
		}
	}
	return fmt.Errorf("penjemputan hanya tersedia hari %s", strings.Join(names, " dan "))
}

// parseCoordinates parses a "lat,lng" pair, reporting whether arg was one.
func parseCoordinates(arg string) (*model.Coordinates, bool) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return nil, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, false
	}
	return &model.Coordinates{Lat: lat, Lng: lng}, true
}
