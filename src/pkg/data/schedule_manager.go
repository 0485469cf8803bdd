package data

import (
	"context"
	"fmt"
	"math"
	"time"

	"wastewise/local-app/src/pkg/event"
	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

// Points credited per kilogram of completed pickup weight.
const pointsPerKg = 10

// ScheduleManager handles the pickup-schedule lifecycle and its point
// accounting.
type ScheduleManager struct {
	workspaceManager    *WorkspaceManager
	notificationManager *NotificationManager
	eventManager        *event.EventManager
	logger              *log.Logger
}

// NewScheduleManager creates a new ScheduleManager instance.
func NewScheduleManager(workspaceManager *WorkspaceManager, notificationManager *NotificationManager, eventManager *event.EventManager, logger *log.Logger) (*ScheduleManager, error) {
	if workspaceManager == nil {
		return nil, fmt.Errorf("workspaceManager not initialized")
	}
	if notificationManager == nil {
		return nil, fmt.Errorf("notificationManager not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &ScheduleManager{
		workspaceManager:    workspaceManager,
		notificationManager: notificationManager,
		eventManager:        eventManager,
		logger:              logger,
	}, nil
}

// ScheduleAdd creates a pending schedule from the given info, appends it,
// emits an informational notification and persists the workspace. The
// pickup-day constraint is enforced by the presentation layer before the
// submission reaches this operation.
func (sm *ScheduleManager) ScheduleAdd(username string, workspace *model.Workspace, info model.ScheduleInfo) (model.Schedule, error) {
	ctx := context.Background()
	sm.logger.Info(ctx, "Creating schedule", log.Fields{"username": username, "type": info.Type, "weight": info.Weight})

	if !model.WasteTypeValid(info.Type) {
		return model.Schedule{}, fmt.Errorf("invalid waste type: %s", info.Type)
	}
	if info.Weight <= 0 {
		return model.Schedule{}, fmt.Errorf("weight must be greater than zero")
	}

	schedule := model.Schedule{
		ID:          sm.freshScheduleID(workspace),
		Type:        info.Type,
		Date:        info.Date,
		Time:        info.Time,
		Weight:      info.Weight,
		Address:     info.Address,
		Coordinates: info.Coordinates,
		Status:      model.SchedulePending,
		CreatedAt:   time.Now(),
	}
	workspace.Schedules = append(workspace.Schedules, schedule)

	sm.notificationManager.NotificationAdd(username, workspace,
		"Jadwal Berhasil Dibuat! 📅",
		fmt.Sprintf("Penjemputan %s dijadwalkan pada %s. Menunggu petugas.", schedule.Type, schedule.Date),
		model.NotificationInfo,
	)

	sm.workspaceManager.WorkspaceSave(username, workspace)
	sm.eventManager.Publish(event.Event{Type: event.ScheduleAdded, Data: schedule})
	sm.eventManager.Publish(event.Event{Type: event.Toast, Data: event.ToastData{
		Message:  "Jadwal berhasil dibuat! Menunggu penjemputan 🚚",
		Severity: "info",
	}})

	sm.logger.Info(ctx, "Schedule created", log.Fields{"scheduleID": schedule.ID})
	return schedule, nil
}

// ScheduleComplete marks the schedule as completed, credits points at 10 per
// kg (rounded), adds the weight to the cumulative total and emits a success
// notification. Completing a missing or already-completed schedule is an
// idempotent no-op; the returned bool reports whether a transition happened.
func (sm *ScheduleManager) ScheduleComplete(username string, workspace *model.Workspace, id int64) (int, bool) {
	ctx := context.Background()

	index := workspace.ScheduleByID(id)
	if index == -1 {
		sm.logger.Warn(ctx, "Schedule not found for completion", log.Fields{"scheduleID": id})
		return 0, false
	}

	schedule := &workspace.Schedules[index]
	if schedule.Status == model.ScheduleCompleted {
		sm.logger.Debug(ctx, "Schedule already completed", log.Fields{"scheduleID": id})
		return 0, false
	}

	schedule.Status = model.ScheduleCompleted
	pointsEarned := int(math.Round(schedule.Weight * pointsPerKg))
	workspace.Points += pointsEarned
	workspace.TotalWasteCollected += schedule.Weight

	sm.notificationManager.NotificationAdd(username, workspace,
		"Penjemputan Selesai! 🎉",
		fmt.Sprintf("Sampah %s telah dijemput. Anda mendapatkan +%d poin!", schedule.Type, pointsEarned),
		model.NotificationSuccess,
	)

	sm.workspaceManager.WorkspaceSave(username, workspace)
	sm.eventManager.Publish(event.Event{Type: event.ScheduleCompleted, Data: *schedule})
	sm.eventManager.Publish(event.Event{Type: event.Toast, Data: event.ToastData{
		Message:  fmt.Sprintf("Penjemputan selesai! +%d poin ditambahkan.", pointsEarned),
		Severity: "success",
	}})

	sm.logger.Info(ctx, "Schedule completed", log.Fields{"scheduleID": id, "pointsEarned": pointsEarned})
	return pointsEarned, true
}

// ScheduleDelete removes the schedule and subtracts its weight from the
// cumulative total regardless of its status. Deleting a never-completed
// schedule still decrements the total, matching the historic behavior of the
// tracker. Deleting a missing schedule is a no-op.
func (sm *ScheduleManager) ScheduleDelete(username string, workspace *model.Workspace, id int64) bool {
	ctx := context.Background()

	index := workspace.ScheduleByID(id)
	if index == -1 {
		sm.logger.Warn(ctx, "Schedule not found for deletion", log.Fields{"scheduleID": id})
		return false
	}

	schedule := workspace.Schedules[index]
	workspace.Schedules = append(workspace.Schedules[:index], workspace.Schedules[index+1:]...)
	workspace.TotalWasteCollected -= schedule.Weight

	sm.workspaceManager.WorkspaceSave(username, workspace)
	sm.eventManager.Publish(event.Event{Type: event.ScheduleDeleted, Data: schedule})
	sm.eventManager.Publish(event.Event{Type: event.Toast, Data: event.ToastData{
		Message:  "Jadwal dihapus",
		Severity: "info",
	}})

	sm.logger.Info(ctx, "Schedule deleted", log.Fields{"scheduleID": id})
	return true
}

// freshScheduleID returns a creation-time millisecond id, bumped past any
// collision with an existing schedule.
func (sm *ScheduleManager) freshScheduleID(workspace *model.Workspace) int64 {
	id := time.Now().UnixMilli()
	for workspace.ScheduleByID(id) != -1 {
		id++
	}
	return id
}
