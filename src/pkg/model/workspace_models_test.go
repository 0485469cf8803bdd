package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkspaceLevelBoundaries(t *testing.T) {
	cases := []struct {
		points int
		level  string
	}{
		{0, LevelPemula},
		{49, LevelPemula},
		{50, LevelBerkembang},
		{149, LevelBerkembang},
		{150, LevelMahir},
		{299, LevelMahir},
		{300, LevelAhli},
		{499, LevelAhli},
		{500, LevelMaster},
		{10000, LevelMaster},
	}

	for _, tc := range cases {
		w := &Workspace{Points: tc.points}
		assert.Equal(t, tc.level, w.Level(), "points=%d", tc.points)
	}
}

func TestNewWorkspaceDefaults(t *testing.T) {
	w := NewWorkspace()

	assert.Zero(t, w.Points)
	assert.Zero(t, w.TotalWasteCollected)
	assert.NotNil(t, w.Schedules)
	assert.NotNil(t, w.Notifications)
	assert.NotNil(t, w.Vouchers)
	assert.Empty(t, w.Schedules)
}

func TestUnreadCount(t *testing.T) {
	w := NewWorkspace()
	assert.Equal(t, 0, w.UnreadCount())

	w.Notifications = []Notification{
		{ID: 1, Read: false},
		{ID: 2, Read: true},
		{ID: 3, Read: false},
	}
	assert.Equal(t, 2, w.UnreadCount())
}

func TestScheduleByID(t *testing.T) {
	w := NewWorkspace()
	w.Schedules = []Schedule{{ID: 10}, {ID: 20}, {ID: 30}}

	assert.Equal(t, 1, w.ScheduleByID(20))
	assert.Equal(t, -1, w.ScheduleByID(99))
}

func TestWasteTypeValid(t *testing.T) {
	assert.True(t, WasteTypeValid(WasteOrganik))
	assert.True(t, WasteTypeValid(WasteAnorganik))
	assert.True(t, WasteTypeValid(WasteCampuran))
	assert.False(t, WasteTypeValid("plastik"))
	assert.False(t, WasteTypeValid(""))
}
