package model

// Workspace holds the full per-account state: points, schedules,
// notifications, vouchers and cumulative totals. One workspace exists per
// account, persisted under "data_<username>" and rewritten as a whole
// snapshot after every mutation.
type Workspace struct {
	Points              int            `json:"points"`
	Schedules           []Schedule     `json:"schedules"`
	Notifications       []Notification `json:"notifications"`
	Vouchers            []Voucher      `json:"vouchers"`
	TotalWasteCollected float64        `json:"totalWasteCollected"`
	LastLoginDate       string         `json:"lastLoginDate"`
}

// NewWorkspace returns a workspace with first-login defaults.
func NewWorkspace() *Workspace {
	return &Workspace{
		Schedules:     []Schedule{},
		Notifications: []Notification{},
		Vouchers:      []Voucher{},
	}
}

// Level names, lowest tier first.
const (
	LevelPemula     = "Pemula"
	LevelBerkembang = "Berkembang"
	LevelMahir      = "Mahir"
	LevelAhli       = "Ahli"
	LevelMaster     = "Master"
)

// Level returns the loyalty tier for the workspace's current point balance.
func (w *Workspace) Level() string {
	switch {
	case w.Points < 50:
		return LevelPemula
	case w.Points < 150:
		return LevelBerkembang
	case w.Points < 300:
		return LevelMahir
	case w.Points < 500:
		return LevelAhli
	default:
		return LevelMaster
	}
}

// UnreadCount returns the number of unread notifications. It is recomputed
// on every call rather than cached.
func (w *Workspace) UnreadCount() int {
	count := 0
	for _, n := range w.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// ScheduleByID returns the index of the schedule with the given id, or -1.
func (w *Workspace) ScheduleByID(id int64) int {
	for i := range w.Schedules {
		if w.Schedules[i].ID == id {
			return i
		}
	}
	return -1
}
