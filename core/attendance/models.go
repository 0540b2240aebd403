package attendance

// Statuses
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusExcused = "EXCUSED"
)

// Cell health statuses
const (
	CellHealthy        = "HEALTHY"
	CellNeedsAttention = "NEEDS_ATTENTION"
)

// healthyThreshold is the average attendance percentage above which a cell
// reports HEALTHY.
const healthyThreshold = 80

// Record is one member's attendance mark for one cell session.
// (CellID, MemberID, Date) is the natural key; the store never holds two
// records sharing it.
type Record struct {
	ID       string `json:"id"`
	Date     string `json:"date" validate:"required,calendardate"`
	CellID   string `json:"cell_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=PRESENT ABSENT EXCUSED"`
	Notes    string `json:"notes,omitempty"`
}

// SessionSummary is the per-date roll-up of one cell's register.
type SessionSummary struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Excused int    `json:"excused"`
	Total   int    `json:"total"`
}

// CellOverview is the admin dashboard's latest-session snapshot of one cell.
// LastSessionDate is empty for a cell that never held a session.
type CellOverview struct {
	CellID             string `json:"cell_id"`
	CellName           string `json:"cell_name"`
	LeaderName         string `json:"leader_name"`
	TotalMembers       int    `json:"total_members"`
	LastSessionDate    string `json:"last_session_date,omitempty"`
	LastSessionPresent int    `json:"last_session_present"`
	LastSessionAbsent  int    `json:"last_session_absent"`
}

// CellReport aggregates one cell's health from its real session history.
type CellReport struct {
	CellID        string `json:"cell_id"`
	CellName      string `json:"cell_name"`
	LeaderName    string `json:"leader_name"`
	MemberCount   int    `json:"member_count"`
	AvgAttendance int    `json:"avg_attendance"`
	Status        string `json:"status"`
}

// FollowUpTask flags an active member absent beyond the configured threshold.
type FollowUpTask struct {
	MemberID     string `json:"member_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CellName     string `json:"cell_name"`
	LastAttended string `json:"last_attended"` // "Never" when no PRESENT record exists
	DaysSince    int    `json:"days_since"`
}

// WeeklyStat is one point of the recent attendance trend.
type WeeklyStat struct {
	Label      string `json:"name"`
	Attendance int    `json:"attendance"`
}
