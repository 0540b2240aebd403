package cell

import "github.com/newlifekgl/cellhub/core"

// UnassignedLeaderName is cached on a Cell created without a leader.
const UnassignedLeaderName = "Unassigned"

type Cell struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LeaderID string `json:"leader_id,omitempty"`
	// LeaderName caches the name of the User referenced by LeaderID; it is
	// rewritten whenever leadership changes (Create, ReassignLeader).
	LeaderName string `json:"leader_name"`
	Location   string `json:"location"`
	MeetingDay string `json:"meeting_day"`
}

// NewCell contains information needed to create a new Cell.
type NewCell struct {
	Name       string `json:"name" validate:"required"`
	LeaderID   string `json:"leader_id"`
	Location   string `json:"location" validate:"required"`
	MeetingDay string `json:"meeting_day" validate:"required"`
}

func (nc *NewCell) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Location = core.CleanString(nc.Location)
	nc.MeetingDay = core.CleanString(nc.MeetingDay)
	return core.Validate.Struct(nc)
}

// ReassignLeader is the request body for a leadership change.
type ReassignLeader struct {
	LeaderID string `json:"leader_id" validate:"required"`
}

func (rl *ReassignLeader) Validate() error {
	rl.LeaderID = core.CleanString(rl.LeaderID)
	return core.Validate.Struct(rl)
}
