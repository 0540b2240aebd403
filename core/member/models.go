package member

import "github.com/newlifekgl/cellhub/core"

// Statuses
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusMoved    = "MOVED"
)

type Member struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	AgeRange string `json:"age_range"`
	Address  string `json:"address"`
	CellID   string `json:"cell_id"`
	Status   string `json:"status"`
	// JoinedDate and LastAttendedDate are calendar date strings.
	// LastAttendedDate caches the latest date a PRESENT attendance record was
	// ever saved for the member; only the attendance save path advances it.
	JoinedDate       string `json:"joined_date"`
	LastAttendedDate string `json:"last_attended_date,omitempty"`
}

// NewMember contains information needed to register a new Member.
type NewMember struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=Male Female"`
	AgeRange string `json:"age_range" validate:"required"`
	Address  string `json:"address"`
	CellID   string `json:"cell_id" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE MOVED"`
}

func (nm *NewMember) Validate() error {
	nm.FullName = core.CleanString(nm.FullName)
	nm.Phone = core.CleanString(nm.Phone)
	nm.Address = core.CleanString(nm.Address)
	return core.Validate.Struct(nm)
}
