package member

import (
	"errors"
	"time"

	"github.com/newlifekgl/cellhub/core"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("member not found")
)

type (
	Repository interface {
		CreateMember(m Member) (Member, error)
		QueryAllMembers() ([]Member, error)
		QueryMembersByCell(cellID string) ([]Member, error)
		GetMemberByID(id string) (Member, error)
		// AdvanceLastAttended moves the member's cached last-attended date
		// forward to `date` if it is unset or chronologically earlier; it
		// never regresses the cache.
		AdvanceLastAttended(memberID, date string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query returns all members, or the members of one cell when cellID is given.
func (svc *Service) Query(cellID string) ([]Member, error) {
	if cellID != "" {
		return svc.repo.QueryMembersByCell(cellID)
	}
	return svc.repo.QueryAllMembers()
}

func (svc *Service) GetByID(id string) (Member, error) {
	return svc.repo.GetMemberByID(id)
}

func (svc *Service) Create(nm NewMember) (Member, error) {
	m := Member{
		FullName:   nm.FullName,
		Phone:      nm.Phone,
		Gender:     nm.Gender,
		AgeRange:   nm.AgeRange,
		Address:    nm.Address,
		CellID:     nm.CellID,
		Status:     nm.Status,
		JoinedDate: core.FormatDate(NowFunc()),
	}
	if m.Status == "" {
		m.Status = StatusActive
	}
	return svc.repo.CreateMember(m)
}
