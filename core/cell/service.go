package cell

import (
	"errors"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/user"
)

var (
	// errors
	ErrNotFound   = errors.New("cell not found")
	ErrLeaderBusy = errors.New("this user already leads another cell")
)

type (
	Repository interface {
		CreateCell(c Cell) (Cell, error)
		QueryAllCells() ([]Cell, error)
		GetCellByID(id string) (Cell, error)
		UpdateCellLeader(cellID, leaderID, leaderName string) error
	}

	Service struct {
		repo  Repository
		users user.Repository
	}
)

func NewService(repo Repository, users user.Repository) *Service {
	return &Service{repo: repo, users: users}
}

func (svc *Service) QueryAll() ([]Cell, error) {
	return svc.repo.QueryAllCells()
}

func (svc *Service) GetByID(id string) (Cell, error) {
	return svc.repo.GetCellByID(id)
}

// Create adds a cell, caching the leader's name on it and linking the leader
// back to the new cell. A leader already running another cell is rejected.
func (svc *Service) Create(nc NewCell) (Cell, error) {
	c := Cell{
		Name:       nc.Name,
		LeaderName: UnassignedLeaderName,
		Location:   nc.Location,
		MeetingDay: nc.MeetingDay,
	}

	var leader user.User
	if nc.LeaderID != "" {
		var err error
		if leader, err = svc.users.GetUserByID(nc.LeaderID); err != nil {
			if err != user.ErrNotFound {
				return Cell{}, err
			}
		} else {
			if leader.CellID != "" {
				return Cell{}, core.NewValidationError(ErrLeaderBusy,
					core.FieldError{Field: "leader_id", Error: ErrLeaderBusy.Error()})
			}
			c.LeaderID = leader.ID
			c.LeaderName = leader.Name
		}
	}

	created, err := svc.repo.CreateCell(c)
	if err != nil {
		return Cell{}, err
	}
	if c.LeaderID != "" {
		if err := svc.users.SetUserCell(leader.ID, created.ID); err != nil {
			return Cell{}, err
		}
	}
	return created, nil
}

// ReassignLeader hands the cell to a new leader. Any user still linked to the
// cell is unlinked first so that the cell's LeaderID is the only user carrying
// its CellID.
func (svc *Service) ReassignLeader(cellID, leaderID string) error {
	if _, err := svc.repo.GetCellByID(cellID); err != nil {
		return err
	}
	newLeader, err := svc.users.GetUserByID(leaderID)
	if err != nil {
		return err
	}

	if err := svc.repo.UpdateCellLeader(cellID, newLeader.ID, newLeader.Name); err != nil {
		return err
	}

	// demote whoever pointed at this cell before
	prev, err := svc.users.QueryUsersByCell(cellID)
	if err != nil {
		return err
	}
	for _, usr := range prev {
		if err := svc.users.SetUserCell(usr.ID, ""); err != nil {
			return err
		}
	}
	return svc.users.SetUserCell(newLeader.ID, cellID)
}
