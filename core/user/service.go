package user

import (
	"errors"
	"time"

	"github.com/newlifekgl/cellhub/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(email string, excludedUsers ...User) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id string) (User, error)
		GetUserByEmail(email string) (User, error)
		QueryUsersByRole(role string) ([]User, error)
		QueryUsersByCell(cellID string) ([]User, error)
		// UpdateUser only saves set fields.
		UpdateUser(usr User) (User, error)
		// SetUserCell updates the leader/cell link; an empty cellID unlinks.
		SetUserCell(id, cellID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckEmailUniqueness(email string, exclUsers ...User) error {
	if err := svc.repo.CheckEmailUniqueness(email, exclUsers...); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		Name:      nu.Name,
		Email:     nu.Email,
		Role:      nu.Role,
		CellID:    nu.CellID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if usr.IsAdmin() {
		usr.CellID = ""
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) QueryLeaders() ([]User, error) {
	return svc.repo.QueryUsersByRole(RoleLeader)
}

func (svc *Service) Update(id string, uu UpdateUser) (User, error) {
	usr := User{
		ID:        id,
		Name:      uu.Name,
		Email:     uu.Email,
		Role:      uu.Role,
		UpdatedAt: time.Now().UTC(),
	}
	if uu.Password != "" {
		if err := usr.SetPassword(uu.Password); err != nil {
			return User{}, err
		}
	}
	updated, err := svc.repo.UpdateUser(usr)
	if err != nil {
		return User{}, err
	}
	// a promotion to ADMIN drops any cell the user used to lead
	if updated.IsAdmin() && updated.CellID != "" {
		if err := svc.repo.SetUserCell(id, ""); err != nil {
			return User{}, err
		}
		updated.CellID = ""
	}
	return updated, nil
}
