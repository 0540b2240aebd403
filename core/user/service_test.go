package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/user"
	"github.com/newlifekgl/cellhub/storage/database/inmem"
)

func setup(t *testing.T) *user.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	return user.NewService(inmemdb.NewUserRepository(db))
}

func Test_Create(t *testing.T) {
	svc := setup(t)

	usr, err := svc.Create(user.NewUser{
		Name: "Uwase Claudine", Email: "uwase@newlife.org", Role: user.RoleLeader,
		Password: "password123", PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.True(t, usr.IsLeader())
	assert.NoError(t, usr.CheckPassword("password123"))
	assert.Error(t, usr.CheckPassword("nope"))
}

func Test_Create_adminCarriesNoCell(t *testing.T) {
	svc := setup(t)

	usr, err := svc.Create(user.NewUser{
		Name: "Pastor Gatera", Email: "admin@newlife.org", Role: user.RoleAdmin, CellID: "c1",
		Password: "password123", PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	assert.True(t, usr.IsAdmin())
	assert.Empty(t, usr.CellID)
}

func Test_NewUser_Validate_uniqueEmail(t *testing.T) {
	svc := setup(t)

	nu := user.NewUser{
		Name: "Uwase Claudine", Email: "uwase@newlife.org", Role: user.RoleLeader,
		Password: "password123", PasswordConfirm: "password123",
	}
	require.NoError(t, nu.Validate(svc))
	_, err := svc.Create(nu)
	require.NoError(t, err)

	dup := user.NewUser{
		Name: "Someone Else", Email: "UWASE@newlife.org", Role: user.RoleLeader,
		Password: "password123", PasswordConfirm: "password123",
	}
	err = dup.Validate(svc)
	if _, ok := err.(*core.ValidationError); !ok {
		t.Errorf("Validate() error = %v; want *core.ValidationError", err)
	}
}

func Test_Update_promotionToAdminDropsCell(t *testing.T) {
	svc := setup(t)

	usr, err := svc.Create(user.NewUser{
		Name: "Mugabo Jean", Email: "mugabo@newlife.org", Role: user.RoleLeader, CellID: "c2",
		Password: "password123", PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, "c2", usr.CellID)

	uu := user.UpdateUser{Role: user.RoleAdmin}
	require.NoError(t, uu.Validate(usr, svc))
	updated, err := svc.Update(usr.ID, uu)
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin())
	assert.Empty(t, updated.CellID)

	got, err := svc.GetByID(usr.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CellID)
}

func Test_GetByEmail(t *testing.T) {
	svc := setup(t)

	_, err := svc.Create(user.NewUser{
		Name: "Uwase Claudine", Email: "uwase@newlife.org", Role: user.RoleLeader,
		Password: "password123", PasswordConfirm: "password123",
	})
	require.NoError(t, err)

	usr, err := svc.GetByEmail("  UWASE@newlife.org ")
	require.NoError(t, err)
	assert.Equal(t, "uwase@newlife.org", usr.Email)

	_, err = svc.GetByEmail("nope@newlife.org")
	assert.Equal(t, user.ErrNotFound, err)
}

func Test_QueryLeaders(t *testing.T) {
	svc := setup(t)

	for _, nu := range []user.NewUser{
		{Name: "Pastor Gatera", Email: "admin@newlife.org", Role: user.RoleAdmin, Password: "x", PasswordConfirm: "x"},
		{Name: "Uwase Claudine", Email: "uwase@newlife.org", Role: user.RoleLeader, Password: "x", PasswordConfirm: "x"},
		{Name: "Mugabo Jean", Email: "mugabo@newlife.org", Role: user.RoleLeader, Password: "x", PasswordConfirm: "x"},
	} {
		_, err := svc.Create(nu)
		require.NoError(t, err)
	}

	leaders, err := svc.QueryLeaders()
	require.NoError(t, err)
	assert.Len(t, leaders, 2)
	for _, l := range leaders {
		assert.True(t, l.IsLeader())
	}
}
