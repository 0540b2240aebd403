package cell_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/cell"
	"github.com/newlifekgl/cellhub/core/user"
	"github.com/newlifekgl/cellhub/storage/database/inmem"
)

type fixture struct {
	svc   *cell.Service
	users user.Repository
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	users := inmemdb.NewUserRepository(db)
	return &fixture{
		svc:   cell.NewService(inmemdb.NewCellRepository(db), users),
		users: users,
	}
}

func (f *fixture) createLeader(t *testing.T, name string) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr, err := f.users.CreateUser(user.User{
		Name: name, Email: core.CleanString(name, true) + "@newlife.org",
		Role: user.RoleLeader, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	return usr
}

func Test_Create(t *testing.T) {
	f := setup(t)
	leader := f.createLeader(t, "Uwase")

	c, err := f.svc.Create(cell.NewCell{Name: "Kabeza Cell", LeaderID: leader.ID, Location: "Kabeza", MeetingDay: "Wednesday"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, leader.ID, c.LeaderID)
	assert.Equal(t, "Uwase", c.LeaderName)

	// the leader is linked back to the new cell
	usr, err := f.users.GetUserByID(leader.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, usr.CellID)
}

func Test_Create_withoutLeader(t *testing.T) {
	f := setup(t)

	c, err := f.svc.Create(cell.NewCell{Name: "Kanombe Cell", Location: "Kanombe", MeetingDay: "Wednesday"})
	require.NoError(t, err)
	assert.Empty(t, c.LeaderID)
	assert.Equal(t, cell.UnassignedLeaderName, c.LeaderName)
}

func Test_Create_unknownLeaderIsUnassigned(t *testing.T) {
	f := setup(t)

	c, err := f.svc.Create(cell.NewCell{Name: "Kanombe Cell", LeaderID: "nope", Location: "Kanombe", MeetingDay: "Wednesday"})
	require.NoError(t, err)
	assert.Empty(t, c.LeaderID)
	assert.Equal(t, cell.UnassignedLeaderName, c.LeaderName)
}

func Test_Create_rejectsBusyLeader(t *testing.T) {
	f := setup(t)
	leader := f.createLeader(t, "Uwase")

	_, err := f.svc.Create(cell.NewCell{Name: "Kabeza Cell", LeaderID: leader.ID, Location: "Kabeza", MeetingDay: "Wednesday"})
	require.NoError(t, err)

	_, err = f.svc.Create(cell.NewCell{Name: "Kanombe Cell", LeaderID: leader.ID, Location: "Kanombe", MeetingDay: "Wednesday"})
	if _, ok := err.(*core.ValidationError); !ok {
		t.Errorf("Create() error = %v; want *core.ValidationError", err)
	}
}

func Test_ReassignLeader(t *testing.T) {
	f := setup(t)
	uwase := f.createLeader(t, "Uwase")
	mugabo := f.createLeader(t, "Mugabo")

	c, err := f.svc.Create(cell.NewCell{Name: "Kabeza Cell", LeaderID: uwase.ID, Location: "Kabeza", MeetingDay: "Wednesday"})
	require.NoError(t, err)

	require.NoError(t, f.svc.ReassignLeader(c.ID, mugabo.ID))

	// the cell's cached leader fields moved to the new leader
	got, err := f.svc.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, mugabo.ID, got.LeaderID)
	assert.Equal(t, "Mugabo", got.LeaderName)

	// exactly one user points at the cell, and it is the new leader
	linked, err := f.users.QueryUsersByCell(c.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, mugabo.ID, linked[0].ID)

	// the previous leader no longer carries the cell
	prev, err := f.users.GetUserByID(uwase.ID)
	require.NoError(t, err)
	assert.Empty(t, prev.CellID)
}

func Test_ReassignLeader_notFound(t *testing.T) {
	f := setup(t)
	uwase := f.createLeader(t, "Uwase")

	c, err := f.svc.Create(cell.NewCell{Name: "Kabeza Cell", LeaderID: uwase.ID, Location: "Kabeza", MeetingDay: "Wednesday"})
	require.NoError(t, err)

	assert.Equal(t, cell.ErrNotFound, f.svc.ReassignLeader("nope", uwase.ID))
	assert.Equal(t, user.ErrNotFound, f.svc.ReassignLeader(c.ID, "nope"))

	// a failed reassignment leaves leadership untouched
	got, err := f.svc.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, uwase.ID, got.LeaderID)
}
