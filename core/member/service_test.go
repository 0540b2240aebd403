package member_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newlifekgl/cellhub/core/member"
	"github.com/newlifekgl/cellhub/storage/database/inmem"
)

func setup(t *testing.T) *member.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	return member.NewService(inmemdb.NewMemberRepository(db))
}

func Test_Create_defaults(t *testing.T) {
	svc := setup(t)

	orig := member.NowFunc
	member.NowFunc = func() time.Time { return time.Date(2024, time.January, 3, 15, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { member.NowFunc = orig })

	m, err := svc.Create(member.NewMember{
		FullName: "Keza Sandrine", Phone: "0788123456", Gender: "Female",
		AgeRange: "25-35", Address: "Kabeza", CellID: "c1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, member.StatusActive, m.Status)
	assert.Equal(t, "2024-01-03", m.JoinedDate)
	assert.Empty(t, m.LastAttendedDate)
}

func Test_Query(t *testing.T) {
	svc := setup(t)

	for _, nm := range []member.NewMember{
		{FullName: "Keza Sandrine", Phone: "0788123456", Gender: "Female", AgeRange: "25-35", CellID: "c1"},
		{FullName: "Nshimiyimana Eric", Phone: "0788654321", Gender: "Male", AgeRange: "36-45", CellID: "c1"},
		{FullName: "Mutoni Alice", Phone: "0788111222", Gender: "Female", AgeRange: "18-24", CellID: "c2"},
	} {
		_, err := svc.Create(nm)
		require.NoError(t, err)
	}

	all, err := svc.Query("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	c1, err := svc.Query("c1")
	require.NoError(t, err)
	assert.Len(t, c1, 2)

	none, err := svc.Query("nope")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func Test_NewMember_Validate(t *testing.T) {
	nm := member.NewMember{FullName: "  Keza Sandrine ", Phone: "0788123456", Gender: "Female", AgeRange: "25-35", CellID: "c1"}
	require.NoError(t, nm.Validate())
	assert.Equal(t, "Keza Sandrine", nm.FullName)

	bad := member.NewMember{Phone: "0788123456", Gender: "Other", AgeRange: "25-35", CellID: "c1"}
	assert.Error(t, bad.Validate())
}
