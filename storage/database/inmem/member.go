package inmemdb

import (
	"github.com/newlifekgl/cellhub/core/member"
)

type memberRepository struct {
	db *memberTable
}

func NewMemberRepository(db *DB) member.Repository {
	return &memberRepository{db: db.member}
}

func (repo *memberRepository) CreateMember(m member.Member) (member.Member, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	m.ID = newID()
	repo.db.table[m.ID] = &m
	return m, nil
}

func (repo *memberRepository) QueryAllMembers() ([]member.Member, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	members := make([]member.Member, 0, len(repo.db.table))
	for _, m := range repo.db.table {
		members = append(members, *m)
	}
	return members, nil
}

func (repo *memberRepository) QueryMembersByCell(cellID string) ([]member.Member, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	members := make([]member.Member, 0)
	for _, m := range repo.db.table {
		if m.CellID == cellID {
			members = append(members, *m)
		}
	}
	return members, nil
}

func (repo *memberRepository) GetMemberByID(id string) (member.Member, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if m, ok := repo.db.table[id]; ok {
		return *m, nil
	}
	return member.Member{}, member.ErrNotFound
}

func (repo *memberRepository) AdvanceLastAttended(memberID, date string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	m, ok := repo.db.table[memberID]
	if !ok {
		return member.ErrNotFound
	}
	// calendar date strings order lexicographically; never regress the cache
	if m.LastAttendedDate == "" || date > m.LastAttendedDate {
		m.LastAttendedDate = date
	}
	return nil
}
