package inmemdb

import (
	"github.com/newlifekgl/cellhub/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Record, 0, len(repo.db.table))
	for _, rec := range repo.db.table {
		records = append(records, *rec)
	}
	return records, nil
}

func (repo *attendanceRepository) QueryRecordsByCell(cellID string) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Record, 0)
	for _, rec := range repo.db.table {
		if rec.CellID == cellID {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) QueryRecordsByMember(memberID string) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Record, 0)
	for _, rec := range repo.db.table {
		if rec.MemberID == memberID {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) QueryRecordsForDay(cellID, date string) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Record, 0)
	for _, rec := range repo.db.table {
		if rec.CellID == cellID && rec.Date == date {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// ReplaceDayRecords holds the table's write lock across the whole
// delete-then-insert, so saves for the same (cell, date) key cannot
// interleave and readers never see a partial register.
func (repo *attendanceRepository) ReplaceDayRecords(cellID, date string, records []attendance.Record) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	kept := repo.db.table[:0]
	for _, rec := range repo.db.table {
		if !(rec.CellID == cellID && rec.Date == date) {
			kept = append(kept, rec)
		}
	}
	repo.db.table = kept

	for i := range records {
		rec := records[i]
		if rec.ID == "" {
			rec.ID = newID()
		}
		repo.db.table = append(repo.db.table, &rec)
	}
	return nil
}
