package inmemdb

import (
	"sync"

	"github.com/google/uuid"

	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/cell"
	"github.com/newlifekgl/cellhub/core/member"
	"github.com/newlifekgl/cellhub/core/resource"
	"github.com/newlifekgl/cellhub/core/user"
)

type (
	DB struct {
		user       *userTable
		cell       *cellTable
		member     *memberTable
		attendance *attendanceTable
		resource   *resourceTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	cellTable struct {
		sync.RWMutex
		table map[string]*cell.Cell
	}

	memberTable struct {
		sync.RWMutex
		table map[string]*member.Member
	}

	// records are scanned by cell/member/date anyway; a slice keeps the
	// delete-then-insert of a day's register a single operation under one lock
	attendanceTable struct {
		sync.RWMutex
		table []*attendance.Record
	}

	resourceTable struct {
		sync.RWMutex
		materials     map[string]*resource.Material
		announcements map[string]*resource.Announcement
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		cell:       &cellTable{table: make(map[string]*cell.Cell)},
		member:     &memberTable{table: make(map[string]*member.Member)},
		attendance: &attendanceTable{},
		resource: &resourceTable{
			materials:     make(map[string]*resource.Material),
			announcements: make(map[string]*resource.Announcement),
		},
	}
	return db, nil
}

func newID() string {
	return uuid.New().String()
}
