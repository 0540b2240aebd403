package inmemdb

import (
	"github.com/newlifekgl/cellhub/core/cell"
)

type cellRepository struct {
	db *cellTable
}

func NewCellRepository(db *DB) cell.Repository {
	return &cellRepository{db: db.cell}
}

func (repo *cellRepository) CreateCell(c cell.Cell) (cell.Cell, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	c.ID = newID()
	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *cellRepository) QueryAllCells() ([]cell.Cell, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	cells := make([]cell.Cell, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		cells = append(cells, *c)
	}
	return cells, nil
}

func (repo *cellRepository) GetCellByID(id string) (cell.Cell, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return cell.Cell{}, cell.ErrNotFound
}

func (repo *cellRepository) UpdateCellLeader(cellID, leaderID, leaderName string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	c, ok := repo.db.table[cellID]
	if !ok {
		return cell.ErrNotFound
	}
	c.LeaderID = leaderID
	c.LeaderName = leaderName
	return nil
}
