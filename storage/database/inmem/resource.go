package inmemdb

import (
	"github.com/newlifekgl/cellhub/core/resource"
)

type resourceRepository struct {
	db *resourceTable
}

func NewResourceRepository(db *DB) resource.Repository {
	return &resourceRepository{db: db.resource}
}

func (repo *resourceRepository) CreateMaterial(m resource.Material) (resource.Material, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	m.ID = newID()
	repo.db.materials[m.ID] = &m
	return m, nil
}

func (repo *resourceRepository) QueryAllMaterials() ([]resource.Material, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	materials := make([]resource.Material, 0, len(repo.db.materials))
	for _, m := range repo.db.materials {
		materials = append(materials, *m)
	}
	return materials, nil
}

func (repo *resourceRepository) CreateAnnouncement(a resource.Announcement) (resource.Announcement, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	a.ID = newID()
	repo.db.announcements[a.ID] = &a
	return a, nil
}

func (repo *resourceRepository) QueryAllAnnouncements() ([]resource.Announcement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	announcements := make([]resource.Announcement, 0, len(repo.db.announcements))
	for _, a := range repo.db.announcements {
		announcements = append(announcements, *a)
	}
	return announcements, nil
}
