package resource

import (
	"net/mail"
	"sort"
	"time"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/user"
)

var NowFunc = time.Now // mockable

type (
	Repository interface {
		CreateMaterial(m Material) (Material, error)
		QueryAllMaterials() ([]Material, error)
		CreateAnnouncement(a Announcement) (Announcement, error)
		QueryAllAnnouncements() ([]Announcement, error)
	}

	Service struct {
		repo  Repository
		users user.Repository
		mail  core.EmailService
	}
)

func NewService(repo Repository, users user.Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, users: users, mail: mailSvc}
}

// QueryMaterials returns study materials, newest release first.
func (svc *Service) QueryMaterials() ([]Material, error) {
	materials, err := svc.repo.QueryAllMaterials()
	if err != nil {
		return nil, err
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].Date > materials[j].Date })
	return materials, nil
}

func (svc *Service) AddMaterial(nm NewMaterial) (Material, error) {
	return svc.repo.CreateMaterial(Material{
		Title:       nm.Title,
		Description: nm.Description,
		Type:        nm.Type,
		Date:        nm.Date,
		URL:         nm.URL,
	})
}

// QueryAnnouncements returns announcements, newest first.
func (svc *Service) QueryAnnouncements() ([]Announcement, error) {
	announcements, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}
	sort.Slice(announcements, func(i, j int) bool { return announcements[i].Date > announcements[j].Date })
	return announcements, nil
}

// AddAnnouncement posts an announcement; HIGH priority ones are also mailed
// to every cell leader so members hear about them before the next meeting.
func (svc *Service) AddAnnouncement(na NewAnnouncement) (Announcement, error) {
	ann, err := svc.repo.CreateAnnouncement(Announcement{
		Title:    na.Title,
		Content:  na.Content,
		Date:     core.FormatDate(NowFunc()),
		Priority: na.Priority,
		Author:   na.Author,
	})
	if err != nil {
		return Announcement{}, err
	}

	if ann.Priority == PriorityHigh {
		leaders, err := svc.users.QueryUsersByRole(user.RoleLeader)
		if err != nil {
			return Announcement{}, err
		}
		to := make([]mail.Address, 0, len(leaders))
		for _, l := range leaders {
			to = append(to, mail.Address{Name: l.Name, Address: l.Email})
		}
		svc.mail.SendMessages(&core.EmailMessage{
			To:      to,
			Subject: ann.Title,
			Body:    ann.Content,
		})
	}
	return ann, nil
}
