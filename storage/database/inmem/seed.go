package inmemdb

import (
	"time"

	"github.com/pkg/errors"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/attendance"
	"github.com/newlifekgl/cellhub/core/cell"
	"github.com/newlifekgl/cellhub/core/member"
	"github.com/newlifekgl/cellhub/core/resource"
	"github.com/newlifekgl/cellhub/core/user"
)

const seedPassword = "password123" // dev only

// Seed loads the reference New Life (Kigali) dataset so a dev API boots
// usable. It is a no-op when users already exist.
func Seed(db *DB) error {
	users := NewUserRepository(db)
	cells := NewCellRepository(db)
	members := NewMemberRepository(db)
	records := NewAttendanceRepository(db)
	resources := NewResourceRepository(db)

	if existing, err := users.QueryAllUsers(); err != nil {
		return err
	} else if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	seedUser := func(name, email, role string) (user.User, error) {
		usr := user.User{Name: name, Email: email, Role: role, CreatedAt: now, UpdatedAt: now}
		if err := usr.SetPassword(seedPassword); err != nil {
			return user.User{}, err
		}
		return users.CreateUser(usr)
	}

	admin, err := seedUser("Pastor Gatera", "admin@newlife.org", user.RoleAdmin)
	if err != nil {
		return errors.Wrap(err, "seeding admin")
	}
	uwase, err := seedUser("Uwase Claudine", "uwase@newlife.org", user.RoleLeader)
	if err != nil {
		return errors.Wrap(err, "seeding leader")
	}
	mugabo, err := seedUser("Mugabo Jean", "mugabo@newlife.org", user.RoleLeader)
	if err != nil {
		return errors.Wrap(err, "seeding leader")
	}
	grace, err := seedUser("Iribagiza Grace", "grace@newlife.org", user.RoleLeader)
	if err != nil {
		return errors.Wrap(err, "seeding leader")
	}

	seedCell := func(name string, leader user.User, location, day string) (cell.Cell, error) {
		c, err := cells.CreateCell(cell.Cell{
			Name: name, LeaderID: leader.ID, LeaderName: leader.Name,
			Location: location, MeetingDay: day,
		})
		if err != nil {
			return cell.Cell{}, err
		}
		return c, users.SetUserCell(leader.ID, c.ID)
	}

	kabeza, err := seedCell("Kabeza Cell", uwase, "Kabeza Near Market", "Wednesday")
	if err != nil {
		return errors.Wrap(err, "seeding cell")
	}
	kanombe, err := seedCell("Kanombe Cell", mugabo, "Kanombe EFOTEC", "Wednesday")
	if err != nil {
		return errors.Wrap(err, "seeding cell")
	}
	kicukiro, err := seedCell("Kicukiro Cell", grace, "Kicukiro Centre", "Thursday")
	if err != nil {
		return errors.Wrap(err, "seeding cell")
	}

	// recent session dates keep the dashboards and follow-up list alive
	lastWeek := core.FormatDate(now.AddDate(0, 0, -7))
	twoWeeksAgo := core.FormatDate(now.AddDate(0, 0, -14))

	seedMember := func(m member.Member) (member.Member, error) {
		return members.CreateMember(m)
	}
	keza, err := seedMember(member.Member{
		FullName: "Keza Sandrine", Phone: "0788123456", Gender: "Female", AgeRange: "25-35",
		Address: "Kabeza", CellID: kabeza.ID, Status: member.StatusActive, JoinedDate: "2023-01-15",
	})
	if err != nil {
		return errors.Wrap(err, "seeding member")
	}
	eric, err := seedMember(member.Member{
		FullName: "Nshimiyimana Eric", Phone: "0788654321", Gender: "Male", AgeRange: "36-45",
		Address: "Samuduha", CellID: kabeza.ID, Status: member.StatusActive, JoinedDate: "2023-02-10",
	})
	if err != nil {
		return errors.Wrap(err, "seeding member")
	}
	mutoni, err := seedMember(member.Member{
		FullName: "Mutoni Alice", Phone: "0788111222", Gender: "Female", AgeRange: "18-24",
		Address: "Kanombe", CellID: kanombe.ID, Status: member.StatusActive, JoinedDate: "2023-03-05",
	})
	if err != nil {
		return errors.Wrap(err, "seeding member")
	}
	gasana, err := seedMember(member.Member{
		FullName: "Gasana Patrick", Phone: "0788333444", Gender: "Male", AgeRange: "25-35",
		Address: "Busanza", CellID: kanombe.ID, Status: member.StatusInactive, JoinedDate: "2023-01-20",
		LastAttendedDate: "2023-08-15",
	})
	if err != nil {
		return errors.Wrap(err, "seeding member")
	}
	if _, err := seedMember(member.Member{
		FullName: "Uwamahoro Sarah", Phone: "0788555666", Gender: "Female", AgeRange: "25-35",
		Address: "Kicukiro", CellID: kicukiro.ID, Status: member.StatusActive, JoinedDate: "2023-06-01",
	}); err != nil {
		return errors.Wrap(err, "seeding member")
	}

	registers := [][]attendance.Record{
		{
			{Date: lastWeek, CellID: kabeza.ID, MemberID: keza.ID, Status: attendance.StatusPresent},
			{Date: lastWeek, CellID: kabeza.ID, MemberID: eric.ID, Status: attendance.StatusAbsent, Notes: "Traveling to Musanze"},
		},
		{
			{Date: twoWeeksAgo, CellID: kabeza.ID, MemberID: keza.ID, Status: attendance.StatusPresent},
			{Date: twoWeeksAgo, CellID: kabeza.ID, MemberID: eric.ID, Status: attendance.StatusPresent},
		},
		{
			{Date: lastWeek, CellID: kanombe.ID, MemberID: mutoni.ID, Status: attendance.StatusPresent},
			{Date: lastWeek, CellID: kanombe.ID, MemberID: gasana.ID, Status: attendance.StatusAbsent},
		},
	}
	for _, reg := range registers {
		if err := records.ReplaceDayRecords(reg[0].CellID, reg[0].Date, reg); err != nil {
			return errors.Wrap(err, "seeding attendance")
		}
		for _, rec := range reg {
			if rec.Status != attendance.StatusPresent {
				continue
			}
			if err := members.AdvanceLastAttended(rec.MemberID, rec.Date); err != nil {
				return errors.Wrap(err, "seeding last attended")
			}
		}
	}

	seedMaterials := []resource.Material{
		{Title: "Week 1: Foundations of Faith", Description: "Study guide for cell groups regarding the new sermon series.", Type: resource.MaterialPDF, Date: "2023-11-01", URL: "#"},
		{Title: "Sunday Recap: The Holy Spirit", Description: "Discussion questions from last Sunday service.", Type: resource.MaterialText, Date: "2023-11-08", URL: "#"},
		{Title: "Worship Highlights", Description: "Video from Sunday.", Type: resource.MaterialVideo, Date: "2023-11-05", URL: "#"},
	}
	for _, m := range seedMaterials {
		if _, err := resources.CreateMaterial(m); err != nil {
			return errors.Wrap(err, "seeding material")
		}
	}

	seedAnnouncements := []resource.Announcement{
		{
			Title:    "One Service This Sunday",
			Content:  "Important: This Sunday we will have a combined service starting at 9:00 AM. Please inform all cell members.",
			Date:     core.FormatDate(now),
			Priority: resource.PriorityHigh,
			Author:   admin.Name,
		},
		{
			Title:    "Cell Leader Training",
			Content:  "All leaders are requested to attend a brief training next Saturday at the main campus.",
			Date:     core.FormatDate(now.AddDate(0, 0, -4)),
			Priority: resource.PriorityNormal,
			Author:   admin.Name,
		},
	}
	for _, a := range seedAnnouncements {
		if _, err := resources.CreateAnnouncement(a); err != nil {
			return errors.Wrap(err, "seeding announcement")
		}
	}
	return nil
}
