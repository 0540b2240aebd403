package attendance

import (
	"errors"
	"fmt"
	"sort"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/newlifekgl/cellhub/core"
	"github.com/newlifekgl/cellhub/core/cell"
	"github.com/newlifekgl/cellhub/core/member"
	"github.com/newlifekgl/cellhub/core/user"
)

var (
	NowFunc = time.Now // mockable

	// errors
	errEmptyRegister   = errors.New("a register needs at least one record")
	errMixedRegister   = errors.New("all records must share the same cell and date")
	errDuplicateMember = errors.New("a register may mark each member only once")
)

// follow-up candidates whose last attendance (or join date) is unknown to the
// UI get this marker instead of a date.
const neverAttended = "Never"

type (
	Repository interface {
		QueryAllRecords() ([]Record, error)
		QueryRecordsByCell(cellID string) ([]Record, error)
		QueryRecordsByMember(memberID string) ([]Record, error)
		QueryRecordsForDay(cellID, date string) ([]Record, error)
		// ReplaceDayRecords atomically deletes every record for
		// (cellID, date) and inserts the given ones: no observer ever sees
		// duplicate or partial records for that key.
		ReplaceDayRecords(cellID, date string, records []Record) error
	}

	Service struct {
		repo    Repository
		members member.Repository
		cells   cell.Repository
	}
)

func NewService(repo Repository, members member.Repository, cells cell.Repository) *Service {
	return &Service{repo: repo, members: members, cells: cells}
}

// ForDay returns one cell's register for one date; empty if none was taken.
func (svc *Service) ForDay(cellID, date string) ([]Record, error) {
	return svc.repo.QueryRecordsForDay(cellID, date)
}

// Save replaces the (cell, date) register with the given records and advances
// the last-attended cache of every member marked PRESENT.
func (svc *Service) Save(records []Record) error {
	if len(records) == 0 {
		return core.NewValidationError(errEmptyRegister)
	}
	cellID, date := records[0].CellID, records[0].Date
	seen := make(map[string]struct{}, len(records))
	for i := range records {
		if err := core.Validate.Struct(&records[i]); err != nil {
			return err
		}
		if records[i].CellID != cellID || records[i].Date != date {
			return core.NewValidationError(errMixedRegister,
				core.FieldError{Field: fmt.Sprintf("records[%d]", i), Error: errMixedRegister.Error()})
		}
		// (cell, member, date) is the store's natural key
		if _, ok := seen[records[i].MemberID]; ok {
			return core.NewValidationError(errDuplicateMember,
				core.FieldError{Field: fmt.Sprintf("records[%d]", i), Error: errDuplicateMember.Error()})
		}
		seen[records[i].MemberID] = struct{}{}
	}

	if err := svc.repo.ReplaceDayRecords(cellID, date, records); err != nil {
		return pkgerrors.Wrap(err, "replacing day records")
	}

	for _, rec := range records {
		if rec.Status != StatusPresent {
			continue
		}
		if err := svc.members.AdvanceLastAttended(rec.MemberID, rec.Date); err != nil {
			// a register may reference a member meanwhile removed; skip it
			if err == member.ErrNotFound {
				continue
			}
			return pkgerrors.Wrap(err, "advancing last attended")
		}
	}
	return nil
}

// MemberHistory returns a member's records, most recent first.
func (svc *Service) MemberHistory(memberID string) ([]Record, error) {
	records, err := svc.repo.QueryRecordsByMember(memberID)
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	return records, nil
}

// SessionLog summarizes every session a cell has held, most recent first.
// A date appears the instant any record is saved against it.
func (svc *Service) SessionLog(cellID string) ([]SessionSummary, error) {
	records, err := svc.repo.QueryRecordsByCell(cellID)
	if err != nil {
		return nil, err
	}
	log := summarize(records)
	sort.Slice(log, func(i, j int) bool { return log[i].Date > log[j].Date })
	return log, nil
}

// Overview reports, for every cell, its member count and the counts of its
// most recent session. EXCUSED is not surfaced at this granularity.
func (svc *Service) Overview() ([]CellOverview, error) {
	cells, err := svc.cells.QueryAllCells()
	if err != nil {
		return nil, err
	}

	overviews := make([]CellOverview, 0, len(cells))
	for _, c := range cells {
		members, err := svc.members.QueryMembersByCell(c.ID)
		if err != nil {
			return nil, err
		}
		records, err := svc.repo.QueryRecordsByCell(c.ID)
		if err != nil {
			return nil, err
		}

		ov := CellOverview{
			CellID:       c.ID,
			CellName:     c.Name,
			LeaderName:   c.LeaderName,
			TotalMembers: len(members),
		}
		for _, rec := range records {
			if rec.Date > ov.LastSessionDate {
				ov.LastSessionDate = rec.Date
			}
		}
		if ov.LastSessionDate != "" {
			for _, rec := range records {
				if rec.Date != ov.LastSessionDate {
					continue
				}
				switch rec.Status {
				case StatusPresent:
					ov.LastSessionPresent++
				case StatusAbsent:
					ov.LastSessionAbsent++
				}
			}
		}
		overviews = append(overviews, ov)
	}
	return overviews, nil
}

// FollowUps lists the ACTIVE members in the requesting user's scope (all
// cells for ADMIN, own cell for LEADER) who have not attended for strictly
// more than the configured threshold of whole calendar days. A member present
// exactly at the threshold is not flagged. Members with no attendance yet are
// measured from their join date.
func (svc *Service) FollowUps(usr user.User) ([]FollowUpTask, error) {
	var candidates []member.Member
	var err error
	if usr.IsAdmin() {
		candidates, err = svc.members.QueryAllMembers()
	} else {
		candidates, err = svc.members.QueryMembersByCell(usr.CellID)
	}
	if err != nil {
		return nil, err
	}

	now := NowFunc()
	threshold := core.Conf.FollowUpThresholdDays
	cellNames := make(map[string]string)

	tasks := make([]FollowUpTask, 0)
	for _, m := range candidates {
		if m.Status != member.StatusActive {
			continue
		}
		ref := m.LastAttendedDate
		if ref == "" {
			ref = m.JoinedDate
		}
		days, err := core.DaysSince(ref, now)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "parsing reference date of member %s", m.ID)
		}
		if days <= threshold {
			continue
		}

		name, ok := cellNames[m.CellID]
		if !ok {
			if c, err := svc.cells.GetCellByID(m.CellID); err == nil {
				name = c.Name
			} else if err == cell.ErrNotFound {
				name = "Unknown"
			} else {
				return nil, err
			}
			cellNames[m.CellID] = name
		}

		lastAttended := m.LastAttendedDate
		if lastAttended == "" {
			lastAttended = neverAttended
		}
		tasks = append(tasks, FollowUpTask{
			MemberID:     m.ID,
			Name:         m.FullName,
			Phone:        m.Phone,
			Address:      m.Address,
			CellName:     name,
			LastAttended: lastAttended,
			DaysSince:    days,
		})
	}
	return tasks, nil
}

// WeeklyStats computes the church-wide attendance rate over the last four
// 7-day buckets ending today, oldest first.
func (svc *Service) WeeklyStats() ([]WeeklyStat, error) {
	records, err := svc.repo.QueryAllRecords()
	if err != nil {
		return nil, err
	}

	now := NowFunc()
	var present, total [4]int
	for _, rec := range records {
		days, err := core.DaysSince(rec.Date, now)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "parsing record date %q", rec.Date)
		}
		if days < 0 || days > 27 {
			continue
		}
		bucket := 3 - days/7
		total[bucket]++
		if rec.Status == StatusPresent {
			present[bucket]++
		}
	}

	labels := [4]string{"3 Weeks Ago", "2 Weeks Ago", "Last Week", "This Week"}
	stats := make([]WeeklyStat, 4)
	for i := range stats {
		stats[i].Label = labels[i]
		if total[i] > 0 {
			stats[i].Attendance = present[i] * 100 / total[i]
		}
	}
	return stats, nil
}

// CellReports scores every cell from its real session history: the average of
// per-session present rates, HEALTHY above the threshold.
func (svc *Service) CellReports() ([]CellReport, error) {
	cells, err := svc.cells.QueryAllCells()
	if err != nil {
		return nil, err
	}

	reports := make([]CellReport, 0, len(cells))
	for _, c := range cells {
		members, err := svc.members.QueryMembersByCell(c.ID)
		if err != nil {
			return nil, err
		}
		records, err := svc.repo.QueryRecordsByCell(c.ID)
		if err != nil {
			return nil, err
		}

		var sum int
		sessions := summarize(records)
		for _, s := range sessions {
			sum += s.Present * 100 / s.Total
		}
		var avg int
		if len(sessions) > 0 {
			avg = sum / len(sessions)
		}

		status := CellNeedsAttention
		if avg > healthyThreshold {
			status = CellHealthy
		}
		reports = append(reports, CellReport{
			CellID:        c.ID,
			CellName:      c.Name,
			LeaderName:    c.LeaderName,
			MemberCount:   len(members),
			AvgAttendance: avg,
			Status:        status,
		})
	}
	return reports, nil
}

// summarize groups records into one SessionSummary per distinct date.
func summarize(records []Record) []SessionSummary {
	byDate := make(map[string]*SessionSummary)
	for _, rec := range records {
		s, ok := byDate[rec.Date]
		if !ok {
			s = &SessionSummary{Date: rec.Date}
			byDate[rec.Date] = s
		}
		switch rec.Status {
		case StatusPresent:
			s.Present++
		case StatusAbsent:
			s.Absent++
		case StatusExcused:
			s.Excused++
		}
		s.Total++
	}

	summaries := make([]SessionSummary, 0, len(byDate))
	for _, s := range byDate {
		summaries = append(summaries, *s)
	}
	return summaries
}
