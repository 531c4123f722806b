package schedule

import (
	"sort"
	"time"

	"github.com/taha1545/school-mangment-system/app/models"
)

// School day window: expanded session hours outside 8..20 are discarded.
const (
	firstSchoolHour = 8
	lastSchoolHour  = 20
)

// SessionsForTeacherOnDate returns the occupied hours for a teacher on a
// concrete date, ascending by hour. ok is false when the teacher does not
// appear in the index at all; a known teacher with no session that weekday
// yields an empty, non-nil slice. Activities with an unknown weekday match
// every date. When several activities occupy the same hour the last one seen
// wins.
func (ix *Index) SessionsForTeacherOnDate(teacher string, date time.Time) ([]models.TeacherSession, bool) {
	activities, ok := ix.TeacherActivities[teacher]
	if !ok {
		return nil, false
	}

	weekday := mondayIndexed(date.Weekday())
	byHour := make(map[int]models.TeacherSession)
	for _, a := range activities {
		if a.StartHour == nil {
			continue
		}
		if a.Weekday != nil && *a.Weekday != weekday {
			continue
		}
		duration := a.Duration
		if duration < 1 {
			duration = 1
		}
		for h := *a.StartHour; h < *a.StartHour+duration; h++ {
			if h >= firstSchoolHour && h <= lastSchoolHour {
				byHour[h] = models.TeacherSession{
					StartHour: h,
					Subject:   a.Subject,
					Room:      a.Room,
					Class:     a.Class,
				}
			}
		}
	}

	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	sessions := make([]models.TeacherSession, 0, len(hours))
	for _, h := range hours {
		sessions = append(sessions, byHour[h])
	}
	return sessions, true
}

// mondayIndexed converts Go's Sunday-first weekday to 0=Monday..6=Sunday.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
