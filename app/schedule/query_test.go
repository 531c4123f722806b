package schedule

import (
	"testing"
	"time"

	"github.com/taha1545/school-mangment-system/app/models"
)

func intPtr(v int) *int { return &v }

// 2026-08-31 is a Monday.
var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestSessionsUnknownTeacher(t *testing.T) {
	ix := NewIndex()
	if sessions, ok := ix.SessionsForTeacherOnDate("Nobody", monday); ok {
		t.Fatalf("expected absent result for unknown teacher, got %v", sessions)
	}
}

func TestSessionsKnownTeacherNoSessionsThatDay(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: intPtr(1), StartHour: intPtr(8), Duration: 1, Subject: "Math"},
	}
	sessions, ok := ix.SessionsForTeacherOnDate("Ali", monday)
	if !ok {
		t.Fatal("known teacher must not be reported absent")
	}
	if sessions == nil || len(sessions) != 0 {
		t.Fatalf("expected empty slice, got %v", sessions)
	}
}

func TestSessionsDurationExpansion(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: intPtr(0), StartHour: intPtr(8), Duration: 3, Subject: "Math", Room: "101", Class: "4M1"},
	}
	sessions, ok := ix.SessionsForTeacherOnDate("Ali", monday)
	if !ok || len(sessions) != 3 {
		t.Fatalf("expected 3 expanded hours, got %v", sessions)
	}
	for i, want := range []int{8, 9, 10} {
		if sessions[i].StartHour != want {
			t.Errorf("session %d hour = %d, want %d", i, sessions[i].StartHour, want)
		}
		if sessions[i].Subject != "Math" || sessions[i].Room != "101" || sessions[i].Class != "4M1" {
			t.Errorf("session %d fields: %+v", i, sessions[i])
		}
	}
}

func TestSessionsSchoolDayWindow(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: intPtr(0), StartHour: intPtr(19), Duration: 4, Subject: "Math"},
		{Weekday: intPtr(0), StartHour: intPtr(5), Duration: 2, Subject: "Math"},
	}
	sessions, _ := ix.SessionsForTeacherOnDate("Ali", monday)
	// 19,20 kept; 21,22 and 5,6 outside 8..20
	if len(sessions) != 2 || sessions[0].StartHour != 19 || sessions[1].StartHour != 20 {
		t.Fatalf("unexpected sessions: %v", sessions)
	}
}

func TestSessionsUnknownWeekdayMatchesAnyDate(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: nil, StartHour: intPtr(9), Duration: 1, Subject: "Math"},
	}
	sessions, _ := ix.SessionsForTeacherOnDate("Ali", monday)
	if len(sessions) != 1 || sessions[0].StartHour != 9 {
		t.Fatalf("activity with unknown weekday should match every date: %v", sessions)
	}
}

func TestSessionsUnknownHourSkipped(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: intPtr(0), StartHour: nil, Duration: 1, Subject: "Math"},
	}
	sessions, ok := ix.SessionsForTeacherOnDate("Ali", monday)
	if !ok || len(sessions) != 0 {
		t.Fatalf("activities without an hour contribute nothing: %v", sessions)
	}
}

func TestSessionsDuplicateHourLastWins(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: intPtr(0), StartHour: intPtr(10), Duration: 1, Subject: "Math", Room: "101"},
		{Weekday: intPtr(0), StartHour: intPtr(10), Duration: 1, Subject: "Physics", Room: "Lab"},
	}
	sessions, _ := ix.SessionsForTeacherOnDate("Ali", monday)
	if len(sessions) != 1 {
		t.Fatalf("expected hour-keyed dedupe, got %v", sessions)
	}
	if sessions[0].Subject != "Physics" || sessions[0].Room != "Lab" {
		t.Fatalf("last activity for the hour should win: %+v", sessions[0])
	}
}

func TestSessionsSortedAscending(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: intPtr(0), StartHour: intPtr(15), Duration: 1, Subject: "A"},
		{Weekday: intPtr(0), StartHour: intPtr(8), Duration: 1, Subject: "B"},
		{Weekday: intPtr(0), StartHour: intPtr(11), Duration: 1, Subject: "C"},
	}
	sessions, _ := ix.SessionsForTeacherOnDate("Ali", monday)
	want := []int{8, 11, 15}
	for i, h := range want {
		if sessions[i].StartHour != h {
			t.Fatalf("sessions not sorted: %v", sessions)
		}
	}
}

func TestSessionsZeroDurationTreatedAsOne(t *testing.T) {
	ix := NewIndex()
	ix.TeacherActivities["Ali"] = []models.Activity{
		{Weekday: intPtr(0), StartHour: intPtr(9), Duration: 0, Subject: "Math"},
	}
	sessions, _ := ix.SessionsForTeacherOnDate("Ali", monday)
	if len(sessions) != 1 || sessions[0].StartHour != 9 {
		t.Fatalf("zero duration should still occupy one hour: %v", sessions)
	}
}
