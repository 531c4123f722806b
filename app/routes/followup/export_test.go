package followup

import (
	"testing"
	"time"

	"github.com/taha1545/school-mangment-system/app/models"
)

func TestBuildFollowUpWorkbook(t *testing.T) {
	events := []*models.FollowUpEvent{
		{
			Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			Teacher:   "Ali Ahmed",
			EventType: models.FollowUpAbsence,
			Subject:   "Math",
			HourLabel: "8h",
			Note:      "sick leave",
		},
	}

	file, err := buildFollowUpWorkbook(events)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := file.GetRows(exportSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	for i, want := range exportHeaders {
		if rows[0][i] != want {
			t.Errorf("header column %d = %q, want %q", i, rows[0][i], want)
		}
	}
	want := []string{"2026-09-07", "Ali Ahmed", "absence", "Math", "8h", "sick leave"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Errorf("row column %d = %q, want %q", i, rows[1][i], v)
		}
	}
}

func TestBuildFollowUpWorkbookEmpty(t *testing.T) {
	file, err := buildFollowUpWorkbook(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := file.GetRows(exportSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
}
