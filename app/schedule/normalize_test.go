package schedule

import (
	"reflect"
	"testing"

	"github.com/taha1545/school-mangment-system/app/models"
)

func TestNormalizeTeacherName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ali Ahmed 3", "Ali Ahmed"},
		{"Mohamed", "Mohamed"},
		{"  Ali   Ahmed  ", "Ali Ahmed"},
		{"Ali Ahmed Benali", "Ali Ahmed"},
		{"Ali Ahmed, Mohamed Salah", "Ali Ahmed"},
		{"Ali/Mohamed", "Ali"},
		{"Karim and Samir", "Karim"},
		{"", ""},
		{"   ", ""},
		{"12", ""},
	}
	for _, c := range cases {
		if got := NormalizeTeacherName(c.in); got != c.want {
			t.Errorf("NormalizeTeacherName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitTeachersField(t *testing.T) {
	got := SplitTeachersField("Ali Ahmed 2, Mohamed Salah / Ali Ahmed; Karim")
	want := []string{"Ali Ahmed", "Mohamed Salah", "Karim"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitTeachersField = %v, want %v", got, want)
	}

	if got := SplitTeachersField(""); len(got) != 0 {
		t.Fatalf("expected empty result for empty field, got %v", got)
	}

	// Arabic semicolon and ampersand are separators too
	got = SplitTeachersField("Ali؛ Mohamed & Samir")
	want = []string{"Ali", "Mohamed", "Samir"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitTeachersField = %v, want %v", got, want)
	}
}

func TestSplitTeachersFieldNoDuplicates(t *testing.T) {
	got := SplitTeachersField("Ali 1 | Ali 2 | Ali 3")
	if !reflect.DeepEqual(got, []string{"Ali"}) {
		t.Fatalf("expected duplicates collapsed to [Ali], got %v", got)
	}
}

func TestExtractWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"الاثنين", 0, true},
		{"الإثنين", 0, true},
		{"اثنين", 0, true},
		{"monday", 0, true},
		{"Monday", 0, true},
		{"MON", 0, true},
		{"lundi", 0, true},
		{"الثلاثاء", 1, true},
		{"tuesday", 1, true},
		{"mardi", 1, true},
		{"الجمعة", 4, true},
		{"vendredi", 4, true},
		{"الاحد", 6, true},
		{"dimanche", 6, true},
		{"1", 0, true},
		{"7", 6, true},
		{"0", 0, true},
		{"6", 5, true}, // 1-indexed interpretation wins for the overlap
		{"9", 0, false},
		{"", 0, false},
		{"someday", 0, false},
	}
	for _, c := range cases {
		got, ok := ExtractWeekday(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ExtractWeekday(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestExtractWeekdayContainment(t *testing.T) {
	// an embedded day name is still found by the containment scan
	got, ok := ExtractWeekday("يوم الخميس صباحا")
	if !ok || got != 3 {
		t.Fatalf("expected Thursday (3), got (%d, %v)", got, ok)
	}
}

func TestHourFromField(t *testing.T) {
	cases := []struct {
		in     string
		period models.Period
		want   int
		ok     bool
	}{
		{"2", models.PeriodMorning, 9, true},
		{"2", models.PeriodAfternoon, 15, true},
		{"10", models.PeriodNone, 10, true},
		{"1", models.PeriodMorning, 8, true},
		{"4", models.PeriodMorning, 11, true},
		{"5", models.PeriodMorning, 9, true},  // 8 + 5%4
		{"1", models.PeriodAfternoon, 14, true},
		{"4", models.PeriodAfternoon, 17, true},
		{"6", models.PeriodAfternoon, 16, true}, // 14 + 6%4
		{"1", models.PeriodNone, 8, true},
		{"4", models.PeriodNone, 11, true},
		{"5", models.PeriodNone, 14, true},
		{"8", models.PeriodNone, 17, true}, // 1..8 branch wins the overlap with 8..23
		{"23", models.PeriodNone, 23, true},
		{"25", models.PeriodNone, 9, true}, // 8 + 25%8
		{"0", models.PeriodNone, 8, true},
		{"الساعة 3", models.PeriodNone, 10, true},
		{"", models.PeriodNone, 0, false},
		{"no digits", models.PeriodNone, 0, false},
	}
	for _, c := range cases {
		got, ok := HourFromField(c.in, c.period)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("HourFromField(%q, %q) = (%d, %v), want (%d, %v)",
				c.in, c.period, got, ok, c.want, c.ok)
		}
	}
}

func TestIsRealClass(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"4M1", true},
		{"1M5", true},
		{"4M1_G1", false},
		{"4M1_G2", false},
		{"4M1+استدراك", false},
		{"استدراك", false},
		{"2AS", true}, // permissive fallback for unrecognized labels
		{"", false},
	}
	for _, c := range cases {
		if got := IsRealClass(c.in); got != c.want {
			t.Errorf("IsRealClass(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractMainClass(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4M1_G1", "4M1"},
		{"4M1_G2", "4M1"},
		{"4M1", "4M1"},
		{"2AS", "2AS"},
	}
	for _, c := range cases {
		if got := ExtractMainClass(c.in); got != c.want {
			t.Errorf("ExtractMainClass(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDayPeriod(t *testing.T) {
	if got := DayPeriod("الاثنين ص"); got != models.PeriodMorning {
		t.Fatalf("expected morning, got %q", got)
	}
	if got := DayPeriod("الاثنين م"); got != models.PeriodAfternoon {
		t.Fatalf("expected afternoon, got %q", got)
	}
	if got := DayPeriod("الاثنين"); got != models.PeriodNone {
		t.Fatalf("expected no period, got %q", got)
	}
}

func TestStripPeriodMarker(t *testing.T) {
	if got := StripPeriodMarker("الاثنين ص"); got != "الاثنين" {
		t.Fatalf("expected marker stripped, got %q", got)
	}
	if got := StripPeriodMarker("monday"); got != "monday" {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}
