package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/taha1545/school-mangment-system/app/models"
)

var (
	whitespaceRe     = regexp.MustCompile(`\s+`)
	separatorRe      = regexp.MustCompile(`\s*(?:,|/|\+|؛|;|\||&| and )\s*`)
	trailingDigitsRe = regexp.MustCompile(`\s*\d+$`)
	digitsRe         = regexp.MustCompile(`\d+`)
	periodMarkerRe   = regexp.MustCompile(`\s*[مص]\s*$`)
)

// weekdayEntry pairs a day label with its index (0=Monday..6=Sunday).
// The table is an ordered slice, not a map: the containment scan in
// ExtractWeekday must visit entries in a fixed order so that results
// stay reproducible across runs.
type weekdayEntry struct {
	label string
	day   int
}

var weekdayTable = []weekdayEntry{
	// Arabic, with and without the definite article, common spelling variants
	{"الاثنين", 0}, {"الإثنين", 0}, {"اثنين", 0},
	{"الثلاثاء", 1}, {"ثلاثاء", 1},
	{"الأربعاء", 2}, {"الاربعاء", 2}, {"اربعاء", 2},
	{"الخميس", 3}, {"خميس", 3},
	{"الجمعة", 4}, {"جمعة", 4},
	{"السبت", 5}, {"سبت", 5},
	{"الأحد", 6}, {"الاحد", 6}, {"احد", 6},
	// English
	{"monday", 0}, {"tuesday", 1}, {"wednesday", 2}, {"thursday", 3},
	{"friday", 4}, {"saturday", 5}, {"sunday", 6},
	// French
	{"lundi", 0}, {"mardi", 1}, {"mercredi", 2}, {"jeudi", 3},
	{"vendredi", 4}, {"samedi", 5}, {"dimanche", 6},
	// abbreviations last so full names win the containment scan
	{"mon", 0}, {"tue", 1}, {"wed", 2}, {"thu", 3}, {"fri", 4},
	{"sat", 5}, {"sun", 6},
	{"lun", 0}, {"mar", 1}, {"mer", 2}, {"jeu", 3}, {"ven", 4},
	{"sam", 5}, {"dim", 6},
}

// realClasses is the set of canonical class codes (4 grade levels x 5 sections).
var realClasses = func() map[string]bool {
	m := make(map[string]bool)
	for grade := 1; grade <= 4; grade++ {
		for section := 1; section <= 5; section++ {
			m[fmt.Sprintf("%dM%d", grade, section)] = true
		}
	}
	return m
}()

// groupMarkers denote sub-group splits of a class (e.g. lab groups).
var groupMarkers = []string{"_G1", "_G2"}

// makeupMarker tags combined/remedial catch-up sessions, which are not classes.
const makeupMarker = "استدراك"

// NormalizeTeacherName reduces a raw teacher field to a canonical single name:
// whitespace collapsed, only the first segment of a multi-name field, numeric
// disambiguator suffix stripped, at most the first two words kept.
func NormalizeTeacherName(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	first := strings.TrimSpace(separatorRe.Split(s, -1)[0])
	first = strings.TrimSpace(trailingDigitsRe.ReplaceAllString(first, ""))
	words := strings.Fields(first)
	if len(words) >= 2 {
		return words[0] + " " + words[1]
	}
	return first
}

// SplitTeachersField splits a raw teachers field on the shared separator set
// and normalizes each segment, deduplicating while preserving first-seen order.
func SplitTeachersField(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, part := range separatorRe.Split(s, -1) {
		name := NormalizeTeacherName(part)
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// ExtractWeekday decodes a raw day value into 0=Monday..6=Sunday. Purely
// numeric values are accepted as 1-indexed (1..7) or 0-indexed (0..6); textual
// values go through the weekday table, exact match first then substring
// containment in table order. ok is false when nothing matches.
func ExtractWeekday(dayField string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(dayField))
	if s == "" {
		return 0, false
	}
	if isAllDigits(s) {
		if v, err := strconv.Atoi(s); err == nil {
			if v >= 1 && v <= 7 {
				return v - 1, true
			}
			if v >= 0 && v <= 6 {
				return v, true
			}
		}
		// digit strings outside both ranges fall through to the table scan
	}
	for _, e := range weekdayTable {
		if s == e.label {
			return e.day, true
		}
	}
	for _, e := range weekdayTable {
		if strings.Contains(s, e.label) {
			return e.day, true
		}
	}
	return 0, false
}

// HourFromField decodes a period-slot value into an absolute hour of day.
// The first run of digits is taken as the slot number n; the mapping depends
// on the morning/afternoon hint carried by the day field. The arithmetic
// reproduces the export tool's slot numbering exactly, overlapping fallback
// ranges included; do not simplify it.
func HourFromField(hourField string, period models.Period) (int, bool) {
	m := digitsRe.FindString(hourField)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	switch period {
	case models.PeriodMorning:
		if n >= 1 && n <= 4 {
			return 7 + n, true
		}
		return 8 + n%4, true
	case models.PeriodAfternoon:
		if n >= 1 && n <= 4 {
			return 13 + n, true
		}
		return 14 + n%4, true
	default:
		if n >= 1 && n <= 8 {
			if n <= 4 {
				return 7 + n, true
			}
			return 9 + n, true
		}
		if n >= 8 && n <= 23 {
			return n, true
		}
		return 8 + n%8, true
	}
}

// IsRealClass reports whether a label names an actual class section. Canonical
// class codes are always real; group-split labels, catch-up sessions and
// combined labels (a literal "+") never are. Any other non-empty label is
// accepted by default.
func IsRealClass(name string) bool {
	s := strings.TrimSpace(name)
	if s == "" {
		return false
	}
	if realClasses[s] {
		return true
	}
	for _, marker := range groupMarkers {
		if strings.Contains(s, marker) {
			return false
		}
	}
	if strings.Contains(s, makeupMarker) || strings.Contains(s, "+") {
		return false
	}
	return true
}

// ExtractMainClass strips a group marker to recover the parent class code.
func ExtractMainClass(name string) string {
	s := strings.TrimSpace(name)
	for _, marker := range groupMarkers {
		if i := strings.Index(s, marker); i >= 0 {
			return s[:i]
		}
	}
	return s
}

// DayPeriod returns the morning/afternoon hint embedded in a raw day value
// (a trailing Arabic ص or م marker).
func DayPeriod(dayField string) models.Period {
	if strings.Contains(dayField, " ص") {
		return models.PeriodMorning
	}
	if strings.Contains(dayField, " م") {
		return models.PeriodAfternoon
	}
	return models.PeriodNone
}

// StripPeriodMarker removes the trailing ص/م marker so the remainder can go
// through ExtractWeekday.
func StripPeriodMarker(dayField string) string {
	return strings.TrimSpace(periodMarkerRe.ReplaceAllString(dayField, ""))
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
