package schedule

import (
	"sort"

	"github.com/taha1545/school-mangment-system/app/models"
)

// DefaultColors is the fixed display palette cycled over the sorted subject
// set after every import. The assignment depends only on the final subject
// set, never on row order.
var DefaultColors = []string{
	"#FFCCCB", "#B2FF66", "#FFD580", "#AED6F1", "#D7BDE2", "#ABEBC6",
	"#F9E79F", "#F5CBA7", "#A9DFBF", "#F5B7B1", "#85C1E9", "#D6EAF8", "#FADBD8",
}

// Index holds the cross-referenced lookup tables derived from a flat activity
// list. It is rebuilt wholesale on every import call and provides no internal
// locking; callers coordinating concurrent access must guard it themselves.
type Index struct {
	SubjectTeachers   map[string][]string
	SubjectColors     map[string]string
	TeacherSubjects   map[string][]string
	TeacherClasses    map[string][]string
	ClassTeachers     map[string][]string
	TeacherActivities map[string][]models.Activity
	ClassActivities   map[string][]models.Activity
	Problems          []models.RowDiagnostic

	// Verbose enables per-row import logging.
	Verbose bool
}

// NewIndex returns an empty index ready for an import.
func NewIndex() *Index {
	ix := &Index{}
	ix.reset()
	return ix
}

// reset discards all prior content; an import never merges with earlier state.
func (ix *Index) reset() {
	ix.SubjectTeachers = make(map[string][]string)
	ix.SubjectColors = make(map[string]string)
	ix.TeacherSubjects = make(map[string][]string)
	ix.TeacherClasses = make(map[string][]string)
	ix.ClassTeachers = make(map[string][]string)
	ix.TeacherActivities = make(map[string][]models.Activity)
	ix.ClassActivities = make(map[string][]models.Activity)
	ix.Problems = nil
}

// Teachers returns the sorted list of teachers present in the index.
func (ix *Index) Teachers() []string {
	names := make([]string, 0, len(ix.TeacherActivities))
	for name := range ix.TeacherActivities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subjects returns the sorted list of imported subjects.
func (ix *Index) Subjects() []string {
	subjects := make([]string, 0, len(ix.SubjectTeachers))
	for subject := range ix.SubjectTeachers {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// Classes returns the sorted list of main classes present in the index.
func (ix *Index) Classes() []string {
	classes := make([]string, 0, len(ix.ClassActivities))
	for class := range ix.ClassActivities {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// ColorForSubject returns the display color assigned to a subject, white when
// the subject is empty or unknown.
func (ix *Index) ColorForSubject(subject string) string {
	if subject == "" {
		return "#FFFFFF"
	}
	if color, ok := ix.SubjectColors[subject]; ok {
		return color
	}
	return "#FFFFFF"
}

// accumulator collects set-valued associations during a file pass; finalize
// sorts them into the public maps once all files are consumed.
type accumulator struct {
	subjectTeachers map[string]map[string]bool
	teacherSubjects map[string]map[string]bool
	teacherClasses  map[string]map[string]bool
	classTeachers   map[string]map[string]bool
}

func newAccumulator() *accumulator {
	return &accumulator{
		subjectTeachers: make(map[string]map[string]bool),
		teacherSubjects: make(map[string]map[string]bool),
		teacherClasses:  make(map[string]map[string]bool),
		classTeachers:   make(map[string]map[string]bool),
	}
}

func addToSet(sets map[string]map[string]bool, key, value string) {
	set, ok := sets[key]
	if !ok {
		set = make(map[string]bool)
		sets[key] = set
	}
	set[value] = true
}

func sortedValues(set map[string]bool) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// finalize converts the accumulated sets into sorted lists and assigns the
// subject colors over the sorted subject set.
func (ix *Index) finalize(acc *accumulator) {
	for subject, set := range acc.subjectTeachers {
		ix.SubjectTeachers[subject] = sortedValues(set)
	}
	for teacher, set := range acc.teacherSubjects {
		ix.TeacherSubjects[teacher] = sortedValues(set)
	}
	for teacher, set := range acc.teacherClasses {
		ix.TeacherClasses[teacher] = sortedValues(set)
	}
	for class, set := range acc.classTeachers {
		ix.ClassTeachers[class] = sortedValues(set)
	}
	for i, subject := range ix.Subjects() {
		ix.SubjectColors[subject] = DefaultColors[i%len(DefaultColors)]
	}
}
