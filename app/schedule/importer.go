package schedule

import (
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taha1545/school-mangment-system/app/models"
)

// Column alias sets tried in order per logical field; the first alias present
// in the header with a non-empty cell wins.
var (
	activityIDAliases = []string{"Activity Id", "ActivityId", "ID"}
	dayAliases        = []string{"Day", "day", "اليوم"}
	hourAliases       = []string{"Hour", "Period", "الساعة"}
	subjectAliases    = []string{"Subject", "subject", "المادة"}
	teachersAliases   = []string{"Teachers", "Teacher", "الأستاذ"}
	classAliases      = []string{"Students Sets", "Students", "Classe", "الصف"}
	roomAliases       = []string{"Room", "Classroom", "القاعة"}
	durationAliases   = []string{"Duration"}
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// rawRow is the structured intermediate record decoded from one CSV row,
// before any business-rule mapping.
type rawRow struct {
	ActivityID string
	Day        string
	Hour       string
	Subject    string
	Teachers   string
	Class      string
	Room       string
	Duration   string
}

// ImportCSVFiles rebuilds the whole index from the given timetable export
// files. Missing files are logged and skipped; malformed rows never fail the
// import. The returned error is non-nil only for catastrophic I/O or CSV
// reader failures, which abort the remaining files of the call.
func (ix *Index) ImportCSVFiles(paths []string) (models.ImportSummary, error) {
	ix.reset()

	var summary models.ImportSummary
	acc := newAccumulator()

	for _, path := range paths {
		if path == "" {
			summary.FilesMissing++
			continue
		}
		if _, err := os.Stat(path); err != nil {
			log.Printf("Timetable file not found, skipping: %s", path)
			summary.FilesMissing++
			continue
		}
		if err := ix.importFile(path, acc, &summary); err != nil {
			return summary, err
		}
		summary.FilesRead++
	}

	ix.finalize(acc)
	summary.ProblematicRows = len(ix.Problems)
	log.Printf("Imported %d activities from %d files (%d problematic rows)",
		summary.ActivityCount, summary.FilesRead, summary.ProblematicRows)
	return summary, nil
}

func (ix *Index) importFile(path string, acc *accumulator, summary *models.ImportSummary) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	delimiter := detectDelimiter(headerLine(data))
	if ix.Verbose {
		log.Printf("Importing %s with delimiter %q", path, delimiter)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	base := filepath.Base(path)
	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		row := decodeRow(columns, record)

		// rows carrying none of day/hour/teachers are not timetable rows
		if row.Day == "" && row.Hour == "" && row.Teachers == "" {
			summary.RowsSkipped++
			continue
		}
		teachers := SplitTeachersField(row.Teachers)
		if len(teachers) == 0 {
			summary.RowsSkipped++
			continue
		}

		period := DayPeriod(row.Day)
		dayClean := StripPeriodMarker(row.Day)
		weekday, weekdayOK := ExtractWeekday(dayClean)
		startHour, hourOK := HourFromField(row.Hour, period)

		duration := 1
		if row.Duration != "" {
			if d, err := strconv.Atoi(strings.TrimSpace(row.Duration)); err == nil {
				duration = d
			}
		}

		if !weekdayOK || !hourOK {
			ix.Problems = append(ix.Problems, models.RowDiagnostic{
				SourceFile: path,
				RowNumber:  rowNum,
				DayRaw:     row.Day,
				HourRaw:    row.Hour,
			})
		}
		if ix.Verbose {
			log.Printf("Row %d: teachers=%v day=%q hour=%q subject=%q class=%q",
				rowNum, teachers, row.Day, row.Hour, row.Subject, row.Class)
		}

		var weekdayPtr, hourPtr *int
		if weekdayOK {
			v := weekday
			weekdayPtr = &v
		}
		if hourOK {
			v := startHour
			hourPtr = &v
		}

		for _, teacher := range teachers {
			if row.Subject != "" {
				addToSet(acc.subjectTeachers, row.Subject, teacher)
				addToSet(acc.teacherSubjects, teacher, row.Subject)
			}
			mainClass := ""
			if row.Class != "" {
				mainClass = ExtractMainClass(row.Class)
				if IsRealClass(mainClass) {
					addToSet(acc.teacherClasses, teacher, mainClass)
					addToSet(acc.classTeachers, mainClass, teacher)
				}
			}

			activity := models.Activity{
				Weekday:      weekdayPtr,
				StartHour:    hourPtr,
				Duration:     duration,
				Subject:      row.Subject,
				Room:         row.Room,
				Class:        row.Class,
				ActivityID:   row.ActivityID,
				SourceFile:   base,
				OriginalDay:  row.Day,
				OriginalHour: row.Hour,
				Period:       period,
			}
			ix.TeacherActivities[teacher] = append(ix.TeacherActivities[teacher], activity)

			if row.Class != "" && IsRealClass(mainClass) {
				classCopy := activity
				classCopy.Teacher = teacher
				classCopy.OriginalClass = row.Class
				ix.ClassActivities[mainClass] = append(ix.ClassActivities[mainClass], classCopy)
			}
			summary.ActivityCount++
		}
	}
	return nil
}

// detectDelimiter inspects the header line: tab wins outright, then semicolon
// when it dominates comma, else comma.
func detectDelimiter(header string) rune {
	if strings.ContainsRune(header, '\t') {
		return '\t'
	}
	if strings.ContainsRune(header, ';') && strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}

func headerLine(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return string(data[:i])
	}
	return string(data)
}

func decodeRow(columns map[string]int, record []string) rawRow {
	return rawRow{
		ActivityID: lookupField(columns, record, activityIDAliases, false),
		Day:        lookupField(columns, record, dayAliases, false),
		Hour:       lookupField(columns, record, hourAliases, false),
		Subject:    lookupField(columns, record, subjectAliases, true),
		Teachers:   lookupField(columns, record, teachersAliases, true),
		Class:      lookupField(columns, record, classAliases, true),
		Room:       lookupField(columns, record, roomAliases, true),
		Duration:   lookupField(columns, record, durationAliases, false),
	}
}

// lookupField returns the first non-empty value among the aliased columns.
func lookupField(columns map[string]int, record []string, aliases []string, trim bool) string {
	for _, alias := range aliases {
		i, ok := columns[alias]
		if !ok || i >= len(record) {
			continue
		}
		value := record[i]
		if trim {
			value = strings.TrimSpace(value)
		}
		if value != "" {
			return value
		}
	}
	return ""
}
