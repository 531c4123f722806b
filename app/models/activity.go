package models

// Activity represents one scheduled teaching occurrence parsed from a timetable export
type Activity struct {
	Weekday      *int   `json:"weekday"`
	StartHour    *int   `json:"start_hour"`
	Duration     int    `json:"duration"`
	Subject      string `json:"subject"`
	Room         string `json:"room"`
	Class        string `json:"class"`
	ActivityID   string `json:"activity_id,omitempty"`
	SourceFile   string `json:"source_file"`
	OriginalDay  string `json:"original_day_field"`
	OriginalHour string `json:"original_hour_field"`
	Period       Period `json:"period,omitempty"`

	// Teacher and OriginalClass are set only on the per-class copy of an activity
	Teacher       string `json:"teacher,omitempty"`
	OriginalClass string `json:"original_class,omitempty"`
}

// TeacherSession is one occupied hour for a teacher on a concrete date
type TeacherSession struct {
	StartHour int    `json:"start_hour"`
	Subject   string `json:"subject"`
	Room      string `json:"room"`
	Class     string `json:"class"`
}

// RowDiagnostic records a row that was kept despite an unresolvable day or hour
type RowDiagnostic struct {
	SourceFile string `json:"source_file"`
	RowNumber  int    `json:"row_number"`
	DayRaw     string `json:"day_raw"`
	HourRaw    string `json:"hour_raw"`
}

// ImportSummary reports what a single import call consumed and produced
type ImportSummary struct {
	FilesRead       int `json:"files_read"`
	FilesMissing    int `json:"files_missing"`
	RowsSkipped     int `json:"rows_skipped"`
	ActivityCount   int `json:"activity_count"`
	ProblematicRows int `json:"problematic_rows"`
}
