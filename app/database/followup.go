package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/taha1545/school-mangment-system/app/models"
)

// InsertFollowUpEvent appends one record to the teacher follow-up log.
// The log is append-only; existing rows are never updated.
func InsertFollowUpEvent(db *sql.DB, event *models.FollowUpEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	query := `INSERT INTO follow_up_events (id, date, teacher, event_type, subject, hour_label, note, recorded_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, NOW())
			  RETURNING created_at`

	return db.QueryRow(query,
		event.ID, event.Date, event.Teacher, event.EventType,
		event.Subject, event.HourLabel, event.Note, event.RecordedBy,
	).Scan(&event.CreatedAt)
}

// GetFollowUpEventsByTeacher lists a teacher's follow-up records, optionally
// bounded by an inclusive date range, oldest first.
func GetFollowUpEventsByTeacher(db *sql.DB, teacher string, from, to *time.Time) ([]*models.FollowUpEvent, error) {
	query := `SELECT id, date, teacher, event_type, COALESCE(subject, ''), COALESCE(hour_label, ''),
			  COALESCE(note, ''), COALESCE(recorded_by::text, ''), created_at
			  FROM follow_up_events
			  WHERE teacher = $1 AND date >= COALESCE($2, date) AND date <= COALESCE($3, date)
			  ORDER BY date, created_at`

	rows, err := db.Query(query, teacher, nullableTime(from), nullableTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFollowUpEvents(rows)
}

// GetAllFollowUpEvents lists the whole follow-up log, optionally bounded by an
// inclusive date range, oldest first. Used by the XLSX export.
func GetAllFollowUpEvents(db *sql.DB, from, to *time.Time) ([]*models.FollowUpEvent, error) {
	query := `SELECT id, date, teacher, event_type, COALESCE(subject, ''), COALESCE(hour_label, ''),
			  COALESCE(note, ''), COALESCE(recorded_by::text, ''), created_at
			  FROM follow_up_events
			  WHERE date >= COALESCE($1, date) AND date <= COALESCE($2, date)
			  ORDER BY date, teacher, created_at`

	rows, err := db.Query(query, nullableTime(from), nullableTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFollowUpEvents(rows)
}

func scanFollowUpEvents(rows *sql.Rows) ([]*models.FollowUpEvent, error) {
	var events []*models.FollowUpEvent
	for rows.Next() {
		event := &models.FollowUpEvent{}
		err := rows.Scan(
			&event.ID, &event.Date, &event.Teacher, &event.EventType,
			&event.Subject, &event.HourLabel, &event.Note, &event.RecordedBy, &event.CreatedAt,
		)
		if err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
