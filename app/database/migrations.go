package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createUsersTable(db); err != nil {
		return err
	}
	if err := createFollowUpEventsTable(db); err != nil {
		return err
	}
	if err := addFollowUpTeacherDateIndex(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'supervisor',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create users table: %v", err)
	}
	return err
}

func createFollowUpEventsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS follow_up_events (
			id UUID PRIMARY KEY,
			date DATE NOT NULL,
			teacher TEXT NOT NULL,
			event_type VARCHAR(10) NOT NULL,
			subject TEXT,
			hour_label TEXT,
			note TEXT,
			recorded_by UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create follow_up_events table: %v", err)
	}
	return err
}

func addFollowUpTeacherDateIndex(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_indexes
				WHERE tablename = 'follow_up_events'
				AND indexname = 'idx_follow_up_events_teacher_date'
			) THEN
				CREATE INDEX idx_follow_up_events_teacher_date
					ON follow_up_events (teacher, date);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create follow-up index: %v", err)
	}
	return err
}
