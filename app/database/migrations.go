package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Statements are
// idempotent so the runner is safe to execute on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			roll_number TEXT NOT NULL UNIQUE,
			class_name TEXT NOT NULL,
			dob DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			student_id UUID REFERENCES students(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS grades (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			subject TEXT NOT NULL,
			marks DOUBLE PRECISION NOT NULL CHECK (marks >= 0),
			total_marks DOUBLE PRECISION,
			grade_type TEXT NOT NULL DEFAULT 'exam',
			remarks TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class_name ON students(class_name)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
