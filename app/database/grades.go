package database

import (
	"database/sql"

	"school-records/app/models"
)

func CreateGrade(db *sql.DB, grade *models.Grade) error {
	query := `INSERT INTO grades (student_id, subject, marks, total_marks, grade_type, remarks)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, grade.StudentID, grade.Subject, grade.Marks,
		grade.TotalMarks, grade.GradeType, grade.Remarks).
		Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
}

func GetGradeByID(db *sql.DB, gradeID string) (*models.Grade, error) {
	grade := &models.Grade{}
	var remarks sql.NullString
	query := `SELECT id, student_id, subject, marks, total_marks, grade_type, remarks, created_at, updated_at
			  FROM grades WHERE id = $1`

	err := db.QueryRow(query, gradeID).Scan(
		&grade.ID, &grade.StudentID, &grade.Subject, &grade.Marks,
		&grade.TotalMarks, &grade.GradeType, &remarks,
		&grade.CreatedAt, &grade.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	grade.Remarks = remarks.String
	return grade, nil
}

// GetGradesByStudent returns a student's grades in insertion order. Callers
// that need a different ordering sort before aggregation.
func GetGradesByStudent(db *sql.DB, studentID string) ([]*models.Grade, error) {
	query := `SELECT id, student_id, subject, marks, total_marks, grade_type, remarks, created_at, updated_at
			  FROM grades WHERE student_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGrades(rows)
}

// GetGradesByClass returns grades for every student in a class, with an
// optional subject filter.
func GetGradesByClass(db *sql.DB, className, subject string) ([]*models.Grade, error) {
	query := `SELECT g.id, g.student_id, g.subject, g.marks, g.total_marks, g.grade_type, g.remarks, g.created_at, g.updated_at
			  FROM grades g
			  JOIN students s ON s.id = g.student_id
			  WHERE s.class_name = $1`
	args := []interface{}{className}
	if subject != "" {
		query += ` AND g.subject = $2`
		args = append(args, subject)
	}
	query += ` ORDER BY g.created_at ASC, g.id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGrades(rows)
}

// UpdateGrade writes the mutable grade fields. The owning student_id is
// identity-bearing and never touched.
func UpdateGrade(db *sql.DB, grade *models.Grade) error {
	query := `UPDATE grades
			  SET subject = $1, marks = $2, total_marks = $3, grade_type = $4, remarks = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`

	return db.QueryRow(query, grade.Subject, grade.Marks, grade.TotalMarks,
		grade.GradeType, grade.Remarks, grade.ID).Scan(&grade.UpdatedAt)
}

func DeleteGrade(db *sql.DB, gradeID string) error {
	query := `DELETE FROM grades WHERE id = $1`
	_, err := db.Exec(query, gradeID)
	return err
}

func scanGrades(rows *sql.Rows) ([]*models.Grade, error) {
	var grades []*models.Grade
	for rows.Next() {
		grade := &models.Grade{}
		var remarks sql.NullString
		if err := rows.Scan(
			&grade.ID, &grade.StudentID, &grade.Subject, &grade.Marks,
			&grade.TotalMarks, &grade.GradeType, &remarks,
			&grade.CreatedAt, &grade.UpdatedAt,
		); err != nil {
			return nil, err
		}
		grade.Remarks = remarks.String
		grades = append(grades, grade)
	}
	return grades, rows.Err()
}
