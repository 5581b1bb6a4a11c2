package database

import (
	"database/sql"

	"school-records/app/models"
)

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (first_name, last_name, roll_number, class_name, dob)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, student.FirstName, student.LastName,
		student.RollNumber, student.ClassName, student.DOB).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, first_name, last_name, roll_number, class_name, dob, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.RollNumber,
		&student.ClassName, &student.DOB, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func GetStudentByRollNumber(db *sql.DB, rollNumber string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, first_name, last_name, roll_number, class_name, dob, created_at, updated_at
			  FROM students WHERE roll_number = $1`

	err := db.QueryRow(query, rollNumber).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.RollNumber,
		&student.ClassName, &student.DOB, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudents returns all students, optionally filtered by class name,
// ordered by last name.
func GetStudents(db *sql.DB, className string) ([]*models.Student, error) {
	query := `SELECT id, first_name, last_name, roll_number, class_name, dob, created_at, updated_at
			  FROM students`
	args := []interface{}{}
	if className != "" {
		query += ` WHERE class_name = $1`
		args = append(args, className)
	}
	query += ` ORDER BY last_name ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.RollNumber,
			&student.ClassName, &student.DOB, &student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func RollNumberExists(db *sql.DB, rollNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE roll_number = $1)`
	if err := db.QueryRow(query, rollNumber).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateStudent writes the mutable student fields. The UPDATE names only the
// allow-listed columns; roll_number is identity-bearing and never touched.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, class_name = $3, dob = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING updated_at`

	return db.QueryRow(query, student.FirstName, student.LastName,
		student.ClassName, student.DOB, student.ID).Scan(&student.UpdatedAt)
}

func DeleteStudent(db *sql.DB, studentID string) error {
	query := `DELETE FROM students WHERE id = $1`
	_, err := db.Exec(query, studentID)
	return err
}
