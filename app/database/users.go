package database

import (
	"database/sql"

	"school-records/app/models"
)

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, password_hash, role, student_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Username, user.PasswordHash, user.Role, user.StudentID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, role, student_id, created_at, updated_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.StudentID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, role, student_id, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.StudentID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func UsernameExists(db *sql.DB, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	if err := db.QueryRow(query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UnlinkStudentAccounts clears the student link on every account that
// references the given student. Used when a student record is deleted; the
// accounts themselves stay valid.
func UnlinkStudentAccounts(db *sql.DB, studentID string) error {
	query := `UPDATE users SET student_id = NULL, updated_at = NOW() WHERE student_id = $1`
	_, err := db.Exec(query, studentID)
	return err
}
