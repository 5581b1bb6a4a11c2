package models

import "time"

// User is an account that can authenticate against the service. The password
// hash is never serialized. Role is set at registration and has no update
// path. StudentID links a student-role account to the student record it owns;
// nil means the account is valid but owns nothing.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	StudentID    *string   `json:"student_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
