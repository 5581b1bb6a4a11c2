package models

import "time"

// Student represents a learner registered in the institution. RollNumber is
// unique and immutable after creation; updates go through the allow-listed
// field set in the students handlers.
type Student struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	RollNumber string     `json:"roll_number"`
	ClassName  string     `json:"class_name"`
	DOB        *time.Time `json:"dob,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
