package models

import "time"

// Grade is a single scored record belonging to exactly one student. A nil
// TotalMarks means no maximum was recorded; aggregation treats it as 100 for
// that item. The StudentID must reference an existing student at creation
// time — the handlers check this before insert since the store alone does
// not guarantee it across all deployments.
type Grade struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	Subject    string    `json:"subject"`
	Marks      float64   `json:"marks"`
	TotalMarks *float64  `json:"total_marks,omitempty"`
	GradeType  GradeType `json:"grade_type"`
	Remarks    string    `json:"remarks,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
