package models

// Role defines the closed set of account roles. Authorization switches over
// this type exhaustively; adding a role must revisit every switch.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent:
		return true
	}
	return false
}

// GradeType defines the possible categories for a grade.
type GradeType string

const (
	GradeExam       GradeType = "exam"
	GradeAssignment GradeType = "assignment"
	GradeQuiz       GradeType = "quiz"
	GradeProject    GradeType = "project"
	GradeOther      GradeType = "other"
)

// Valid reports whether t is one of the known grade types.
func (t GradeType) Valid() bool {
	switch t {
	case GradeExam, GradeAssignment, GradeQuiz, GradeProject, GradeOther:
		return true
	}
	return false
}
