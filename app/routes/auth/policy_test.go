package auth

import (
	"testing"

	"school-records/app/apperr"
	"school-records/app/models"
)

var allActions = []Action{
	ActionCreateStudent,
	ActionListStudents,
	ActionReadStudent,
	ActionUpdateStudent,
	ActionDeleteStudent,
	ActionCreateGrade,
	ActionReadStudentGrades,
	ActionReadClassGrades,
	ActionUpdateGrade,
	ActionDeleteGrade,
	ActionExportReport,
}

func TestAuthorizeAdminAllowsEverything(t *testing.T) {
	admin := &Identity{AccountID: "acc-1", Role: models.RoleAdmin}

	for _, action := range allActions {
		for _, owner := range []string{"", "stu-1", "stu-other"} {
			if err := Authorize(admin, action, owner); err != nil {
				t.Errorf("Authorize(admin, %d, %q) = %v, want nil", action, owner, err)
			}
		}
	}
}

func TestAuthorizeLinkedStudent(t *testing.T) {
	own := "stu-1"
	student := &Identity{AccountID: "acc-2", Role: models.RoleStudent, StudentID: &own}

	readable := map[Action]bool{
		ActionReadStudent:       true,
		ActionReadStudentGrades: true,
		ActionExportReport:      true,
	}

	// Self-scoped reads on the linked record are allowed; the same reads
	// on anyone else's record are not.
	for action := range readable {
		if err := Authorize(student, action, own); err != nil {
			t.Errorf("Authorize(linked, %d, own) = %v, want nil", action, err)
		}
		if err := Authorize(student, action, "stu-other"); err != apperr.ErrForbidden {
			t.Errorf("Authorize(linked, %d, other) = %v, want ErrForbidden", action, err)
		}
	}

	// Everything else is denied even when the target is the student's own
	// record: owners read their data but never mutate it, and class-wide
	// reads stay admin-only.
	for _, action := range allActions {
		if readable[action] {
			continue
		}
		for _, owner := range []string{"", own} {
			if err := Authorize(student, action, owner); err != apperr.ErrForbidden {
				t.Errorf("Authorize(linked, %d, %q) = %v, want ErrForbidden", action, owner, err)
			}
		}
	}
}

func TestAuthorizeUnlinkedStudentAlwaysDenied(t *testing.T) {
	student := &Identity{AccountID: "acc-3", Role: models.RoleStudent}

	for _, action := range allActions {
		for _, owner := range []string{"", "stu-1"} {
			if err := Authorize(student, action, owner); err != apperr.ErrForbidden {
				t.Errorf("Authorize(unlinked, %d, %q) = %v, want ErrForbidden", action, owner, err)
			}
		}
	}
}

func TestAuthorizeUnknownRoleDenied(t *testing.T) {
	own := "stu-1"
	ident := &Identity{AccountID: "acc-4", Role: models.Role("teacher"), StudentID: &own}

	for _, action := range allActions {
		if err := Authorize(ident, action, own); err != apperr.ErrForbidden {
			t.Errorf("Authorize(unknown role, %d) = %v, want ErrForbidden", action, err)
		}
	}
}
