package auth

import (
	"school-records/app/apperr"
	"school-records/app/models"
)

// Action enumerates every gated operation. The set is closed so the policy
// switch stays exhaustive; a new endpoint must add its action here.
type Action int

const (
	ActionCreateStudent Action = iota
	ActionListStudents
	ActionReadStudent
	ActionUpdateStudent
	ActionDeleteStudent
	ActionCreateGrade
	ActionReadStudentGrades
	ActionReadClassGrades
	ActionUpdateGrade
	ActionDeleteGrade
	ActionExportReport
)

// ownerReadable reports whether a student account may perform the action on
// its own linked record. Only self-scoped reads qualify: owners can see
// their own data but never mutate it, and class-wide reads stay admin-only.
func (a Action) ownerReadable() bool {
	switch a {
	case ActionReadStudent, ActionReadStudentGrades, ActionExportReport:
		return true
	}
	return false
}

// Authorize decides whether the identity may perform the action on the
// resource owned by ownerID (empty when the action has no single owner).
// It is pure: no store access, no clock. Rules in order, first match wins:
//
//  1. Admins may do everything.
//  2. A student linked to ownerID may perform self-scoped reads on it.
//  3. A student with no linked record is denied regardless of target.
//  4. Everything else is denied.
//
// Handlers must call this before touching any store, so a denial leaks
// nothing about whether the target exists.
func Authorize(ident *Identity, action Action, ownerID string) error {
	switch ident.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleStudent:
		if ident.StudentID == nil {
			return apperr.ErrForbidden
		}
		if action.ownerReadable() && ownerID != "" && *ident.StudentID == ownerID {
			return nil
		}
		return apperr.ErrForbidden
	default:
		return apperr.ErrForbidden
	}
}
