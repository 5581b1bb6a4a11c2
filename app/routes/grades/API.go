package grades

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"school-records/app/apperr"
	"school-records/app/config"
	"school-records/app/database"
	"school-records/app/models"
	"school-records/app/routes/auth"
	"school-records/app/validation"
)

func CreateGradeAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionCreateGrade, ""); err != nil {
		return err
	}

	type CreateGradeRequest struct {
		StudentID  string   `json:"student_id" validate:"required,uuid"`
		Subject    string   `json:"subject" validate:"required"`
		Marks      *float64 `json:"marks" validate:"required,gte=0"`
		TotalMarks *float64 `json:"total_marks" validate:"omitempty,gt=0"`
		GradeType  string   `json:"grade_type" validate:"omitempty,oneof=exam assignment quiz project other"`
		Remarks    string   `json:"remarks"`
	}

	var req CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	db := config.GetDB()

	// The store itself does no foreign-key checking across deployments, so
	// the owning student must be verified to exist before insert.
	if _, err := database.GetStudentByID(db, req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return apperr.Validation("Student not found")
		}
		return apperr.ErrStoreUnavailable
	}

	grade := &models.Grade{
		StudentID:  req.StudentID,
		Subject:    req.Subject,
		Marks:      *req.Marks,
		TotalMarks: req.TotalMarks,
		GradeType:  models.GradeExam,
		Remarks:    req.Remarks,
	}
	if req.GradeType != "" {
		grade.GradeType = models.GradeType(req.GradeType)
	}

	if err := database.CreateGrade(db, grade); err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(grade)
}

func GetStudentGradesAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionReadStudentGrades, studentID); err != nil {
		return err
	}

	if _, err := uuid.Parse(studentID); err != nil {
		return apperr.ErrNotFound
	}

	grades, err := database.GetGradesByStudent(config.GetDB(), studentID)
	if err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(fiber.Map{
		"grades": grades,
		"count":  len(grades),
	})
}

func GetClassGradesAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionReadClassGrades, ""); err != nil {
		return err
	}

	grades, err := database.GetGradesByClass(config.GetDB(), c.Params("className"), c.Query("subject"))
	if err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(fiber.Map{
		"grades": grades,
		"count":  len(grades),
	})
}

func UpdateGradeAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionUpdateGrade, ""); err != nil {
		return err
	}

	// Allow-listed mutable fields only. The owning student never changes;
	// a misattributed grade is deleted and recreated.
	type UpdateGradeRequest struct {
		Subject    *string  `json:"subject" validate:"omitempty,min=1"`
		Marks      *float64 `json:"marks" validate:"omitempty,gte=0"`
		TotalMarks *float64 `json:"total_marks" validate:"omitempty,gt=0"`
		GradeType  *string  `json:"grade_type" validate:"omitempty,oneof=exam assignment quiz project other"`
		Remarks    *string  `json:"remarks"`
	}

	var req UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return apperr.ErrNotFound
	}

	db := config.GetDB()

	grade, err := database.GetGradeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.ErrNotFound
		}
		return apperr.ErrStoreUnavailable
	}

	if req.Subject != nil {
		grade.Subject = *req.Subject
	}
	if req.Marks != nil {
		grade.Marks = *req.Marks
	}
	if req.TotalMarks != nil {
		grade.TotalMarks = req.TotalMarks
	}
	if req.GradeType != nil {
		grade.GradeType = models.GradeType(*req.GradeType)
	}
	if req.Remarks != nil {
		grade.Remarks = *req.Remarks
	}

	if err := database.UpdateGrade(db, grade); err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(grade)
}

func DeleteGradeAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionDeleteGrade, ""); err != nil {
		return err
	}

	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return apperr.ErrNotFound
	}

	if err := database.DeleteGrade(config.GetDB(), c.Params("id")); err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}
