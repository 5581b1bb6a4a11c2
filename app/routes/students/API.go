package students

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"school-records/app/apperr"
	"school-records/app/config"
	"school-records/app/database"
	"school-records/app/models"
	"school-records/app/routes/auth"
	"school-records/app/validation"
)

const dateLayout = "2006-01-02"

func GetStudentsAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionListStudents, ""); err != nil {
		return err
	}

	students, err := database.GetStudents(config.GetDB(), c.Query("class_name"))
	if err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionCreateStudent, ""); err != nil {
		return err
	}

	type CreateStudentRequest struct {
		FirstName  string `json:"first_name" validate:"required"`
		LastName   string `json:"last_name" validate:"required"`
		RollNumber string `json:"roll_number" validate:"required"`
		ClassName  string `json:"class_name" validate:"required"`
		DOB        string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	db := config.GetDB()

	taken, err := database.RollNumberExists(db, req.RollNumber)
	if err != nil {
		return apperr.ErrStoreUnavailable
	}
	if taken {
		return apperr.Conflict("Roll number already exists")
	}

	student := &models.Student{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		RollNumber: req.RollNumber,
		ClassName:  req.ClassName,
	}
	if req.DOB != "" {
		dob, err := time.Parse(dateLayout, req.DOB)
		if err != nil {
			return apperr.Validation("Invalid dob, expected YYYY-MM-DD")
		}
		student.DOB = &dob
	}

	if err := database.CreateStudent(db, student); err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(student)
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	// Authorization runs before the lookup so a denial reveals nothing
	// about whether the student exists.
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionReadStudent, studentID); err != nil {
		return err
	}

	// A malformed id cannot name an existing record; reject it before the
	// store sees it.
	if _, err := uuid.Parse(studentID); err != nil {
		return apperr.ErrNotFound
	}

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.ErrNotFound
		}
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionUpdateStudent, ""); err != nil {
		return err
	}

	// Allow-listed mutable fields only. The roll number identifies the
	// student and cannot be changed through this endpoint.
	type UpdateStudentRequest struct {
		FirstName *string `json:"first_name" validate:"omitempty,min=1"`
		LastName  *string `json:"last_name" validate:"omitempty,min=1"`
		ClassName *string `json:"class_name" validate:"omitempty,min=1"`
		DOB       *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	}

	var req UpdateStudentRequest
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

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.ErrNotFound
		}
		return apperr.ErrStoreUnavailable
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.ClassName != nil {
		student.ClassName = *req.ClassName
	}
	if req.DOB != nil {
		dob, err := time.Parse(dateLayout, *req.DOB)
		if err != nil {
			return apperr.Validation("Invalid dob, expected YYYY-MM-DD")
		}
		student.DOB = &dob
	}

	if err := database.UpdateStudent(db, student); err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(student)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionDeleteStudent, ""); err != nil {
		return err
	}

	studentID := c.Params("id")
	if _, err := uuid.Parse(studentID); err != nil {
		return apperr.ErrNotFound
	}

	db := config.GetDB()

	// Accounts linked to the student stay valid but lose their link.
	if err := database.UnlinkStudentAccounts(db, studentID); err != nil {
		return apperr.ErrStoreUnavailable
	}
	if err := database.DeleteStudent(db, studentID); err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}
