package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"school-records/app/apperr"
	"school-records/app/config"
	"school-records/app/database"
	"school-records/app/models"
	"school-records/app/validation"
)

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Username    string `json:"username" validate:"required,min=3"`
		Password    string `json:"password" validate:"required,min=6"`
		Role        string `json:"role" validate:"required,oneof=admin student"`
		StudentRoll string `json:"student_roll" validate:"omitempty"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	db := config.GetDB()

	taken, err := database.UsernameExists(db, req.Username)
	if err != nil {
		return apperr.ErrStoreUnavailable
	}
	if taken {
		return apperr.Conflict("Username taken")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.Role(req.Role),
	}

	// A student account may link to an existing student record by roll
	// number. Registering without a link is valid; the account just owns
	// nothing until an admin re-registers it with a roll.
	if user.Role == models.RoleStudent && req.StudentRoll != "" {
		student, err := database.GetStudentByRollNumber(db, req.StudentRoll)
		if err != nil {
			if err == sql.ErrNoRows {
				return apperr.Validation("No student found with that roll number to link")
			}
			return apperr.ErrStoreUnavailable
		}
		user.StudentID = &student.ID
	}

	if err := database.CreateUser(db, user); err != nil {
		return apperr.ErrStoreUnavailable
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	// Unknown username and wrong password must be indistinguishable to the
	// caller, so both paths return the same opaque failure.
	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.ErrInvalidCredentials
		}
		return apperr.ErrStoreUnavailable
	}

	if !CheckPasswordHash(req.Password, user.PasswordHash) {
		return apperr.ErrInvalidCredentials
	}

	token, err := GenerateToken(user)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  user.Role,
		"id":    user.ID,
	})
}
