package export

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"school-records/app/apperr"
	"school-records/app/config"
	"school-records/app/database"
	"school-records/app/report"
	"school-records/app/routes/auth"
)

// ExportReportCardAPI streams a student's report card as a PDF attachment.
func ExportReportCardAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	// Deny before any store access: a forbidden caller learns nothing
	// about the student, and no aggregation work happens.
	ident := auth.IdentityFromCtx(c)
	if err := auth.Authorize(ident, auth.ActionExportReport, studentID); err != nil {
		return err
	}

	if _, err := uuid.Parse(studentID); err != nil {
		return apperr.ErrNotFound
	}

	db := config.GetDB()

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.ErrNotFound
		}
		return apperr.ErrStoreUnavailable
	}

	grades, err := database.GetGradesByStudent(db, studentID)
	if err != nil {
		return apperr.ErrStoreUnavailable
	}

	rc := report.Build(student, grades, time.Now())

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=reportcard_%s.pdf`, student.RollNumber))

	// The document is written straight to the response stream; nothing is
	// buffered whole in memory. The stream belongs to this request alone
	// and fasthttp closes it on every exit path, including aborts.
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		if err := report.RenderPDF(rc, w); err != nil {
			log.Printf("report card render aborted for roll %s: %v", rc.RollNumber, err)
		}
	}))
	return nil
}
