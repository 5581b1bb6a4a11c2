package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Fixed column widths for the grades table, in millimeters.
const (
	colSubject = 70.0
	colMarks   = 30.0
	colTotal   = 30.0
	colType    = 40.0
	rowHeight  = 8.0
)

// RenderPDF writes the report card as a paginated PDF document to w. It
// does not fail on any well-formed report; the only error source is the
// underlying writer.
func RenderPDF(rc *ReportCard, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Title block.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Report Card", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Name: "+rc.StudentName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Roll Number: "+rc.RollNumber, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Class: "+rc.ClassName, "", 1, "L", false, 0, "")
	if rc.DOB != nil {
		pdf.CellFormat(0, 7, "DOB: "+rc.DOB.Format("2006-01-02"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 9, "Grades", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(rc.Lines) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, "No grades recorded.", "", 1, "L", false, 0, "")
	} else {
		// Header row, then one row per line item with fixed widths:
		// subject left, marks and total centered, type right.
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(colSubject, rowHeight, "Subject", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colMarks, rowHeight, "Marks", "B", 0, "C", false, 0, "")
		pdf.CellFormat(colTotal, rowHeight, "Total", "B", 0, "C", false, 0, "")
		pdf.CellFormat(colType, rowHeight, "Type", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range rc.Lines {
			pdf.CellFormat(colSubject, rowHeight, line.Subject, "", 0, "L", false, 0, "")
			pdf.CellFormat(colMarks, rowHeight, formatMarks(line.Marks), "", 0, "C", false, 0, "")
			pdf.CellFormat(colTotal, rowHeight, formatMarks(line.TotalMarks), "", 0, "C", false, 0, "")
			pdf.CellFormat(colType, rowHeight, string(line.GradeType), "", 1, "R", false, 0, "")
		}

		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 7, fmt.Sprintf("Total: %s / %s",
			formatMarks(rc.TotalObtained), formatMarks(rc.TotalMax)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("Percentage: %.2f%%", rc.Percentage), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Generated "+rc.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// formatMarks renders a mark without a trailing ".00" for whole numbers.
func formatMarks(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
