// Package report builds and renders student report cards. Aggregation is
// pure and deterministic; rendering is total over any well-formed report.
package report

import (
	"time"

	"school-records/app/models"
)

// DefaultTotalMarks is the per-item maximum assumed when a grade has none
// recorded.
const DefaultTotalMarks = 100

// Line is one row of the report card.
type Line struct {
	Subject    string
	Marks      float64
	TotalMarks float64
	GradeType  models.GradeType
	Remarks    string
}

// ReportCard is the ephemeral aggregate for one student, built fresh per
// export and never persisted.
type ReportCard struct {
	StudentName string
	RollNumber  string
	ClassName   string
	DOB         *time.Time

	Lines         []Line
	TotalObtained float64
	TotalMax      float64
	Percentage    float64
	NoData        bool

	GeneratedAt time.Time
}

// Build reduces a student's grades into a report card. Line items keep the
// order of the input slice. A grade with no recorded maximum contributes
// DefaultTotalMarks to the denominator; a recorded zero stays zero. When the
// denominator is zero the report is marked NoData with percentage 0 instead
// of dividing. The timestamp is display-only and carried through untouched.
func Build(student *models.Student, grades []*models.Grade, generatedAt time.Time) *ReportCard {
	rc := &ReportCard{
		StudentName: student.FirstName + " " + student.LastName,
		RollNumber:  student.RollNumber,
		ClassName:   student.ClassName,
		DOB:         student.DOB,
		Lines:       make([]Line, 0, len(grades)),
		GeneratedAt: generatedAt,
	}

	for _, g := range grades {
		max := float64(DefaultTotalMarks)
		if g.TotalMarks != nil {
			max = *g.TotalMarks
		}
		rc.Lines = append(rc.Lines, Line{
			Subject:    g.Subject,
			Marks:      g.Marks,
			TotalMarks: max,
			GradeType:  g.GradeType,
			Remarks:    g.Remarks,
		})
		rc.TotalObtained += g.Marks
		rc.TotalMax += max
	}

	if rc.TotalMax > 0 {
		rc.Percentage = rc.TotalObtained / rc.TotalMax * 100
	} else {
		rc.NoData = true
	}

	return rc
}
