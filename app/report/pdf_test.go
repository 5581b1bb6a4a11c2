package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"school-records/app/models"
)

func TestRenderPDF(t *testing.T) {
	grades := []*models.Grade{
		{Subject: "Math", Marks: 90, TotalMarks: floatPtr(100), GradeType: models.GradeExam},
	}
	rc := Build(testStudent(), grades, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := RenderPDF(rc, &buf); err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("RenderPDF() wrote nothing")
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Errorf("output does not start with a PDF header, got %q", buf.String()[:8])
	}
}

func TestRenderPDFEmptyReport(t *testing.T) {
	rc := Build(testStudent(), nil, time.Now())

	var buf bytes.Buffer
	if err := RenderPDF(rc, &buf); err != nil {
		t.Fatalf("RenderPDF() on empty report error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Error("empty report did not render as a PDF")
	}
}

func TestRenderPDFManyLines(t *testing.T) {
	// Enough rows to force page breaks.
	grades := make([]*models.Grade, 0, 300)
	for i := 0; i < 300; i++ {
		grades = append(grades, &models.Grade{
			Subject:   fmt.Sprintf("Subject %d", i),
			Marks:     float64(i % 100),
			GradeType: models.GradeOther,
		})
	}
	rc := Build(testStudent(), grades, time.Now())

	var buf bytes.Buffer
	if err := RenderPDF(rc, &buf); err != nil {
		t.Fatalf("RenderPDF() with %d lines error: %v", len(grades), err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Error("long report did not render as a PDF")
	}
}
