package validation

import (
	"testing"

	"school-records/app/apperr"
)

type loginShape struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required"`
}

func TestStructValid(t *testing.T) {
	if err := Struct(&loginShape{Username: "jane", Password: "pw"}); err != nil {
		t.Errorf("Struct() = %v, want nil", err)
	}
}

func TestStructInvalid(t *testing.T) {
	err := Struct(&loginShape{Username: "jo"})
	if err == nil {
		t.Fatal("Struct() = nil, want validation error")
	}

	ae, ok := err.(*apperr.Error)
	if !ok {
		t.Fatalf("Struct() returned %T, want *apperr.Error", err)
	}
	if ae.Kind != apperr.KindValidation {
		t.Errorf("Kind = %d, want KindValidation", ae.Kind)
	}
}
