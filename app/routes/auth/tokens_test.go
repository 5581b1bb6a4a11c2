package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"school-records/app/apperr"
	"school-records/app/models"
)

func strPtr(s string) *string { return &s }

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("round-trip-secret", time.Hour)

	tests := []struct {
		name string
		user *models.User
	}{
		{"admin", &models.User{ID: "acc-1", Username: "head", Role: models.RoleAdmin}},
		{"linked student", &models.User{ID: "acc-2", Username: "jane", Role: models.RoleStudent, StudentID: strPtr("stu-9")}},
		{"unlinked student", &models.User{ID: "acc-3", Username: "joe", Role: models.RoleStudent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Issue(tt.user)
			if err != nil {
				t.Fatalf("Issue() error: %v", err)
			}

			ident, err := svc.Verify(token)
			if err != nil {
				t.Fatalf("Verify() error: %v", err)
			}
			if ident.AccountID != tt.user.ID {
				t.Errorf("AccountID = %q, want %q", ident.AccountID, tt.user.ID)
			}
			if ident.Role != tt.user.Role {
				t.Errorf("Role = %q, want %q", ident.Role, tt.user.Role)
			}
			switch {
			case tt.user.StudentID == nil && ident.StudentID != nil:
				t.Errorf("StudentID = %q, want nil", *ident.StudentID)
			case tt.user.StudentID != nil && (ident.StudentID == nil || *ident.StudentID != *tt.user.StudentID):
				t.Errorf("StudentID = %v, want %q", ident.StudentID, *tt.user.StudentID)
			}
		})
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	svc := NewTokenService("tamper-secret", time.Hour)
	user := &models.User{ID: "acc-1", Role: models.RoleStudent, StudentID: strPtr("stu-1")}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decoding payload: %v", err)
	}

	// Flipping any single payload byte must invalidate the signature.
	for i := range payload {
		mutated := make([]byte, len(payload))
		copy(mutated, payload)
		mutated[i] ^= 0x01

		forged := parts[0] + "." + base64.RawURLEncoding.EncodeToString(mutated) + "." + parts[2]
		if _, err := svc.Verify(forged); err != apperr.ErrTokenInvalid {
			t.Fatalf("Verify() with byte %d flipped = %v, want ErrTokenInvalid", i, err)
		}
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService("garbage-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); err != apperr.ErrTokenInvalid {
			t.Errorf("Verify(%q) = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue(&models.User{ID: "acc-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := verifier.Verify(token); err != apperr.ErrTokenInvalid {
		t.Errorf("Verify() = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyExpiry(t *testing.T) {
	user := &models.User{ID: "acc-1", Role: models.RoleAdmin}

	// A token just past its lifetime is expired, not merely invalid.
	expired := NewTokenService("expiry-secret", -time.Second)
	token, err := expired.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := expired.Verify(token); err != apperr.ErrTokenExpired {
		t.Errorf("Verify() just past expiry = %v, want ErrTokenExpired", err)
	}

	// A token still inside its lifetime verifies.
	fresh := NewTokenService("expiry-secret", time.Second)
	token, err = fresh.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := fresh.Verify(token); err != nil {
		t.Errorf("Verify() before expiry = %v, want nil", err)
	}
}
