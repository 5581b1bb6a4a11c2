package auth

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"school-records/app/apperr"
	"school-records/app/config"
	"school-records/app/models"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTSecret:  "middleware-test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	}
	os.Exit(m.Run())
}

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		ident := IdentityFromCtx(c)
		return c.JSON(fiber.Map{
			"account_id": ident.AccountID,
			"role":       ident.Role,
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authorization string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.StatusCode, body
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := testApp()

	status, body := doRequest(t, app, "")
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if body["message"] != "Authentication required" {
		t.Errorf("message = %q, want %q", body["message"], "Authentication required")
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app := testApp()

	status, body := doRequest(t, app, "Bearer definitely-not-a-token")
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if body["message"] != "Invalid token" {
		t.Errorf("message = %q, want %q", body["message"], "Invalid token")
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := testApp()

	// Signed with the process secret so only expiry can fail.
	stale := NewTokenService(config.AppConfig.JWTSecret, -time.Minute)
	token, err := stale.Issue(&models.User{ID: "acc-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	status, body := doRequest(t, app, "Bearer "+token)
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if body["message"] != "Token expired" {
		t.Errorf("message = %q, want %q", body["message"], "Token expired")
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := testApp()

	token, err := GenerateToken(&models.User{ID: "acc-7", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	status, body := doRequest(t, app, "Bearer "+token)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["account_id"] != "acc-7" {
		t.Errorf("account_id = %q, want %q", body["account_id"], "acc-7")
	}
	if body["role"] != "admin" {
		t.Errorf("role = %q, want %q", body["role"], "admin")
	}
}
