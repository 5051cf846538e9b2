package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/promptgen/promptgen/internal/auth"
	"github.com/promptgen/promptgen/internal/config"
)

const gateSecret = "gate-test-secret"

func setupGateApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", BearerAuth(config.Config{AppSecret: gateSecret}), func(c *fiber.Ctx) error {
		id, _ := c.Locals(TelegramIDKey).(int64)
		return c.SendString(strconv.FormatInt(id, 10))
	})
	return app
}

func getWhoami(t *testing.T, app *fiber.App, authz string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestBearerAuthAccepts(t *testing.T) {
	app := setupGateApp()
	token := auth.IssueToken(42, gateSecret)

	resp := getWhoami(t, app, "Bearer "+token)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	buf := make([]byte, 32)
	n, _ := resp.Body.Read(buf)
	if string(buf[:n]) != "42" {
		t.Fatalf("expected resolved id 42, got %q", string(buf[:n]))
	}
}

func TestBearerAuthRejects(t *testing.T) {
	app := setupGateApp()

	cases := map[string]string{
		"no header":        "",
		"wrong scheme":     "Basic abc",
		"lowercase bearer": "bearer " + auth.IssueToken(42, gateSecret),
		"wrong signature":  "Bearer 42.1700000000.deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		"missing segment":  "Bearer 42.1700000000",
		"other secret":     "Bearer " + auth.IssueToken(42, "other-secret"),
	}
	for name, authz := range cases {
		resp := getWhoami(t, app, authz)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, resp.StatusCode)
		}
		resp.Body.Close()
	}
}
