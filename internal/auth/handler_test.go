package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/promptgen/promptgen/internal/config"
)

func setupAuthApp(cfg config.Config) *fiber.App {
	app := fiber.New()
	handler := NewHandler(NewService(cfg))
	app.Post("/auth/telegram", handler.Telegram)
	return app
}

func postTelegram(t *testing.T, app *fiber.App, initData string) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(map[string]string{"initData": initData})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodPost, "/auth/telegram", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, payload
}

func TestTelegramAuthSuccess(t *testing.T) {
	app := setupAuthApp(testConfig())

	raw := signInitData(t, []string{"user=%7B%22id%22%3A123%7D", "auth_date=1700000000"}, testBotToken)
	status, payload := postTelegram(t, app, raw)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, payload)
	}

	var out struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
		User  struct {
			TelegramID int64 `json:"telegram_id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.OK || out.User.TelegramID != 123 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if id, ok := VerifyToken(out.Token, testSecret); !ok || id != 123 {
		t.Fatalf("returned token did not verify to 123: id=%d ok=%v", id, ok)
	}
}

func TestTelegramAuthBadSignature(t *testing.T) {
	app := setupAuthApp(testConfig())
	status, _ := postTelegram(t, app, "user=%7B%22id%22%3A123%7D&hash=deadbeef")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestTelegramAuthNoIdentity(t *testing.T) {
	app := setupAuthApp(testConfig())
	raw := signInitData(t, []string{"auth_date=1700000000"}, testBotToken)
	status, _ := postTelegram(t, app, raw)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestTelegramAuthBotTokenUnset(t *testing.T) {
	app := setupAuthApp(config.Config{AppSecret: testSecret})
	status, _ := postTelegram(t, app, "anything")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
}
