package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/promptgen/promptgen/internal/auth"
	"github.com/promptgen/promptgen/internal/config"
)

// TelegramIDKey is the locals key under which the authenticated Telegram user
// id (int64) is stored for downstream handlers.
const TelegramIDKey = "telegram_id"

const bearerPrefix = "Bearer "

// BearerAuth returns a middleware that resolves the Authorization header to a
// verified Telegram user id. Missing header, malformed token and signature
// mismatch all collapse into a single 401 so the response does not reveal
// which check failed.
func BearerAuth(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authz, bearerPrefix) {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		token := strings.TrimSpace(authz[len(bearerPrefix):])

		telegramID, ok := auth.VerifyToken(token, cfg.AppSecret)
		if !ok || telegramID == 0 {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		c.Locals(TelegramIDKey, telegramID)
		return c.Next()
	}
}
