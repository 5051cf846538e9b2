package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/promptgen/promptgen/internal/auth"
)

// RegisterAuthRoutes wires the Telegram login endpoint.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/telegram", rateLimiter, h.Telegram)
	} else {
		group.Post("/telegram", h.Telegram)
	}
}
