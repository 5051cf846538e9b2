package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/promptgen/promptgen/internal/payments"
)

// RegisterPaymentRoutes wires the payment-link endpoint.
func RegisterPaymentRoutes(r fiber.Router, h *payments.Handler) {
	group := r.Group("/payments")
	group.Post("/create", h.Create)
}
