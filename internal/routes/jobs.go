package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/promptgen/promptgen/internal/jobs"
)

// RegisterJobRoutes wires the generation job endpoints.
func RegisterJobRoutes(r fiber.Router, h *jobs.Handler) {
	r.Post("/generate", h.Generate)
	r.Get("/jobs", h.List)
}
