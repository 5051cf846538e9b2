package jobs

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes job HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a job HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	JobID      string  `json:"job_id"`
	Status     string  `json:"status"`
	EchoPrompt *string `json:"echo_prompt,omitempty"`
	ResultText *string `json:"result_text,omitempty"`
}

type jobResponse struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Prompt     string  `json:"prompt"`
	CreatedAt  string  `json:"created_at"`
	ResultText *string `json:"result_text"`
}

// Generate queues a generation job for the authenticated user.
func (h *Handler) Generate(c *fiber.Ctx) error {
	telegramID, ok := c.Locals("telegram_id").(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing authenticated user")
	}

	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Enqueue(c.UserContext(), telegramID, req.Prompt)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(generateResponse{
		JobID:      job.ID,
		Status:     job.Status,
		EchoPrompt: &job.Prompt,
	})
}

// List returns the authenticated user's recent jobs.
func (h *Handler) List(c *fiber.Ctx) error {
	telegramID, ok := c.Locals("telegram_id").(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing authenticated user")
	}

	recorded, err := h.service.List(c.UserContext(), telegramID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	out := make([]jobResponse, 0, len(recorded))
	for _, job := range recorded {
		out = append(out, jobResponse{
			ID:         job.ID,
			Status:     job.Status,
			Prompt:     job.Prompt,
			CreatedAt:  job.CreatedAt.Format(time.RFC3339),
			ResultText: job.ResultText,
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}
