package payments

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the payment-link endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	ProductID string `json:"productId"`
}

// Create returns a checkout URL for the authenticated user and product.
func (h *Handler) Create(c *fiber.Ctx) error {
	telegramID, ok := c.Locals("telegram_id").(int64)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing authenticated user")
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	checkoutURL, err := h.service.CheckoutURL(req.ProductID, telegramID)
	if err != nil {
		if errors.Is(err, ErrMissingProduct) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"url": checkoutURL})
}
