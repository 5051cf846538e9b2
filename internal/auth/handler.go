package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the Telegram login endpoint.
type Handler struct {
	svc *Service
}

// NewHandler builds the auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type telegramAuthRequest struct {
	InitData string `json:"initData"`
}

type telegramAuthUser struct {
	TelegramID int64 `json:"telegram_id"`
}

type telegramAuthResponse struct {
	OK    bool             `json:"ok"`
	Token string           `json:"token"`
	User  telegramAuthUser `json:"user"`
}

// Telegram exchanges a signed initData payload for a session token.
//
// A bad signature yields 401 while a verified payload without a user id
// yields 400. The split leaks which check failed; it is kept because the
// web client distinguishes the two diagnostics.
func (h *Handler) Telegram(c *fiber.Ctx) error {
	var req telegramAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	telegramID, token, err := h.svc.Login(req.InitData)
	if err != nil {
		switch {
		case errors.Is(err, ErrBotTokenUnset):
			return fiber.NewError(http.StatusInternalServerError, "BOT_TOKEN is not configured")
		case errors.Is(err, ErrBadSignature):
			return fiber.NewError(http.StatusUnauthorized, "bad initData signature")
		case errors.Is(err, ErrNoIdentity):
			return fiber.NewError(http.StatusBadRequest, "cannot extract telegram user id")
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusOK).JSON(telegramAuthResponse{
		OK:    true,
		Token: token,
		User:  telegramAuthUser{TelegramID: telegramID},
	})
}
