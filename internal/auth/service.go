package auth

import (
	"errors"

	"github.com/promptgen/promptgen/internal/config"
)

var (
	// ErrBotTokenUnset indicates the server was started without BOT_TOKEN and
	// cannot verify platform signatures at all.
	ErrBotTokenUnset = errors.New("bot token not configured")

	// ErrBadSignature indicates the initData HMAC did not match.
	ErrBadSignature = errors.New("bad initData signature")

	// ErrNoIdentity indicates a verified payload carried no extractable user id.
	ErrNoIdentity = errors.New("cannot extract telegram user id")
)

// Service performs the Telegram login exchange: verify initData, extract the
// user identity, mint a session token.
type Service struct {
	cfg config.Config
}

// NewService creates an auth service bound to the process configuration.
func NewService(cfg config.Config) *Service {
	return &Service{cfg: cfg}
}

// Login validates a raw initData string and issues a session token for the
// embedded Telegram user. Extraction runs strictly after verification so the
// identity is never read from an unauthenticated payload.
func (s *Service) Login(initData string) (int64, string, error) {
	if s.cfg.BotToken == "" {
		return 0, "", ErrBotTokenUnset
	}
	if !VerifyInitData(initData, s.cfg.BotToken) {
		return 0, "", ErrBadSignature
	}
	telegramID, ok := ExtractUserID(initData)
	if !ok || telegramID == 0 {
		return 0, "", ErrNoIdentity
	}
	return telegramID, IssueToken(telegramID, s.cfg.AppSecret), nil
}
