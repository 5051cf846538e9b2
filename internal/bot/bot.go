package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Relay is a long-polling Telegram bot whose only job is to point users at
// the mini-app front end. All real interaction happens inside the web app.
type Relay struct {
	api        *tgbot.Bot
	miniAppURL string
	logger     *slog.Logger
}

// New builds the bot against the Telegram Bot API with the given token.
func New(botToken, miniAppURL string, logger *slog.Logger) (*Relay, error) {
	r := &Relay{miniAppURL: miniAppURL, logger: logger}

	api, err := tgbot.New(botToken, tgbot.WithDefaultHandler(r.handleUpdate))
	if err != nil {
		return nil, err
	}
	r.api = api
	return r, nil
}

// Run polls for updates until the context is cancelled. Only the /start
// command is handled; everything else is ignored.
func (r *Relay) Run(ctx context.Context) error {
	r.logger.Info("bot polling started")
	r.api.Start(ctx)
	r.logger.Info("bot polling stopped")
	return ctx.Err()
}

func (r *Relay) handleUpdate(ctx context.Context, api *tgbot.Bot, update *models.Update) {
	if update.Message == nil || !strings.HasPrefix(update.Message.Text, "/start") {
		return
	}
	r.handleStart(ctx, update.Message)
}

func (r *Relay) handleStart(ctx context.Context, message *models.Message) {
	if r.miniAppURL == "" {
		r.reply(ctx, message.Chat.ID, "MINIAPP_URL is not set. Configure the mini-app front end URL.", nil)
		return
	}

	keyboard := &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{{
			{Text: "Open Mini App", WebApp: &models.WebAppInfo{URL: r.miniAppURL}},
		}},
		ResizeKeyboard: true,
	}
	r.reply(ctx, message.Chat.ID, "Open the app with the button below.", keyboard)
}

func (r *Relay) reply(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	params := &tgbot.SendMessageParams{ChatID: chatID, Text: text}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := r.api.SendMessage(ctx, params); err != nil && !errors.Is(err, context.Canceled) {
		r.logger.Warn("send reply", "error", err)
	}
}
