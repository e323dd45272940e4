package chat

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler adapts the router to the bot's default-handler slot. Every
// update flows through here so dispatch precedence lives in one place.
func (r *Router) Handler() bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil || update.Message.Text == "" {
			return
		}
		chatID := update.Message.Chat.ID

		for _, out := range r.Route(ctx, chatID, update.Message.Text) {
			params := &bot.SendMessageParams{
				ChatID: chatID,
				Text:   out.Text,
			}
			if out.Markdown {
				params.ParseMode = "Markdown"
			}
			if out.Keyboard != nil {
				params.ReplyMarkup = out.Keyboard
			}
			if _, err := b.SendMessage(ctx, params); err != nil {
				r.log.Error("send message", zap.Int64("chat_id", chatID), zap.Error(err))
			}
		}
	}
}

// LogUpdates logs inbound messages before handling.
func (r *Router) LogUpdates(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message != nil {
			r.log.Info("message",
				zap.String("from", update.Message.From.Username),
				zap.String("text", update.Message.Text))
		}
		next(ctx, b, update)
	}
}
