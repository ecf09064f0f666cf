package middlewares

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// MessagesOnly drops updates that carry no message from a user.
func MessagesOnly(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil || update.Message.From == nil {
			zap.L().Debug("skip update without user message", zap.Int64("update_id", update.ID))

			return
		}

		next(ctx, b, update)
	}
}
