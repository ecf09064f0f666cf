package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Start handles the /start command: it marks the bot as started and sends the button keyboard.
func (c *Controller) Start(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user := userLabel(update.Message.From)

	c.started.Store(true)

	if _, err := c.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        c.texts.StartPrompt,
		ReplyMarkup: c.startKeyboard,
	}); err != nil {
		c.replyFailure(ctx, chatID, user, "start", err)

		return
	}

	zap.L().Info("user started the bot", zap.String("user", user))
}
