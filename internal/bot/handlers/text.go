package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Text logs every plain text message and runs the flow of the button it names.
// Any other text gets no response.
func (c *Controller) Text(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	msg := update.Message
	user := userLabel(msg.From)

	if msg.Text == "" {
		zap.L().Debug("skip message without text", zap.String("user", user))

		return
	}

	if strings.HasPrefix(msg.Text, "/") {
		zap.L().Debug("skip unsupported command",
			zap.String("user", user),
			zap.String("command", msg.Text),
		)

		return
	}

	zap.L().Info("received message",
		zap.String("user", user),
		zap.String("text", msg.Text),
	)

	button, ok := c.buttons[msg.Text]
	if !ok {
		return
	}

	c.flows[button](ctx, msg.Chat.ID, user)
}
