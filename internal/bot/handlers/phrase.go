package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func (c *Controller) sendPhrase(ctx context.Context, chatID int64, user string) {
	phrase := c.picker.Phrase(c.phrases.Phrases())

	if _, err := c.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   phrase,
	}); err != nil {
		c.replyFailure(ctx, chatID, user, PhraseButton.String(), err)

		return
	}

	zap.L().Info("user requested the phrase",
		zap.String("user", user),
		zap.String("phrase", phrase),
	)
}
