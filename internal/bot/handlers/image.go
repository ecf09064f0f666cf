package handlers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

func (c *Controller) sendImage(ctx context.Context, chatID int64, user string) {
	path, ok := c.images.Random()
	if !ok {
		if _, err := c.client.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   c.texts.NoImages,
		}); err != nil {
			c.replyFailure(ctx, chatID, user, ImageButton.String(), err)
		}

		return
	}

	zap.L().Info("sending image", zap.String("path", path))

	img, err := os.Open(path)
	if err != nil {
		zap.L().Error("failed to open image",
			zap.String("user", user),
			zap.String("path", path),
			zap.Error(err),
		)
		c.sendFailureNotice(ctx, chatID, user, c.texts.GenericError)

		return
	}
	defer img.Close()

	if _, err := c.client.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo: &models.InputFileUpload{
			Filename: filepath.Base(path),
			Data:     img,
		},
	}); err != nil {
		c.replyFailure(ctx, chatID, user, ImageButton.String(), err)

		return
	}

	zap.L().Info("user requested an image",
		zap.String("user", user),
		zap.String("path", path),
	)
}
