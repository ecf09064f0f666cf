package handlers

import (
	"context"
	"errors"
	"net"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

type failureKind int

const (
	genericFailure failureKind = iota
	networkFailure
)

func classifyFailure(err error) failureKind {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return networkFailure
	}

	return genericFailure
}

// replyFailure logs a failed interaction and tells the user about it. Nothing is retried.
func (c *Controller) replyFailure(ctx context.Context, chatID int64, user, action string, err error) {
	if errors.Is(err, context.Canceled) {
		zap.L().Warn("interaction canceled",
			zap.String("user", user),
			zap.String("action", action),
		)

		return
	}

	if classifyFailure(err) == networkFailure {
		zap.L().Error("network error",
			zap.String("user", user),
			zap.String("action", action),
			zap.Error(err),
		)
		c.sendFailureNotice(ctx, chatID, user, c.texts.NetworkError)

		return
	}

	zap.L().Error("telegram error",
		zap.String("user", user),
		zap.String("action", action),
		zap.Error(err),
	)
	c.sendFailureNotice(ctx, chatID, user, c.texts.GenericError)
}

func (c *Controller) sendFailureNotice(ctx context.Context, chatID int64, user, text string) {
	if _, err := c.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		zap.L().Error("failed to send failure notice",
			zap.String("user", user),
			zap.Error(err),
		)
	}
}

// ErrorsHandler receives transport errors outside any handler, mostly failed polling.
func ErrorsHandler(err error) {
	switch {
	case errors.Is(err, context.Canceled):
		zap.L().Debug("polling stopped", zap.Error(err))
	case classifyFailure(err) == networkFailure:
		zap.L().Warn("telegram unreachable", zap.Error(err))
	default:
		zap.L().Error("bot error", zap.Error(err))
	}
}

func DebugHandler(format string, args ...any) {
	zap.L().Sugar().Debugf(format, args...)
}
