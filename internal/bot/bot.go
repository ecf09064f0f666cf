package phraseBot

import (
	"fmt"

	botConfig "github.com/ViNN280801/TelegramBot/configs/bot"
	"github.com/ViNN280801/TelegramBot/internal/bot/handlers"
	"github.com/ViNN280801/TelegramBot/internal/bot/middlewares"
	"github.com/ViNN280801/TelegramBot/internal/common/flags"
	"github.com/go-telegram/bot"
)

func CreateBotOptions(
	appMode flags.AppMode,
	controller *handlers.Controller,
	config *botConfig.Config,
) []bot.Option {
	options := []bot.Option{
		bot.WithCheckInitTimeout(config.InitTimeout),
		bot.WithDefaultHandler(controller.Text),
		bot.WithMiddlewares(middlewares.MessagesOnly),
		bot.WithErrorsHandler(handlers.ErrorsHandler),
	}

	if appMode == flags.AppModeDev {
		options = append(options, bot.WithDebug(), bot.WithDebugHandler(handlers.DebugHandler))
	}

	return options
}

func CreateBot(
	options []bot.Option,
	token string,
) (*bot.Bot, error) {
	b, err := bot.New(token, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot instance: %w", err)
	}

	return b, nil
}
