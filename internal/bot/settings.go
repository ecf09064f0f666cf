package phraseBot

import (
	"context"
	"fmt"
	"strings"

	"github.com/ViNN280801/TelegramBot/internal/common/constants"
	"github.com/ViNN280801/TelegramBot/internal/common/languages"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func SetBotDescription(ctx context.Context, b *bot.Bot, localizers []languages.LocalizersItem) error {
	for _, l := range localizers {
		ok, err := b.SetMyDescription(ctx, &bot.SetMyDescriptionParams{
			Description:  languages.Localize(l.Localizer, languages.BotDescriptionMessage),
			LanguageCode: l.Tag.String(),
		})
		if err != nil {
			return fmt.Errorf("failed to set bot description for locale: %s, error: %w", l.Tag.String(), err)
		} else if !ok {
			return fmt.Errorf("unsuccessful set bot description for locale: %s", l.Tag.String())
		}
	}

	return nil
}

func SetBotCommands(ctx context.Context, b *bot.Bot, localizers []languages.LocalizersItem) error {
	for _, l := range localizers {
		ok, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{
			Commands: []models.BotCommand{
				{
					Command:     strings.TrimPrefix(string(constants.StartCommand), "/"),
					Description: languages.Localize(l.Localizer, languages.StartCommandDescriptionMessage),
				},
			},
			LanguageCode: l.Tag.String(),
		})
		if err != nil {
			return fmt.Errorf("failed to set bot commands for locale: %s, error: %w", l.Tag.String(), err)
		} else if !ok {
			return fmt.Errorf("unsuccessful set bot commands for locale: %s", l.Tag.String())
		}
	}

	return nil
}
