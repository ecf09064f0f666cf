package phraseBot

import (
	"github.com/ViNN280801/TelegramBot/internal/bot/handlers"
	handlersMatchers "github.com/ViNN280801/TelegramBot/internal/bot/handlers/matchers"
	botKeyboards "github.com/ViNN280801/TelegramBot/internal/bot/keyboards"
	"github.com/ViNN280801/TelegramBot/internal/common/constants"
	"github.com/go-telegram/bot"
)

// RegisterHandlers wires /start and the start keyboard buttons to the controller.
func RegisterHandlers(b *bot.Bot, controller *handlers.Controller) {
	b.RegisterHandlerMatchFunc(handlersMatchers.Command(string(constants.StartCommand)), controller.Start)

	texts := controller.Texts()
	startKeyboard := botKeyboards.CreateStartReplyKeyboard(b, texts.PhraseButton, texts.ImageButton, controller.Text)
	controller.SetStartKeyboard(startKeyboard)
}
