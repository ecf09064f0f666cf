package botKeyboards

import (
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/go-telegram/ui/keyboard/reply"
)

const START_KEYBOARD_PREFIX = "start"

// StartReplyMarkup is the plain two-button keyboard sent with the start prompt.
func StartReplyMarkup(phraseButton, imageButton string) *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{Text: phraseButton},
				{Text: imageButton},
			},
		},
		ResizeKeyboard: true,
	}
}

// CreateStartReplyKeyboard registers onButton for both button labels and returns their keyboard.
func CreateStartReplyKeyboard(b *bot.Bot, phraseButton, imageButton string, onButton bot.HandlerFunc) *reply.ReplyKeyboard {
	return reply.New(b, reply.ResizableKeyboard(), reply.WithPrefix(START_KEYBOARD_PREFIX)).
		Row().
		Button(phraseButton, b, bot.MatchTypeExact, onButton).
		Button(imageButton, b, bot.MatchTypeExact, onButton)
}
