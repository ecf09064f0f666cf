package languages

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

const (
	BotDescriptionMessage          = "BotDescription"
	StartCommandDescriptionMessage = "StartCommandDescription"
	StartPromptMessage             = "StartPrompt"
	PhraseButtonMessage            = "PhraseButton"
	ImageButtonMessage             = "ImageButton"
	NoImagesMessage                = "NoImages"
	NetworkErrorMessage            = "NetworkError"
	GenericErrorMessage            = "GenericError"
)

// defaultMessages keep the bot usable without any catalog file.
var defaultMessages = map[string]*i18n.Message{
	BotDescriptionMessage: {
		ID:    BotDescriptionMessage,
		Other: "Бот поддержки: нажмите «Фраза», чтобы получить фразу, или «Картинка», чтобы получить картинку.",
	},
	StartCommandDescriptionMessage: {ID: StartCommandDescriptionMessage, Other: "Запустить бота"},
	StartPromptMessage:             {ID: StartPromptMessage, Other: "Бот запущен. Выберите опцию:"},
	PhraseButtonMessage:            {ID: PhraseButtonMessage, Other: "Фраза"},
	ImageButtonMessage:             {ID: ImageButtonMessage, Other: "Картинка"},
	NoImagesMessage:                {ID: NoImagesMessage, Other: "No images found in the directories."},
	NetworkErrorMessage:            {ID: NetworkErrorMessage, Other: "A network error occurred. Please try again later."},
	GenericErrorMessage: {
		ID:    GenericErrorMessage,
		Other: "An error occurred while processing your request. Please try again later.",
	},
}

// Localize returns the catalog text for messageID, falling back to the compiled-in default.
// A nil localizer always yields the default.
func Localize(localizer *i18n.Localizer, messageID string) string {
	defaultMessage := defaultMessages[messageID]

	if localizer == nil {
		if defaultMessage == nil {
			return messageID
		}

		return defaultMessage.Other
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: defaultMessage,
	})
	if err != nil {
		if defaultMessage != nil {
			return defaultMessage.Other
		}

		return messageID
	}

	return msg
}
