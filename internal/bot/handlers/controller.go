package handlers

import (
	"context"
	"fmt"
	"sync/atomic"

	botKeyboards "github.com/ViNN280801/TelegramBot/internal/bot/keyboards"
	"github.com/ViNN280801/TelegramBot/internal/common/languages"
	"github.com/ViNN280801/TelegramBot/internal/phrases"
	"github.com/ViNN280801/TelegramBot/internal/random"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// TelegramClient is the part of the transport the controller sends through.
type TelegramClient interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
}

var _ TelegramClient = (*bot.Bot)(nil)

type PhraseSource interface {
	Phrases() phrases.Phrases
}

type ImageSource interface {
	Random() (string, bool)
}

type Button int

const (
	PhraseButton Button = iota + 1
	ImageButton
)

func (b Button) String() string {
	switch b {
	case PhraseButton:
		return "phrase"
	case ImageButton:
		return "image"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// Texts holds every user-visible string the controller sends or matches.
type Texts struct {
	StartPrompt  string
	PhraseButton string
	ImageButton  string
	NoImages     string
	NetworkError string
	GenericError string
}

func NewTexts(localizer *i18n.Localizer) Texts {
	return Texts{
		StartPrompt:  languages.Localize(localizer, languages.StartPromptMessage),
		PhraseButton: languages.Localize(localizer, languages.PhraseButtonMessage),
		ImageButton:  languages.Localize(localizer, languages.ImageButtonMessage),
		NoImages:     languages.Localize(localizer, languages.NoImagesMessage),
		NetworkError: languages.Localize(localizer, languages.NetworkErrorMessage),
		GenericError: languages.Localize(localizer, languages.GenericErrorMessage),
	}
}

type flowFunc func(ctx context.Context, chatID int64, user string)

type Controller struct {
	client        TelegramClient
	phrases       PhraseSource
	images        ImageSource
	picker        *random.Picker
	texts         Texts
	startKeyboard models.ReplyMarkup
	buttons       map[string]Button
	flows         map[Button]flowFunc
	started       atomic.Bool
}

func (c *Controller) Texts() Texts {
	return c.texts
}

func (c *Controller) Started() bool {
	return c.started.Load()
}

// Buttons returns the label every button is matched by.
func (c *Controller) Buttons() map[Button]string {
	labels := make(map[Button]string, len(c.buttons))
	for label, button := range c.buttons {
		labels[button] = label
	}

	return labels
}

// SetClient replaces the transport. The bot itself needs the controller's handlers, so it is set after construction.
func (c *Controller) SetClient(client TelegramClient) {
	c.client = client
}

// SetStartKeyboard replaces the reply markup sent with the start prompt. Call before the bot starts.
func (c *Controller) SetStartKeyboard(markup models.ReplyMarkup) {
	c.startKeyboard = markup
}

func NewController(
	client TelegramClient,
	phraseSource PhraseSource,
	imageSource ImageSource,
	picker *random.Picker,
	texts Texts,
) *Controller {
	c := &Controller{
		client:        client,
		phrases:       phraseSource,
		images:        imageSource,
		picker:        picker,
		texts:         texts,
		startKeyboard: botKeyboards.StartReplyMarkup(texts.PhraseButton, texts.ImageButton),
	}

	c.buttons = map[string]Button{
		texts.PhraseButton: PhraseButton,
		texts.ImageButton:  ImageButton,
	}
	c.flows = map[Button]flowFunc{
		PhraseButton: c.sendPhrase,
		ImageButton:  c.sendImage,
	}

	return c
}
