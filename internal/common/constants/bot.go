package constants

type BotCommand string

const (
	StartCommand BotCommand = "/start"
)

const (
	BotTokenEnv   = "TELEGRAM_BOT_TOKEN"
	DefaultLocale = "ru"
)
