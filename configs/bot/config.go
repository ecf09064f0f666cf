package botConfig

import (
	"fmt"
	"time"

	"github.com/ViNN280801/TelegramBot/internal/common/constants"
	configErrors "github.com/ViNN280801/TelegramBot/internal/common/errors/config"
	configUtils "github.com/ViNN280801/TelegramBot/internal/common/utils/config"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	BotToken              string        `mapstructure:"botToken" validate:"required"`
	PhrasesPath           string        `mapstructure:"phrasesPath" validate:"required"`
	ImageDirs             []string      `mapstructure:"imageDirs" validate:"required,min=1,dive,required"`
	LogsDir               string        `mapstructure:"logsDir"`
	Locale                string        `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	PhrasesReloadInterval time.Duration `mapstructure:"phrasesReloadInterval" validate:"gte=0"`
	InitTimeout           time.Duration `mapstructure:"initTimeout" validate:"gt=0"`
}

const configName = "bot"

func New(configsPath string, validate *validator.Validate) (*Config, error) {
	botViper := viper.New()
	botViper.AddConfigPath(fmt.Sprintf("%s/bot", configsPath))
	botViper.SetConfigName(configName)
	botViper.SetConfigType("yaml")

	botViper.SetDefault("phrasesPath", "resources/phrases.txt")
	botViper.SetDefault("imageDirs", []string{"resources/images"})
	botViper.SetDefault("logsDir", "logs")
	botViper.SetDefault("locale", constants.DefaultLocale)
	botViper.SetDefault("phrasesReloadInterval", 0)
	botViper.SetDefault("initTimeout", 5*time.Second)

	if err := botViper.BindEnv("botToken", constants.BotTokenEnv); err != nil {
		return nil, &configErrors.ReadConfigError{ConfigName: configName, Err: err}
	}

	if err := configUtils.ReadConfig(botViper, configName, true); err != nil {
		return nil, err
	}

	config, err := configUtils.LoadConfig[Config](botViper, validate, configName)
	if err != nil {
		return nil, err
	}

	return config, nil
}
