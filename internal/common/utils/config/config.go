package configUtils

import (
	"errors"

	configErrors "github.com/ViNN280801/TelegramBot/internal/common/errors/config"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ReadConfig reads the component config file. With optional set, a missing file is not an
// error and the values come from defaults and the environment only.
func ReadConfig(v *viper.Viper, configName string, optional bool) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if optional && errors.As(err, &notFound) {
			return nil
		}

		return &configErrors.ReadConfigError{ConfigName: configName, Err: err}
	}

	return nil
}

func LoadConfig[T any](v *viper.Viper, validate *validator.Validate, configName string) (*T, error) {
	var config T
	if err := v.Unmarshal(&config); err != nil {
		return nil, &configErrors.UnmarshalError{ConfigName: configName, Err: err}
	}

	if err := validate.Struct(config); err != nil {
		return nil, &configErrors.ValidationError{ConfigName: configName, Err: err}
	}

	return &config, nil
}
