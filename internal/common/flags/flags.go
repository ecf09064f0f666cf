package flags

import (
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

const (
	APP_MODE_FLAG     = "mode"
	CONFIGS_FLAG      = "configs"
	LOCALES_PATH_FLAG = "locales_path"
	LOCALES_FLAG      = "locales"
)

type AppMode string

const (
	AppModeDev  AppMode = "dev"
	AppModeProd AppMode = "prod"
)

func checkAppMode(newMode string) AppMode {
	switch newMode {
	case string(AppModeProd):
		return AppModeProd
	default:
		return AppModeDev
	}
}

type ParsedFlags struct {
	AppMode     *string
	ConfigsPath *string
	LocalesPath *string
	Locales     *Locales
}

type FlagsConfig struct {
	Mode        AppMode
	ConfigsPath string
	// LocalesPath is empty when the embedded message catalog should be used.
	LocalesPath string
	Locales     Locales
}

func ParseFlags(name string, args []string) (*ParsedFlags, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	appModeFlag := fs.String(APP_MODE_FLAG, string(AppModeDev), "application mode (dev|prod)")
	configsPathFlag := fs.String(CONFIGS_FLAG, "configs", "configs path")
	localesPathFlag := fs.String(LOCALES_PATH_FLAG, "", "message catalog path, embedded catalog when empty")
	var localesFlag Locales
	fs.Var(&localesFlag, LOCALES_FLAG, "comma-separated list of catalog locales")

	parsedFlags := &ParsedFlags{
		AppMode:     appModeFlag,
		ConfigsPath: configsPathFlag,
		LocalesPath: localesPathFlag,
		Locales:     &localesFlag,
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return parsedFlags, nil
}

func SetupFlags(parsedFlags *ParsedFlags) *FlagsConfig {
	appMode := AppModeDev
	configsPath := "configs"
	localesPath := ""
	locales := Locales{language.Russian}

	if parsedFlags.AppMode != nil {
		appMode = checkAppMode(*parsedFlags.AppMode)
	}

	if parsedFlags.ConfigsPath != nil {
		configsPath = *parsedFlags.ConfigsPath
	}

	if parsedFlags.LocalesPath != nil {
		localesPath = *parsedFlags.LocalesPath
	}

	if parsedFlags.Locales != nil && len(*parsedFlags.Locales) > 0 {
		locales = *parsedFlags.Locales
	}

	return &FlagsConfig{
		Mode:        appMode,
		ConfigsPath: configsPath,
		LocalesPath: localesPath,
		Locales:     locales,
	}
}
