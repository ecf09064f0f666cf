package botConfig

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	configErrors "github.com/ViNN280801/TelegramBot/internal/common/errors/config"
	"github.com/go-playground/validator/v10"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configsPath := t.TempDir()
	dir := filepath.Join(configsPath, "bot")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bot.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return configsPath
}

func TestNewFromFile(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	configsPath := writeConfig(t, `
botToken: "123:abc"
phrasesPath: data/phrases.txt
imageDirs:
  - img/one
  - img/two
phrasesReloadInterval: 10m
`)

	config, err := New(configsPath, validator.New())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if config.BotToken != "123:abc" {
		t.Fatalf("unexpected token %q", config.BotToken)
	}
	if config.PhrasesPath != "data/phrases.txt" {
		t.Fatalf("unexpected phrases path %q", config.PhrasesPath)
	}
	if !slices.Equal(config.ImageDirs, []string{"img/one", "img/two"}) {
		t.Fatalf("unexpected image dirs %q", config.ImageDirs)
	}
	if config.PhrasesReloadInterval != 10*time.Minute {
		t.Fatalf("unexpected reload interval %s", config.PhrasesReloadInterval)
	}
	if config.InitTimeout != 5*time.Second || config.Locale != "ru" || config.LogsDir != "logs" {
		t.Fatalf("defaults not applied: %+v", config)
	}
}

func TestNewTokenFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")

	config, err := New(t.TempDir(), validator.New())
	if err != nil {
		t.Fatalf("new without file: %v", err)
	}

	if config.BotToken != "from-env" {
		t.Fatalf("want token from env, got %q", config.BotToken)
	}
	if !slices.Equal(config.ImageDirs, []string{"resources/images"}) {
		t.Fatalf("unexpected default image dirs %q", config.ImageDirs)
	}
}

func TestNewMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	configsPath := writeConfig(t, "phrasesPath: p.txt\n")

	_, err := New(configsPath, validator.New())

	var validationErr *configErrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want validation error, got %v", err)
	}
	if fields := validationErr.Fields(); !slices.Contains(fields, "Config.BotToken: required") {
		t.Fatalf("want BotToken failure, got %q", fields)
	}
}

func TestNewBrokenYAML(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "x")
	configsPath := writeConfig(t, "imageDirs: [unterminated\n")

	_, err := New(configsPath, validator.New())

	var readErr *configErrors.ReadConfigError
	if !errors.As(err, &readErr) || readErr.ConfigName != "bot" {
		t.Fatalf("want read config error, got %v", err)
	}
}
