package flags

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSetupFlagsDefaults(t *testing.T) {
	parsed, err := ParseFlags("bot", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	conf := SetupFlags(parsed)
	if conf.Mode != AppModeDev || conf.ConfigsPath != "configs" || conf.LocalesPath != "" {
		t.Fatalf("unexpected defaults: %+v", conf)
	}
	if len(conf.Locales) != 1 || conf.Locales[0] != language.Russian {
		t.Fatalf("unexpected default locales %v", conf.Locales)
	}
}

func TestSetupFlagsValues(t *testing.T) {
	parsed, err := ParseFlags("bot", []string{
		"--mode", "prod",
		"--configs", "/etc/bot",
		"--locales_path", "locales",
		"--locales", "ru, en",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	conf := SetupFlags(parsed)
	if conf.Mode != AppModeProd || conf.ConfigsPath != "/etc/bot" || conf.LocalesPath != "locales" {
		t.Fatalf("unexpected flags: %+v", conf)
	}
	if conf.Locales.String() != "ru,en" {
		t.Fatalf("unexpected locales %q", conf.Locales.String())
	}
}

func TestUnknownModeFallsBackToDev(t *testing.T) {
	parsed, err := ParseFlags("bot", []string{"--mode", "staging"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if conf := SetupFlags(parsed); conf.Mode != AppModeDev {
		t.Fatalf("want dev mode, got %s", conf.Mode)
	}
}

func TestInvalidLocale(t *testing.T) {
	if _, err := ParseFlags("bot", []string{"--locales", "not a tag!"}); err == nil {
		t.Fatal("want error for invalid locale")
	}
}

func TestLocalesSkipBlankAndRepeated(t *testing.T) {
	var locales Locales
	if err := locales.Set(" ru,, en ,ru"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if locales.String() != "ru,en" {
		t.Fatalf("want ru,en, got %q", locales.String())
	}
	if locales[0] != language.Russian || locales[1] != language.English {
		t.Fatalf("unexpected tags %v", locales)
	}
}
