package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	botConfig "github.com/ViNN280801/TelegramBot/configs/bot"
	phraseBot "github.com/ViNN280801/TelegramBot/internal/bot"
	"github.com/ViNN280801/TelegramBot/internal/bot/handlers"
	"github.com/ViNN280801/TelegramBot/internal/common/flags"
	"github.com/ViNN280801/TelegramBot/internal/common/languages"
	"github.com/ViNN280801/TelegramBot/internal/common/logger"
	"github.com/ViNN280801/TelegramBot/internal/images"
	"github.com/ViNN280801/TelegramBot/internal/phrases"
	"github.com/ViNN280801/TelegramBot/internal/random"
	"github.com/ViNN280801/TelegramBot/internal/reload"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	startedAt := time.Now()

	//	Parse flags
	parsedFlags, err := flags.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(fmt.Errorf("failed to parse flags: %w", err))
	}

	//	Setup flags
	flagsConf := flags.SetupFlags(parsedFlags)

	//	Load .env, the token may also come from the real environment
	envErr := godotenv.Load()

	//	Init validator
	validate := validator.New()

	//	Init bot config
	botConf, err := botConfig.New(flagsConf.ConfigsPath, validate)
	if err != nil {
		log.Fatal(fmt.Errorf("failed to load bot config: %w", err))
	}

	//	Setup logger
	zapLogger, err := logger.SetupLogger(flagsConf.Mode, botConf.LogsDir, startedAt)
	if err != nil {
		log.Fatal(fmt.Errorf("failed to setup zap logger: %w", err))
	}
	defer zapLogger.Sync()

	zap.ReplaceGlobals(zapLogger)

	if envErr != nil {
		zap.L().Debug(".env file not loaded", zap.Error(envErr))
	}

	//	Load languages
	var localesFS fs.FS = languages.EmbeddedLocales()
	if flagsConf.LocalesPath != "" {
		localesFS = os.DirFS(flagsConf.LocalesPath)
	}

	langs, err := languages.LoadLanguages(localesFS, flagsConf.Locales)
	if err != nil {
		zap.L().Fatal("failed to load languages", zap.Error(err))
	}

	//	Load phrases
	phrasesStore, err := phrases.NewStore(botConf.PhrasesPath)
	if err != nil {
		zap.L().Fatal("failed to load phrases", zap.String("path", botConf.PhrasesPath), zap.Error(err))
	}

	picker := random.NewPicker()
	gallery := images.NewGallery(botConf.ImageDirs, picker)

	//	Create bot
	controller := handlers.NewController(
		nil,
		phrasesStore,
		gallery,
		picker,
		handlers.NewTexts(langs.GetLocalizer(botConf.Locale)),
	)

	botOptions := phraseBot.CreateBotOptions(flagsConf.Mode, controller, botConf)
	b, err := phraseBot.CreateBot(botOptions, botConf.BotToken)
	if err != nil {
		zap.L().Fatal("failed to create bot", zap.Error(err))
	}

	controller.SetClient(b)
	phraseBot.RegisterHandlers(b, controller)

	//	Init context with cancellation on system signals
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := phraseBot.SetBotDescription(ctx, b, langs.GetLocalizers()); err != nil {
		zap.L().Warn("failed to set bot description", zap.Error(err))
	}

	if err := phraseBot.SetBotCommands(ctx, b, langs.GetLocalizers()); err != nil {
		zap.L().Warn("failed to set bot commands", zap.Error(err))
	}

	//	Start phrases reload service
	var reloadService *reload.Service
	if botConf.PhrasesReloadInterval > 0 {
		reloadService = reload.NewService(phrasesStore, botConf.PhrasesReloadInterval)
		if err := reloadService.Start(ctx); err != nil {
			zap.L().Fatal("failed to start phrases reload service", zap.Error(err))
		}
	}

	//	Run bot
	zap.L().Info("starting bot",
		zap.String("phrases", botConf.PhrasesPath),
		zap.Strings("image_dirs", gallery.Dirs()),
		zap.Int("phrases_count", phrasesStore.Phrases().Len()),
	)

	b.Start(ctx)

	zap.L().Info("waiting for all processes to stop")

	if reloadService != nil {
		if err := reloadService.Stop(); err != nil {
			zap.L().Error("failed to stop phrases reload service", zap.Error(err))
		}
	}

	zap.L().Info("bot stopped")
}
