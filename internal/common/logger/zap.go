package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ViNN280801/TelegramBot/internal/common/flags"
	"go.uber.org/zap"
)

const logFileTimeLayout = "2006-01-02_15-04-05"

// LogFileName returns the per-run log file name for a process started at t.
func LogFileName(t time.Time) string {
	return fmt.Sprintf("log_%s.log", t.Format(logFileTimeLayout))
}

// SetupLogger builds the process logger. Records go to stderr and, when logsDir is set,
// to a log file created for this run.
func SetupLogger(appMode flags.AppMode, logsDir string, startedAt time.Time) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if appMode == flags.AppModeProd {
		config = zap.NewProductionConfig()
	}

	if logsDir != "" {
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory %s: %w", logsDir, err)
		}

		config.OutputPaths = append(config.OutputPaths, filepath.Join(logsDir, LogFileName(startedAt)))
	}

	return config.Build()
}
