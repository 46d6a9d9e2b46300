// Package logging configures the application wide slog loggers.
package logging

import (
	"log/slog"
	"os"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
	"gopkg.in/natefinch/lumberjack.v2"
)

var fileLogger *lumberjack.Logger

// Init sets up the default logger: human readable text on stderr and,
// when file logging is enabled, structured JSON through a rotating file.
func Init(settings *conf.Settings) {
	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}

	consoleHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	if !settings.Log.Enabled {
		slog.SetDefault(slog.New(consoleHandler))
		return
	}

	fileLogger = &lumberjack.Logger{
		Filename: settings.Log.Path,
		MaxSize:  settings.Log.MaxSize,
		MaxAge:   settings.Log.MaxAge,
		Compress: true,
	}
	fileHandler := slog.NewJSONHandler(fileLogger, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(newTeeHandler(consoleHandler, fileHandler)))
}

// Close flushes and closes the rotating log file if one was opened.
func Close() error {
	if fileLogger == nil {
		return nil
	}
	return fileLogger.Close()
}

// ForModule returns a logger scoped to a module name.
func ForModule(name string) *slog.Logger {
	return slog.Default().With("module", name)
}
