package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

func initLogger() {
	once.Do(func() {
		level := slog.LevelInfo
		switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
		case "DEBUG":
			level = slog.LevelDebug
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		}
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	})
}

func Debug(msg string, args ...any) {
	initLogger()
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	initLogger()
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	initLogger()
	log.Warn(msg, args...)
}

// Error accepts either ("msg", err) or ("msg", "key", value, ...) call shapes;
// a lone trailing error is promoted to an "error" attribute.
func Error(msg string, args ...any) {
	initLogger()
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			log.Error(msg, "error", err)
			return
		}
	}
	log.Error(msg, args...)
}
