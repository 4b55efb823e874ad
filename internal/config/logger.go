package config

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

// InitLogger installs a JSON slog handler as the default logger. Outside
// production it also records the source location.
func InitLogger(env string) {
	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: replaceTimeAttr,
	}
	if env != "production" {
		opts.AddSource = true
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(Logger)
}

func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.String("time", a.Value.Time().Local().Format("2006-01-02 15:04:05"))
	}
	return a
}
