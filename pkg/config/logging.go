package config

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

var levelStrings = map[slog.Level]string{
	slog.LevelDebug: "\033[2mDEBUG",
	slog.LevelInfo:  "\033[1mINFO ",
	slog.LevelWarn:  "\033[1;38;5;185mWARN ",
	slog.LevelError: "\033[1;31mERROR",
}

// SetLoggingHandler installs the default slog handler: tint when color is wanted, plain text otherwise.
func SetLoggingHandler(level slog.Level, color bool) {
	var h slog.Handler
	if color {
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if level, ok := a.Value.Any().(slog.Level); ok && a.Key == slog.LevelKey && len(groups) == 0 {
					a.Value = slog.StringValue(levelStrings[level] + "\033[0m")
				}
				if a.Key == "err" && a.Value.Any() == nil {
					// Drop nil error.
					return slog.Attr{}
				}
				return a
			},
			TimeFormat: "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(h))
}
