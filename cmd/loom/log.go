package main

import (
	"log/slog"
	"os"
)

// loomLog drops timestamps and the INFO tag so normal runs read as
// plain generator output.
var loomLog = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.TimeKey:
			return slog.Attr{}
		case slog.LevelKey:
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slog.LevelInfo {
				return slog.Attr{}
			}
		}
		return a
	},
}))
