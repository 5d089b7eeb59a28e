package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger. format is "console" for human-readable
// output or "json".
func newLogger(w io.Writer, cfg LogConfig) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	output := w
	if cfg.Format != "json" {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
