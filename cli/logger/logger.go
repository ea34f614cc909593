// Package logger builds the service [slog.Logger] from command line options.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level  string `doc:"log from debug, info, warn or error"`
	File   string `doc:"append logs to file"`
	Format string `doc:"format logs as text or json"         default:"text"`
	Source bool   `doc:"add source file and line to logs"`
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and the log file to close on exit.
// Unusable options are reset to their default and reported in the returned logger.
func New(options *Options) (*slog.Logger, io.Closer) {
	level, ok := level(options.Level)
	if !ok {
		options.Level = ""
		logger, closer := New(options)
		logger.Warn("could not parse logger level")
		return logger, closer
	}
	opts := slog.HandlerOptions{Level: level, AddSource: options.Source}

	var (
		output io.Writer
		closer io.Closer = nopCloser{}
	)
	switch options.File {
	case "", "-":
		output = os.Stdout
	case os.DevNull:
		return slog.New(slog.DiscardHandler), closer
	default:
		file, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			options.File = ""
			logger, closer := New(options)
			logger.Warn("could not open logger file", "err", err)
			return logger, closer
		}
		output, closer = file, file
	}

	switch strings.ToLower(options.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts)), closer
	case "text":
		return slog.New(slog.NewTextHandler(output, &opts)), closer
	default:
		closer.Close() //nolint: errcheck // reopened below
		options.Format = "text"
		logger, closer := New(options)
		logger.Warn("could not parse logger format")
		return logger, closer
	}
}
