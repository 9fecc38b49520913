// Package logging builds the application's structured logger.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the optional log file.
const (
	maxSizeMB  = 10
	maxBackups = 7
	maxAgeDays = 7
)

// New returns a JSON slog.Logger writing to stdout at the given level.
// An unknown level falls back to info.
//
// When file is non-empty, every line is also written to that file, rotated
// by size with old files compressed. The returned io.Closer releases the file
// and must be closed on shutdown; it is a no-op when file is empty.
func New(stdout io.Writer, level, file string) (*slog.Logger, io.Closer) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	out := stdout
	var closer io.Closer = nopCloser{}
	if file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(stdout, rotator)
		closer = rotator
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl}))
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
