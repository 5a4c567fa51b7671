// Package logging builds the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level  string
	Format string
	// File, when set, receives a rotated copy of every log line.
	File string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to out (and File, if configured). The returned
// closer releases the rotating file and must be called on shutdown.
func New(options Options, out io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(options.Level)))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var console io.Writer = out
	if strings.EqualFold(strings.TrimSpace(options.Format), "console") {
		console = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	var closer io.Closer = nopCloser{}
	writer := console
	if path := strings.TrimSpace(options.File); path != "" {
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    20,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		writer = zerolog.MultiLevelWriter(console, rotating)
		closer = rotating
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Str("service", "cradle").Logger()
	return logger, closer, nil
}
