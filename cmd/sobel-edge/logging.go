package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// logLevelEnv is read when --log-level is not given.
const logLevelEnv = "SOBEL_EDGE_LOG_LEVEL"

// logConfig selects the level and encoding of diagnostic output.
type logConfig struct {
	Level  string
	Format string
}

// resolveLevel picks the flag value, then the environment, then "info".
func (c logConfig) resolveLevel() string {
	if c.Level != "" {
		return c.Level
	}
	if env := os.Getenv(logLevelEnv); env != "" {
		return env
	}
	return "info"
}

// newLogger builds the process logger. Output goes to w, which is stderr in
// practice since stdout carries MCP traffic when serving.
func newLogger(c logConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.resolveLevel()))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}

	switch c.Format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q: want console or json", c.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
