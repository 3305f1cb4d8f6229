// Package logging provides structured logging for the customs CLI using bolt.
package logging

import (
	"io"
	"os"

	"github.com/felixgeelhaar/bolt/v3"
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string

	// Output is the output destination. Nil means stderr.
	Output io.Writer
}

// DefaultConfig returns console logging at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// Levels lists the accepted level names.
func Levels() []string { return []string{"trace", "debug", "info", "warn", "error"} }

// ValidLevel reports whether s names a level.
func ValidLevel(s string) bool {
	for _, l := range Levels() {
		if l == s {
			return true
		}
	}
	return false
}

// parseLevel converts a string level to bolt.Level.
func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// New builds a logger from config.
func New(config Config) *bolt.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var handler bolt.Handler
	if config.Format == "json" {
		handler = bolt.NewJSONHandler(output)
	} else {
		handler = bolt.NewConsoleHandler(output)
	}

	return bolt.New(handler).SetLevel(parseLevel(config.Level))
}
