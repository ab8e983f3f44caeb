package polyzero

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/msgstore/deployer/pkg/polylog"
)

const (
	// DebugLevel logs are voluminous and usually only useful when diagnosing
	// a failed transaction.
	DebugLevel = Level(zerolog.DebugLevel)
	// InfoLevel is the default logging priority.
	InfoLevel = Level(zerolog.InfoLevel)
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = Level(zerolog.WarnLevel)
	// ErrorLevel logs are high-priority.
	ErrorLevel = Level(zerolog.ErrorLevel)
)

var _ polylog.Level = Level(0)

// Level implements the polylog.Level interface for zerolog levels.
type Level int

// Levels returns all supported levels, lowest first.
func Levels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// ParseLevel converts a level string (debug|info|warn|error) into a Level.
// Unknown strings yield InfoLevel.
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// String implements polylog.Level#String().
func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

// Int implements polylog.Level#Int().
func (lvl Level) Int() int {
	return int(lvl)
}
