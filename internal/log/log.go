package log

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name. The second return value reports
// whether s named a known level; unknown names map to LevelInfo.
func LevelFromString(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO", "":
		return LevelInfo, true
	case "ERROR":
		return LevelError, true
	case "NONE":
		return LevelNone, true
	default:
		return LevelInfo, false
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

type Logger struct {
	zl    zerolog.Logger
	level Level
}

// New returns a logger writing JSON lines to out.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		zl:    zerolog.New(out).Level(level.zerolog()).With().Timestamp().Logger(),
		level: level,
	}
}

// NewConsole returns a logger with human readable output, for terminals.
func NewConsole(out io.Writer, level Level) *Logger {
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	return &Logger{
		zl:    zerolog.New(w).Level(level.zerolog()).With().Timestamp().Logger(),
		level: level,
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warnf is shown at Info level or higher.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Err logs err with a message at error level.
func (l *Logger) Err(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.zl = l.zl.Level(level.zerolog())
}

func (l *Logger) Level() Level {
	return l.level
}
