// Package printk is a levelled console logger whose lines are rendered by the
// cbprintf engine. Every line is assembled in a pooled fixed-size buffer that
// is itself a cbprintf.Sink, so a log call costs no heap allocation once the
// caller has built its argument slice.
//
// A line looks like
//
//	[00:00:01.250,017] <inf> uart: rx overrun on port 2
//
// where the bracketed stamp is the uptime of the logger, the tag is the
// severity and the module part is present only for loggers derived with
// Module.
package printk

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"pkt.systems/cbprintf"
	"pkt.systems/cbprintf/ansi"
)

// Logger is the main interface of printk. Format strings follow the cbprintf
// conversion set (%d %i %u %x %X %p %s %c %% with flags, width, precision and
// the h hh l ll z length modifiers).
type Logger interface {
	// Debugf logs at DebugLevel.
	Debugf(format string, args ...any)
	// Infof logs at InfoLevel.
	Infof(format string, args ...any)
	// Warnf logs at WarnLevel.
	Warnf(format string, args ...any)
	// Errorf logs at ErrorLevel.
	Errorf(format string, args ...any)
	// Logf logs at level.
	Logf(level Level, format string, args ...any)
	// Printk writes the formatted message as is, without stamp, tag or
	// trailing newline.
	Printk(format string, args ...any)
	// Panicf logs the message and a halt notice at ErrorLevel, then panics
	// with the formatted message.
	Panicf(format string, args ...any)

	// Module returns a logger that prefixes every message with name.
	Module(name string) Logger

	// LogLevel returns a logger derived from the receiver whose minimum level
	// is set to level. The receiver itself is not modified.
	LogLevel(Level) Logger

	// LogLevelFromEnv configures the logger's level using the value of key in
	// the environment. Missing or invalid values leave the logger unchanged.
	LogLevelFromEnv(key string) Logger
}

// Level defines log levels.
type Level int8

const (
	// DebugLevel defines debug log level.
	DebugLevel Level = iota
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// NoLevel logs without a severity tag.
	NoLevel
	// Disabled disables the logger.
	Disabled
)

// ErrUnknownLevel reports a level name ParseLevel does not recognise.
var ErrUnknownLevel = errors.New("unknown level")

// ParseLevel converts a textual level into a Level value. It accepts
// "debug", "info", "warn", "warning", "error", their three-letter tags
// "dbg", "inf", "wrn", "err", and "none", "no", "nolevel", "disabled",
// "disable", "off" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug", "dbg":
		return DebugLevel, true
	case "info", "inf":
		return InfoLevel, true
	case "warn", "warning", "wrn":
		return WarnLevel, true
	case "error", "err":
		return ErrorLevel, true
	case "no", "nolevel", "none":
		return NoLevel, true
	case "disabled", "disable", "off":
		return Disabled, true
	default:
		return InfoLevel, false
	}
}

// LevelString returns the canonical string representation of a Level.
func LevelString(level Level) string {
	switch level {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case NoLevel:
		return "nolevel"
	case Disabled:
		return "disabled"
	default:
		return "info"
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return InfoLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return InfoLevel, false
	}
	return ParseLevel(value)
}

// levelTag is the three-letter tag printed between angle brackets.
func levelTag(level Level) string {
	switch level {
	case DebugLevel:
		return "dbg"
	case InfoLevel:
		return "inf"
	case WarnLevel:
		return "wrn"
	case ErrorLevel:
		return "err"
	default:
		return ""
	}
}

// Options controls how a printk logger formats and filters output.
type Options struct {
	// Profile selects the cbprintf working width used to render messages.
	Profile cbprintf.Profile

	// MinLevel sets the minimum level the logger will emit. Defaults to Debug.
	MinLevel Level

	// DisableTimestamp drops the uptime stamp entirely.
	DisableTimestamp bool

	// NoColor forces colour escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// destination is not a TTY.
	ForceColor bool

	// Palette overrides the ANSI palette for coloured output. When nil,
	// printk uses the ansi package palette in effect at construction, see
	// ansi.SetPalette.
	Palette *ansi.Palette

	// Module tags every line, like Logger.Module does.
	Module string
}

// New constructs a logger writing to w with default options.
func New(w io.Writer) Logger {
	return NewWithOptions(w, Options{})
}

// NewWithOptions builds a logger with explicit settings.
func NewWithOptions(w io.Writer, opts Options) Logger {
	return buildLogger(w, opts)
}

type loggerContextKey struct{}

// ContextWithLogger returns a child context carrying logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext extracts a Logger from context if present or returns a
// logger that discards everything.
func LoggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return noopLogger{}
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(Logger); ok && logger != nil {
		return logger
	}
	return noopLogger{}
}

// Ctx is short for LoggerFromContext.
func Ctx(ctx context.Context) Logger {
	return LoggerFromContext(ctx)
}

// LogLogger wraps a Logger into a stdlib *log.Logger. Lines starting with a
// level word or tag ("[warn] ...", "err: ...") are logged at that level,
// everything else at InfoLevel.
func LogLogger(logger Logger) *log.Logger {
	if logger == nil {
		logger = noopLogger{}
	}
	return log.New(loggerWriter{logger: logger}, "", 0)
}

// LogLoggerWithLevel wraps a Logger into a stdlib *log.Logger that pins every
// emitted entry to level.
func LogLoggerWithLevel(logger Logger, level Level) *log.Logger {
	if logger == nil {
		logger = noopLogger{}
	}
	return log.New(levelPinnedWriter{logger: logger, level: level}, "", 0)
}

func buildLogger(w io.Writer, opts Options) Logger {
	if w == nil {
		w = io.Discard
	}
	colorEnabled := !opts.NoColor && (opts.ForceColor || isTerminal(w))
	cfg := coreConfig{
		writer:           w,
		minLevel:         opts.MinLevel,
		includeTimestamp: !opts.DisableTimestamp,
		start:            time.Now(),
		now:              time.Now,
		formatter:        cbprintf.New(cbprintf.Options{Profile: opts.Profile}),
		module:           strings.TrimSpace(opts.Module),
	}
	if colorEnabled {
		cfg.palette = resolvePaletteOption(opts.Palette)
	}
	return newConsoleLogger(cfg)
}

func resolvePaletteOption(palette *ansi.Palette) *ansi.Palette {
	if palette != nil {
		return palette
	}
	current := ansi.Snapshot()
	return &current
}

func classifyLineLevel(line string) (Level, string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "<") {
		if end := strings.IndexAny(trimmed, "]>"); end > 1 {
			if lvl, ok := ParseLevel(trimmed[1:end]); ok {
				return lvl, strings.TrimSpace(trimmed[end+1:])
			}
		}
	}
	lowered := strings.ToLower(trimmed)
	trimTail := func(prefixLen int) string {
		tail := strings.TrimLeft(trimmed[prefixLen:], ":- ")
		return strings.TrimSpace(tail)
	}
	for _, candidate := range [...]struct {
		word  string
		level Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
	} {
		if strings.HasPrefix(lowered, candidate.word) {
			return candidate.level, trimTail(len(candidate.word))
		}
	}
	return InfoLevel, trimmed
}

type loggerWriter struct {
	logger Logger
}

func (w loggerWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(bytes.TrimRight(line, "\r")))
		if trimmed == "" {
			continue
		}
		level, msg := classifyLineLevel(trimmed)
		w.logger.Logf(level, "%s", msg)
	}
	return len(p), nil
}

type levelPinnedWriter struct {
	logger Logger
	level  Level
}

func (w levelPinnedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		line = bytes.TrimSpace(bytes.TrimSuffix(line, []byte{'\r'}))
		if len(line) == 0 {
			continue
		}
		w.logger.Logf(w.level, "%s", string(line))
	}
	return len(p), nil
}
