package printk

import (
	"strings"

	"pkt.systems/cbprintf"
	"pkt.systems/cbprintf/ansi"
)

const (
	timestampFormat = "[%02u:%02u:%02u.%03u,%03u]"
	haltNotice      = "Halting system"
)

type consoleLogger struct {
	cfg coreConfig
}

func newConsoleLogger(cfg coreConfig) *consoleLogger {
	return &consoleLogger{cfg: cfg}
}

func (l *consoleLogger) Debugf(format string, args ...any) { l.log(DebugLevel, format, args) }
func (l *consoleLogger) Infof(format string, args ...any)  { l.log(InfoLevel, format, args) }
func (l *consoleLogger) Warnf(format string, args ...any)  { l.log(WarnLevel, format, args) }
func (l *consoleLogger) Errorf(format string, args ...any) { l.log(ErrorLevel, format, args) }

func (l *consoleLogger) Logf(level Level, format string, args ...any) {
	l.log(level, format, args)
}

func (l *consoleLogger) Printk(format string, args ...any) {
	if !l.cfg.shouldLog(NoLevel) {
		return
	}
	lw := acquireLineWriter(l.cfg.writer)
	lw.args.Bind(args)
	l.cfg.formatter.Format(lw, format, &lw.args)
	lw.commit()
	releaseLineWriter(lw)
}

// Panicf renders the message once; the log line and the panic value share it.
func (l *consoleLogger) Panicf(format string, args ...any) {
	var sb strings.Builder
	l.cfg.formatter.Format(cbprintf.SinkFunc(func(c byte) { sb.WriteByte(c) }), format, cbprintf.AnyArgs(args...))
	msg := sb.String()
	l.log(ErrorLevel, "%s", []any{msg})
	l.log(ErrorLevel, haltNotice, nil)
	panic(msg)
}

func (l *consoleLogger) log(level Level, format string, args []any) {
	if !l.cfg.shouldLog(level) {
		return
	}
	lw := acquireLineWriter(l.cfg.writer)
	palette := l.cfg.palette
	if l.cfg.includeTimestamp {
		lw.stamp.set(l.cfg.uptime())
		if palette != nil {
			lw.writeString(palette.Timestamp)
		}
		l.cfg.formatter.Format(lw, timestampFormat, &lw.stamp)
		if palette != nil {
			lw.writeString(ansi.Reset)
		}
		lw.Out(' ')
	}
	if tag := levelTag(level); tag != "" {
		if palette != nil {
			lw.writeString(l.cfg.levelColor(level))
		}
		lw.Out('<')
		lw.writeString(tag)
		lw.Out('>')
		if palette != nil {
			lw.writeString(ansi.Reset)
		}
		lw.Out(' ')
	}
	if l.cfg.module != "" {
		if palette != nil {
			lw.writeString(palette.Module)
		}
		lw.writeString(l.cfg.module)
		if palette != nil {
			lw.writeString(ansi.Reset)
		}
		lw.writeString(": ")
	}
	colorMessage := palette != nil && palette.Message != ""
	if colorMessage {
		lw.writeString(palette.Message)
	}
	lw.args.Bind(args)
	l.cfg.formatter.Format(lw, format, &lw.args)
	if colorMessage {
		lw.writeString(ansi.Reset)
	}
	lw.finishLine()
	lw.commit()
	releaseLineWriter(lw)
}

func (l *consoleLogger) Module(name string) Logger {
	clone := *l
	clone.cfg = l.cfg.clone()
	clone.cfg.module = strings.TrimSpace(name)
	return &clone
}

func (l *consoleLogger) LogLevel(level Level) Logger {
	clone := *l
	clone.cfg = l.cfg.clone()
	clone.cfg.withMinLevel(level)
	return &clone
}

func (l *consoleLogger) LogLevelFromEnv(key string) Logger {
	if level, ok := LevelFromEnv(key); ok {
		return l.LogLevel(level)
	}
	return l
}

// Level reports the effective minimum level.
func (l *consoleLogger) Level() Level {
	return l.cfg.currentLevel()
}

// Close releases outputs the logger opened itself, such as files named by
// the OUTPUT environment variable. Writers supplied by the caller are left
// open.
func (l *consoleLogger) Close() error {
	return closeOutput(l.cfg.writer)
}
