package printk

import (
	"io"
	"time"

	"pkt.systems/cbprintf"
	"pkt.systems/cbprintf/ansi"
)

type coreConfig struct {
	writer           io.Writer
	minLevel         Level
	forcedLevel      *Level
	includeTimestamp bool
	start            time.Time
	now              func() time.Time
	formatter        cbprintf.Formatter
	module           string
	// palette is nil when colour is off.
	palette *ansi.Palette
}

func (c coreConfig) clone() coreConfig {
	clone := c
	if c.forcedLevel != nil {
		value := *c.forcedLevel
		clone.forcedLevel = &value
	}
	return clone
}

func (c coreConfig) shouldLog(level Level) bool {
	if c.writer == nil {
		return false
	}
	effective := level
	if c.forcedLevel != nil {
		switch *c.forcedLevel {
		case Disabled:
			return false
		case NoLevel:
			effective = InfoLevel
		default:
			effective = *c.forcedLevel
		}
	}
	if effective == Disabled {
		return false
	}
	return effective >= c.minLevel
}

func (c coreConfig) currentLevel() Level {
	if c.forcedLevel != nil {
		return *c.forcedLevel
	}
	return c.minLevel
}

func (c coreConfig) uptime() time.Duration {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}

func (c *coreConfig) withMinLevel(level Level) {
	if level == NoLevel {
		value := level
		c.forcedLevel = &value
		return
	}
	c.minLevel = level
	c.forcedLevel = nil
}

func (c coreConfig) levelColor(level Level) string {
	switch level {
	case DebugLevel:
		return c.palette.Debug
	case InfoLevel:
		return c.palette.Info
	case WarnLevel:
		return c.palette.Warn
	case ErrorLevel:
		return c.palette.Error
	default:
		return c.palette.NoLevel
	}
}
