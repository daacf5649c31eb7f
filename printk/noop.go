package printk

import "pkt.systems/cbprintf"

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)           {}
func (noopLogger) Infof(string, ...any)            {}
func (noopLogger) Warnf(string, ...any)            {}
func (noopLogger) Errorf(string, ...any)           {}
func (noopLogger) Logf(Level, string, ...any)      {}
func (noopLogger) Printk(string, ...any)           {}
func (n noopLogger) Module(string) Logger          { return n }
func (n noopLogger) LogLevel(Level) Logger         { return n }
func (n noopLogger) LogLevelFromEnv(string) Logger { return n }

// Panicf does not log but still panics with the formatted message.
func (noopLogger) Panicf(format string, args ...any) {
	panic(cbprintf.Sprintf(format, args...))
}
