package printk

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/cbprintf"
	"pkt.systems/cbprintf/ansi"
)

// DefaultEnvPrefix is the environment variable prefix LoggerFromEnv uses
// unless WithEnvPrefix overrides it.
const DefaultEnvPrefix = "PRINTK_"

// LoggerFromEnvOption customizes LoggerFromEnv behavior.
type LoggerFromEnvOption func(*loggerFromEnvConfig)

type loggerFromEnvConfig struct {
	prefix  string
	options Options
	writer  io.Writer
	file    *Config
}

// WithEnvPrefix overrides the environment variable prefix used by LoggerFromEnv.
func WithEnvPrefix(prefix string) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds LoggerFromEnv with explicit Options values.
func WithEnvOptions(opts Options) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter seeds LoggerFromEnv with a default output writer.
func WithEnvWriter(w io.Writer) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.writer = w
	}
}

// WithEnvConfig layers a loaded configuration file between the seeded
// Options and the environment.
func WithEnvConfig(c Config) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.file = &c
	}
}

// LoggerFromEnv builds a logger from environment variables, allowing optional
// seeded options, configuration file and writer. Precedence from lowest to
// highest is Options, Config, environment.
//
// Recognised variables are: {prefix}LEVEL, PROFILE, DISABLE_TIMESTAMP,
// NO_COLOR, FORCE_COLOR, PALETTE, MODULE and OUTPUT. OUTPUT accepts stdout,
// stderr, default, a file path, or stdout+/stderr+/default+<path> to tee.
func LoggerFromEnv(opts ...LoggerFromEnvOption) Logger {
	cfg := loggerFromEnvConfig{prefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolvedOpts := cfg.options
	baseWriter := cfg.writer
	if baseWriter == nil {
		baseWriter = os.Stdout
	}
	var problems []string
	outputValue := ""
	if cfg.file != nil {
		if err := cfg.file.apply(&resolvedOpts); err != nil {
			problems = append(problems, err.Error())
		}
		outputValue = cfg.file.Output
	}

	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		if level, ok := ParseLevel(value); ok {
			resolvedOpts.MinLevel = level
		}
	}
	if value, ok := lookupEnv(prefix, "PROFILE"); ok {
		if profile, err := cbprintf.ParseProfile(value); err == nil {
			resolvedOpts.Profile = profile
		}
	}
	if value, ok := lookupEnv(prefix, "DISABLE_TIMESTAMP"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.DisableTimestamp = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		resolvedOpts.Palette = ansi.PaletteByName(value)
	}
	if value, ok := lookupEnv(prefix, "MODULE"); ok {
		resolvedOpts.Module = strings.TrimSpace(value)
	}
	if value, ok := lookupEnv(prefix, "OUTPUT"); ok {
		outputValue = value
	}

	writer := baseWriter
	if strings.TrimSpace(outputValue) != "" {
		resolved, err := writerFromEnvOutput(outputValue, baseWriter)
		if err != nil {
			problems = append(problems, err.Error())
		} else {
			writer = resolved
		}
	}
	logger := NewWithOptions(writer, resolvedOpts)
	for _, problem := range problems {
		logger.Errorf("printk: %s", problem)
	}
	return logger
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func writerFromEnvOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil
	}
	if base == nil {
		base = io.Discard
	}
	switch strings.ToLower(trimmed) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "default":
		return base, nil
	}
	for _, tee := range [...]struct {
		prefix string
		writer io.Writer
	}{
		{"stdout+", os.Stdout},
		{"stderr+", os.Stderr},
		{"default+", base},
	} {
		if len(trimmed) < len(tee.prefix) || !strings.EqualFold(trimmed[:len(tee.prefix)], tee.prefix) {
			continue
		}
		path := strings.TrimSpace(trimmed[len(tee.prefix):])
		if path == "" {
			return tee.writer, nil
		}
		fileWriter, err := openLogOutputFile(path)
		if err != nil {
			return base, err
		}
		return newOwnedOutput(newTeeWriter(tee.writer, fileWriter), fileWriter), nil
	}
	fileWriter, err := openLogOutputFile(trimmed)
	if err != nil {
		return base, err
	}
	return newOwnedOutput(fileWriter, fileWriter), nil
}

func openLogOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", path, err)
	}
	return file, nil
}
