package printk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pkt.systems/cbprintf"
	"pkt.systems/cbprintf/ansi"
)

// ErrUnknownPalette reports a palette name the ansi catalogue does not hold.
var ErrUnknownPalette = errors.New("unknown palette")

// Config is the file form of the logger settings. Unset fields leave the
// corresponding Options value alone. The keys match the environment
// variables read by LoggerFromEnv, lower-cased:
//
//	level: warn
//	profile: reduced
//	disable_timestamp: false
//	no_color: true
//	palette: nord
//	module: uart
//	output: stderr+/var/log/console.log
type Config struct {
	Level            string `yaml:"level"`
	Profile          string `yaml:"profile"`
	DisableTimestamp *bool  `yaml:"disable_timestamp"`
	NoColor          *bool  `yaml:"no_color"`
	ForceColor       *bool  `yaml:"force_color"`
	Palette          string `yaml:"palette"`
	Module           string `yaml:"module"`
	Output           string `yaml:"output"`
}

// LoadConfig reads a YAML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig parses YAML configuration from r. An empty document yields
// the zero Config.
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	return cfg, nil
}

// Options returns opts with the fields set in c applied on top.
func (c Config) Options(opts Options) (Options, error) {
	err := c.apply(&opts)
	return opts, err
}

// apply overlays the set fields of c onto opts. Every valid field is applied
// even when another one fails; the returned error joins all failures.
func (c Config) apply(opts *Options) error {
	var errs []error
	if v := strings.TrimSpace(c.Level); v != "" {
		if level, ok := ParseLevel(v); ok {
			opts.MinLevel = level
		} else {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLevel, v))
		}
	}
	if v := strings.TrimSpace(c.Profile); v != "" {
		if profile, err := cbprintf.ParseProfile(v); err == nil {
			opts.Profile = profile
		} else {
			errs = append(errs, err)
		}
	}
	if c.DisableTimestamp != nil {
		opts.DisableTimestamp = *c.DisableTimestamp
	}
	if c.NoColor != nil {
		opts.NoColor = *c.NoColor
	}
	if c.ForceColor != nil {
		opts.ForceColor = *c.ForceColor
	}
	if v := strings.TrimSpace(c.Palette); v != "" {
		if palette, ok := ansi.LookupPalette(v); ok {
			opts.Palette = palette
		} else {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownPalette, v))
		}
	}
	if v := strings.TrimSpace(c.Module); v != "" {
		opts.Module = v
	}
	return errors.Join(errs...)
}
