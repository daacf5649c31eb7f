// Command cbprintf formats its arguments like printf(1), with the conversion
// set and recovery rules of the cbprintf engine.
//
//	cbprintf [flags] FORMAT [ARG...]
//	cbprintf [flags] -batch < lines
//
// In batch mode every non-empty stdin line not starting with '#' is split
// with shell quoting rules into FORMAT and ARGs. Diagnostics go to stderr
// through printk and honour the PRINTK_* environment variables.
package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"

	"pkt.systems/cbprintf"
	"pkt.systems/cbprintf/printk"
)

const (
	exitOK    = 0
	exitError = 1
)

var errNoFormat = errors.New("missing FORMAT operand")

type cli struct {
	formatter cbprintf.Formatter
	escapes   bool
	out       *cbprintf.WriterSink
	logger    printk.Logger
	failed    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		profileName string
		escapes     bool
		count       bool
		configPath  string
		batch       bool
	)
	fs := flag.NewFlagSet("cbprintf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&profileName, "profile", "", "integer working width: full or reduced (default from -config, else full)")
	fs.BoolVar(&escapes, "escapes", false, `interpret backslash escapes such as \n, \t and \x41 in FORMAT`)
	fs.BoolVar(&count, "count", false, "print the number of bytes emitted to stderr")
	fs.StringVar(&configPath, "config", "", "YAML file with printk and profile settings")
	fs.BoolVar(&batch, "batch", false, "read FORMAT and ARGs from each stdin line")
	fs.Usage = func() {
		_, _ = cbprintf.Fprintf(fs.Output(), "usage: cbprintf [flags] FORMAT [ARG...]\n       cbprintf [flags] -batch\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	baseOpts := printk.Options{DisableTimestamp: true, Module: "cbprintf"}
	envOpts := []printk.LoggerFromEnvOption{
		printk.WithEnvWriter(stderr),
		printk.WithEnvOptions(baseOpts),
	}
	var fileCfg printk.Config
	var cfgErr error
	if configPath != "" {
		fileCfg, cfgErr = printk.LoadConfig(configPath)
		if cfgErr == nil {
			_, cfgErr = fileCfg.Options(baseOpts)
		}
		if cfgErr == nil {
			envOpts = append(envOpts, printk.WithEnvConfig(fileCfg))
		}
	}
	logger := printk.LoggerFromEnv(envOpts...)
	if closer, ok := logger.(io.Closer); ok {
		defer closer.Close()
	}
	if cfgErr != nil {
		logger.Errorf("%s", cfgErr.Error())
		return exitError
	}

	profile, err := resolveProfile(profileName, fileCfg.Profile)
	if err != nil {
		logger.Errorf("%s", err.Error())
		return exitError
	}

	observed := printk.NewObservedWriter(stdout, func(f printk.WriteFailure) {
		logger.Errorf("write output: %d of %d bytes: %s", f.Written, f.Attempted, f.Err.Error())
	})
	c := &cli{
		formatter: cbprintf.New(cbprintf.Options{Profile: profile, Count: true}),
		escapes:   escapes,
		out:       cbprintf.NewWriterSink(observed),
		logger:    logger,
	}

	var total int
	if batch {
		if fs.NArg() > 0 {
			logger.Errorf("-batch takes no operands, got %d", fs.NArg())
			return exitError
		}
		total = c.runBatch(stdin)
	} else {
		if fs.NArg() == 0 {
			logger.Errorf("%s", errNoFormat.Error())
			fs.Usage()
			return exitError
		}
		total = c.render(fs.Arg(0), fs.Args()[1:], "")
	}

	_ = c.out.Flush()
	if stats := observed.Stats(); stats.Failures > 0 {
		c.failed = true
	}
	if count {
		_, _ = cbprintf.Fprintf(stderr, "%d\n", total)
	}
	if c.failed {
		return exitError
	}
	return exitOK
}

// resolveProfile prefers the flag over the config file.
func resolveProfile(flagValue, fileValue string) (cbprintf.Profile, error) {
	for _, v := range []string{flagValue, fileValue} {
		if strings.TrimSpace(v) != "" {
			return cbprintf.ParseProfile(v)
		}
	}
	return cbprintf.ProfileFull, nil
}

// render formats one FORMAT with its words and returns the emitted count.
// where prefixes diagnostics, e.g. with a batch line number.
func (c *cli) render(format string, words []string, where string) int {
	if c.escapes {
		expanded, err := interpretEscapes(format)
		if err != nil {
			c.logger.Errorf("%s%s", where, err.Error())
			c.failed = true
			return 0
		}
		format = expanded
	}
	args := newTextArgs(words)
	n := c.formatter.Format(c.out, format, args)
	for _, err := range args.errs {
		c.logger.Errorf("%s%s", where, err.Error())
		c.failed = true
	}
	if left := args.remaining(); left > 0 {
		c.logger.Warnf("%s%d unused argument(s)", where, left)
	}
	return n
}

func (c *cli) runBatch(stdin io.Reader) int {
	total := 0
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		where := cbprintf.Sprintf("line %d: ", line)
		fields, err := shlex.Split(text)
		if err != nil {
			c.logger.Errorf("%s%s", where, err.Error())
			c.failed = true
			continue
		}
		if len(fields) == 0 {
			continue
		}
		total += c.render(fields[0], fields[1:], where)
	}
	if err := scanner.Err(); err != nil {
		c.logger.Errorf("read stdin: %s", err.Error())
		c.failed = true
	}
	return total
}
