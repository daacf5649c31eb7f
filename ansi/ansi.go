// Package ansi provides the ANSI escape sequences and palette helpers used by
// printk's coloured console output. The exported strings can be overridden or
// swapped via SetPalette so callers can apply 16- or 256-colour schemes without
// touching printk internals.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences used by printk.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Semantic aliases describing how printk colours each part of a line.
var (
	Debug     = Green
	Info      = BrightGreen
	Warn      = BrightYellow
	Error     = BrightRed
	NoLevel   = Faint
	Timestamp = Faint
	Module    = Cyan
	Message   = ""
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette, see the Palette* variables for
// examples. Empty fields keep the current value.
type Palette struct {
	Debug     string
	Info      string
	Warn      string
	Error     string
	NoLevel   string
	Timestamp string
	Module    string
	Message   string
}

// SetPalette sets the package-level ANSI color variables exposed by this
// package. printk loggers can also select a palette explicitly through
// printk.Options.Palette.
//
//	ansi.SetPalette(ansi.PaletteSynthwave84)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	current := snapshotLocked()
	Debug = f(palette.Debug, current.Debug)
	Info = f(palette.Info, current.Info)
	Warn = f(palette.Warn, current.Warn)
	Error = f(palette.Error, current.Error)
	NoLevel = f(palette.NoLevel, current.NoLevel)
	Timestamp = f(palette.Timestamp, current.Timestamp)
	Module = f(palette.Module, current.Module)
	Message = f(palette.Message, current.Message)
}

// Snapshot returns the current ANSI palette values.
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		Debug:     Debug,
		Info:      Info,
		Warn:      Warn,
		Error:     Error,
		NoLevel:   NoLevel,
		Timestamp: Timestamp,
		Module:    Module,
		Message:   Message,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
