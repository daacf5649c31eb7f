package ansi

import (
	"sort"
	"strings"
)

// Built-in palettes. PaletteDefault mirrors the initial package variables.
var (
	PaletteDefault = Palette{
		Debug:     Green,
		Info:      BrightGreen,
		Warn:      BrightYellow,
		Error:     BrightRed,
		NoLevel:   Faint,
		Timestamp: Faint,
		Module:    Cyan,
	}

	PaletteDracula = Palette{
		Debug:     "\x1b[38;5;117m",
		Info:      "\x1b[38;5;84m",
		Warn:      "\x1b[38;5;228m",
		Error:     "\x1b[1;38;5;203m",
		NoLevel:   "\x1b[38;5;61m",
		Timestamp: "\x1b[38;5;61m",
		Module:    "\x1b[38;5;212m",
		Message:   "\x1b[38;5;255m",
	}

	PaletteNord = Palette{
		Debug:     "\x1b[38;5;110m",
		Info:      "\x1b[38;5;108m",
		Warn:      "\x1b[38;5;222m",
		Error:     "\x1b[1;38;5;174m",
		NoLevel:   "\x1b[38;5;60m",
		Timestamp: "\x1b[38;5;60m",
		Module:    "\x1b[38;5;109m",
		Message:   "\x1b[38;5;254m",
	}

	PaletteGruvbox = Palette{
		Debug:     "\x1b[38;5;109m",
		Info:      "\x1b[38;5;142m",
		Warn:      "\x1b[38;5;214m",
		Error:     "\x1b[1;38;5;167m",
		NoLevel:   "\x1b[38;5;245m",
		Timestamp: "\x1b[38;5;245m",
		Module:    "\x1b[38;5;175m",
		Message:   "\x1b[38;5;223m",
	}

	PaletteSolarizedDark = Palette{
		Debug:     "\x1b[38;5;33m",
		Info:      "\x1b[38;5;64m",
		Warn:      "\x1b[38;5;136m",
		Error:     "\x1b[1;38;5;160m",
		NoLevel:   "\x1b[38;5;240m",
		Timestamp: "\x1b[38;5;240m",
		Module:    "\x1b[38;5;37m",
		Message:   "\x1b[38;5;245m",
	}

	PaletteTokyoNight = Palette{
		Debug:     "\x1b[38;5;111m",
		Info:      "\x1b[38;5;149m",
		Warn:      "\x1b[38;5;179m",
		Error:     "\x1b[1;38;5;204m",
		NoLevel:   "\x1b[38;5;59m",
		Timestamp: "\x1b[38;5;59m",
		Module:    "\x1b[38;5;141m",
		Message:   "\x1b[38;5;189m",
	}

	PaletteSynthwave84 = Palette{
		Debug:     "\x1b[38;5;81m",
		Info:      "\x1b[38;5;48m",
		Warn:      "\x1b[38;5;227m",
		Error:     "\x1b[1;38;5;197m",
		NoLevel:   "\x1b[38;5;97m",
		Timestamp: "\x1b[38;5;97m",
		Module:    "\x1b[38;5;213m",
		Message:   "\x1b[38;5;231m",
	}

	// PaletteMonochrome only varies intensity, for terminals where hue is
	// unreadable.
	PaletteMonochrome = Palette{
		Debug:     Faint,
		Info:      Gray,
		Warn:      Bold,
		Error:     BrightWhite,
		NoLevel:   Faint,
		Timestamp: Faint,
		Module:    Gray,
	}
)

var namedPalettes = map[string]*Palette{
	"default":        &PaletteDefault,
	"dracula":        &PaletteDracula,
	"nord":           &PaletteNord,
	"gruvbox":        &PaletteGruvbox,
	"solarized-dark": &PaletteSolarizedDark,
	"tokyo-night":    &PaletteTokyoNight,
	"synthwave-84":   &PaletteSynthwave84,
	"monochrome":     &PaletteMonochrome,
}

var paletteAliases = map[string]string{
	"doom-dracula":  "dracula",
	"doomdracula":   "dracula",
	"doom-nord":     "nord",
	"doomnord":      "nord",
	"doom-gruvbox":  "gruvbox",
	"doomgruvbox":   "gruvbox",
	"solarizeddark": "solarized-dark",
	"solarized":     "solarized-dark",
	"tokyonight":    "tokyo-night",
	"synthwave84":   "synthwave-84",
	"mono":          "monochrome",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support compatibility aliases. Unknown
// names resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette
	}
	return &PaletteDefault
}

// LookupPalette is PaletteByName for callers that must reject unknown names.
func LookupPalette(name string) (*Palette, bool) {
	normalized := normalizePaletteName(name)
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	palette, ok := namedPalettes[normalized]
	return palette, ok
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
