// Package config holds the command line and environment settings of
// the termpick binary. Flags win over environment variables; both win
// over the defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Modes the binary can run a chooser in.
const (
	ModeChoose   = "choose"
	ModeFilter   = "filter"
	ModeMulti    = "multi"
	ModeShortcut = "shortcut"
	ModeFile     = "file"
)

type Config struct {
	Mode  string
	Theme string

	Title  string
	Header string

	Width  int
	Height int
	Expand bool
	NoWrap bool

	Persist bool

	// Multi mode bounds.
	MinSelected int
	MaxSelected int

	// File mode.
	Path       string
	ChooseDirs bool

	LogFile string
	Trace   bool
}

// LoadArgs parses the given argument list, applying TERMPICK_*
// environment defaults first.
func LoadArgs(args []string) (Config, []string, error) {
	cfg := Config{
		Mode:    envOr("TERMPICK_MODE", ModeChoose),
		Theme:   envOr("TERMPICK_THEME", ""),
		LogFile: envOr("TERMPICK_LOG_FILE", ""),
		Width:   envInt("TERMPICK_WIDTH", 0),
		Height:  envInt("TERMPICK_HEIGHT", 0),
		Trace:   envBool("TERMPICK_TRACE", false),
	}

	fs := flag.NewFlagSet("termpick", flag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "chooser mode: choose, filter, multi, shortcut, file")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "style preset: ocean, forest, matrix, cyberpunk, classic")
	fs.StringVar(&cfg.Title, "title", "", "panel title")
	fs.StringVar(&cfg.Header, "header", "", "header text")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "fixed content width (0 = auto)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "fixed frame height (0 = auto)")
	fs.BoolVar(&cfg.Expand, "expand", false, "expand to the full terminal width")
	fs.BoolVar(&cfg.NoWrap, "no-wrap", false, "stop at the list edges instead of wrapping")
	fs.BoolVar(&cfg.Persist, "persist", false, "leave the final frame on screen")
	fs.IntVar(&cfg.MinSelected, "min", 0, "multi mode: minimum selections")
	fs.IntVar(&cfg.MaxSelected, "max", 0, "multi mode: maximum selections")
	fs.StringVar(&cfg.Path, "path", "", "file mode: starting path")
	fs.BoolVar(&cfg.ChooseDirs, "dirs", false, "file mode: choose a directory")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write diagnostics to this file")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "log trace events (needs -log-file)")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate rejects settings the binary cannot run with.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeChoose, ModeFilter, ModeMulti, ModeShortcut, ModeFile:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must not be negative")
	}
	if c.MinSelected < 0 || c.MaxSelected < 0 {
		return fmt.Errorf("min and max must not be negative")
	}
	if c.MaxSelected > 0 && c.MinSelected > c.MaxSelected {
		return fmt.Errorf("min %d exceeds max %d", c.MinSelected, c.MaxSelected)
	}
	return nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
