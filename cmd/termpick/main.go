// Command termpick runs one of the choosers over choices given as
// arguments or piped on stdin, and prints the selection to stdout. It
// exits 1 on cancellation, so it slots into shell pipelines:
//
//	branch=$(git branch --format='%(refname:short)' | termpick -mode filter -title Branches)
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"termpick"
	"termpick/internal/config"
	"termpick/internal/logging"
	"termpick/key"
)

func main() {
	cfg, choices, err := config.LoadArgs(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "termpick:", err)
		os.Exit(2)
	}
	if err := logging.Configure(cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "termpick:", err)
		os.Exit(2)
	}
	logging.SetTraceEnabled(cfg.Trace)

	if len(choices) == 0 && cfg.Mode != config.ModeFile {
		choices = readStdinLines()
	}
	if len(choices) == 0 && cfg.Mode != config.ModeFile {
		fmt.Fprintln(os.Stderr, "termpick: no choices given")
		os.Exit(2)
	}

	base := termpick.Config{
		Choices:     choices,
		Title:       cfg.Title,
		Header:      cfg.Header,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ExpandWidth: cfg.Expand,
		NoWrap:      cfg.NoWrap,
		Persist:     cfg.Persist,
	}
	if cfg.Theme != "" {
		base.Styles = termpick.StylePreset(cfg.Theme)
	}
	// Stdin may be the choice pipe, so read keys from the terminal
	// directly.
	if tty, err := os.Open("/dev/tty"); err == nil {
		base.Reader = key.NewTTYFile(tty)
		defer tty.Close()
	}

	switch cfg.Mode {
	case config.ModeChoose:
		exit(termpick.New(base).Run())

	case config.ModeFilter:
		exit(termpick.NewFilter(base).Run())

	case config.ModeMulti:
		res := termpick.NewMulti(termpick.MultiConfig{
			Config:      base,
			MinSelected: cfg.MinSelected,
			MaxSelected: cfg.MaxSelected,
		}).Run()
		if res.None() {
			os.Exit(1)
		}
		fmt.Println(strings.Join(res.Values, "\n"))

	case config.ModeShortcut:
		sc, err := termpick.NewShortcut(termpick.ShortcutConfig{Config: base})
		if err != nil {
			fmt.Fprintln(os.Stderr, "termpick:", err)
			os.Exit(2)
		}
		exit(sc.Run())

	case config.ModeFile:
		path := termpick.NewFile(termpick.FileConfig{
			Config:      base,
			InitialPath: cfg.Path,
			ChooseDirs:  cfg.ChooseDirs,
		}).Run()
		if path == "" {
			os.Exit(1)
		}
		fmt.Println(path)
	}
}

func exit(res termpick.Result) {
	if res.None() {
		os.Exit(1)
	}
	fmt.Println(res.Value)
}

func readStdinLines() []string {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
