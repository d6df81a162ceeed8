package main

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"
	"tlog.app/go/errors"
)

var (
	formats    = []string{"text", "msgpack"}
	colorModes = []string{"auto", "on", "off"}
)

// config is the spvdis.toml settings. Flags given on the command line win.
type config struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	Jobs   int    `toml:"jobs"`
	Header bool   `toml:"header"`
}

func defaultConfig() config {
	return config{
		Format: "text",
		Color:  "auto",
		Header: true,
	}
}

// loadConfig overrides cfg with the keys defined in the file at path.
func loadConfig(path string, cfg *config) error {
	var file config

	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return errors.Wrap(err, "%s: parse TOML", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return errors.New("%s: unknown key %v", path, undecoded[0])
	}

	if meta.IsDefined("format") {
		cfg.Format = file.Format
	}
	if meta.IsDefined("color") {
		cfg.Color = file.Color
	}
	if meta.IsDefined("jobs") {
		cfg.Jobs = file.Jobs
	}
	if meta.IsDefined("header") {
		cfg.Header = file.Header
	}

	return nil
}

func (c config) validate() error {
	if !slices.Contains(formats, c.Format) {
		return errors.New("unknown format: %s", c.Format)
	}
	if !slices.Contains(colorModes, c.Color) {
		return errors.New("unknown color mode: %s", c.Color)
	}
	if c.Jobs < 0 {
		return errors.New("negative jobs: %d", c.Jobs)
	}

	return nil
}

// useColor resolves the color mode against the output file.
func (c config) useColor(f *os.File) bool {
	switch c.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
