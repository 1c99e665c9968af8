package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

const (
	defaultLogLevel = "info"
	defaultIndent   = 2
	maxIndent       = 8
)

// config is the file-backed runtime configuration of the binary. The
// engine registries take no configuration; these knobs only shape
// logging and output.
type config struct {
	LogLevel string `toml:"log_level"`
	Pretty   bool   `toml:"pretty"`
	Indent   int    `toml:"indent"`
	Style    string `toml:"style"`
}

func defaultConfig() config {
	return config{
		LogLevel: defaultLogLevel,
		Pretty:   false,
		Indent:   defaultIndent,
		Style:    "",
	}
}

// loadConfig decodes path over the defaults. Keys absent from the file
// keep their default values, so a partial file is always valid.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = raw.LogLevel
	}
	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}
	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}
	if meta.IsDefined("style") {
		cfg.Style = raw.Style
	}
	return cfg, nil
}

func (c config) validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	if c.Indent < 0 || c.Indent > maxIndent {
		return fmt.Errorf("config: indent %d outside 0..%d", c.Indent, maxIndent)
	}
	return nil
}
