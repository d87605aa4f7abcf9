package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	modeAST    = "ast"
	modeTokens = "tokens"

	configEnvVar   = "MONKEY_CONFIG"
	configFileName = ".monkey.toml"
)

// Config holds driver settings loaded from TOML.
type Config struct {
	Prompt       string `toml:"prompt"`
	Mode         string `toml:"mode"`
	HistoryLimit int    `toml:"history_limit"`
	DumpFormat   string `toml:"dump_format"`
}

func defaultConfig() Config {
	return Config{
		Prompt:       ">> ",
		Mode:         modeAST,
		HistoryLimit: 100,
		DumpFormat:   formatText,
	}
}

// loadConfig reads path, or the first of $MONKEY_CONFIG and ~/.monkey.toml
// when path is empty. A missing implicit file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(configEnvVar)
		explicit = path != ""
	}
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, configFileName)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case modeAST, modeTokens:
	default:
		return fmt.Errorf("invalid mode %q (want %q or %q)", c.Mode, modeAST, modeTokens)
	}
	if !validDumpFormat(c.DumpFormat) {
		return fmt.Errorf("invalid dump_format %q", c.DumpFormat)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	return nil
}
