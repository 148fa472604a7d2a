package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/itsjohncs/addlink/internal/insert"
)

// Config captures the user editable settings passed with --config.
type Config struct {
	AfterLine int    `toml:"after_line"`
	Marker    string `toml:"marker"`
	Mode      string `toml:"mode"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Default returns the settings used when no file is present.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.AfterLine == 0 {
		c.AfterLine = insert.DefaultAfter
	}
	if c.Marker == "" {
		c.Marker = insert.DefaultMarker
	}
	if c.Mode == "" {
		c.Mode = string(insert.ModeStream)
	} else {
		c.Mode = strings.ToLower(c.Mode)
	}
}

// Validate ensures the configuration can drive an insertion.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.AfterLine, validation.Min(1)),
		validation.Field(&c.Marker, validation.Required),
		validation.Field(&c.Mode, validation.Required,
			validation.In(string(insert.ModeStream), string(insert.ModeBuffered))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options converts the settings into insert options.
func (c Config) Options() insert.Options {
	return insert.Options{After: c.AfterLine, Marker: c.Marker}
}

// InsertMode returns the configured copy mode.
func (c Config) InsertMode() (insert.Mode, error) {
	return insert.ParseMode(c.Mode)
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
