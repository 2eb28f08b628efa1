// Package config loads the optional CLI configuration file. This is
// presentation-layer state only: default link type, color mode and output
// format. The link core itself is stateless and never reads configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/link"
)

// ConfigFileName is the name of the config file under the XDG config home.
const ConfigFileName = "config.toml"

// Color modes accepted by the "color" key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats accepted by the "output" key.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the user-tunable CLI defaults. Flags always win over
// config values.
type Config struct {
	// DefaultType is the link type assumed when --type is omitted on
	// platforms where that shorthand is enabled. Empty means no default.
	DefaultType string `toml:"default_type"`

	// Color controls colored output: auto, always or never.
	Color string `toml:"color"`

	// Output is the default inspect output format: text, json or yaml.
	Output string `toml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:  ColorAuto,
		Output: OutputText,
	}
}

// Path returns the expected config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "linkshell", ConfigFileName)
}

// Load reads the config file from its XDG location. A missing file is not
// an error; the defaults are returned.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and validates a config file at an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DefaultType != "" {
		if _, err := link.ParseKind(c.DefaultType); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "invalid default_type %q", c.DefaultType)
		}
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"invalid color mode %q (expected auto, always or never)", c.Color)
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"invalid output format %q (expected text, json or yaml)", c.Output)
	}

	return nil
}
