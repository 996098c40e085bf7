// Package config loads optional render defaults from a flowscii TOML file.
//
// The file is looked up as .flowscii.toml in the working directory, or at an
// explicit path given on the command line. A missing file is not an error;
// every field falls back to the built-in default, so the file only needs to
// name the settings it changes:
//
//	wrap_width = 40
//	gutter = 2
//	default_type = "tool"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/flowscii/flowscii/pkg/errors"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = ".flowscii.toml"

// Config holds render defaults. Zero values mean "use the built-in default".
type Config struct {
	WrapWidth   int    `toml:"wrap_width"`
	Gutter      int    `toml:"gutter"`
	DefaultType string `toml:"default_type"`
}

// Load reads the config file at path. An empty path loads [DefaultFile] from
// the working directory when it exists; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeDecode, err, "parse config %s", path)
	}
	if cfg.WrapWidth < 0 || cfg.Gutter < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidFormat,
			"config %s: wrap_width and gutter must not be negative", path)
	}
	return cfg, nil
}
