// Package config loads optional tool configuration from a YAML file.
//
// Flags given on the command line override file values. A missing file
// is not an error; a file that cannot be parsed is fatal.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/actiongen/errors"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = ".actiongen.yaml"

// Config is the tool configuration.
type Config struct {
	// Src lists files or directories to rewrite when the command line
	// names none.
	Src []string `yaml:"src"`

	// Write overwrites files in place instead of printing to stdout.
	Write bool `yaml:"write"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Load reads configuration from path. An empty path means DefaultPath.
// A missing file yields the zero configuration; only explicit paths
// must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Config("read "+path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Config("parse "+path, err)
	}
	return &cfg, nil
}
