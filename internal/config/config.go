// Package config loads protstat settings from an optional YAML file and
// validates them against an embedded CUE schema.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config path is given. Its absence is not
// an error.
const DefaultPath = "protstat.yaml"

// Config holds settings shared by all commands. Command-line flags take
// precedence over file values.
type Config struct {
	// Delimiter is the record-start character.
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// Format is the output format: "text" or "json".
	Format string `yaml:"format" json:"format"`

	Histogram Histogram `yaml:"histogram" json:"histogram"`
	Store     Store     `yaml:"store" json:"store"`
}

// Histogram configures the length histogram.
type Histogram struct {
	Bins  int `yaml:"bins" json:"bins"`
	Limit int `yaml:"limit" json:"limit"`
}

// Store configures report persistence. An empty Path disables it.
type Store struct {
	Path string `yaml:"path" json:"path"`
}

// Error reports an unreadable or invalid config file.
type Error struct {
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Delimiter: ">",
		Format:    "text",
		Histogram: Histogram{Bins: 50, Limit: 3000},
	}
}

// Load reads the config at path. An empty path means DefaultPath, which
// may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, &Error{Path: path, Message: "cannot open", Err: err}
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(path string, r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Path: path, Message: "invalid YAML", Err: err}
	}

	if err := Validate(cfg); err != nil {
		return nil, &Error{Path: path, Message: "invalid settings", Err: err}
	}
	return cfg, nil
}

// DelimiterByte returns the configured delimiter as a byte.
// Validate guarantees it is a single printable ASCII character.
func (c *Config) DelimiterByte() byte {
	if len(c.Delimiter) != 1 {
		return '>'
	}
	return c.Delimiter[0]
}
