package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a configuration file. The format is chosen by
// extension: .toml, or .yaml/.yml. Missing widths default to
// DefaultWidths. The result is validated.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(path, data)
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	default:
		return Config{}, fmt.Errorf("config file %s: unsupported format %q", path, filepath.Ext(path))
	}
}

// ParseTOML parses and validates a TOML configuration. name is used in
// error messages.
func ParseTOML(name string, data []byte) (Config, error) {
	var cfg Config

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: name, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Config{}, perr
	}

	return finish(name, cfg)
}

// ParseYAML parses and validates a YAML configuration. name is used in
// error messages.
func ParseYAML(name string, data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &ParseError{Path: name, Message: err.Error(), Err: err}
	}

	return finish(name, cfg)
}

func finish(name string, cfg Config) (Config, error) {
	if len(cfg.Widths) == 0 {
		cfg.Widths = DefaultConfig().Widths
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}
