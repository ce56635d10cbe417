package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/iconshelf/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPaths are probed in order when no config path is given.
var DefaultPaths = []string{"iconshelf.yaml", "iconshelf.yml", "iconshelf.toml"}

// Load returns the configuration at path. An empty path probes DefaultPaths
// and falls back to Default when none exists.
func Load(path string) (*Config, error) {
	if path != "" {
		return ParseConfig(path)
	}

	for _, candidate := range DefaultPaths {
		if _, err := os.Stat(candidate); err == nil {
			return ParseConfig(candidate)
		}
	}

	cfg := Default()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a configuration file from disk on top of the defaults,
// validates it, and returns the result. The format follows the extension.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return apperrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return apperrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return apperrors.NewParseError(path, 0, fmt.Errorf("unsupported config format %q", filepath.Ext(path)))
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
