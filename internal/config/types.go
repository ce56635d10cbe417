package config

import (
	"time"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
)

// Config represents the full iconshelf configuration document.
type Config struct {
	Source         string   `yaml:"source" toml:"source" validate:"required,oneof=static http"`
	AssetsDir      string   `yaml:"assets_dir" toml:"assets_dir" validate:"required"`
	BaseURL        string   `yaml:"base_url" toml:"base_url" validate:"required_if=Source http,omitempty,http_url"`
	Origin         string   `yaml:"origin" toml:"origin" validate:"required,http_url"`
	Extension      string   `yaml:"extension" toml:"extension" validate:"required,min=2,startswith=."`
	DarkMarker     string   `yaml:"dark_marker" toml:"dark_marker" validate:"required,excludes=/"`
	DefaultTheme   string   `yaml:"default_theme" toml:"default_theme" validate:"required,oneof=light dark"`
	AckDuration    Duration `yaml:"ack_duration" toml:"ack_duration" validate:"gt=0"`
	RequestTimeout Duration `yaml:"request_timeout" toml:"request_timeout" validate:"gt=0"`
	LogLevel       string   `yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	LogFile        string   `yaml:"log_file" toml:"log_file"`
	Serve          Serve    `yaml:"serve" toml:"serve"`
	Sync           Sync     `yaml:"sync" toml:"sync"`
}

// Serve configures the static asset server.
type Serve struct {
	Addr string `yaml:"addr" toml:"addr" validate:"required"`
}

// Sync describes the git repository icon assets are fetched from.
type Sync struct {
	URL    string `yaml:"url" toml:"url" validate:"omitempty,git_url"`
	Branch string `yaml:"branch" toml:"branch"`
	Depth  int    `yaml:"depth" toml:"depth" validate:"gte=0"`
	Subdir string `yaml:"subdir" toml:"subdir" validate:"omitempty,excludes=.."`
}

// Naming returns the icon filename conventions configured.
func (c *Config) Naming() catalog.Naming {
	return catalog.Naming{Extension: c.Extension, DarkMarker: c.DarkMarker}
}

// Theme returns the configured default theme.
func (c *Config) Theme() catalog.Theme {
	theme, err := catalog.ParseTheme(c.DefaultTheme)
	if err != nil {
		return catalog.ThemeLight
	}
	return theme
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Source:         string(catalog.SourceStatic),
		AssetsDir:      "dist",
		BaseURL:        "http://localhost:8080",
		Origin:         "http://localhost:8080",
		Extension:      catalog.DefaultExtension,
		DarkMarker:     catalog.DefaultDarkMarker,
		DefaultTheme:   string(catalog.ThemeLight),
		AckDuration:    Duration{2 * time.Second},
		RequestTimeout: Duration{10 * time.Second},
		LogLevel:       "info",
		LogFile:        "iconshelf.log",
		Serve: Serve{
			Addr: ":8080",
		},
		Sync: Sync{
			URL:    "https://github.com/lobehub/lobe-icons.git",
			Depth:  1,
			Subdir: "packages/static-webp",
		},
	}
}

// Duration is a time.Duration written as "2s" or "1500ms" in config files.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
