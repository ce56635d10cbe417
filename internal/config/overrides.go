package config

// Overrides carries command-line values that take precedence over the file.
// Empty fields leave the loaded value untouched.
type Overrides struct {
	Source    string
	AssetsDir string
	BaseURL   string
	Origin    string
	Theme     string
	LogLevel  string
}

// Apply merges o into cfg and revalidates the result.
func (c *Config) Apply(o Overrides) error {
	set := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}

	set(&c.Source, o.Source)
	set(&c.AssetsDir, o.AssetsDir)
	set(&c.BaseURL, o.BaseURL)
	set(&c.Origin, o.Origin)
	set(&c.DefaultTheme, o.Theme)
	set(&c.LogLevel, o.LogLevel)

	return ValidateConfig(c)
}
