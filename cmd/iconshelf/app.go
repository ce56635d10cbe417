package main

import (
	"io"
	"os"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
	"github.com/alexisbeaulieu97/iconshelf/internal/config"
	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
)

// loadConfig reads the config file named by --config (or the first default
// path present) and applies the command-line overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	overrides := config.Overrides{
		Source:    flags.source,
		AssetsDir: flags.assetsDir,
		BaseURL:   flags.baseURL,
		Origin:    flags.origin,
		Theme:     flags.theme,
	}
	if flags.verbose {
		overrides.LogLevel = "debug"
	}
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer, component string) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:     cfg.LogLevel,
		Console:   true,
		Writer:    out,
		Component: component,
	})
}

// newFileLogger logs to log_file, or nowhere when it is unset. The browser
// uses it because it owns the terminal.
func newFileLogger(cfg *config.Config, component string) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:     cfg.LogLevel,
		Console:   true,
		File:      cfg.LogFile,
		Writer:    io.Discard,
		Component: component,
	})
}

func newResolver(cfg *config.Config, log *logger.Logger) (catalog.Resolver, error) {
	switch catalog.Source(cfg.Source) {
	case catalog.SourceHTTP:
		return catalog.NewHTTPResolver(catalog.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Naming:  cfg.Naming(),
			Timeout: cfg.RequestTimeout.Duration,
			Logger:  log,
		})
	default:
		return catalog.NewStaticResolver(os.DirFS(cfg.AssetsDir), cfg.Naming(), log), nil
	}
}
