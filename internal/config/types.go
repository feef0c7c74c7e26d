// Package config loads emitter options from defaults, an optional YAML file
// and PYEMIT_ environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/pyemit/pkg/ident"
	"github.com/leapstack-labs/pyemit/pkg/modtree"
)

// Default configuration values.
const (
	DefaultSourceExtension = ".py"
	DefaultPackageInit     = "__init__"
	DefaultLogLevel        = "info"
)

// Config holds the emitter options.
type Config struct {
	// SourceExtension is appended to every generated file name.
	SourceExtension string `koanf:"source_extension"`
	// PackageInit is the stem of the file that represents a package.
	PackageInit string `koanf:"package_init"`
	// ExcludeImportsFromExports drops names a module only imports from the
	// export set used by import analysis.
	ExcludeImportsFromExports bool   `koanf:"exclude_imports_from_exports"`
	LogLevel                  string `koanf:"log_level"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		SourceExtension: DefaultSourceExtension,
		PackageInit:     DefaultPackageInit,
		LogLevel:        DefaultLogLevel,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.SourceExtension, ".") || len(c.SourceExtension) < 2 {
		return fmt.Errorf("source_extension must start with '.': %q", c.SourceExtension)
	}
	if strings.ContainsAny(c.SourceExtension, "/\\") {
		return fmt.Errorf("source_extension must not contain a path separator: %q", c.SourceExtension)
	}
	if err := ident.Validate(c.PackageInit); err != nil {
		return fmt.Errorf("package_init: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// TreeOptions returns the module tree layout options.
func (c *Config) TreeOptions() modtree.Options {
	return modtree.Options{
		Extension: c.SourceExtension,
		InitName:  c.PackageInit,
	}
}
