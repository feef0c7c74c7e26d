package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config file names searched for when none is given.
const (
	ConfigFileName    = "pyemit.yaml"
	ConfigFileNameAlt = "pyemit.yml"
)

// EnvPrefix prefixes every environment override: PYEMIT_LOG_LEVEL -> log_level.
const EnvPrefix = "PYEMIT_"

// Load builds a Config. Precedence (highest to lowest): env vars > config
// file > defaults. If cfgFile is empty, dir is searched for pyemit.yaml or
// pyemit.yml; a missing file is not an error.
func Load(dir, cfgFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"source_extension":             DefaultSourceExtension,
		"package_init":                 DefaultPackageInit,
		"exclude_imports_from_exports": false,
		"log_level":                    DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile == "" {
		cfgFile = findConfigFile(dir)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the config file in dir, or "" if there is none.
func findConfigFile(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
