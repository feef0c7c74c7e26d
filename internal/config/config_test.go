package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/pyemit/pkg/modtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, modtree.DefaultOptions(), cfg.TreeOptions())
}

func TestLoad_FileInDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileNameAlt, "source_extension: .pyi\nexclude_imports_from_exports: true\n")

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, ".pyi", cfg.SourceExtension)
	assert.True(t, cfg.ExcludeImportsFromExports)
	assert.Equal(t, DefaultPackageInit, cfg.PackageInit)
}

func TestLoad_ExplicitFile(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "custom.yaml", "log_level: debug\n")

	cfg, err := Load("", p)
	require.NoError(t, err)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileName, "package_init: __init__\nlog_level: warn\n")
	t.Setenv("PYEMIT_LOG_LEVEL", "error")
	t.Setenv("PYEMIT_EXCLUDE_IMPORTS_FROM_EXPORTS", "true")

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.ExcludeImportsFromExports)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PYEMIT_SOURCE_EXTENSION", "py")
	_, err := Load(t.TempDir(), "")
	assert.ErrorContains(t, err, "source_extension")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"stub extension", func(c *Config) { c.SourceExtension = ".pyi" }, ""},
		{"missing dot", func(c *Config) { c.SourceExtension = "py" }, "must start with"},
		{"bare dot", func(c *Config) { c.SourceExtension = "." }, "must start with"},
		{"separator", func(c *Config) { c.SourceExtension = "./py" }, "path separator"},
		{"init keyword", func(c *Config) { c.PackageInit = "class" }, "package_init"},
		{"init empty", func(c *Config) { c.PackageInit = "" }, "package_init"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errSubstr)
		})
	}
}
