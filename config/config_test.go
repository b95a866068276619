package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "markdown", cfg.Format)
	assert.False(t, cfg.EnforceSingle)
	assert.False(t, cfg.RequireAtLeastOneCorrect)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "qcmconv.toml", `
enforce_single = true
require_at_least_one_correct = true
format = "json"
output = "out/"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.EnforceSingle)
	assert.True(t, cfg.RequireAtLeastOneCorrect)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "out/", cfg.Output)
}

func TestLoad_TOML_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "qcmconv.toml", `enforce_single = true`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.EnforceSingle)
	assert.Equal(t, "markdown", cfg.Format, "absent format keeps the default")
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "qcmconv.yaml", `
enforce_single: true
format: yaml
output: quiz.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.EnforceSingle)
	assert.False(t, cfg.RequireAtLeastOneCorrect)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "quiz.yaml", cfg.Output)
}

func TestLoad_YML(t *testing.T) {
	path := writeConfig(t, "qcmconv.yml", `format: md`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "md", cfg.Format)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := writeConfig(t, "qcmconv.ini", `format = "json"`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := writeConfig(t, "qcmconv.toml", `format = "csv"`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{EnforceSingle: true, RequireAtLeastOneCorrect: true}
	opts := cfg.Options()

	assert.True(t, opts.EnforceSingle)
	assert.True(t, opts.RequireAtLeastOneCorrect)
}
