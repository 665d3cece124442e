package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9090"
lexicon:
  path: "rules/custom.csv"
reviews:
  seed: true
fairness:
  min_sample_size: 10
  default_threshold: 4
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "rules/custom.csv", cfg.Lexicon.Path)
	assert.True(t, cfg.Reviews.Seed)
	assert.Equal(t, 10, cfg.Fairness.MinSampleSize)
	assert.Equal(t, 4, cfg.Fairness.DefaultThreshold)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
reviews:
  seed: false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "data/bias_rules.csv", cfg.Lexicon.Path)
	assert.False(t, cfg.Reviews.Seed)
	assert.Equal(t, 5, cfg.Fairness.MinSampleSize)
	assert.Equal(t, 3, cfg.Fairness.DefaultThreshold)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
