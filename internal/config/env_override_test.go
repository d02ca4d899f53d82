package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("threshold", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LAMBDASTREAM_THRESHOLD", "82.5")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 82.5, cfg.Students.Threshold)
	})

	t.Run("unparseable threshold is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LAMBDASTREAM_THRESHOLD", "high")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 75.0, cfg.Students.Threshold)
	})

	t.Run("dataset, style and level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LAMBDASTREAM_DATASET", "/tmp/data.yaml")
		t.Setenv("LAMBDASTREAM_STYLE", "styled")
		t.Setenv("LAMBDASTREAM_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/data.yaml", cfg.Dataset.Path)
		assert.Equal(t, "styled", cfg.Output.Style)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Output: OutputConfig{Style: "plain"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "plain", cfg.Output.Style)
		assert.Empty(t, cfg.Dataset.Path)
	})

	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LAMBDASTREAM_STYLE", "styled")

		cfg, err := Load(t.TempDir() + "/missing.yaml")
		assert.NoError(t, err)
		assert.Equal(t, "styled", cfg.Output.Style)
	})
}
