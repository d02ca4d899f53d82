package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LAMBDASTREAM_THRESHOLD",
		"LAMBDASTREAM_DATASET",
		"LAMBDASTREAM_STYLE",
		"LAMBDASTREAM_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Students.Threshold != 75.0 {
		t.Errorf("expected Threshold=75, got %v", cfg.Students.Threshold)
	}
	if cfg.Output.Style != "plain" {
		t.Errorf("expected Style=plain, got %s", cfg.Output.Style)
	}
	if cfg.Dataset.Path != "" {
		t.Errorf("expected empty dataset path, got %s", cfg.Dataset.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "lambdastream.yaml")

	cfg := DefaultConfig()
	cfg.Students.Threshold = 80.5
	cfg.Output.Style = "styled"
	cfg.Dataset.Path = "data.yaml"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Students.Threshold != 80.5 {
		t.Errorf("expected Threshold=80.5, got %v", loaded.Students.Threshold)
	}
	if loaded.Output.Style != "styled" {
		t.Errorf("expected Style=styled, got %s", loaded.Output.Style)
	}
	if loaded.Dataset.Path != "data.yaml" {
		t.Errorf("expected Path=data.yaml, got %s", loaded.Dataset.Path)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Students.Threshold != 75.0 {
		t.Errorf("expected default threshold, got %v", cfg.Students.Threshold)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "lambdastream.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected Format=console, got %s", cfg.Logging.Format)
	}
	if cfg.Students.Threshold != 75.0 {
		t.Errorf("expected default threshold, got %v", cfg.Students.Threshold)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lambdastream.yaml")
	if err := os.WriteFile(path, []byte("students: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"styled", func(c *Config) { c.Output.Style = "styled" }, true},
		{"bad style", func(c *Config) { c.Output.Style = "neon" }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, false},
		{"json format", func(c *Config) { c.Logging.Format = "json" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, false},
		{"empty format", func(c *Config) { c.Logging.Format = "" }, false},
		{"nan threshold", func(c *Config) { c.Students.Threshold = math.NaN() }, false},
		{"inf threshold", func(c *Config) { c.Students.Threshold = math.Inf(1) }, false},
		{"negative threshold", func(c *Config) { c.Students.Threshold = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEffectiveLevel(t *testing.T) {
	c := LoggingConfig{Level: "warn"}
	if got := c.EffectiveLevel(false); got != "warn" {
		t.Errorf("expected warn, got %s", got)
	}
	if got := c.EffectiveLevel(true); got != "debug" {
		t.Errorf("expected debug, got %s", got)
	}
}
