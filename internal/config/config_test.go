package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/buildquality/mvnqa/internal/constants"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Reports.SurefireDir != constants.DefaultSurefireDir {
		t.Errorf("Unexpected surefire dir: %s", cfg.Reports.SurefireDir)
	}
	if cfg.Reports.JacocoReport != constants.DefaultJacocoReport {
		t.Errorf("Unexpected jacoco report: %s", cfg.Reports.JacocoReport)
	}
	if cfg.Reports.PMDReport != constants.DefaultPMDReport {
		t.Errorf("Unexpected pmd report: %s", cfg.Reports.PMDReport)
	}
	if cfg.Violations.MaxViolations != constants.DefaultMaxViolations {
		t.Errorf("Unexpected max violations: %d", cfg.Violations.MaxViolations)
	}
	if cfg.Output.Format != DefaultOutputFormat {
		t.Errorf("Unexpected output format: %s", cfg.Output.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Output.Format = "csv" }},
		{"zero max violations", func(c *Config) { c.Violations.MaxViolations = 0 }},
		{"empty surefire dir", func(c *Config) { c.Reports.SurefireDir = "" }},
		{"empty jacoco report", func(c *Config) { c.Reports.JacocoReport = "" }},
		{"empty pmd report", func(c *Config) { c.Reports.PMDReport = "" }},
		{"empty maven binary", func(c *Config) { c.Maven.Binary = "" }},
		{"zero maven timeout", func(c *Config) { c.Maven.Timeout = 0 }},
		{"zero watch debounce", func(c *Config) { c.Watch.Debounce = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Output.Format != DefaultOutputFormat {
		t.Error("Missing config file should yield defaults")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvnqa.yaml")
	content := `
reports:
  surefire_dir: build/test-reports
violations:
  max_violations: 50
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Reports.SurefireDir != "build/test-reports" {
		t.Errorf("Override not applied: %s", cfg.Reports.SurefireDir)
	}
	if cfg.Violations.MaxViolations != 50 {
		t.Errorf("Override not applied: %d", cfg.Violations.MaxViolations)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Override not applied: %s", cfg.Output.Format)
	}
	// Unset fields keep defaults
	if cfg.Reports.JacocoReport != constants.DefaultJacocoReport {
		t.Errorf("Default should be preserved: %s", cfg.Reports.JacocoReport)
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvnqa.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: csv\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for invalid format value")
	}
}

func TestLoadConfigWithTarget_Discovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvnqa.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	nested := filepath.Join(dir, "module-a", "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}

	cfg, err := LoadConfigWithTarget("", nested)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Upward discovery should find config, got format %s", cfg.Output.Format)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvnqa.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = "json"
	cfg.Maven.Timeout = 5 * time.Minute

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("Round trip lost format: %s", loaded.Output.Format)
	}
	if loaded.Maven.Timeout != 5*time.Minute {
		t.Errorf("Round trip lost timeout: %s", loaded.Maven.Timeout)
	}
}

func TestReportPathHelpers(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.SurefirePath("/project")
	want := filepath.Join("/project", constants.DefaultSurefireDir)
	if got != want {
		t.Errorf("SurefirePath = %s, want %s", got, want)
	}

	if cfg.JacocoPath("/project") != filepath.Join("/project", constants.DefaultJacocoReport) {
		t.Errorf("Unexpected JacocoPath: %s", cfg.JacocoPath("/project"))
	}
	if cfg.PMDPath("/project") != filepath.Join("/project", constants.DefaultPMDReport) {
		t.Errorf("Unexpected PMDPath: %s", cfg.PMDPath("/project"))
	}
}
