package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "DATASET_SOURCE", "DATASET_FILE", "DATASET_RELOAD_INTERVAL", "RATE_LIMIT_MAX", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerAddr != ":8050" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":8050")
	}
	if cfg.DatasetSource != SourceFile {
		t.Errorf("DatasetSource = %q, want %q", cfg.DatasetSource, SourceFile)
	}
	if cfg.DatasetFile != "spacex_launch_dash.csv" {
		t.Errorf("DatasetFile = %q", cfg.DatasetFile)
	}
	if cfg.DatasetReloadInterval != 0 {
		t.Errorf("DatasetReloadInterval = %v, want 0", cfg.DatasetReloadInterval)
	}
	if cfg.RateLimitMax != 300 {
		t.Errorf("RateLimitMax = %d, want 300", cfg.RateLimitMax)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
	if cfg.UsesPostgres() {
		t.Error("UsesPostgres should be false by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("DATASET_RELOAD_INTERVAL", "30s")
	t.Setenv("RATE_LIMIT_MAX", "50")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("DATASET_WATCH", "1")

	cfg := Load()
	if !cfg.UsesPostgres() {
		t.Error("UsesPostgres should be true")
	}
	if cfg.DatasetReloadInterval != 30*time.Second {
		t.Errorf("DatasetReloadInterval = %v, want 30s", cfg.DatasetReloadInterval)
	}
	if cfg.RateLimitMax != 50 {
		t.Errorf("RateLimitMax = %d, want 50", cfg.RateLimitMax)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
	if !cfg.DatasetWatch {
		t.Error("DatasetWatch should be true")
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	t.Setenv("DATASET_RELOAD_INTERVAL", "soon")

	cfg := Load()
	if cfg.RateLimitMax != 300 {
		t.Errorf("RateLimitMax = %d, want fallback 300", cfg.RateLimitMax)
	}
	if cfg.DatasetReloadInterval != 0 {
		t.Errorf("DatasetReloadInterval = %v, want fallback 0", cfg.DatasetReloadInterval)
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadYAMLConfigMissingFile(t *testing.T) {
	cfg, err := LoadYAMLConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AllSitesLabel != "All sites" {
		t.Errorf("AllSitesLabel = %q, want %q", cfg.AllSitesLabel, "All sites")
	}
	if cfg.DefaultSite != "ALL" {
		t.Errorf("DefaultSite = %q, want ALL", cfg.DefaultSite)
	}
	if cfg.Slider.Step != DefaultSliderStep {
		t.Errorf("Slider.Step = %v, want %v", cfg.Slider.Step, DefaultSliderStep)
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
all_sites_label: Every site
site_labels:
  CCAFS LC-40: Cape Canaveral LC-40
slider:
  step: 500
  marks: [0, 2500, 5000]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadYAMLConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AllSitesLabel != "Every site" {
		t.Errorf("AllSitesLabel = %q", cfg.AllSitesLabel)
	}
	if cfg.Slider.Step != 500 {
		t.Errorf("Slider.Step = %v, want 500", cfg.Slider.Step)
	}
	if len(cfg.Slider.Marks) != 3 {
		t.Errorf("Slider.Marks = %v, want 3 marks", cfg.Slider.Marks)
	}
	if got := cfg.SiteLabels["CCAFS LC-40"]; got != "Cape Canaveral LC-40" {
		t.Errorf("SiteLabels[CCAFS LC-40] = %q", got)
	}
}

func TestLoadYAMLConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("slider: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAMLConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
