package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decide.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialOverrideKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "weights:\n  calm: 2.0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Weights.Calm != 2.0 {
		t.Fatalf("expected calm weight 2.0, got %f", cfg.Weights.Calm)
	}
	if cfg.Weights.Outcomes != 1.2 {
		t.Fatalf("untouched weight changed: %f", cfg.Weights.Outcomes)
	}
	if cfg.Thresholds != Default().Thresholds {
		t.Fatalf("thresholds changed: %+v", cfg.Thresholds)
	}
}

func TestLoadThresholdOverride(t *testing.T) {
	path := writeConfig(t, "thresholds:\n  yes: 10.0\n  confused: 4.0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Thresholds.Yes != 10.0 || cfg.Thresholds.Confused != 4.0 {
		t.Fatalf("unexpected thresholds: %+v", cfg.Thresholds)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "weights: [not a map\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsInvalidThresholds(t *testing.T) {
	path := writeConfig(t, "thresholds:\n  yes: 2.0\n  confused: 5.0\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for inverted thresholds")
	}
}

func TestLoadRejectsNegativeWeight(t *testing.T) {
	path := writeConfig(t, "weights:\n  goals: -1.0\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative weight")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
