package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quietloop/decide/internal/evaluator"
)

func writeFixtureFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixtureFull(t *testing.T) {
	path := writeFixtureFile(t, `{
		"description": "smoke cases",
		"config": {
			"weights": {"goals": 1.0, "outcomes": 1.2, "calm": 1.5, "reversibility": 1.1, "reflection": 1.0},
			"thresholds": {"yes": 8.0, "confused": 3.0}
		},
		"cases": [
			{"case_id": "all-yes", "answers": [2, 2, 2, 2, 2], "expected": "yes"}
		]
	}`)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Description != "smoke cases" {
		t.Fatalf("unexpected description %q", f.Description)
	}
	if len(f.Cases) != 1 || f.Cases[0].CaseID != "all-yes" {
		t.Fatalf("unexpected cases: %+v", f.Cases)
	}
	if f.Config.Weights.Calm != 1.5 {
		t.Fatalf("unexpected calm weight %f", f.Config.Weights.Calm)
	}
}

func TestLoadFixtureMissingConfigUsesDefaults(t *testing.T) {
	path := writeFixtureFile(t, `{
		"description": "no config",
		"cases": [
			{"case_id": "c1", "answers": [0, 0, 0, 0, 0], "expected": "no"}
		]
	}`)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Config.Weights != evaluator.DefaultWeights() {
		t.Fatalf("expected default weights, got %+v", f.Config.Weights)
	}
	if f.Config.Thresholds != evaluator.DefaultThresholds() {
		t.Fatalf("expected default thresholds, got %+v", f.Config.Thresholds)
	}
}

func TestLoadFixtureRejectsUnknownExpected(t *testing.T) {
	path := writeFixtureFile(t, `{
		"cases": [{"case_id": "c1", "answers": [0, 0, 0, 0, 0], "expected": "maybe"}]
	}`)

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for unknown expected label")
	}
}

func TestLoadFixtureRejectsMissingCaseID(t *testing.T) {
	path := writeFixtureFile(t, `{
		"cases": [{"answers": [0, 0, 0, 0, 0], "expected": "no"}]
	}`)

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for missing case_id")
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteFixtureRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	f := &Fixture{
		Description: "exported",
		Config:      DefaultFixtureConfig(),
		Cases: []FixtureCase{
			{CaseID: "c1", Answers: [5]int{1, 1, 1, 1, 1}, Expected: "confused"},
		},
	}

	if err := WriteFixture(path, f); err != nil {
		t.Fatalf("WriteFixture: %v", err)
	}

	got, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if got.Description != f.Description || len(got.Cases) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Cases[0] != f.Cases[0] {
		t.Fatalf("case mismatch: %+v vs %+v", got.Cases[0], f.Cases[0])
	}
}
