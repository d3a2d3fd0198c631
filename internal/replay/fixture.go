package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quietloop/decide/internal/evaluator"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Config      FixtureConfig `json:"config"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureConfig carries the evaluator constants active for the run.
type FixtureConfig struct {
	Weights    evaluator.Weights    `json:"weights"`
	Thresholds evaluator.Thresholds `json:"thresholds"`
}

// FixtureCase is one recorded answer set with its expected decision label.
type FixtureCase struct {
	CaseID   string `json:"case_id"`
	Answers  [5]int `json:"answers"`
	Expected string `json:"expected"` // "yes" | "confused" | "no"
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file. A missing config section
// falls back to the default constants.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	f := Fixture{Config: DefaultFixtureConfig()}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}

	for i, c := range f.Cases {
		if c.CaseID == "" {
			return nil, fmt.Errorf("fixture %s: case %d has no case_id", path, i)
		}
		if _, err := evaluator.ParseDecision(c.Expected); err != nil {
			return nil, fmt.Errorf("fixture %s: case %s: %w", path, c.CaseID, err)
		}
	}
	return &f, nil
}

// DefaultFixtureConfig returns the built-in evaluator constants.
func DefaultFixtureConfig() FixtureConfig {
	return FixtureConfig{
		Weights:    evaluator.DefaultWeights(),
		Thresholds: evaluator.DefaultThresholds(),
	}
}

// WriteFixture serializes a fixture to disk with indentation.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-loader
