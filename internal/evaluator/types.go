package evaluator

import "fmt"

// #region decision
// Decision enumerates the three possible outcomes of an evaluation.
type Decision int

const (
	DecisionYes      Decision = 0
	DecisionConfused Decision = 1
	DecisionNo       Decision = 2
)

// String returns the short lowercase label used in logs and fixtures.
func (d Decision) String() string {
	switch d {
	case DecisionYes:
		return "yes"
	case DecisionConfused:
		return "confused"
	case DecisionNo:
		return "no"
	}
	return "unknown"
}

// Verdict returns the exact console lines announcing the decision.
func (d Decision) Verdict() []string {
	switch d {
	case DecisionYes:
		return []string{"Recommended decision: YES"}
	case DecisionConfused:
		return []string{
			"Recommended decision: Confused (Quantum Superposition)",
			"Take a break and reconsider.",
		}
	default:
		return []string{"Recommended decision: NO"}
	}
}

// ParseDecision converts a label produced by String back into a Decision.
func ParseDecision(s string) (Decision, error) {
	switch s {
	case "yes":
		return DecisionYes, nil
	case "confused":
		return DecisionConfused, nil
	case "no":
		return DecisionNo, nil
	}
	return DecisionNo, fmt.Errorf("unknown decision label %q", s)
}

// #endregion decision

// #region weights
// Weights holds the per-question multipliers for the weighted sum.
type Weights struct {
	Goals         float64 `yaml:"goals" json:"goals"`                 // question 1
	Outcomes      float64 `yaml:"outcomes" json:"outcomes"`           // question 2
	Calm          float64 `yaml:"calm" json:"calm"`                   // question 3
	Reversibility float64 `yaml:"reversibility" json:"reversibility"` // question 4
	Reflection    float64 `yaml:"reflection" json:"reflection"`       // question 5
}

// DefaultWeights returns the standard per-question multipliers.
func DefaultWeights() Weights {
	return Weights{
		Goals:         1.0,
		Outcomes:      1.2,
		Calm:          1.5,
		Reversibility: 1.1,
		Reflection:    1.0,
	}
}

// AsList returns the weights in question order.
func (w Weights) AsList() [5]float64 {
	return [5]float64{w.Goals, w.Outcomes, w.Calm, w.Reversibility, w.Reflection}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	for i, v := range w.AsList() {
		if v < 0 {
			return fmt.Errorf("weight for question %d is negative: %f", i+1, v)
		}
	}
	return nil
}

// #endregion weights

// #region thresholds
// Thresholds holds the decision boundaries on the weighted sum.
// Sums strictly above Yes map to DecisionYes, sums strictly above
// Confused map to DecisionConfused, everything else to DecisionNo.
type Thresholds struct {
	Yes      float64 `yaml:"yes" json:"yes"`
	Confused float64 `yaml:"confused" json:"confused"`
}

// DefaultThresholds returns the standard decision boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Yes: 8.0, Confused: 3.0}
}

// Validate requires the yes boundary to sit above the confused boundary.
func (t Thresholds) Validate() error {
	if t.Yes <= t.Confused {
		return fmt.Errorf("yes threshold %.2f must exceed confused threshold %.2f", t.Yes, t.Confused)
	}
	return nil
}

// #endregion thresholds

// #region result
// Result is the output of a single evaluation.
type Result struct {
	Decision    Decision
	WeightedSum float64
	Reason      string
}

// #endregion result
