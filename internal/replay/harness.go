package replay

import "github.com/quietloop/decide/internal/evaluator"

// #region types
// CaseResult captures the outcome of re-running one recorded case.
type CaseResult struct {
	CaseID      string
	Answers     [5]int
	WeightedSum float64
	Expected    evaluator.Decision
	Got         evaluator.Decision
	Pass        bool
	Reason      string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// #endregion types

// #region replay
// Replay re-runs every case through the evaluator with the fixture's
// constants and compares against the expected decision. Entirely in-memory
// and deterministic.
func Replay(f *Fixture) ([]CaseResult, Summary) {
	results := make([]CaseResult, 0, len(f.Cases))
	var summary Summary

	for _, c := range f.Cases {
		expected, err := evaluator.ParseDecision(c.Expected)
		if err != nil {
			// LoadFixture validates labels; a hand-built fixture may not.
			results = append(results, CaseResult{
				CaseID:  c.CaseID,
				Answers: c.Answers,
				Pass:    false,
				Reason:  err.Error(),
			})
			summary.Total++
			summary.Failed++
			continue
		}

		r := evaluator.Evaluate(c.Answers, f.Config.Weights, f.Config.Thresholds)
		pass := r.Decision == expected

		results = append(results, CaseResult{
			CaseID:      c.CaseID,
			Answers:     c.Answers,
			WeightedSum: r.WeightedSum,
			Expected:    expected,
			Got:         r.Decision,
			Pass:        pass,
			Reason:      r.Reason,
		})

		summary.Total++
		if pass {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	return results, summary
}

// #endregion replay
