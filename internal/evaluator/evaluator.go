package evaluator

import "fmt"

// #region evaluate
// Evaluate computes the weighted sum of the five answers and maps it onto a
// Decision via the thresholds. Pure function: same answers, same result.
// Answers outside {0,1,2} are not rejected; they flow through the arithmetic.
func Evaluate(answers [5]int, w Weights, th Thresholds) Result {
	weights := w.AsList()

	var sum float64
	for i, a := range answers {
		sum += float64(a) * weights[i]
	}

	switch {
	case sum > th.Yes:
		return Result{
			Decision:    DecisionYes,
			WeightedSum: sum,
			Reason:      fmt.Sprintf("weighted sum %.2f above yes threshold %.2f", sum, th.Yes),
		}
	case sum > th.Confused:
		return Result{
			Decision:    DecisionConfused,
			WeightedSum: sum,
			Reason:      fmt.Sprintf("weighted sum %.2f within confused band (%.2f, %.2f]", sum, th.Confused, th.Yes),
		}
	default:
		return Result{
			Decision:    DecisionNo,
			WeightedSum: sum,
			Reason:      fmt.Sprintf("weighted sum %.2f at or below confused threshold %.2f", sum, th.Confused),
		}
	}
}

// #endregion evaluate
