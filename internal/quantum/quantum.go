// Package quantum holds the quantum-flavored perturbation functions. They are
// decorative: the decision path never calls them, and all randomness comes
// from the caller-supplied source.
package quantum

import "math/rand"

// Answer/decision codes shared with the questionnaire: 0 yes, 1 confused, 2 no
// on the output side; inputs use the 0/1/2 = no/confused/yes answer scale.

// #region hadamard
// Hadamard collapses an answer into a decision code with fixed probabilities:
// a yes answer returns yes 70% of the time and confused otherwise, a confused
// answer splits 50/50 between confused and no, and a no answer always
// returns no.
func Hadamard(rng *rand.Rand, answer int) int {
	prob := rng.Float64()

	switch answer {
	case 2:
		if prob < 0.7 {
			return 0
		}
		return 1
	case 1:
		if prob < 0.5 {
			return 1
		}
		return 2
	default:
		return 2
	}
}

// #endregion hadamard

// #region cnot
// CNOT inverts the target bit when the control bit is 1, else passes it through.
func CNOT(control, target int) int {
	if control == 1 {
		if target == 0 {
			return 1
		}
		return 0
	}
	return target
}

// #endregion cnot
