package neuron

// Logic gates assembled from fresh LIF neurons per call. Illustrative only:
// nothing in the decision path consumes them.

// #region drive
// drive converts a boolean input into an excitation-or-nothing stimulus.
func drive(on bool, config Config) float32 {
	if on {
		return config.Excitation
	}
	return 0
}

// #endregion drive

// #region gates

// AND fires only when both input neurons fire.
func AND(a, b bool, config Config) bool {
	var n1, n2, out Neuron
	n1.Integrate(drive(a, config), config)
	n2.Integrate(drive(b, config), config)

	out.Integrate(drive(n1.Fired && n2.Fired, config), config)
	return out.Fired
}

// OR fires when either input neuron fires.
func OR(a, b bool, config Config) bool {
	var n1, n2, out Neuron
	n1.Integrate(drive(a, config), config)
	n2.Integrate(drive(b, config), config)

	out.Integrate(drive(n1.Fired || n2.Fired, config), config)
	return out.Fired
}

// NAND is the negation of AND.
func NAND(a, b bool, config Config) bool {
	return !AND(a, b, config)
}

// NOT inverts its input.
func NOT(a bool) bool {
	return !a
}

// #endregion gates
