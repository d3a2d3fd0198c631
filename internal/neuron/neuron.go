package neuron

// #region integrate
// Integrate advances the neuron by one step. A fired neuron resets its
// potential; otherwise the input is integrated minus the leak. The neuron
// fires when the potential reaches the threshold.
func (n *Neuron) Integrate(input float32, config Config) {
	if n.Fired {
		n.Potential = config.ResetPotential
	} else {
		n.Potential += input - config.LeakRate
	}

	if n.Potential >= config.Threshold {
		n.Fired = true
	}
}

// #endregion integrate
