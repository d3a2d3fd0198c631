package neuron

// #region config
// Config holds the leaky integrate-and-fire parameters.
type Config struct {
	Threshold      float32 `yaml:"threshold"`       // potential at which the neuron fires
	LeakRate       float32 `yaml:"leak_rate"`       // subtracted from every integration step
	ResetPotential float32 `yaml:"reset_potential"` // potential after a fire
	Excitation     float32 `yaml:"excitation"`      // drive applied to a gate neuron whose condition holds
}

// DefaultConfig returns the standard LIF parameters. Excitation sits at
// threshold + leak so a single driven step is exactly enough to fire.
func DefaultConfig() Config {
	return Config{
		Threshold:      1.0,
		LeakRate:       0.1,
		ResetPotential: 0.0,
		Excitation:     1.1,
	}
}

// #endregion config

// #region neuron
// Neuron is a minimal leaky integrate-and-fire unit. Fired latches: once the
// threshold is crossed it stays set, and the next integration resets the
// potential instead of accumulating.
type Neuron struct {
	Potential float32
	Fired     bool
}

// #endregion neuron
