package neuron

import (
	"math"
	"testing"
)

func TestIntegrateLeaksBelowThreshold(t *testing.T) {
	cfg := DefaultConfig()
	var n Neuron

	n.Integrate(0.5, cfg)

	if n.Fired {
		t.Fatal("neuron should not fire on sub-threshold input")
	}
	if math.Abs(float64(n.Potential)-0.4) > 1e-6 {
		t.Fatalf("expected potential 0.4, got %f", n.Potential)
	}
}

func TestIntegrateAccumulatesAcrossSteps(t *testing.T) {
	cfg := DefaultConfig()
	var n Neuron

	n.Integrate(0.5, cfg) // 0.4
	n.Integrate(0.5, cfg) // 0.8
	if n.Fired {
		t.Fatal("fired too early")
	}

	n.Integrate(0.5, cfg) // 1.2 >= 1.0
	if !n.Fired {
		t.Fatalf("expected fire at potential %f", n.Potential)
	}
}

func TestIntegrateFiresAtExactThreshold(t *testing.T) {
	cfg := DefaultConfig()
	var n Neuron

	n.Integrate(cfg.Excitation, cfg) // 1.1 - 0.1 = 1.0

	if !n.Fired {
		t.Fatalf("expected fire at exact threshold, potential %f", n.Potential)
	}
}

func TestIntegrateResetsAfterFire(t *testing.T) {
	cfg := DefaultConfig()
	var n Neuron

	n.Integrate(2.0, cfg)
	if !n.Fired {
		t.Fatal("expected fire")
	}

	n.Integrate(5.0, cfg)
	if n.Potential != cfg.ResetPotential {
		t.Fatalf("expected reset potential %f, got %f", cfg.ResetPotential, n.Potential)
	}
	if !n.Fired {
		t.Fatal("fired flag should latch")
	}
}

func TestZeroInputDecays(t *testing.T) {
	cfg := DefaultConfig()
	var n Neuron

	n.Integrate(0, cfg)

	if math.Abs(float64(n.Potential)+0.1) > 1e-6 {
		t.Fatalf("expected potential -0.1, got %f", n.Potential)
	}
	if n.Fired {
		t.Fatal("should not fire on zero input")
	}
}

func TestANDTruthTable(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, c := range cases {
		if got := AND(c.a, c.b, cfg); got != c.want {
			t.Errorf("AND(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestORTruthTable(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	}
	for _, c := range cases {
		if got := OR(c.a, c.b, cfg); got != c.want {
			t.Errorf("OR(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNANDTruthTable(t *testing.T) {
	cfg := DefaultConfig()
	if NAND(true, true, cfg) {
		t.Error("NAND(true, true) should be false")
	}
	if !NAND(true, false, cfg) {
		t.Error("NAND(true, false) should be true")
	}
	if !NAND(false, false, cfg) {
		t.Error("NAND(false, false) should be true")
	}
}

func TestNOT(t *testing.T) {
	if NOT(true) {
		t.Error("NOT(true) should be false")
	}
	if !NOT(false) {
		t.Error("NOT(false) should be true")
	}
}

func TestGatesAreStatelessAcrossCalls(t *testing.T) {
	cfg := DefaultConfig()
	for i := 0; i < 3; i++ {
		if !AND(true, true, cfg) {
			t.Fatalf("AND changed behavior on call %d", i+1)
		}
		if OR(false, false, cfg) {
			t.Fatalf("OR changed behavior on call %d", i+1)
		}
	}
}
