package graphnet

import (
	"math"
	"testing"

	"github.com/samuelfneumann/goqlearn/network"
	"github.com/samuelfneumann/goqlearn/solver"
)

func TestNewValidation(t *testing.T) {
	if _, err := New([]int{4}, 0.01, DefaultConfig()); err == nil {
		t.Errorf("expected error for single layer")
	}
	if _, err := New([]int{4, 0, 2}, 0.01, DefaultConfig()); err == nil {
		t.Errorf("expected error for empty layer")
	}
	if _, err := New([]int{4, 2}, 0, DefaultConfig()); err == nil {
		t.Errorf("expected error for zero learning rate")
	}
}

func TestForward(t *testing.T) {
	net, err := New([]int{6, 5, 3}, 0.01, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if net.Features() != 6 || net.Outputs() != 3 {
		t.Fatalf("shape \n\twant(6, 3) \n\thave(%v, %v)", net.Features(),
			net.Outputs())
	}

	out, err := net.Forward([]float64{0, 0.5, 1, 0, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("outputs \n\twant(3) \n\thave(%v)", len(out))
	}

	if _, err := net.Forward([]float64{1, 2}); err == nil {
		t.Errorf("expected error for wrong input size")
	}
}

func TestSetCopiesWeights(t *testing.T) {
	c := DefaultConfig()
	c.Solver = solver.Vanilla
	source, err := New([]int{3, 4, 2}, 0.1, c)
	if err != nil {
		t.Fatal(err)
	}
	target, err := New([]int{3, 4, 2}, 0.1, c)
	if err != nil {
		t.Fatal(err)
	}
	if err := target.Set(source); err != nil {
		t.Fatal(err)
	}

	input := []float64{0.2, 0.4, 0.6}
	want, _ := source.Forward(input)
	have, _ := target.Forward(input)
	for i := range want {
		if math.Abs(want[i]-have[i]) > 1e-9 {
			t.Fatalf("output %v \n\twant(%v) \n\thave(%v)", i, want[i], have[i])
		}
	}

	// Training the source must not change the copy
	inputs := [][]float64{input, {1, 0, 1}, {0, 1, 0}}
	targets := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	if err := source.Fit(inputs, targets, 2); err != nil {
		t.Fatal(err)
	}
	after, _ := target.Forward(input)
	for i := range have {
		if after[i] != have[i] {
			t.Fatalf("target changed after training source \n\twant(%v)"+
				"\n\thave(%v)", have, after)
		}
	}

	small, err := New([]int{3, 2}, 0.1, c)
	if err != nil {
		t.Fatal(err)
	}
	if err := target.Set(small); err == nil {
		t.Errorf("expected error for incompatible shapes")
	}
	if err := target.Polyak(small, 0.5); err == nil {
		t.Errorf("expected error for incompatible shapes")
	}
}

func TestFitReducesLoss(t *testing.T) {
	c := DefaultConfig()
	c.Activation = network.TanH()
	net, err := New([]int{2, 8, 1}, 0.01, c)
	if err != nil {
		t.Fatal(err)
	}

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{0}, {1}, {1}, {2}}
	loss := func() float64 {
		total := 0.0
		for i := range inputs {
			out, err := net.Forward(inputs[i])
			if err != nil {
				t.Fatal(err)
			}
			total += (out[0] - targets[i][0]) * (out[0] - targets[i][0])
		}
		return total
	}

	before := loss()
	for i := 0; i < 300; i++ {
		if err := net.Fit(inputs, targets, 4); err != nil {
			t.Fatal(err)
		}
	}
	if after := loss(); after >= before {
		t.Errorf("loss did not decrease \n\tbefore(%v) \n\tafter(%v)", before,
			after)
	}
}

func TestFitValidation(t *testing.T) {
	net, err := New([]int{2, 1}, 0.01, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := net.Fit([][]float64{{1, 2}}, nil, 1); err == nil {
		t.Errorf("expected error for mismatched inputs and targets")
	}
	if err := net.Fit([][]float64{{1, 2}}, [][]float64{{1}}, 0); err == nil {
		t.Errorf("expected error for zero batch size")
	}
	if err := net.Fit([][]float64{{1}}, [][]float64{{1}}, 1); err == nil {
		t.Errorf("expected error for wrong input size")
	}
}

func TestFactory(t *testing.T) {
	var factory network.Factory = NewFactory(DefaultConfig())
	net, err := factory([]int{5, 3}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if net.Features() != 5 || net.Outputs() != 3 {
		t.Fatalf("shape \n\twant(5, 3) \n\thave(%v, %v)", net.Features(),
			net.Outputs())
	}
}
