package network

import (
	"math"
	"testing"
)

func newTestMLP(t *testing.T, seed uint64) *MLP {
	net, err := NewMLP([]int{3, 5, 2}, 0.1, Sigmoid(), seed)
	if err != nil {
		t.Fatalf("could not create MLP: %v", err)
	}
	return net
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func mse(t *testing.T, net NeuralNet, inputs, targets [][]float64) float64 {
	var loss float64
	for i := range inputs {
		out, err := net.Forward(inputs[i])
		if err != nil {
			t.Fatal(err)
		}
		for j := range out {
			loss += (out[j] - targets[i][j]) * (out[j] - targets[i][j])
		}
	}
	return loss / float64(len(inputs))
}

func TestMLPForwardSize(t *testing.T) {
	net := newTestMLP(t, 1)
	out, err := net.Forward([]float64{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("outputs \n\twant(2) \n\thave(%v)", len(out))
	}

	if _, err := net.Forward([]float64{1, 2}); err == nil {
		t.Fatalf("expected error for input of the wrong size")
	}
}

func TestMLPValidation(t *testing.T) {
	if _, err := NewMLP([]int{3}, 0.1, nil, 1); err == nil {
		t.Errorf("expected error for a single layer")
	}
	if _, err := NewMLP([]int{3, 0, 2}, 0.1, nil, 1); err == nil {
		t.Errorf("expected error for an empty layer")
	}
	if _, err := NewMLP([]int{3, 2}, 0, nil, 1); err == nil {
		t.Errorf("expected error for a zero learning rate")
	}

	net := newTestMLP(t, 1)
	if err := net.Fit([][]float64{{1, 2, 3}}, [][]float64{{1}}, 1); err == nil {
		t.Errorf("expected error for a target of the wrong size")
	}
	if err := net.Fit([][]float64{{1, 2, 3}}, nil, 1); err == nil {
		t.Errorf("expected error for mismatched inputs and targets")
	}
}

func TestMLPFitReducesLoss(t *testing.T) {
	net := newTestMLP(t, 2)
	inputs := [][]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}}
	targets := [][]float64{{1, 0}, {0, 1}, {0.5, 0.5}, {1, 1}}

	before := mse(t, net, inputs, targets)
	for i := 0; i < 500; i++ {
		if err := net.Fit(inputs, targets, 2); err != nil {
			t.Fatal(err)
		}
	}
	after := mse(t, net, inputs, targets)

	if after >= before {
		t.Fatalf("loss did not decrease: before(%v) after(%v)", before, after)
	}
}

func TestMLPTargetFreeze(t *testing.T) {
	online := newTestMLP(t, 3)
	target := newTestMLP(t, 4)
	input := []float64{0.3, -0.2, 0.9}

	if err := target.Set(online); err != nil {
		t.Fatal(err)
	}
	onlineOut, _ := online.Forward(input)
	targetOut, _ := target.Forward(input)
	if !equal(onlineOut, targetOut) {
		t.Fatalf("outputs differ after Set \n\tonline(%v) \n\ttarget(%v)",
			onlineOut, targetOut)
	}

	err := online.Fit([][]float64{input}, [][]float64{{5, -5}}, 1)
	if err != nil {
		t.Fatal(err)
	}

	frozen, _ := target.Forward(input)
	if !equal(frozen, targetOut) {
		t.Fatalf("target changed after fitting online network \n\t"+
			"want(%v) \n\thave(%v)", targetOut, frozen)
	}
	trained, _ := online.Forward(input)
	if equal(trained, frozen) {
		t.Fatalf("online network did not change after Fit")
	}
}

func TestMLPPolyak(t *testing.T) {
	a := newTestMLP(t, 5)
	b := newTestMLP(t, 6)
	input := []float64{1, 2, 3}

	if err := a.Polyak(b, 1.0); err != nil {
		t.Fatal(err)
	}
	outA, _ := a.Forward(input)
	outB, _ := b.Forward(input)
	if !equal(outA, outB) {
		t.Fatalf("polyak with tau=1 should copy weights")
	}

	other, err := NewMLP([]int{3, 4, 2}, 0.1, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Set(other); err == nil {
		t.Fatalf("expected error setting weights from a different shape")
	}
}

func TestMLPFactorySeeds(t *testing.T) {
	factory := NewMLPFactory(TanH(), 10)
	a, err := factory([]int{2, 2}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := factory([]int{2, 2}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	outA, _ := a.Forward([]float64{1, 1})
	outB, _ := b.Forward([]float64{1, 1})
	if equal(outA, outB) {
		t.Fatalf("factory produced identically initialized networks")
	}
}

func TestActivationByName(t *testing.T) {
	for _, name := range []string{"sigmoid", "relu", "tanh", "identity"} {
		act, err := ActivationByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if act.String() != name {
			t.Errorf("name \n\twant(%v) \n\thave(%v)", name, act)
		}
	}
	if _, err := ActivationByName("softsign"); err == nil {
		t.Errorf("expected error for unknown activation")
	}

	var act Activation
	if err := act.UnmarshalText([]byte("relu")); err != nil || act.f(-1) != 0 {
		t.Errorf("unmarshalled activation is not relu")
	}
}
