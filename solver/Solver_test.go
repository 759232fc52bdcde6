package solver

import "testing"

func TestNew(t *testing.T) {
	for _, ty := range []Type{Adam, Vanilla, RMSProp} {
		s, err := New(ty, 0.01)
		if err != nil {
			t.Fatalf("could not create %v solver: %v", ty, err)
		}
		if s.Type != ty {
			t.Errorf("type \n\twant(%v) \n\thave(%v)", ty, s.Type)
		}
		if s.Solver == nil {
			t.Errorf("%v: gorgonia solver not created", ty)
		}
	}

	if _, err := New("Momentum", 0.01); err == nil {
		t.Errorf("expected error for unknown solver type")
	}
	if _, err := New(Adam, 0); err == nil {
		t.Errorf("expected error for zero step size")
	}
}

func TestNewSolverTypeMismatch(t *testing.T) {
	if _, err := newSolver(Adam, VanillaConfig{StepSize: 0.1}); err == nil {
		t.Errorf("expected error for mismatched type and config")
	}
}
