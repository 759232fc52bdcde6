package timestep

import "testing"

func TestProgressEpochBoundary(t *testing.T) {
	var p Progress
	p.NewEpoch(1)
	p.Advance()
	p.Advance()

	if p.EpochStep != 2 || p.CumulativeSteps != 2 {
		t.Fatalf("after two steps: have(%v)", p)
	}

	p.NewEpoch(2)
	if p.Epoch != 2 || p.EpochStep != 0 {
		t.Fatalf("new epoch did not reset step: have(%v)", p)
	}
	if p.CumulativeSteps != 2 {
		t.Fatalf("cumulative steps reset: want(2) have(%v)",
			p.CumulativeSteps)
	}

	p.Advance()
	if p.EpochStep != 1 || p.CumulativeSteps != 3 {
		t.Fatalf("after third step: have(%v)", p)
	}
}

func TestNewTransitionCopies(t *testing.T) {
	state := []float64{1, 2}
	next := []float64{3, 4}
	tr := NewTransition(state, 1, 0.5, next, false)

	state[0] = 100
	next[0] = 100
	if tr.State[0] != 1 || tr.NextState[0] != 3 {
		t.Fatalf("transition aliases its inputs: have(%v, %v)", tr.State,
			tr.NextState)
	}
}
