package timestep

import "fmt"

// Transition is a single (S, A, R, S', done) tuple recorded by an
// agent that learns from experience replay. State and NextState are
// the feature vectors of the environment before and after the action,
// and Action is the index of the action taken in the action list the
// environment offered at the time.
type Transition struct {
	State     []float64
	Action    int
	NextState []float64
	Reward    float64
	Done      bool
}

// NewTransition creates a new Transition. The feature vectors are
// copied so that the Transition never aliases environment memory.
func NewTransition(state []float64, action int, reward float64,
	nextState []float64, done bool) Transition {
	s := make([]float64, len(state))
	copy(s, state)
	next := make([]float64, len(nextState))
	copy(next, nextState)

	return Transition{
		State:     s,
		Action:    action,
		NextState: next,
		Reward:    reward,
		Done:      done,
	}
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition | Action: %v  |  Reward: %.2f  |  Done: %v",
		t.Action, t.Reward, t.Done)
}
