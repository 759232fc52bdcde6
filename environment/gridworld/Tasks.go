package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Goal represents the task of reaching goal states in a GridWorld
type Goal struct {
	goals          map[State]bool
	r, c           int // total rows and columns in environment
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new goal task with goals at positions
// (x[i], y[i]), given that the gridworld has r rows and c columns.
// Each step that does not reach a goal is rewarded with tr, and
// reaching a goal is rewarded with gr.
func NewGoal(x, y []int, r, c int, tr, gr float64) (*Goal, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("newGoal: x and y lengths differ "+
			"\n\twant(%v) \n\thave(%v)", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("newGoal: at least one goal is required")
	}

	goals := make(map[State]bool, len(x))
	for i := range x {
		if x[i] < 0 || x[i] >= c {
			return nil, fmt.Errorf("newGoal: x[%d] out of bounds "+
				"\n\twant([0, %v)) \n\thave(%v)", i, c, x[i])
		} else if y[i] < 0 || y[i] >= r {
			return nil, fmt.Errorf("newGoal: y[%d] out of bounds "+
				"\n\twant([0, %v)) \n\thave(%v)", i, r, y[i])
		}
		goals[State{X: x[i], Y: y[i]}] = true
	}

	return &Goal{goals, r, c, tr, gr}, nil
}

// GetReward returns the reward for moving into state next
func (g *Goal) GetReward(next State) float64 {
	if g.AtGoal(next) {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal returns whether state is a goal state
func (g *Goal) AtGoal(state State) bool {
	return g.goals[state]
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	return floats.Min([]float64{g.timeStepReward, g.goalReward})
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	return floats.Max([]float64{g.timeStepReward, g.goalReward})
}

// String returns the Goal as a string
func (g *Goal) String() string {
	goals := make([]State, 0, len(g.goals))
	for y := 0; y < g.r; y++ {
		for x := 0; x < g.c; x++ {
			if s := (State{X: x, Y: y}); g.goals[s] {
				goals = append(goals, s)
			}
		}
	}
	return fmt.Sprintf("Goals: %v", goals)
}
