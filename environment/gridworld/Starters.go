package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/environment"
)

// Starter returns the starting state of each epoch
type Starter interface {
	Start() State
}

// SingleStart starts each epoch in the same state
type SingleStart struct {
	state State
}

// NewSingleStart returns a Starter that always starts at (x, y) in a
// gridworld with r rows and c columns
func NewSingleStart(x, y, r, c int) (Starter, error) {
	if x < 0 || x >= c {
		return nil, fmt.Errorf("newSingleStart: x out of bounds "+
			"\n\twant([0, %v)) \n\thave(%v)", c, x)
	} else if y < 0 || y >= r {
		return nil, fmt.Errorf("newSingleStart: y out of bounds "+
			"\n\twant([0, %v)) \n\thave(%v)", r, y)
	}

	return &SingleStart{State{X: x, Y: y}}, nil
}

// Start implements the Starter interface
func (s *SingleStart) Start() State {
	return s.state
}

// UniformStart starts each epoch in a state chosen uniformly at random
type UniformStart struct {
	starter environment.CategoricalStarter
}

// NewUniformStart returns a Starter that samples starting states
// uniformly from a gridworld with r rows and c columns
func NewUniformStart(r, c int, seed uint64) Starter {
	return &UniformStart{environment.NewCategoricalStarter([]int{c, r}, seed)}
}

// Start implements the Starter interface
func (u *UniformStart) Start() State {
	start := u.starter.Start()
	return State{X: start[0], Y: start[1]}
}
