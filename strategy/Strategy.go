// Package strategy implements exploration strategies, which decide
// which of the legal actions an agent actually takes given the action
// the agent currently believes to be best.
package strategy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goqlearn/timestep"
)

// ExploreStrategy picks the action to take. The actions argument holds
// the legal actions and must not be empty. The best argument is the
// action the agent currently estimates to be best, or nil if the agent
// has no estimate.
type ExploreStrategy[A any] interface {
	PickAction(actions []A, best *A, progress timestep.Progress) A
}

// uniform returns a uniformly random element of actions
func uniform[A any](rng *rand.Rand, actions []A) A {
	return actions[rng.Intn(len(actions))]
}
