package strategy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goqlearn/timestep"
)

// EGreedy implements an ε-greedy strategy with a constant ε. With
// probability ε an action is chosen uniformly at random from all legal
// actions (possibly the best action), otherwise the best action is
// taken.
type EGreedy[A comparable] struct {
	epsilon float64
	source  rand.Source
	rng     *rand.Rand
}

// NewEGreedy constructs a new EGreedy strategy, where e=epsilon is the
// probability with which a random action is selected
func NewEGreedy[A comparable](e float64, seed uint64) *EGreedy[A] {
	source := rand.NewSource(seed)
	return &EGreedy[A]{e, source, rand.New(source)}
}

// NewGreedy creates a new strategy that always takes the best action
// when one is known
func NewGreedy[A comparable](seed uint64) *EGreedy[A] {
	return NewEGreedy[A](0.0, seed)
}

// Epsilon returns the probability of acting randomly
func (e *EGreedy[A]) Epsilon() float64 {
	return e.epsilon
}

// PickAction implements the ExploreStrategy interface
func (e *EGreedy[A]) PickAction(actions []A, best *A,
	_ timestep.Progress) A {
	greedy := -1
	if best != nil {
		for i := range actions {
			if actions[i] == *best {
				greedy = i
				break
			}
		}
	}
	if greedy < 0 {
		return uniform(e.rng, actions)
	}

	// Calculate the ε probability of choosing any action at random
	prob := e.epsilon / float64(len(actions))
	actionProbabilities := make([]float64, len(actions))
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedy] += 1.0 - e.epsilon

	dist := distuv.NewCategorical(actionProbabilities, e.source)
	return actions[int(dist.Rand())]
}
