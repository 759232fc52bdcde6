package strategy

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goqlearn/timestep"
)

// DecliningRandom explores with a probability that declines linearly
// from 1 at epoch 0 to 0 at epoch total, and is floored at a minimum
// exploration rate. The floor is not clamped to [0, 1].
type DecliningRandom[A any] struct {
	total          int
	current        int
	minExploration float64
	rng            *rand.Rand
}

// NewDecliningRandom returns a new DecliningRandom strategy which
// stops declining after totalEpochs epochs, never exploring less than
// minExploration.
func NewDecliningRandom[A any](totalEpochs int, minExploration float64,
	seed uint64) *DecliningRandom[A] {
	return &DecliningRandom[A]{
		total:          totalEpochs,
		minExploration: minExploration,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// ExplorationRate returns the probability of taking a random action at
// the last epoch seen by PickAction
func (d *DecliningRandom[A]) ExplorationRate() float64 {
	declined := 1.0 - float64(d.current)/float64(d.total)
	return math.Max(d.minExploration, declined)
}

// PickAction implements the ExploreStrategy interface
func (d *DecliningRandom[A]) PickAction(actions []A, best *A,
	progress timestep.Progress) A {
	d.current = progress.Epoch

	if d.rng.Float64() < d.ExplorationRate() || best == nil {
		return uniform(d.rng, actions)
	}
	return *best
}
