// Package qlearning implements the tabular Q-learning algorithm
package qlearning

import (
	"github.com/samuelfneumann/goqlearn/environment"
	"github.com/samuelfneumann/goqlearn/strategy"
	"github.com/samuelfneumann/goqlearn/timestep"
)

// QLearning implements tabular Q-learning. Action values are stored in
// a QTable keyed by the environment's states and actions, and after
// every action the value of the action taken is moved toward its
// one-step Bellman target:
//
//	Q(s, a) <- Q(s, a) + α * (r + γ * max_a' Q(s', a') - Q(s, a))
//
// where max_a' Q(s', a') is 0 if s' has never been seen. The target is
// not special-cased for terminal transitions.
type QLearning[S, A comparable] struct {
	qTable       *QTable[S, A]
	learningRate float64
	discount     float64
	strategy     strategy.ExploreStrategy[A]
}

// New creates a new QLearning agent with an empty QTable, using s to
// pick actions
func New[S, A comparable](c Config,
	s strategy.ExploreStrategy[A]) (*QLearning[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &QLearning[S, A]{
		qTable:       NewQTable[S, A](),
		learningRate: c.LearningRate,
		discount:     c.Discount,
		strategy:     s,
	}, nil
}

// QTable returns the QTable of the agent
func (q *QLearning[S, A]) QTable() *QTable[S, A] {
	return q.qTable
}

// Step takes a single action in env and updates the action value of
// the action taken. It returns whether the epoch should end.
func (q *QLearning[S, A]) Step(progress timestep.Progress,
	env environment.Environment[S, A]) bool {
	current := env.State()

	actions := env.AllActions()
	if len(actions) == 0 {
		return true
	}

	var best *A
	if b, ok := q.qTable.Best(current, actions); ok {
		best = &b
	}
	action := q.strategy.PickAction(actions, best, progress)
	oldQ := q.qTable.Get(current, action)

	reward := env.TakeActionGetReward(action)
	next := env.State()
	done := env.ShouldStop(progress.EpochStep)

	maxQNew := q.qTable.MaxValue(next)
	newQ := oldQ + q.learningRate*(reward+q.discount*maxQNew-oldQ)
	q.qTable.Set(current, action, newQ)

	return done
}
