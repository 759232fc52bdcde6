package qlearning

import (
	"github.com/samuelfneumann/goqlearn/utils/floatutils"
)

// row stores the action values of a single state along with the
// order in which the actions were first written
type row[A comparable] struct {
	values map[A]float64
	order  []A
}

// QTable maps states to the estimated value of each action taken in
// that state. Entries that were never written read as 0.0. The table
// only grows; nothing is ever removed.
type QTable[S, A comparable] struct {
	rows map[S]*row[A]
}

// NewQTable returns a new, empty QTable
func NewQTable[S, A comparable]() *QTable[S, A] {
	return &QTable[S, A]{rows: make(map[S]*row[A])}
}

// Get returns the value of action in state, or 0.0 if no value has
// been set
func (q *QTable[S, A]) Get(state S, action A) float64 {
	r, ok := q.rows[state]
	if !ok {
		return 0.0
	}
	return r.values[action]
}

// Set sets the value of action in state
func (q *QTable[S, A]) Set(state S, action A, value float64) {
	r, ok := q.rows[state]
	if !ok {
		r = &row[A]{values: make(map[A]float64)}
		q.rows[state] = r
	}
	if _, ok := r.values[action]; !ok {
		r.order = append(r.order, action)
	}
	r.values[action] = value
}

// Has returns whether any action value has been set for state
func (q *QTable[S, A]) Has(state S) bool {
	_, ok := q.rows[state]
	return ok
}

// Len returns the number of states in the table
func (q *QTable[S, A]) Len() int {
	return len(q.rows)
}

// Values returns a copy of the action values stored for state
func (q *QTable[S, A]) Values(state S) map[A]float64 {
	values := make(map[A]float64)
	if r, ok := q.rows[state]; ok {
		for a, v := range r.values {
			values[a] = v
		}
	}
	return values
}

// MaxValue returns the largest action value stored for state, or 0.0
// if state has no stored values
func (q *QTable[S, A]) MaxValue(state S) float64 {
	r, ok := q.rows[state]
	if !ok {
		return 0.0
	}

	values := make([]float64, len(r.order))
	for i, a := range r.order {
		values[i] = r.values[a]
	}
	return floatutils.Max(0.0, values...)
}

// Best returns the action with the largest stored value in state. Only
// actions that have a stored value are considered, and ok is false if
// state has none.
//
// Ties are broken by the lowest index in order, which should be the
// action-declaration order of the environment. Stored actions missing
// from order rank after all of order, in the order they were first
// stored.
func (q *QTable[S, A]) Best(state S, order []A) (best A, ok bool) {
	r, found := q.rows[state]
	if !found || len(r.order) == 0 {
		return best, false
	}

	rank := make(map[A]int, len(order))
	for i, a := range order {
		if _, seen := rank[a]; !seen {
			rank[a] = i
		}
	}
	rankOf := func(a A, insertion int) int {
		if i, ok := rank[a]; ok {
			return i
		}
		return len(order) + insertion
	}

	bestRank := -1
	var bestValue float64
	for i, a := range r.order {
		value := r.values[a]
		aRank := rankOf(a, i)

		switch {
		case bestRank < 0:
		case floatutils.Compare(value, bestValue) > 0:
		case floatutils.Compare(value, bestValue) == 0 && aRank < bestRank:
		default:
			continue
		}
		best, bestValue, bestRank = a, value, aRank
	}
	return best, true
}
