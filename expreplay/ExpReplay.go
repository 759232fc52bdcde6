// Package expreplay implements a bounded experience replay buffer
package expreplay

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/timestep"
)

// Config implements a specific configuration of an ExperienceReplayer
type Config struct {
	SampleSize        int
	MaxReplayCapacity int
	MinReplayCapacity int
}

// Create creates and returns the ExperienceReplayer with the specified
// Config, sampling uniformly at random with replacement.
func (c Config) Create(seed uint64) (ExperienceReplayer, error) {
	sampler := NewUniformSelector(c.SampleSize, seed)
	return New(sampler, c.MinReplayCapacity, c.MaxReplayCapacity)
}

// ExperienceReplayer implements an experience replay buffer
type ExperienceReplayer interface {
	// Add adds a transition to the buffer, evicting the oldest
	// transition if the buffer is full
	Add(t timestep.Transition)

	// Sample samples a batch of transitions from the buffer
	Sample() ([]timestep.Transition, error)

	// Entries returns the transitions in the buffer, oldest first
	Entries() []timestep.Transition

	// Capacity returns the current number of samples in the buffer
	Capacity() int

	// MaxCapacity returns the maximum allowable samples in the buffer
	MaxCapacity() int

	// MinCapacity returns the number of samples required to be in
	// the buffer before the buffer can be sampled
	MinCapacity() int

	// BatchSize returns the number of samples returned by Sample()
	BatchSize() int
}

// fifoCache implements a concrete ExperienceReplayer where elements
// are removed from the buffer in a FiFo manner, one at a time. The
// buffer is a ring: once full, each Add overwrites the oldest
// transition.
type fifoCache struct {
	transitions []timestep.Transition

	// oldest is the position of the oldest transition once the
	// buffer is full, which is also the position of the next write
	oldest int
	isFull bool

	// Outlines how data is sampled
	sampler Selector

	minCapacity int
	maxCapacity int
}

// New creates and returns a new ExperienceReplayer. The sampler
// parameter determines how data is sampled from the buffer. At least
// minCapacity transitions must be in the buffer before it can be
// sampled, and at most maxCapacity transitions are kept.
func New(sampler Selector, minCapacity,
	maxCapacity int) (ExperienceReplayer, error) {
	if minCapacity <= 0 {
		return nil, fmt.Errorf("new: minCapacity must be > 0 "+
			"\n\twant(>0) \n\thave(%v)", minCapacity)
	}
	if maxCapacity < minCapacity {
		return nil, fmt.Errorf("new: maxCapacity must be >= minCapacity "+
			"\n\twant(>=%v) \n\thave(%v)", minCapacity, maxCapacity)
	}
	if sampler.BatchSize() < 1 {
		return nil, fmt.Errorf("new: batch size must be positive "+
			"\n\twant(>0) \n\thave(%v)", sampler.BatchSize())
	}

	return &fifoCache{
		transitions: make([]timestep.Transition, 0, maxCapacity),
		sampler:     sampler,
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
	}, nil
}

// String returns the string representation of the fifoCache
func (f *fifoCache) String() string {
	return fmt.Sprintf("Replay | Capacity: %v  |  Max Capacity: %v  |  "+
		"Min Capacity: %v  |  Batch Size: %v", f.Capacity(), f.maxCapacity,
		f.minCapacity, f.BatchSize())
}

// Add adds a transition to the buffer
func (f *fifoCache) Add(t timestep.Transition) {
	if !f.isFull {
		f.transitions = append(f.transitions, t)
		f.isFull = len(f.transitions) == f.maxCapacity
		return
	}

	f.transitions[f.oldest] = t
	f.oldest = (f.oldest + 1) % f.maxCapacity
}

// Sample samples and returns a batch of transitions from the replay
// buffer
func (f *fifoCache) Sample() ([]timestep.Transition, error) {
	if f.Capacity() == 0 {
		return nil, &ExpReplayError{
			Op:  "sample",
			Err: errEmptyCache,
		}
	}
	if f.Capacity() < f.MinCapacity() {
		return nil, &ExpReplayError{
			Op:  "sample",
			Err: errInsufficientSamples,
		}
	}

	indices := f.sampler.choose(f.Capacity())
	batch := make([]timestep.Transition, len(indices))
	for i, index := range indices {
		batch[i] = f.transitions[(f.oldest+index)%len(f.transitions)]
	}
	return batch, nil
}

// Entries returns the transitions in the buffer in insertion order
func (f *fifoCache) Entries() []timestep.Transition {
	entries := make([]timestep.Transition, 0, len(f.transitions))
	entries = append(entries, f.transitions[f.oldest:]...)
	entries = append(entries, f.transitions[:f.oldest]...)
	return entries
}

// Capacity returns the current number of elements in the cache that
// are available for sampling
func (f *fifoCache) Capacity() int {
	return len(f.transitions)
}

// MaxCapacity returns the maximum number of elements that are allowed
// in the cache
func (f *fifoCache) MaxCapacity() int {
	return f.maxCapacity
}

// MinCapacity returns the minimum number of elements required in the
// cache before sampling is allowed
func (f *fifoCache) MinCapacity() int {
	return f.minCapacity
}

// BatchSize returns the number of samples sampled using Sample()
func (f *fifoCache) BatchSize() int {
	return f.sampler.BatchSize()
}
