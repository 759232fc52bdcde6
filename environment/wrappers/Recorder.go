// Package wrappers implements wrappers around environments
package wrappers

import "github.com/samuelfneumann/goqlearn/environment"

// Recorder wraps an environment and records the return and number of
// actions taken in the current epoch. Recorder itself implements the
// environment.Environment interface, and is therefore itself an
// Environment.
type Recorder[S, A comparable] struct {
	environment.Environment[S, A]

	epoch       int
	epochReturn float64
	epochSteps  int
}

// NewRecorder returns a new Recorder wrapping env
func NewRecorder[S, A comparable](
	env environment.Environment[S, A]) *Recorder[S, A] {
	return &Recorder[S, A]{Environment: env}
}

// Reset resets the wrapped environment and the statistics of the
// epoch
func (r *Recorder[S, A]) Reset(epoch int) {
	r.Environment.Reset(epoch)
	r.epoch = epoch
	r.epochReturn = 0.0
	r.epochSteps = 0
}

// TakeActionGetReward takes an action in the wrapped environment and
// records the reward
func (r *Recorder[S, A]) TakeActionGetReward(action A) float64 {
	reward := r.Environment.TakeActionGetReward(action)
	r.epochReturn += reward
	r.epochSteps++
	return reward
}

// Epoch returns the epoch passed to the last call to Reset
func (r *Recorder[S, A]) Epoch() int {
	return r.epoch
}

// EpochReturn returns the undiscounted sum of rewards seen since the
// last call to Reset
func (r *Recorder[S, A]) EpochReturn() float64 {
	return r.epochReturn
}

// EpochSteps returns the number of actions taken since the last call to
// Reset
func (r *Recorder[S, A]) EpochSteps() int {
	return r.epochSteps
}

// Report returns the statistics of the wrapped environment if it is an
// environment.Reporter
func (r *Recorder[S, A]) Report() []interface{} {
	if reporter, ok := r.Environment.(environment.Reporter); ok {
		return reporter.Report()
	}
	return nil
}
