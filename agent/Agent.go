// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/goqlearn/environment"
	"github.com/samuelfneumann/goqlearn/timestep"
)

// Agent determines the implementation details of an agent or
// algorithm.
//
// A single call to Step chooses an action, applies it to the
// Environment and updates whatever the Agent learns from the observed
// reward. Step returns true when the current epoch is over, either
// because the Environment reports that it should stop or because the
// Environment offers no legal actions.
type Agent[S, A comparable] interface {
	Step(progress timestep.Progress, env environment.Environment[S, A]) bool
}

// Config represents a configuration of an agent's hyperparameters
type Config interface {
	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error
}
