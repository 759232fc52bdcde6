// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

// Environment implements a simulated environment that an agent acts
// in. S is the type of state snapshots and A the type of actions; both
// are compared structurally, so two equal states are interchangeable
// as keys of a value table.
type Environment[S, A comparable] interface {
	// State returns a snapshot of the current state. It has no side
	// effects.
	State() S

	// Reset re-initializes the Environment for a new epoch. The epoch
	// number may be used for statistics only.
	Reset(epoch int)

	// AllActions returns the legal actions in the current state. An
	// empty slice means the epoch cannot proceed and should end
	// without penalty.
	AllActions() []A

	// TakeActionGetReward applies an action and returns the scalar
	// reward for it. Taking an action not in AllActions() is
	// undefined.
	TakeActionGetReward(action A) float64

	// ShouldStop reports whether the epoch is over. The step argument
	// is the number of steps taken so far in the epoch and can be used
	// as a time limit.
	ShouldStop(step int) bool

	// Image returns a picture of the current state. Environments that
	// have no picture return the zero Image.
	Image() Image
}

// Reporter is an Environment that keeps statistics over the epochs it
// has run, such as how often each terminal condition was hit. Report
// returns alternating keys and values suitable for a structured
// logger.
type Reporter interface {
	Report() []interface{}
}
