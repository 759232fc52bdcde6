// Package solver implements functionality to wrap Gorgonia Solvers so
// that they can be chosen by name in configuration files.
package solver

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// Type describes different types of solvers that are available
type Type string

// Available solver types
const (
	Adam    Type = "Adam"
	Vanilla Type = "Vanilla"
	RMSProp Type = "RMSProp"
)

// Solver wraps Gorgonia Solvers along with the configuration used to
// create them.
type Solver struct {
	G.Solver `json:"-"`
	Type
	Config
}

// New returns a new solver of the given type with step size stepSize,
// using default values for all other hyperparameters. Gradients are
// not averaged by the solver, so losses should already be averaged
// over the batch.
func New(t Type, stepSize float64) (*Solver, error) {
	if stepSize <= 0 {
		return nil, fmt.Errorf("new: step size must be positive \n\twant(>0)"+
			"\n\thave(%v)", stepSize)
	}

	switch t {
	case Adam:
		return NewDefaultAdam(stepSize, 1)
	case Vanilla:
		return NewVanilla(stepSize, 1, -1.0)
	case RMSProp:
		return NewDefaultRMSProp(stepSize, 1)
	default:
		return nil, fmt.Errorf("new: unknown solver type %q", t)
	}
}

// newSolver returns a new solver with the given type and configuration.
func newSolver(t Type, c Config) (*Solver, error) {
	if !c.ValidType(t) {
		return nil, fmt.Errorf("newSolver: invalid solver type %v for "+
			"configuration %T", t, c)
	}
	solver := Solver{Type: t, Config: c}
	solver.Solver = solver.Config.Create()

	return &solver, nil
}

// Config implements a Gorgonia Solver configuration and can be used to
// create Gorgonia Solvers they describe.
type Config interface {
	Create() G.Solver

	// ValidType returns whether a specific Solver type can be created
	// with the Config
	ValidType(Type) bool
}
