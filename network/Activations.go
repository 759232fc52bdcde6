package network

import (
	"fmt"
	"math"

	G "gorgonia.org/gorgonia"
)

type activationType string

const (
	sigmoid  activationType = "sigmoid"
	relu     activationType = "relu"
	identity activationType = "identity"
	tanh     activationType = "tanh"
)

// Activation represents an activation function. Each Activation can be
// applied element-wise to floats, through its derivative for
// backpropagation, or added to a Gorgonia computational graph.
type Activation struct {
	activationType
	f func(x float64) float64

	// df is the derivative expressed in terms of the activation's
	// output y = f(x)
	df func(y float64) float64

	node func(x *G.Node) (*G.Node, error)
}

// Fwd adds the Activation to a computational graph
func (a *Activation) Fwd(x *G.Node) (*G.Node, error) {
	return a.node(x)
}

// String implements the Stringer interface
func (a *Activation) String() string {
	return string(a.activationType)
}

// IsIdentity returns whether or not the Activation is the identity
// function.
func (a *Activation) IsIdentity() bool {
	return a.activationType == identity
}

// MarshalText implements the encoding.TextMarshaler interface so that
// Activations can be written to JSON configuration files
func (a *Activation) MarshalText() ([]byte, error) {
	return []byte(a.activationType), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (a *Activation) UnmarshalText(text []byte) error {
	act, err := ActivationByName(string(text))
	if err != nil {
		return err
	}
	*a = *act
	return nil
}

// GobEncode implements the GobEncoder interface
func (a *Activation) GobEncode() ([]byte, error) {
	return a.MarshalText()
}

// GobDecode implements the GobDecoder interface
func (a *Activation) GobDecode(encoded []byte) error {
	return a.UnmarshalText(encoded)
}

// ActivationByName returns the Activation with the given name
func ActivationByName(name string) (*Activation, error) {
	switch activationType(name) {
	case sigmoid:
		return Sigmoid(), nil
	case relu:
		return ReLU(), nil
	case identity:
		return Identity(), nil
	case tanh:
		return TanH(), nil
	default:
		return nil, fmt.Errorf("activationbyname: illegal Activation type "+
			"%q", name)
	}
}

// Identity returns an identity *Activation
func Identity() *Activation {
	return &Activation{
		activationType: identity,
		f:              func(x float64) float64 { return x },
		df:             func(float64) float64 { return 1.0 },
		node: func(x *G.Node) (*G.Node, error) {
			return x, nil
		},
	}
}

// Sigmoid returns a logistic sigmoid *Activation
func Sigmoid() *Activation {
	return &Activation{
		activationType: sigmoid,
		f:              func(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) },
		df:             func(y float64) float64 { return y * (1.0 - y) },
		node:           G.Sigmoid,
	}
}

// ReLU returns a ReLU *Activation
func ReLU() *Activation {
	return &Activation{
		activationType: relu,
		f:              func(x float64) float64 { return math.Max(0, x) },
		df: func(y float64) float64 {
			if y > 0 {
				return 1.0
			}
			return 0.0
		},
		node: G.Rectify,
	}
}

// TanH returns a tanh *Activation
func TanH() *Activation {
	return &Activation{
		activationType: tanh,
		f:              math.Tanh,
		df:             func(y float64) float64 { return 1.0 - y*y },
		node:           G.Tanh,
	}
}
