package network

import (
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fcLayer implements a fully connected layer of a feed forward neural
// network computing act(x * weights + bias) for a batch x with one
// sample per row
type fcLayer struct {
	weights *mat.Dense
	bias    *mat.VecDense
	act     *Activation
}

// newFCLayer returns a new fcLayer with in inputs and out outputs.
// Weights are initialized using Glorot uniform initialization and
// biases are initialized to zero.
func newFCLayer(in, out int, act *Activation, src rand.Source) *fcLayer {
	limit := math.Sqrt(6.0 / float64(in+out))
	dist := distuv.Uniform{Min: -limit, Max: limit, Src: src}

	data := make([]float64, in*out)
	for i := range data {
		data[i] = dist.Rand()
	}

	return &fcLayer{
		weights: mat.NewDense(in, out, data),
		bias:    mat.NewVecDense(out, nil),
		act:     act,
	}
}

// fwd computes the forward pass of the fcLayer on a batch of inputs
func (f *fcLayer) fwd(x mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(x, f.weights)
	out.Apply(func(_, j int, v float64) float64 {
		return f.act.f(v + f.bias.AtVec(j))
	}, &out)
	return &out
}

// dims returns the number of inputs and outputs of the fcLayer
func (f *fcLayer) dims() (in, out int) {
	return f.weights.Dims()
}
