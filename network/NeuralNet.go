// Package network implements the neural network function approximators
// used by deep agents.
package network

// NeuralNet is a feed-forward function approximator mapping a feature
// vector to one output per action.
type NeuralNet interface {
	// Forward computes the outputs of the network for a single input.
	// An input whose length is not Features() is an error.
	Forward(input []float64) ([]float64, error)

	// Fit performs one pass of gradient descent over the (input,
	// target) pairs, in mini-batches of batchSize.
	Fit(inputs, targets [][]float64, batchSize int) error

	// Set sets the weights of the network to be equal to the weights
	// of source.
	Set(source NeuralNet) error

	// Polyak sets the weights of the network to the polyak average
	// (1 - tau) * weights + tau * source.
	Polyak(source NeuralNet, tau float64) error

	// Features returns the size of the input layer
	Features() int

	// Outputs returns the size of the output layer
	Outputs() int
}

// Factory creates a NeuralNet with the given layer sizes, input layer
// first, trained with the given learning rate.
type Factory func(shape []int, learningRate float64) (NeuralNet, error)
