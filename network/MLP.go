package network

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// MLP implements a multi-layered perceptron on gonum matrices. Hidden
// layers use a configurable activation and the output layer is linear.
// The MLP is trained with mini-batch stochastic gradient descent on
// the mean squared error.
type MLP struct {
	shape        []int
	layers       []*fcLayer
	learningRate float64
}

// NewMLP creates a new MLP. The shape parameter lists the layer sizes,
// input layer first and output layer last. Weights are initialized
// from a source seeded with seed.
func NewMLP(shape []int, learningRate float64, hidden *Activation,
	seed uint64) (*MLP, error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("newMLP: at least an input and output layer "+
			"are required \n\twant(>=2) \n\thave(%v)", len(shape))
	}
	for i, size := range shape {
		if size <= 0 {
			return nil, fmt.Errorf("newMLP: layer %v must have positive "+
				"size \n\twant(>0) \n\thave(%v)", i, size)
		}
	}
	if learningRate <= 0 {
		return nil, fmt.Errorf("newMLP: learning rate must be positive "+
			"\n\twant(>0) \n\thave(%v)", learningRate)
	}
	if hidden == nil {
		hidden = Sigmoid()
	}

	src := rand.NewSource(seed)
	layers := make([]*fcLayer, len(shape)-1)
	for i := range layers {
		act := hidden
		if i == len(layers)-1 {
			act = Identity()
		}
		layers[i] = newFCLayer(shape[i], shape[i+1], act, src)
	}

	s := make([]int, len(shape))
	copy(s, shape)

	return &MLP{
		shape:        s,
		layers:       layers,
		learningRate: learningRate,
	}, nil
}

// NewMLPFactory returns a Factory of MLPs using the hidden activation.
// Each MLP created by the Factory is seeded differently, starting from
// seed.
func NewMLPFactory(hidden *Activation, seed uint64) Factory {
	return func(shape []int, learningRate float64) (NeuralNet, error) {
		net, err := NewMLP(shape, learningRate, hidden, seed)
		seed++
		return net, err
	}
}

// Features returns the size of the input layer
func (m *MLP) Features() int {
	return m.shape[0]
}

// Outputs returns the size of the output layer
func (m *MLP) Outputs() int {
	return m.shape[len(m.shape)-1]
}

// Shape returns the layer sizes of the MLP
func (m *MLP) Shape() []int {
	shape := make([]int, len(m.shape))
	copy(shape, m.shape)
	return shape
}

// Forward implements the NeuralNet interface
func (m *MLP) Forward(input []float64) ([]float64, error) {
	if len(input) != m.Features() {
		return nil, fmt.Errorf("forward: invalid input size \n\twant(%v)"+
			"\n\thave(%v)", m.Features(), len(input))
	}

	x := mat.NewDense(1, len(input), append([]float64(nil), input...))
	for _, layer := range m.layers {
		x = layer.fwd(x)
	}
	return mat.Row(nil, 0, x), nil
}

// Fit implements the NeuralNet interface
func (m *MLP) Fit(inputs, targets [][]float64, batchSize int) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("fit: number of inputs and targets differ "+
			"\n\twant(%v) \n\thave(%v)", len(inputs), len(targets))
	}
	if batchSize <= 0 {
		return fmt.Errorf("fit: batch size must be positive \n\twant(>0)"+
			"\n\thave(%v)", batchSize)
	}
	for i := range inputs {
		if len(inputs[i]) != m.Features() {
			return fmt.Errorf("fit: invalid input size at %v \n\twant(%v)"+
				"\n\thave(%v)", i, m.Features(), len(inputs[i]))
		}
		if len(targets[i]) != m.Outputs() {
			return fmt.Errorf("fit: invalid target size at %v \n\twant(%v)"+
				"\n\thave(%v)", i, m.Outputs(), len(targets[i]))
		}
	}

	for start := 0; start < len(inputs); start += batchSize {
		end := start + batchSize
		if end > len(inputs) {
			end = len(inputs)
		}
		m.fitBatch(inputs[start:end], targets[start:end])
	}
	return nil
}

// fitBatch performs a single gradient descent step on a mini-batch
func (m *MLP) fitBatch(inputs, targets [][]float64) {
	batch := len(inputs)
	x := mat.NewDense(batch, m.Features(), nil)
	y := mat.NewDense(batch, m.Outputs(), nil)
	for i := range inputs {
		x.SetRow(i, inputs[i])
		y.SetRow(i, targets[i])
	}

	// activations[l] is the input to layer l
	activations := make([]*mat.Dense, 0, len(m.layers)+1)
	activations = append(activations, x)
	for _, layer := range m.layers {
		activations = append(activations, layer.fwd(activations[len(activations)-1]))
	}

	// Gradient of 1/(2 * batch) * ||out - y||^2 with respect to the
	// output layer's pre-activations
	out := activations[len(activations)-1]
	delta := new(mat.Dense)
	delta.Sub(out, y)
	delta.Scale(1.0/float64(batch), delta)
	last := m.layers[len(m.layers)-1]
	delta.Apply(func(i, j int, v float64) float64 {
		return v * last.act.df(out.At(i, j))
	}, delta)

	for l := len(m.layers) - 1; l >= 0; l-- {
		layer := m.layers[l]
		_, outputs := layer.dims()

		gradW := new(mat.Dense)
		gradW.Mul(activations[l].T(), delta)

		gradB := make([]float64, outputs)
		for j := range gradB {
			for i := 0; i < batch; i++ {
				gradB[j] += delta.At(i, j)
			}
		}

		// Backpropagate before the weights change
		if l > 0 {
			below := m.layers[l-1]
			a := activations[l]
			prev := new(mat.Dense)
			prev.Mul(delta, layer.weights.T())
			prev.Apply(func(i, j int, v float64) float64 {
				return v * below.act.df(a.At(i, j))
			}, prev)
			delta = prev
		}

		gradW.Scale(m.learningRate, gradW)
		layer.weights.Sub(layer.weights, gradW)
		for j, g := range gradB {
			layer.bias.SetVec(j, layer.bias.AtVec(j)-m.learningRate*g)
		}
	}
}

// Set sets the weights of the MLP to be equal to the weights of
// another MLP
func (m *MLP) Set(source NeuralNet) error {
	src, err := m.compatible(source)
	if err != nil {
		return fmt.Errorf("set: %v", err)
	}

	for i, layer := range m.layers {
		layer.weights.Copy(src.layers[i].weights)
		layer.bias.CopyVec(src.layers[i].bias)
	}
	return nil
}

// Polyak sets the weights of the MLP to be a polyak average between
// its existing weights and the weights of another MLP
func (m *MLP) Polyak(source NeuralNet, tau float64) error {
	src, err := m.compatible(source)
	if err != nil {
		return fmt.Errorf("polyak: %v", err)
	}

	for i, layer := range m.layers {
		layer.weights.Scale(1-tau, layer.weights)
		var weights mat.Dense
		weights.Scale(tau, src.layers[i].weights)
		layer.weights.Add(layer.weights, &weights)

		layer.bias.ScaleVec(1-tau, layer.bias)
		layer.bias.AddScaledVec(layer.bias, tau, src.layers[i].bias)
	}
	return nil
}

// compatible checks that source is an MLP of the same shape
func (m *MLP) compatible(source NeuralNet) (*MLP, error) {
	src, ok := source.(*MLP)
	if !ok {
		return nil, fmt.Errorf("cannot copy weights from %T", source)
	}
	if len(src.shape) != len(m.shape) {
		return nil, fmt.Errorf("incompatible number of layers \n\twant(%v)"+
			"\n\thave(%v)", len(m.shape), len(src.shape))
	}
	for i := range m.shape {
		if m.shape[i] != src.shape[i] {
			return nil, fmt.Errorf("incompatible layer %v \n\twant(%v)"+
				"\n\thave(%v)", i, m.shape[i], src.shape[i])
		}
	}
	return src, nil
}
