// Package graphnet implements a NeuralNet on top of Gorgonia
// computational graphs.
//
// A Net owns one computational graph per batch size that it has been
// asked to run: a graph of batch size 1 for Forward and one training
// graph for every mini-batch size seen by Fit. All graphs share the
// same canonical weights, which are copied into a graph's learnable
// nodes before it runs and copied back out after a training step.
package graphnet

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/goqlearn/initwfn"
	"github.com/samuelfneumann/goqlearn/network"
	"github.com/samuelfneumann/goqlearn/solver"
)

// Config describes how a Net is constructed
type Config struct {
	Activation *network.Activation // Hidden layer activation
	Solver     solver.Type
	InitWFn    *initwfn.InitWFn
}

// DefaultConfig returns a Config using sigmoid hidden layers, the Adam
// solver and Glorot uniform weight initialization
func DefaultConfig() Config {
	init, err := initwfn.NewGlorotU(1.0)
	if err != nil {
		panic(fmt.Sprintf("defaultconfig: %v", err))
	}
	return Config{
		Activation: network.Sigmoid(),
		Solver:     solver.Adam,
		InitWFn:    init,
	}
}

// graph is a single computational graph of the Net for a fixed batch
// size
type graph struct {
	g          *G.ExprGraph
	input      *G.Node
	target     *G.Node // nil unless the graph can be trained
	learnables G.Nodes
	model      []G.ValueGrad
	prediction *G.Node
	predVal    G.Value
	vm         G.VM
}

// Net implements a multi-layered perceptron with a linear output layer
// using Gorgonia, trained on the mean squared error.
type Net struct {
	shape   []int
	act     *network.Activation
	solver  *solver.Solver
	weights []*tensor.Dense

	predict *graph
	train   map[int]*graph
}

// New creates a new Net with the given layer sizes, input layer first,
// trained with a solver of type c.Solver and step size learningRate.
func New(shape []int, learningRate float64, c Config) (*Net, error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("new: at least an input and output layer "+
			"are required \n\twant(>=2) \n\thave(%v)", len(shape))
	}
	for i, size := range shape {
		if size <= 0 {
			return nil, fmt.Errorf("new: layer %v must have positive size "+
				"\n\twant(>0) \n\thave(%v)", i, size)
		}
	}
	if c.Activation == nil || c.InitWFn == nil {
		defaults := DefaultConfig()
		if c.Activation == nil {
			c.Activation = defaults.Activation
		}
		if c.InitWFn == nil {
			c.InitWFn = defaults.InitWFn
		}
	}
	if c.Solver == "" {
		c.Solver = solver.Adam
	}

	sol, err := solver.New(c.Solver, learningRate)
	if err != nil {
		return nil, fmt.Errorf("new: could not create solver: %v", err)
	}

	// Weights are stored in (weights, bias) pairs for each layer
	init := c.InitWFn.InitWFn()
	weights := make([]*tensor.Dense, 0, 2*(len(shape)-1))
	for i := 0; i < len(shape)-1; i++ {
		in, out := shape[i], shape[i+1]
		w := tensor.New(
			tensor.WithShape(in, out),
			tensor.WithBacking(init(tensor.Float64, in, out)),
		)
		b := tensor.New(
			tensor.WithShape(out),
			tensor.WithBacking(make([]float64, out)),
		)
		weights = append(weights, w, b)
	}

	s := make([]int, len(shape))
	copy(s, shape)

	net := &Net{
		shape:   s,
		act:     c.Activation,
		solver:  sol,
		weights: weights,
		train:   make(map[int]*graph),
	}

	net.predict, err = net.newGraph(1, false)
	if err != nil {
		return nil, fmt.Errorf("new: could not create prediction graph: %v",
			err)
	}
	return net, nil
}

// NewFactory returns a network.Factory creating Nets described by c
func NewFactory(c Config) network.Factory {
	return func(shape []int, learningRate float64) (network.NeuralNet, error) {
		return New(shape, learningRate, c)
	}
}

// newGraph builds a computational graph of the Net for a batch size.
// If train is true, the graph also computes the gradient of the mean
// squared error between its prediction and a target node.
func (n *Net) newGraph(batch int, train bool) (*graph, error) {
	g := G.NewGraph()
	input := G.NewMatrix(g, tensor.Float64,
		G.WithShape(batch, n.Features()),
		G.WithName("input"),
		G.WithInit(G.Zeroes()),
	)

	layers := len(n.shape) - 1
	learnables := make(G.Nodes, 0, 2*layers)
	pred := input
	var err error
	for i := 0; i < layers; i++ {
		w := G.NewMatrix(g, tensor.Float64,
			G.WithShape(n.shape[i], n.shape[i+1]),
			G.WithName(fmt.Sprintf("W%d", i)),
			G.WithValue(n.weights[2*i].Clone().(*tensor.Dense)),
		)
		b := G.NewVector(g, tensor.Float64,
			G.WithShape(n.shape[i+1]),
			G.WithName(fmt.Sprintf("b%d", i)),
			G.WithValue(n.weights[2*i+1].Clone().(*tensor.Dense)),
		)
		learnables = append(learnables, w, b)

		pred = G.Must(G.Mul(pred, w))

		// Broadcast the bias weights to all samples along the batch
		// dimension
		pred = G.Must(G.BroadcastAdd(pred, b, nil, []byte{0}))

		if i < layers-1 {
			if pred, err = n.act.Fwd(pred); err != nil {
				return nil, fmt.Errorf("newGraph: could not compute "+
					"activation of layer %v: %v", i, err)
			}
		}
	}

	gr := &graph{
		g:          g,
		input:      input,
		learnables: learnables,
		prediction: pred,
	}
	G.Read(gr.prediction, &gr.predVal)

	if !train {
		gr.vm = G.NewTapeMachine(g)
		return gr, nil
	}

	gr.target = G.NewMatrix(g, tensor.Float64,
		G.WithShape(batch, n.Outputs()),
		G.WithName("target"),
		G.WithInit(G.Zeroes()),
	)
	loss := G.Must(G.Mean(G.Must(G.Square(G.Must(G.Sub(pred, gr.target))))))
	if _, err := G.Grad(loss, learnables...); err != nil {
		return nil, fmt.Errorf("newGraph: could not compute gradient: %v",
			err)
	}

	gr.model = make([]G.ValueGrad, 0, len(learnables))
	for _, node := range learnables {
		gr.model = append(gr.model, node)
	}
	gr.vm = G.NewTapeMachine(g, G.BindDualValues(learnables...))
	return gr, nil
}

// trainGraph returns the training graph for a batch size, creating it
// if needed
func (n *Net) trainGraph(batch int) (*graph, error) {
	if gr, ok := n.train[batch]; ok {
		return gr, nil
	}
	gr, err := n.newGraph(batch, true)
	if err != nil {
		return nil, err
	}
	n.train[batch] = gr
	return gr, nil
}

// load copies the canonical weights into the learnables of a graph
func (n *Net) load(gr *graph) {
	for i, node := range gr.learnables {
		copy(node.Value().Data().([]float64), n.weights[i].Data().([]float64))
	}
}

// store copies the learnables of a graph into the canonical weights
func (n *Net) store(gr *graph) {
	for i, node := range gr.learnables {
		copy(n.weights[i].Data().([]float64), node.Value().Data().([]float64))
	}
}

// Features returns the size of the input layer
func (n *Net) Features() int {
	return n.shape[0]
}

// Outputs returns the size of the output layer
func (n *Net) Outputs() int {
	return n.shape[len(n.shape)-1]
}

// Forward implements the network.NeuralNet interface
func (n *Net) Forward(input []float64) ([]float64, error) {
	if len(input) != n.Features() {
		return nil, fmt.Errorf("forward: invalid input size \n\twant(%v)"+
			"\n\thave(%v)", n.Features(), len(input))
	}

	n.load(n.predict)
	inputTensor := tensor.New(
		tensor.WithShape(1, n.Features()),
		tensor.WithBacking(append([]float64(nil), input...)),
	)
	if err := G.Let(n.predict.input, inputTensor); err != nil {
		return nil, fmt.Errorf("forward: could not set input: %v", err)
	}

	defer n.predict.vm.Reset()
	if err := n.predict.vm.RunAll(); err != nil {
		return nil, fmt.Errorf("forward: %v", err)
	}

	out := make([]float64, n.Outputs())
	copy(out, n.predict.predVal.Data().([]float64))
	return out, nil
}

// Fit implements the network.NeuralNet interface
func (n *Net) Fit(inputs, targets [][]float64, batchSize int) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("fit: number of inputs and targets differ "+
			"\n\twant(%v) \n\thave(%v)", len(inputs), len(targets))
	}
	if batchSize <= 0 {
		return fmt.Errorf("fit: batch size must be positive \n\twant(>0)"+
			"\n\thave(%v)", batchSize)
	}

	for start := 0; start < len(inputs); start += batchSize {
		end := start + batchSize
		if end > len(inputs) {
			end = len(inputs)
		}
		if err := n.fitBatch(inputs[start:end], targets[start:end]); err != nil {
			return fmt.Errorf("fit: %v", err)
		}
	}
	return nil
}

// fitBatch runs a single solver step on a mini-batch
func (n *Net) fitBatch(inputs, targets [][]float64) error {
	batch := len(inputs)
	inputBacking := make([]float64, 0, batch*n.Features())
	targetBacking := make([]float64, 0, batch*n.Outputs())
	for i := range inputs {
		if len(inputs[i]) != n.Features() {
			return fmt.Errorf("invalid input size \n\twant(%v) \n\thave(%v)",
				n.Features(), len(inputs[i]))
		}
		if len(targets[i]) != n.Outputs() {
			return fmt.Errorf("invalid target size \n\twant(%v) \n\thave(%v)",
				n.Outputs(), len(targets[i]))
		}
		inputBacking = append(inputBacking, inputs[i]...)
		targetBacking = append(targetBacking, targets[i]...)
	}

	gr, err := n.trainGraph(batch)
	if err != nil {
		return err
	}
	n.load(gr)

	err = G.Let(gr.input, tensor.New(
		tensor.WithShape(batch, n.Features()),
		tensor.WithBacking(inputBacking),
	))
	if err != nil {
		return fmt.Errorf("could not set input: %v", err)
	}
	err = G.Let(gr.target, tensor.New(
		tensor.WithShape(batch, n.Outputs()),
		tensor.WithBacking(targetBacking),
	))
	if err != nil {
		return fmt.Errorf("could not set target: %v", err)
	}

	defer gr.vm.Reset()
	if err := gr.vm.RunAll(); err != nil {
		return err
	}
	if err := n.solver.Step(gr.model); err != nil {
		return fmt.Errorf("could not step solver: %v", err)
	}
	n.store(gr)
	return nil
}

// Set sets the weights of the Net to be equal to the weights of
// another Net
func (n *Net) Set(source network.NeuralNet) error {
	src, err := n.compatible(source)
	if err != nil {
		return fmt.Errorf("set: %v", err)
	}

	for i := range n.weights {
		copy(n.weights[i].Data().([]float64), src.weights[i].Data().([]float64))
	}
	return nil
}

// Polyak sets the weights of the Net to be a polyak average between
// its existing weights and the weights of another Net
func (n *Net) Polyak(source network.NeuralNet, tau float64) error {
	src, err := n.compatible(source)
	if err != nil {
		return fmt.Errorf("polyak: %v", err)
	}

	for i := range n.weights {
		weights := n.weights[i].Data().([]float64)
		sourceWeights := src.weights[i].Data().([]float64)
		for j := range weights {
			weights[j] = (1-tau)*weights[j] + tau*sourceWeights[j]
		}
	}
	return nil
}

// compatible checks that source is a Net of the same shape
func (n *Net) compatible(source network.NeuralNet) (*Net, error) {
	src, ok := source.(*Net)
	if !ok {
		return nil, fmt.Errorf("cannot copy weights from %T", source)
	}
	if len(src.shape) != len(n.shape) {
		return nil, fmt.Errorf("incompatible number of layers \n\twant(%v)"+
			"\n\thave(%v)", len(n.shape), len(src.shape))
	}
	for i := range n.shape {
		if n.shape[i] != src.shape[i] {
			return nil, fmt.Errorf("incompatible layer %v \n\twant(%v)"+
				"\n\thave(%v)", i, n.shape[i], src.shape[i])
		}
	}
	return src, nil
}
