// Package deepq implements the deep Q-learning algorithm
package deepq

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/environment"
	"github.com/samuelfneumann/goqlearn/expreplay"
	"github.com/samuelfneumann/goqlearn/network"
	"github.com/samuelfneumann/goqlearn/strategy"
	"github.com/samuelfneumann/goqlearn/timestep"
	"github.com/samuelfneumann/goqlearn/utils/floatutils"
)

// DeepQ implements the deep Q-learning algorithm. This algorithm is
// conceptually similar to DQN, but uses the MSE loss and damps the TD
// error of each target by a separate Q-learning rate before fitting:
//
//	target[a] <- Q(s, a) + β * (r + γ * max_a' Q_target(s', a') - Q(s, a))
//
// where Q_target is a target network that is only updated from the
// online network every CopyNNSteps steps.
type DeepQ[S, A comparable] struct {
	net    network.NeuralNet // Online network, trained on replay
	target network.NeuralNet // Target network, provides update targets

	replay   expreplay.ExperienceReplayer
	strategy strategy.ExploreStrategy[A]

	batchSize     int
	trainSteps    int
	copyNNSteps   int
	qLearningRate float64
	discount      float64
	tau           float64
}

// New creates a new DeepQ agent. The factory is called twice to create
// the online and target networks, both with layer sizes
// [features, hidden..., actions], where features is the length of the
// Environment's image features after a reset and actions is the number
// of actions available in the Environment's first state.
func New[S, A comparable](factory network.Factory, hidden []int, c Config,
	s strategy.ExploreStrategy[A],
	env environment.Environment[S, A]) (*DeepQ[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	env.Reset(1)
	features := len(env.Image().Features())
	outputs := len(env.AllActions())
	if outputs == 0 {
		return nil, fmt.Errorf("new: environment must have actions to "+
			"output \n\twant(>0) \n\thave(%v)", outputs)
	}

	shape := make([]int, 0, len(hidden)+2)
	shape = append(shape, features)
	shape = append(shape, hidden...)
	shape = append(shape, outputs)

	net, err := factory(shape, c.NNLearningRate)
	if err != nil {
		return nil, fmt.Errorf("new: could not create network: %v", err)
	}
	if net.Features() != features {
		return nil, fmt.Errorf("new: network input does not match image "+
			"\n\twant(%v) \n\thave(%v)", features, net.Features())
	}

	target, err := factory(shape, c.NNLearningRate)
	if err != nil {
		return nil, fmt.Errorf("new: could not create target network: %v",
			err)
	}
	if err := target.Set(net); err != nil {
		return nil, fmt.Errorf("new: could not sync target network: %v", err)
	}

	replay, err := c.replay().Create(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create replay buffer: %v", err)
	}

	return &DeepQ[S, A]{
		net:           net,
		target:        target,
		replay:        replay,
		strategy:      s,
		batchSize:     c.NNBatchSize,
		trainSteps:    c.TrainSteps,
		copyNNSteps:   c.CopyNNSteps,
		qLearningRate: c.QLearningRate,
		discount:      c.Discount,
		tau:           c.Tau,
	}, nil
}

// Replay returns the agent's experience replay buffer
func (d *DeepQ[S, A]) Replay() expreplay.ExperienceReplayer {
	return d.replay
}

// Net returns the online network of the agent
func (d *DeepQ[S, A]) Net() network.NeuralNet {
	return d.net
}

// Step takes a single action in env, records the transition and
// periodically trains and syncs the agent's networks. It returns
// whether the epoch should end.
func (d *DeepQ[S, A]) Step(progress timestep.Progress,
	env environment.Environment[S, A]) bool {
	state := env.Image().Features()
	values, err := d.net.Forward(state)
	if err != nil {
		panic(fmt.Sprintf("step: could not compute action values: %v", err))
	}
	bestIndex := floatutils.ArgMax(values)

	actions := env.AllActions()
	if len(actions) == 0 {
		return true
	}

	// State dependent action sets may have fewer actions than the
	// network has outputs
	var best *A
	if bestIndex >= 0 && bestIndex < len(actions) {
		best = &actions[bestIndex]
	}
	action := d.strategy.PickAction(actions, best, progress)
	actionIndex := indexOf(actions, action)
	if actionIndex >= d.net.Outputs() {
		panic(fmt.Sprintf("step: action index exceeds network outputs "+
			"\n\twant(<%v) \n\thave(%v)", d.net.Outputs(), actionIndex))
	}

	reward := env.TakeActionGetReward(action)
	done := env.ShouldStop(progress.EpochStep)
	nextState := env.Image().Features()

	d.replay.Add(timestep.NewTransition(state, actionIndex, reward,
		nextState, done))

	if progress.CumulativeSteps%d.trainSteps == 0 {
		d.train()
	}

	if progress.CumulativeSteps%d.copyNNSteps == 0 {
		d.syncTarget()
	}

	return done
}

// train fits the online network to damped Q-learning targets computed
// on a batch sampled from the replay buffer
func (d *DeepQ[S, A]) train() {
	if d.replay.Capacity() < d.replay.MinCapacity() {
		return
	}

	batch, err := d.replay.Sample()
	if err != nil {
		panic(fmt.Sprintf("train: could not sample from replay: %v", err))
	}

	inputs := make([][]float64, len(batch))
	targets := make([][]float64, len(batch))
	for i, t := range batch {
		next := 0.0
		if !t.Done {
			nextValues, err := d.target.Forward(t.NextState)
			if err != nil {
				panic(fmt.Sprintf("train: could not compute next values: %v",
					err))
			}
			next = floatutils.Max(0.0, nextValues...)
		}
		target := t.Reward + d.discount*next

		predicted, err := d.net.Forward(t.State)
		if err != nil {
			panic(fmt.Sprintf("train: could not compute values: %v", err))
		}
		diff := target - predicted[t.Action]
		predicted[t.Action] += diff * d.qLearningRate

		inputs[i] = t.State
		targets[i] = predicted
	}

	if err := d.net.Fit(inputs, targets, d.batchSize); err != nil {
		panic(fmt.Sprintf("train: could not fit network: %v", err))
	}
}

// syncTarget updates the target network from the online network
func (d *DeepQ[S, A]) syncTarget() {
	var err error
	if d.tau == 1.0 {
		err = d.target.Set(d.net)
	} else {
		err = d.target.Polyak(d.net, d.tau)
	}
	if err != nil {
		panic(fmt.Sprintf("step: could not update target network: %v", err))
	}
}

// indexOf returns the index of action in actions
func indexOf[A comparable](actions []A, action A) int {
	for i := range actions {
		if actions[i] == action {
			return i
		}
	}
	panic(fmt.Sprintf("step: picked action %v not in legal actions", action))
}
