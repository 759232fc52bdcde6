package deepq

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/expreplay"
)

// Config implements a configuration for a DeepQ agent
type Config struct {
	NNLearningRate float64 // Step size of the network's optimizer
	NNBatchSize    int     // Mini-batch size used when fitting the network

	TrainSteps  int // Cumulative steps between training calls
	CopyNNSteps int // Cumulative steps between target network updates

	// ReplaySize is the number of transitions sampled per training
	// call, and also the number of transitions the buffer must hold
	// before training begins
	ReplaySize  int
	HistorySize int // Capacity of the replay buffer

	QLearningRate float64 // Damping of the TD step applied to targets
	Discount      float64

	// Tau is the polyak averaging constant of target network updates.
	// A Tau of 1 copies the network outright.
	Tau float64

	Seed uint64 // Seed of the replay buffer's sampler
}

// DefaultConfig returns the default configuration of a DeepQ agent
func DefaultConfig() Config {
	return Config{
		NNLearningRate: 0.01,
		NNBatchSize:    16,
		TrainSteps:     10,
		CopyNNSteps:    80,
		ReplaySize:     64,
		HistorySize:    10000,
		QLearningRate:  0.1,
		Discount:       0.9,
		Tau:            1.0,
	}
}

// Validate checks a Config to ensure it is a valid configuration of a
// DeepQ agent.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"nn batch size", c.NNBatchSize},
		{"train steps", c.TrainSteps},
		{"copy nn steps", c.CopyNNSteps},
		{"replay size", c.ReplaySize},
		{"history size", c.HistorySize},
	}
	for _, field := range positive {
		if field.value <= 0 {
			return fmt.Errorf("new: %v must be positive \n\twant(>0) "+
				"\n\thave(%v)", field.name, field.value)
		}
	}

	if c.ReplaySize > c.HistorySize {
		return fmt.Errorf("new: replay size cannot exceed history size "+
			"\n\twant(<=%v) \n\thave(%v)", c.HistorySize, c.ReplaySize)
	}

	if c.NNLearningRate <= 0 {
		return fmt.Errorf("new: nn learning rate must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.NNLearningRate)
	}

	if c.QLearningRate <= 0 {
		return fmt.Errorf("new: q learning rate must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.QLearningRate)
	}

	if c.Discount < 0 {
		return fmt.Errorf("new: discount must be non-negative "+
			"\n\twant(>=0) \n\thave(%v)", c.Discount)
	}

	if c.Tau <= 0 || c.Tau > 1 {
		return fmt.Errorf("new: tau must be in (0, 1] \n\twant(0 < tau <= 1)"+
			"\n\thave(%v)", c.Tau)
	}

	return nil
}

// replay returns the configuration of the agent's replay buffer
func (c Config) replay() expreplay.Config {
	return expreplay.Config{
		SampleSize:        c.ReplaySize,
		MaxReplayCapacity: c.HistorySize,
		MinReplayCapacity: c.ReplaySize,
	}
}
