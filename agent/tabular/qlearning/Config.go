package qlearning

import "fmt"

// Config implements a configuration for a tabular QLearning agent
type Config struct {
	LearningRate float64 // α, the step size of the Bellman update
	Discount     float64 // γ, the discount of the next state's value
}

// Validate checks a Config to ensure it is a valid configuration of a
// QLearning agent.
func (c Config) Validate() error {
	if c.LearningRate <= 0 {
		return fmt.Errorf("new: learning rate must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.LearningRate)
	}

	if c.Discount < 0 {
		return fmt.Errorf("new: discount must be non-negative "+
			"\n\twant(>=0) \n\thave(%v)", c.Discount)
	}

	return nil
}
