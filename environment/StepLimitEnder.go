package environment

// StepLimit ends epochs once a given number of steps has been taken
type StepLimit struct {
	epochSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(epochSteps int) StepLimit {
	return StepLimit{epochSteps}
}

// End returns whether an epoch that has taken step steps should be
// ended. The limit itself is still allowed, so End returns true only
// once step exceeds it.
func (s StepLimit) End(step int) bool {
	return step > s.epochSteps
}

// Steps returns the step limit
func (s StepLimit) Steps() int {
	return s.epochSteps
}
