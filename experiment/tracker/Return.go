package tracker

// Return tracks and saves the return of each epoch in an experiment
type Return struct {
	returns  []float64
	filename string
}

// NewReturn creates and returns a new *Return Tracker, which saves to
// filename
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track implements the Tracker interface
func (r *Return) Track(result EpochResult) {
	r.returns = append(r.returns, result.Return)
}

// Data returns the returns tracked so far
func (r *Return) Data() []float64 {
	return r.returns
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return) Save() error {
	return save(r.filename, r.returns)
}
