package tracker

// EpisodeLength tracks and saves the number of actions taken in each
// epoch of an experiment
type EpisodeLength struct {
	lengths  []float64
	filename string
}

// NewEpisodeLength creates and returns a new *EpisodeLength Tracker,
// which saves to filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track implements the Tracker interface
func (e *EpisodeLength) Track(result EpochResult) {
	e.lengths = append(e.lengths, float64(result.Steps))
}

// Data returns the episode lengths tracked so far
func (e *EpisodeLength) Data() []float64 {
	return e.lengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() error {
	return save(e.filename, e.lengths)
}
