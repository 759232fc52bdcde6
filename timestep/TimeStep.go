// Package timestep implements the bookkeeping of the agent-environment
// interaction: the run Progress and the Transitions stored for replay.
package timestep

import (
	"fmt"
)

// Progress tracks where a training run currently is. Epoch is the
// index of the current epoch (starting at 1 once a run begins),
// EpochStep counts steps within the current epoch and CumulativeSteps
// counts steps across the whole run.
//
// Progress is mutated only by the runner. Agents and strategies
// receive it by value and use it to gate periodic behaviour.
type Progress struct {
	Epoch           int
	EpochStep       int
	CumulativeSteps int
}

// NewEpoch moves the Progress to the start of the given epoch. The
// step counter within the epoch is reset, the cumulative step counter
// is not.
func (p *Progress) NewEpoch(epoch int) {
	p.Epoch = epoch
	p.EpochStep = 0
}

// Advance records that one more step is about to be taken.
func (p *Progress) Advance() {
	p.EpochStep++
	p.CumulativeSteps++
}

func (p Progress) String() string {
	str := "Progress | Epoch: %v  |  Epoch Step: %v  |  Cumulative Steps: %v"
	return fmt.Sprintf(str, p.Epoch, p.EpochStep, p.CumulativeSteps)
}
