package tracker

import (
	"io"

	"github.com/samuelfneumann/goqlearn/utils/progressbar"
)

// Progress displays a progress bar that advances by one each epoch
type Progress struct {
	bar *progressbar.ManualProgressBar
}

// NewProgress returns a new Progress Tracker for an experiment of
// epochs epochs, drawn to out
func NewProgress(out io.Writer, epochs int) *Progress {
	return &Progress{progressbar.NewManualProgressBar(out, 50, epochs)}
}

// Track implements the Tracker interface
func (p *Progress) Track(EpochResult) {
	p.bar.Increment()
	p.bar.Display()
}

// Save finishes the progress bar
func (p *Progress) Save() error {
	p.bar.Close()
	return nil
}
