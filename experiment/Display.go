package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log/level"

	"github.com/samuelfneumann/goqlearn/display"
	"github.com/samuelfneumann/goqlearn/timestep"
)

// frameBuffer is the number of frames that may wait for the presenter
const frameBuffer = 4

// DisplayConfig configures how an experiment is presented while it
// runs
type DisplayConfig struct {
	FPS int // Frames sampled per second of wall time

	// StepTime is slept after each step once StepTimeStart epochs have
	// started, so that the agent can be watched
	StepTime      time.Duration
	StepTimeStart int
}

// DefaultDisplayConfig returns a DisplayConfig sampling 10 frames per
// second without slowing down the agent
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{FPS: 10}
}

// Validate checks a DisplayConfig to ensure it is valid
func (c DisplayConfig) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("validate: fps must be positive \n\twant(>0) "+
			"\n\thave(%v)", c.FPS)
	}
	if c.StepTime < 0 {
		return fmt.Errorf("validate: step time must be non-negative "+
			"\n\twant(>=0) \n\thave(%v)", c.StepTime)
	}
	return nil
}

// RunWithDisplay runs all epochs of the experiment like Run, while
// presenting pictures of the environment on sink.
//
// Training happens in the calling goroutine. At most FPS times per
// second, a copy of the environment's image is handed to a presenter
// goroutine that shows it on sink. Frames are dropped if the presenter
// falls behind. Cancelling ctx stops the presenter and ends training
// at the next step, in which case ctx's error is returned.
func (r *Runner[S, A]) RunWithDisplay(ctx context.Context, sink display.Sink,
	c DisplayConfig) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("runWithDisplay: %v", err)
	}

	frames := make(chan display.Frame, frameBuffer)
	presented := make(chan struct{})
	go func() {
		defer close(presented)
		r.present(ctx, sink, frames)
	}()
	defer func() {
		close(frames)
		<-presented
	}()

	interval := time.Second / time.Duration(c.FPS)
	var lastFrame time.Time
	dropped := 0

	r.progress = timestep.Progress{}
	for epoch := 1; epoch <= r.epochs; epoch++ {
		r.startEpoch(epoch)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			done := r.step()

			if now := time.Now(); now.Sub(lastFrame) >= interval {
				lastFrame = now
				frame := display.NewFrame(r.name, epoch, r.env.Image())
				select {
				case frames <- frame:
				default:
					dropped++
				}
			}

			if c.StepTime > 0 && epoch >= c.StepTimeStart {
				select {
				case <-ctx.Done():
				case <-time.After(c.StepTime):
				}
			}

			if done {
				break
			}
		}
		r.endEpoch()
	}

	if dropped > 0 {
		level.Debug(r.logger).Log("msg", "frames dropped", "dropped", dropped)
	}
	return nil
}

// present shows frames on sink until frames is closed or ctx is done
func (r *Runner[S, A]) present(ctx context.Context, sink display.Sink,
	frames <-chan display.Frame) {
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-frames:
			if !ok {
				return
			}
			if err := sink.Show(f); err != nil {
				level.Warn(r.logger).Log("msg", "could not show frame",
					"err", err)
			}
		}
	}
}
