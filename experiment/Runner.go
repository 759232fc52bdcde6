// Package experiment implements functionality for running an agent in
// an environment for a number of epochs
package experiment

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/samuelfneumann/goqlearn/agent"
	"github.com/samuelfneumann/goqlearn/environment"
	"github.com/samuelfneumann/goqlearn/environment/wrappers"
	"github.com/samuelfneumann/goqlearn/experiment/tracker"
	"github.com/samuelfneumann/goqlearn/timestep"
)

type options struct {
	logger   log.Logger
	logEvery int
	name     string
	trackers []tracker.Tracker
}

// Option configures a Runner
type Option func(*options)

// WithLogger sets the logger that epoch statistics are logged to
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogEvery sets the number of epochs between logged statistics
func WithLogEvery(epochs int) Option {
	return func(o *options) {
		o.logEvery = epochs
	}
}

// WithName sets the name of the experiment, used in logs and as the
// name of displayed frames
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithTrackers adds Trackers that are given the result of each epoch
func WithTrackers(trackers ...tracker.Tracker) Option {
	return func(o *options) {
		o.trackers = append(o.trackers, trackers...)
	}
}

// Runner runs an agent in an environment for a fixed number of epochs.
// All training happens in the goroutine calling Run or RunWithDisplay.
type Runner[S, A comparable] struct {
	agent    agent.Agent[S, A]
	env      *wrappers.Recorder[S, A]
	epochs   int
	progress timestep.Progress

	logger   log.Logger
	logEvery int
	name     string
	trackers []tracker.Tracker
}

// NewRunner returns a new Runner that runs a in env for epochs epochs
func NewRunner[S, A comparable](a agent.Agent[S, A],
	env environment.Environment[S, A], epochs int,
	opts ...Option) *Runner[S, A] {
	o := options{
		logger:   log.NewNopLogger(),
		logEvery: 20,
		name:     "experiment",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner[S, A]{
		agent:    a,
		env:      wrappers.NewRecorder(env),
		epochs:   epochs,
		logger:   log.With(o.logger, "experiment", o.name),
		logEvery: o.logEvery,
		name:     o.name,
		trackers: o.trackers,
	}
}

// Progress returns the progress of the Runner
func (r *Runner[S, A]) Progress() timestep.Progress {
	return r.progress
}

// Run runs all epochs of the experiment. Each epoch begins by
// resetting the environment and ends when the agent reports that the
// epoch is over.
func (r *Runner[S, A]) Run() {
	r.progress = timestep.Progress{}
	for epoch := 1; epoch <= r.epochs; epoch++ {
		r.startEpoch(epoch)
		for !r.step() {
		}
		r.endEpoch()
	}
}

// startEpoch resets the environment and progress for a new epoch
func (r *Runner[S, A]) startEpoch(epoch int) {
	r.env.Reset(epoch)
	r.progress.NewEpoch(epoch)
}

// step advances the progress and steps the agent, returning whether
// the epoch is over
func (r *Runner[S, A]) step() bool {
	r.progress.Advance()
	return r.agent.Step(r.progress, r.env)
}

// endEpoch tracks and logs the result of the finished epoch
func (r *Runner[S, A]) endEpoch() {
	result := tracker.EpochResult{
		Epoch:           r.progress.Epoch,
		Steps:           r.env.EpochSteps(),
		CumulativeSteps: r.progress.CumulativeSteps,
		Return:          r.env.EpochReturn(),
	}
	for _, t := range r.trackers {
		t.Track(result)
	}

	if r.logEvery > 0 && result.Epoch%r.logEvery == 0 {
		keyvals := []interface{}{
			"msg", "epoch finished",
			"epoch", result.Epoch,
			"steps", result.Steps,
			"cumulative_steps", result.CumulativeSteps,
			"return", result.Return,
		}
		keyvals = append(keyvals, r.env.Report()...)
		level.Info(r.logger).Log(keyvals...)
	}
}

// Save saves the data of all Trackers
func (r *Runner[S, A]) Save() error {
	for _, t := range r.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}
