package experiment

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kit/log"

	"github.com/samuelfneumann/goqlearn/display"
	"github.com/samuelfneumann/goqlearn/environment"
	"github.com/samuelfneumann/goqlearn/experiment/tracker"
	"github.com/samuelfneumann/goqlearn/timestep"
)

// counterEnv counts the actions taken in it and draws the count in
// its single pixel
type counterEnv struct {
	resets []int
	count  int
	image  environment.Image
}

func newCounterEnv() *counterEnv {
	return &counterEnv{image: environment.NewImage(1, 1)}
}

func (c *counterEnv) State() int          { return c.count }
func (c *counterEnv) AllActions() []int   { return []int{1} }
func (c *counterEnv) ShouldStop(int) bool { return false }

func (c *counterEnv) Reset(epoch int) {
	c.resets = append(c.resets, epoch)
}

func (c *counterEnv) TakeActionGetReward(action int) float64 {
	c.count++
	c.image.Set(0, 0, uint8(c.count), 0, 0)
	return float64(action)
}

func (c *counterEnv) Image() environment.Image { return c.image }

func (c *counterEnv) Report() []interface{} {
	return []interface{}{"count", c.count}
}

// fixedAgent takes the first action and ends each epoch after a fixed
// number of steps
type fixedAgent struct {
	steps  int
	seen   []timestep.Progress
	onStep func(p timestep.Progress)
}

func (f *fixedAgent) Step(p timestep.Progress,
	env environment.Environment[int, int]) bool {
	f.seen = append(f.seen, p)
	if f.onStep != nil {
		f.onStep(p)
	}
	env.TakeActionGetReward(env.AllActions()[0])
	return f.steps > 0 && p.EpochStep >= f.steps
}

// recordingSink records the frames it is shown
type recordingSink struct {
	lock   sync.Mutex
	frames []display.Frame
}

func (r *recordingSink) Show(f display.Frame) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func TestRunProgress(t *testing.T) {
	env := newCounterEnv()
	a := &fixedAgent{steps: 3}
	NewRunner[int, int](a, env, 2).Run()

	want := []timestep.Progress{
		{Epoch: 1, EpochStep: 1, CumulativeSteps: 1},
		{Epoch: 1, EpochStep: 2, CumulativeSteps: 2},
		{Epoch: 1, EpochStep: 3, CumulativeSteps: 3},
		{Epoch: 2, EpochStep: 1, CumulativeSteps: 4},
		{Epoch: 2, EpochStep: 2, CumulativeSteps: 5},
		{Epoch: 2, EpochStep: 3, CumulativeSteps: 6},
	}
	if len(a.seen) != len(want) {
		t.Fatalf("steps \n\twant(%v) \n\thave(%v)", len(want), len(a.seen))
	}
	for i := range want {
		if a.seen[i] != want[i] {
			t.Errorf("step %v \n\twant(%v) \n\thave(%v)", i, want[i], a.seen[i])
		}
	}
	if len(env.resets) != 2 || env.resets[0] != 1 || env.resets[1] != 2 {
		t.Errorf("resets \n\twant([1 2]) \n\thave(%v)", env.resets)
	}
}

func TestRunTracksAndLogs(t *testing.T) {
	var logs bytes.Buffer
	ret := tracker.NewReturn("unused")
	length := tracker.NewEpisodeLength("unused")

	r := NewRunner[int, int](&fixedAgent{steps: 4}, newCounterEnv(), 3,
		WithLogger(log.NewLogfmtLogger(&logs)),
		WithLogEvery(3),
		WithName("counter"),
		WithTrackers(ret, length),
	)
	r.Run()

	if returns := ret.Data(); len(returns) != 3 || returns[0] != 4 {
		t.Errorf("returns \n\twant([4 4 4]) \n\thave(%v)", returns)
	}
	if lengths := length.Data(); len(lengths) != 3 || lengths[2] != 4 {
		t.Errorf("lengths \n\twant([4 4 4]) \n\thave(%v)", lengths)
	}
	if r.Progress().CumulativeSteps != 12 {
		t.Errorf("cumulative steps \n\twant(12) \n\thave(%v)",
			r.Progress().CumulativeSteps)
	}

	out := logs.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one log line \n\thave(%q)", out)
	}
	for _, want := range []string{"experiment=counter", "epoch=3",
		"cumulative_steps=12", "count=12", "level=info"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %v \n\thave(%q)", want, out)
		}
	}
}

func TestRunWithDisplayFrames(t *testing.T) {
	env := newCounterEnv()
	sink := &recordingSink{}
	r := NewRunner[int, int](&fixedAgent{steps: 5}, env, 2)

	c := DefaultDisplayConfig()
	c.FPS = 1
	if err := r.RunWithDisplay(context.Background(), sink, c); err != nil {
		t.Fatal(err)
	}

	// The first step is always sampled, and the run is too short to
	// sample another
	if len(sink.frames) != 1 {
		t.Fatalf("frames \n\twant(1) \n\thave(%v)", len(sink.frames))
	}
	f := sink.frames[0]
	if f.Name != "experiment" || f.Epoch != 1 {
		t.Errorf("frame \n\twant(experiment, 1) \n\thave(%v, %v)", f.Name,
			f.Epoch)
	}
	if red, _, _ := f.Image.At(0, 0); red != 1 {
		t.Errorf("frame changed after it was taken \n\twant(1) \n\thave(%v)",
			red)
	}
	if r.Progress().CumulativeSteps != 10 {
		t.Errorf("cumulative steps \n\twant(10) \n\thave(%v)",
			r.Progress().CumulativeSteps)
	}
}

func TestRunWithDisplayStepTime(t *testing.T) {
	r := NewRunner[int, int](&fixedAgent{steps: 3}, newCounterEnv(), 2)
	c := DisplayConfig{FPS: 10, StepTime: 5 * time.Millisecond,
		StepTimeStart: 2}

	start := time.Now()
	if err := r.RunWithDisplay(context.Background(), &recordingSink{},
		c); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("second epoch not slowed down \n\twant(>=15ms) \n\thave(%v)",
			elapsed)
	}
}

func TestRunWithDisplayCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &fixedAgent{}
	a.onStep = func(p timestep.Progress) {
		if p.CumulativeSteps == 10 {
			cancel()
		}
	}
	r := NewRunner[int, int](a, newCounterEnv(), 1)

	err := r.RunWithDisplay(ctx, &recordingSink{}, DefaultDisplayConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error \n\twant(%v) \n\thave(%v)", context.Canceled, err)
	}
	if len(a.seen) != 10 {
		t.Errorf("steps after cancel \n\twant(10) \n\thave(%v)", len(a.seen))
	}
}

func TestDisplayConfigValidate(t *testing.T) {
	if err := DefaultDisplayConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	if err := (DisplayConfig{FPS: 0}).Validate(); err == nil {
		t.Errorf("expected error for zero fps")
	}
	r := NewRunner[int, int](&fixedAgent{steps: 1}, newCounterEnv(), 1)
	err := r.RunWithDisplay(context.Background(), &recordingSink{},
		DisplayConfig{FPS: 10, StepTime: -time.Second})
	if err == nil {
		t.Errorf("expected error for negative step time")
	}
}
