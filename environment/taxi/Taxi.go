// Package taxi implements the taxi environment of Dietterich (2000).
//
// A taxi drives on a 5x5 grid with walls, and must pick up a passenger
// waiting at one of four stands and drop them off at another:
//
//	R: | : :G
//	 : : : :
//	 : : : :
//	 | : | :
//	Y| : |B:
//
// Each step costs 1. Picking up the passenger gives 10, dropping them
// off at their destination gives 20, and driving into a wall or an
// invalid pickup or dropoff costs 10. The epoch ends once the
// passenger is delivered or after 100 steps.
package taxi

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/environment"
)

const (
	size = 5

	stepReward    = -1.0
	invalidReward = -10.0
	pickupReward  = 10.0
	dropoffReward = 20.0

	stepLimit = 100
)

// stands are the locations where passengers wait and are dropped off
var stands = []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 3, Y: 4}}

// Walls block moving right out of rightWalls and left out of
// leftWalls
var (
	rightWalls = map[Point]bool{
		{X: 1, Y: 0}: true,
		{X: 0, Y: 3}: true, {X: 2, Y: 3}: true,
		{X: 0, Y: 4}: true, {X: 2, Y: 4}: true,
	}
	leftWalls = map[Point]bool{
		{X: 2, Y: 0}: true,
		{X: 1, Y: 3}: true, {X: 3, Y: 3}: true,
		{X: 1, Y: 4}: true, {X: 3, Y: 4}: true,
	}
)

// Point is a cell on the grid, with Y increasing downward
type Point struct {
	X, Y int
}

// State is the position of the taxi, passenger and destination
type State struct {
	Taxi      Point
	Passenger Point
	Dropoff   Point
	InTaxi    bool
}

// Action is an action of the taxi driver
type Action int

// Available actions
const (
	Up Action = iota
	Down
	Left
	Right
	Dropoff
	Pickup
)

// String implements the fmt.Stringer interface
func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Dropoff:
		return "Dropoff"
	case Pickup:
		return "Pickup"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Taxi implements the taxi environment
type Taxi struct {
	state   State
	starter environment.CategoricalStarter
	limit   environment.StepLimit

	// Statistics since the last call to Report
	epochs    int
	steps     int
	delivered int
}

// New returns a new Taxi. The seed determines the sequence of starting
// states.
func New(seed uint64) *Taxi {
	// Passenger stand, offset of the dropoff stand from the passenger
	// stand, taxi column and taxi row
	bounds := []int{len(stands), len(stands) - 1, size, size}

	t := &Taxi{
		starter: environment.NewCategoricalStarter(bounds, seed),
		limit:   environment.NewStepLimit(stepLimit),
	}
	t.state = t.start()
	return t
}

// start samples a starting state with the passenger and destination
// at different stands
func (t *Taxi) start() State {
	sample := t.starter.Start()
	passenger := sample[0]
	dropoff := (passenger + 1 + sample[1]) % len(stands)

	return State{
		Taxi:      Point{X: sample[2], Y: sample[3]},
		Passenger: stands[passenger],
		Dropoff:   stands[dropoff],
	}
}

// State implements the environment.Environment interface
func (t *Taxi) State() State {
	return t.state
}

// Reset implements the environment.Environment interface
func (t *Taxi) Reset(int) {
	t.state = t.start()
	t.epochs++
}

// AllActions implements the environment.Environment interface
func (t *Taxi) AllActions() []Action {
	return []Action{Up, Down, Left, Right, Dropoff, Pickup}
}

// TakeActionGetReward implements the environment.Environment interface
func (t *Taxi) TakeActionGetReward(action Action) float64 {
	t.steps++
	s := &t.state
	reward := stepReward

	switch action {
	case Up:
		if s.Taxi.Y == 0 {
			reward = invalidReward
		} else {
			s.Taxi.Y--
		}

	case Down:
		if s.Taxi.Y == size-1 {
			reward = invalidReward
		} else {
			s.Taxi.Y++
		}

	case Left:
		if s.Taxi.X == 0 || leftWalls[s.Taxi] {
			reward = invalidReward
		} else {
			s.Taxi.X--
		}

	case Right:
		if s.Taxi.X == size-1 || rightWalls[s.Taxi] {
			reward = invalidReward
		} else {
			s.Taxi.X++
		}

	case Pickup:
		if !s.InTaxi && s.Taxi == s.Passenger {
			s.InTaxi = true
			reward = pickupReward
		} else {
			reward = invalidReward
		}

	case Dropoff:
		if s.InTaxi && s.Taxi == s.Dropoff {
			s.InTaxi = false
			reward = dropoffReward
			t.delivered++
		} else {
			reward = invalidReward
		}
	}

	if s.InTaxi {
		s.Passenger = s.Taxi
	}
	return reward
}

// ShouldStop implements the environment.Environment interface
func (t *Taxi) ShouldStop(step int) bool {
	return t.limit.End(step) || t.finished()
}

// finished returns whether the passenger has been delivered
func (t *Taxi) finished() bool {
	return !t.state.InTaxi && t.state.Passenger == t.state.Dropoff
}

// Image implements the environment.Environment interface. The grid is
// drawn with a column of pixels between each pair of cells to show the
// walls. The passenger is green, the destination red, and the taxi is
// yellow with a passenger or magenta without.
func (t *Taxi) Image() environment.Image {
	img := environment.NewImage(2*size, size)

	for wall := range rightWalls {
		paint(img, 2*wall.X+1, wall.Y, 2, 50)
	}

	s := t.state
	paint(img, 2*s.Passenger.X, s.Passenger.Y, 1, 255)
	paint(img, 2*s.Dropoff.X, s.Dropoff.Y, 0, 255)

	paint(img, 2*s.Taxi.X, s.Taxi.Y, 0, 255)
	if s.InTaxi {
		paint(img, 2*s.Taxi.X, s.Taxi.Y, 1, 255)
	} else {
		paint(img, 2*s.Taxi.X, s.Taxi.Y, 2, 255)
	}
	return img
}

// paint sets a single colour channel of pixel (x, y)
func paint(img environment.Image, x, y, channel int, value uint8) {
	rgb := [3]uint8{}
	rgb[0], rgb[1], rgb[2] = img.At(x, y)
	rgb[channel] = value
	img.Set(x, y, rgb[0], rgb[1], rgb[2])
}

// Report implements the environment.Reporter interface. Statistics are
// cleared after each report.
func (t *Taxi) Report() []interface{} {
	found, steps := 0.0, 0.0
	if t.epochs > 0 {
		found = 100 * float64(t.delivered) / float64(t.epochs)
		steps = float64(t.steps) / float64(t.epochs)
	}
	report := []interface{}{"found_pct", found, "avg_steps", steps}

	t.epochs, t.steps, t.delivered = 0, 0, 0
	return report
}
