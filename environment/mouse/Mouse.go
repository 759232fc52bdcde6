// Package mouse implements a small gridworld in which a mouse searches
// for cheese while avoiding poison.
//
// The board has two rows and three columns:
//
//	| M |  2  |  0 |
//	| 4 | -10 | 10 |
//
// The mouse starts in the top left corner. Pieces of cheese worth 2 and
// 4 are eaten once per epoch. The epoch ends when the mouse reaches the
// poison (-10) or the large piece of cheese (10), or after 100 steps.
// Every move costs 1.
package mouse

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/environment"
)

const (
	rows = 2
	cols = 3

	moveReward    = -1.0
	invalidReward = -5.0
	twoReward     = 2.0
	fourReward    = 4.0
	poisonReward  = -10.0
	tenReward     = 10.0

	stepLimit = 100
)

var (
	two    = Point{Row: 0, Col: 1}
	four   = Point{Row: 1, Col: 0}
	poison = Point{Row: 1, Col: 1}
	ten    = Point{Row: 1, Col: 2}
)

// Point is a cell on the board
type Point struct {
	Row, Col int
}

// State is the position of the mouse and which pieces of small cheese
// are still on the board
type State struct {
	Current Point
	Two     bool
	Four    bool
}

// start returns the state at the beginning of each epoch
func start() State {
	return State{Current: Point{0, 0}, Two: true, Four: true}
}

// Action is a move of the mouse
type Action int

// Available actions
const (
	Up Action = iota
	Down
	Left
	Right
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
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Mouse implements the mouse environment
type Mouse struct {
	state State
	legal bool
	limit environment.StepLimit

	// Statistics since the last call to Report
	epochs   int
	rewards  float64
	poisoned int
	cheese   int
}

// New returns a Mouse in which all four moves are always available.
// Moving off the board leaves the mouse in place and is penalized.
func New() *Mouse {
	return &Mouse{
		state: start(),
		limit: environment.NewStepLimit(stepLimit),
	}
}

// NewLegal returns a Mouse in which only the moves that stay on the
// board are available in each state
func NewLegal() *Mouse {
	m := New()
	m.legal = true
	return m
}

// State implements the environment.Environment interface
func (m *Mouse) State() State {
	return m.state
}

// Reset implements the environment.Environment interface
func (m *Mouse) Reset(int) {
	m.state = start()
	m.epochs++
}

// AllActions implements the environment.Environment interface
func (m *Mouse) AllActions() []Action {
	if !m.legal {
		return []Action{Up, Down, Left, Right}
	}

	actions := make([]Action, 0, 3)
	current := m.state.Current
	if current.Row == 1 {
		actions = append(actions, Up)
	}
	if current.Row == 0 {
		actions = append(actions, Down)
	}
	if current.Col > 0 {
		actions = append(actions, Left)
	}
	if current.Col < cols-1 {
		actions = append(actions, Right)
	}
	return actions
}

// TakeActionGetReward implements the environment.Environment interface
func (m *Mouse) TakeActionGetReward(action Action) float64 {
	next, ok := move(m.state.Current, action)
	if !ok {
		m.rewards += invalidReward
		return invalidReward
	}
	m.state.Current = next

	reward := moveReward
	if m.state.Two && next == two {
		reward += twoReward
		m.state.Two = false
	}
	if m.state.Four && next == four {
		reward += fourReward
		m.state.Four = false
	}

	switch next {
	case poison:
		reward += poisonReward
		m.poisoned++
	case ten:
		reward += tenReward
		m.cheese++
	}

	m.rewards += reward
	return reward
}

// move returns the cell reached by moving in direction action, and
// whether that cell is on the board
func move(p Point, action Action) (Point, bool) {
	switch action {
	case Up:
		p.Row--
	case Down:
		p.Row++
	case Left:
		p.Col--
	case Right:
		p.Col++
	}
	if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
		return p, false
	}
	return p, true
}

// ShouldStop implements the environment.Environment interface
func (m *Mouse) ShouldStop(step int) bool {
	if m.limit.End(step) {
		return true
	}
	return m.state.Current == poison || m.state.Current == ten
}

// Image implements the environment.Environment interface. Cheese is
// drawn in shades of green, poison in red and the mouse in grey.
func (m *Mouse) Image() environment.Image {
	img := environment.NewImage(cols, rows)
	if m.state.Two {
		img.Set(two.Col, two.Row, 0, 90, 0)
	}
	if m.state.Four {
		img.Set(four.Col, four.Row, 0, 180, 0)
	}
	img.Set(ten.Col, ten.Row, 0, 255, 0)
	img.Set(poison.Col, poison.Row, 255, 0, 0)

	current := m.state.Current
	img.Set(current.Col, current.Row, 100, 100, 100)
	return img
}

// Report implements the environment.Reporter interface. Statistics are
// cleared after each report.
func (m *Mouse) Report() []interface{} {
	average := 0.0
	if m.epochs > 0 {
		average = m.rewards / float64(m.epochs)
	}
	report := []interface{}{
		"cumulative", m.rewards,
		"avg_reward", average,
		"poisoned", m.poisoned,
		"cheese", m.cheese,
	}

	m.epochs, m.rewards, m.poisoned, m.cheese = 0, 0, 0, 0
	return report
}
