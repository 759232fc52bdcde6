// Package gridworld implements 2D gridworld environments
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/environment"
)

// State is a position in a GridWorld. Y increases upward.
type State struct {
	X, Y int
}

// Action is a move in a GridWorld
type Action int

// Available actions
const (
	Left Action = iota
	Right
	Up
	Down
)

// String implements the fmt.Stringer interface
func (a Action) String() string {
	switch a {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// GridWorld represents a gridworld environment. Moving off the grid
// leaves the agent in place. Epochs end when a goal is reached or
// after a fixed number of steps.
type GridWorld struct {
	*Goal
	Starter
	r, c     int
	position State
	limit    environment.StepLimit

	// Statistics since the last call to Report
	epochs  int
	reached int
}

// New creates a new gridworld with r rows, c columns and task t, that
// starts each epoch at the state given by s and ends epochs after
// stepLimit steps
func New(r, c int, t *Goal, s Starter, stepLimit int) (*GridWorld, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("new: dimensions must be positive "+
			"\n\twant(>0, >0) \n\thave(%v, %v)", r, c)
	}
	if t.r != r || t.c != c {
		return nil, fmt.Errorf("new: task dimensions do not match "+
			"\n\twant(%v, %v) \n\thave(%v, %v)", r, c, t.r, t.c)
	}

	g := &GridWorld{
		Goal:    t,
		Starter: s,
		r:       r,
		c:       c,
		limit:   environment.NewStepLimit(stepLimit),
	}
	g.position = g.Start()
	return g, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// State implements the environment.Environment interface
func (g *GridWorld) State() State {
	return g.position
}

// Reset implements the environment.Environment interface
func (g *GridWorld) Reset(int) {
	g.position = g.Start()
	g.epochs++
}

// AllActions implements the environment.Environment interface
func (g *GridWorld) AllActions() []Action {
	return []Action{Left, Right, Up, Down}
}

// TakeActionGetReward implements the environment.Environment interface
func (g *GridWorld) TakeActionGetReward(action Action) float64 {
	x, y := g.position.X, g.position.Y

	switch action {
	case Left:
		if newX := x - 1; newX >= 0 {
			x = newX
		}

	case Right:
		if newX := x + 1; newX < g.c {
			x = newX
		}

	case Up:
		if newY := y + 1; newY < g.r {
			y = newY
		}

	case Down:
		if newY := y - 1; newY >= 0 {
			y = newY
		}
	}
	g.position = State{X: x, Y: y}

	if g.AtGoal(g.position) {
		g.reached++
	}
	return g.GetReward(g.position)
}

// ShouldStop implements the environment.Environment interface
func (g *GridWorld) ShouldStop(step int) bool {
	return g.AtGoal(g.position) || g.limit.End(step)
}

// Image implements the environment.Environment interface. Goals are
// green and the agent is white. The top row of the image is the top
// row of the grid.
func (g *GridWorld) Image() environment.Image {
	img := environment.NewImage(g.c, g.r)
	for goal := range g.goals {
		img.Set(goal.X, g.r-1-goal.Y, 0, 255, 0)
	}
	img.Set(g.position.X, g.r-1-g.position.Y, 255, 255, 255)
	return img
}

// Report implements the environment.Reporter interface. Statistics are
// cleared after each report.
func (g *GridWorld) Report() []interface{} {
	rate := 0.0
	if g.epochs > 0 {
		rate = float64(g.reached) / float64(g.epochs)
	}
	report := []interface{}{"goal_rate", rate}

	g.epochs, g.reached = 0, 0
	return report
}

// String implements the fmt.Stringer interface
func (g *GridWorld) String() string {
	return fmt.Sprintf("GridWorld | At: %v | %v | Bounds: (%d, %d)",
		g.position, g.Goal, g.r, g.c)
}
