package strategy

import (
	"math"
	"testing"

	"github.com/samuelfneumann/goqlearn/timestep"
)

func TestDecliningRandomRate(t *testing.T) {
	d := NewDecliningRandom[int](100, 0.05, 1)
	actions := []int{0, 1}

	tests := []struct {
		epoch int
		want  float64
	}{
		{0, 1.0},
		{50, 0.5},
		{100, 0.05},
		{200, 0.05},
	}

	for _, test := range tests {
		d.PickAction(actions, nil, timestep.Progress{Epoch: test.epoch})
		if have := d.ExplorationRate(); math.Abs(have-test.want) > 1e-12 {
			t.Errorf("rate at epoch %v: want(%v) have(%v)", test.epoch,
				test.want, have)
		}
	}
}

func TestDecliningRandomNonIncreasing(t *testing.T) {
	d := NewDecliningRandom[int](100, 0.0, 1)
	last := math.Inf(1)
	for epoch := 0; epoch <= 150; epoch++ {
		d.PickAction([]int{0}, nil, timestep.Progress{Epoch: epoch})
		rate := d.ExplorationRate()
		if rate > last {
			t.Fatalf("rate increased at epoch %v: %v -> %v", epoch, last, rate)
		}
		last = rate
	}
}

func TestDecliningRandomGreedyAfterHorizon(t *testing.T) {
	d := NewDecliningRandom[string](10, 0.0, 7)
	actions := []string{"left", "right", "up"}
	best := "up"

	for i := 0; i < 100; i++ {
		action := d.PickAction(actions, &best, timestep.Progress{Epoch: 10})
		if action != best {
			t.Fatalf("exploration rate 0 took non-best action %v", action)
		}
	}
}

func TestDecliningRandomNoBest(t *testing.T) {
	d := NewDecliningRandom[int](10, 0.0, 3)
	actions := []int{4, 5, 6}
	seen := make(map[int]bool)

	for i := 0; i < 300; i++ {
		action := d.PickAction(actions, nil, timestep.Progress{Epoch: 10})
		seen[action] = true
	}
	for _, a := range actions {
		if !seen[a] {
			t.Errorf("action %v never picked with no best action", a)
		}
	}
}

func TestDecliningRandomSeeded(t *testing.T) {
	a := NewDecliningRandom[int](10, 0.0, 42)
	b := NewDecliningRandom[int](10, 0.0, 42)
	actions := []int{0, 1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < 50; i++ {
		p := timestep.Progress{Epoch: i % 10}
		if x, y := a.PickAction(actions, nil, p), b.PickAction(actions, nil,
			p); x != y {
			t.Fatalf("same seed diverged at pick %v: %v != %v", i, x, y)
		}
	}
}

func TestGreedy(t *testing.T) {
	g := NewGreedy[int](1)
	best := 2
	for i := 0; i < 50; i++ {
		if a := g.PickAction([]int{0, 1, 2}, &best,
			timestep.Progress{}); a != best {
			t.Fatalf("greedy took %v", a)
		}
	}
}

func TestEGreedyExplores(t *testing.T) {
	e := NewEGreedy[int](1.0, 5)
	best := 0
	counts := make([]int, 3)
	for i := 0; i < 600; i++ {
		counts[e.PickAction([]int{0, 1, 2}, &best, timestep.Progress{})]++
	}
	for a, c := range counts {
		if c == 0 {
			t.Errorf("action %v never explored with ε=1", a)
		}
	}
}
