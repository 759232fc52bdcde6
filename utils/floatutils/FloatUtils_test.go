package floatutils

import (
	"math"
	"testing"
)

func TestCompareNaN(t *testing.T) {
	nan := math.NaN()
	if c := Compare(nan, 1.0); c != 0 {
		t.Errorf("Compare(NaN, 1): want(0) have(%v)", c)
	}
	if c := Compare(-1.0, nan); c != 0 {
		t.Errorf("Compare(-1, NaN): want(0) have(%v)", c)
	}
	if c := Compare(1.0, 2.0); c != -1 {
		t.Errorf("Compare(1, 2): want(-1) have(%v)", c)
	}
	if c := Compare(3.0, 2.0); c != 1 {
		t.Errorf("Compare(3, 2): want(1) have(%v)", c)
	}
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{nil, -1},
		{[]float64{1}, 0},
		{[]float64{1, 3, 2}, 1},
		{[]float64{5, 5, 5}, 0},
		{[]float64{1, 4, 4}, 1},
		{[]float64{2, math.NaN(), 3}, 2},
		{[]float64{-1, math.Inf(1), 3}, 1},
	}

	for _, test := range tests {
		if have := ArgMax(test.values); have != test.want {
			t.Errorf("ArgMax(%v): want(%v) have(%v)", test.values, test.want,
				have)
		}
	}
}

func TestMaxSliceTies(t *testing.T) {
	max, indices := MaxSlice([]float64{2, 7, 1, 7})
	if max != 7 {
		t.Fatalf("max: want(7) have(%v)", max)
	}
	if len(indices) != 2 || indices[0] != 1 || indices[1] != 3 {
		t.Fatalf("indices: want([1 3]) have(%v)", indices)
	}
}

func TestMaxDefault(t *testing.T) {
	if m := Max(0.0); m != 0.0 {
		t.Errorf("Max(): want(0) have(%v)", m)
	}
	if m := Max(0.0, -3, -1, -2); m != -1 {
		t.Errorf("Max(-3, -1, -2): want(-1) have(%v)", m)
	}
}
