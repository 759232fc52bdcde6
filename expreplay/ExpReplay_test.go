package expreplay

import (
	"testing"

	"github.com/samuelfneumann/goqlearn/timestep"
)

func transition(reward float64) timestep.Transition {
	return timestep.NewTransition([]float64{reward}, 0, reward,
		[]float64{reward + 1}, false)
}

func TestFifoBound(t *testing.T) {
	const historySize = 5
	buffer, err := New(NewUniformSelector(2, 1), 1, historySize)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i <= historySize; i++ {
		buffer.Add(transition(float64(i)))
	}

	if buffer.Capacity() != historySize {
		t.Fatalf("capacity \n\twant(%v) \n\thave(%v)", historySize,
			buffer.Capacity())
	}

	entries := buffer.Entries()
	for _, e := range entries {
		if e.Reward == 0 {
			t.Fatalf("first pushed entry was not evicted")
		}
	}
	if entries[0].Reward != 1 {
		t.Fatalf("oldest entry \n\twant(1) \n\thave(%v)", entries[0].Reward)
	}
	if last := entries[len(entries)-1].Reward; last != historySize {
		t.Fatalf("newest entry \n\twant(%v) \n\thave(%v)", historySize, last)
	}
}

func TestFifoWrapsRepeatedly(t *testing.T) {
	buffer, err := New(NewUniformSelector(1, 1), 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		buffer.Add(transition(float64(i)))
	}

	entries := buffer.Entries()
	for i, want := range []float64{7, 8, 9} {
		if entries[i].Reward != want {
			t.Fatalf("entry %v \n\twant(%v) \n\thave(%v)", i, want,
				entries[i].Reward)
		}
	}
}

func TestSampleErrors(t *testing.T) {
	buffer, err := New(NewUniformSelector(4, 1), 4, 10)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := buffer.Sample(); !IsEmptyBuffer(err) {
		t.Fatalf("expected empty buffer error, have(%v)", err)
	}

	buffer.Add(transition(1))
	if _, err := buffer.Sample(); !IsInsufficientSamples(err) {
		t.Fatalf("expected insufficient samples error, have(%v)", err)
	}
}

func TestSampleWithReplacement(t *testing.T) {
	buffer, err := Config{
		SampleSize:        50,
		MinReplayCapacity: 2,
		MaxReplayCapacity: 2,
	}.Create(3)
	if err != nil {
		t.Fatal(err)
	}
	buffer.Add(transition(1))
	buffer.Add(transition(2))

	batch, err := buffer.Sample()
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 50 {
		t.Fatalf("batch size \n\twant(50) \n\thave(%v)", len(batch))
	}

	for _, tr := range batch {
		if tr.Reward != 1 && tr.Reward != 2 {
			t.Fatalf("sampled transition not in buffer: %v", tr.Reward)
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(NewUniformSelector(1, 1), 0, 10); err == nil {
		t.Errorf("expected error for zero min capacity")
	}
	if _, err := New(NewUniformSelector(1, 1), 5, 4); err == nil {
		t.Errorf("expected error for max capacity below min capacity")
	}
	if _, err := New(NewUniformSelector(0, 1), 1, 4); err == nil {
		t.Errorf("expected error for zero batch size")
	}
}
