package bitio

import (
	"errors"
	"io"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	rng := newTestRNG(t)
	var q Queue

	want := make([]bool, 1000)
	for i := range want {
		want[i] = rng.IntN(2) == 1
		q.WriteBit(want[i])
	}
	if q.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", q.Len(), len(want))
	}

	for i, w := range want {
		got, err := q.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("bit %d = %v, want %v", i, got, w)
		}
	}
	if _, err := q.ReadBit(); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadBit on empty queue: got %v, want io.EOF", err)
	}
}

func TestQueueBothEnds(t *testing.T) {
	q := NewQueue(2)

	// Build [F T T F] through both ends, forcing the ring to wrap and grow.
	q.PushBack(true)
	q.PushFront(false)
	q.PushBack(true)
	q.PushBack(false)

	if q.Len() != 4 {
		t.Fatalf("Len = %d, want 4", q.Len())
	}
	if bit, ok := q.PopBack(); !ok || bit {
		t.Errorf("PopBack = %v, %v, want false, true", bit, ok)
	}
	if bit, ok := q.PopFront(); !ok || bit {
		t.Errorf("PopFront = %v, %v, want false, true", bit, ok)
	}
	if bit, ok := q.PopFront(); !ok || !bit {
		t.Errorf("PopFront = %v, %v, want true, true", bit, ok)
	}
	if bit, ok := q.PopBack(); !ok || !bit {
		t.Errorf("PopBack = %v, %v, want true, true", bit, ok)
	}
	if _, ok := q.PopBack(); ok {
		t.Error("PopBack on empty queue reported a bit")
	}
	if _, ok := q.PopFront(); ok {
		t.Error("PopFront on empty queue reported a bit")
	}
}

// TestQueueWrapAround interleaves pushes and pops so the head travels around
// the ring many times.
func TestQueueWrapAround(t *testing.T) {
	q := NewQueue(64)
	next := 0
	expect := 0
	for range 10000 {
		q.PushBack(next%3 == 0)
		next++
		if q.Len() > 40 {
			bit, _ := q.PopFront()
			if want := expect%3 == 0; bit != want {
				t.Fatalf("bit %d = %v, want %v", expect, bit, want)
			}
			expect++
		}
	}
	if q.Len() != next-expect {
		t.Fatalf("Len = %d, want %d", q.Len(), next-expect)
	}
}
