package entity

import "snakey-game/game/types"

const minTrailCapacity = 8

// Trail is the ordered list of tail segments, newest first. It is backed by
// a ring buffer that only reallocates when the snake outgrows it.
type Trail struct {
	buf   []types.Point
	front int
	n     int
}

func (t *Trail) Len() int {
	return t.n
}

// Push inserts p in front of the current first segment.
func (t *Trail) Push(p types.Point) {
	if t.n == len(t.buf) {
		t.grow()
	}
	t.front = (t.front - 1 + len(t.buf)) % len(t.buf)
	t.buf[t.front] = p
	t.n++
}

// Truncate drops segments beyond the first n.
func (t *Trail) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < t.n {
		t.n = n
	}
}

// At returns segment i, where 0 is the segment directly behind the head.
func (t *Trail) At(i int) types.Point {
	if i < 0 || i >= t.n {
		panic("trail index out of range")
	}
	return t.buf[(t.front+i)%len(t.buf)]
}

// Points returns a copy of the segments in order.
func (t *Trail) Points() []types.Point {
	out := make([]types.Point, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

func (t *Trail) grow() {
	size := len(t.buf) * 2
	if size < minTrailCapacity {
		size = minTrailCapacity
	}
	buf := make([]types.Point, size)
	for i := 0; i < t.n; i++ {
		buf[i] = t.buf[(t.front+i)%len(t.buf)]
	}
	t.buf = buf
	t.front = 0
}
