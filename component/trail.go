package component

import "github.com/lixenwraith/gravity-sandbox/vmath"

// Trail is a fixed-capacity FIFO of past positions backed by a ring buffer
type Trail struct {
	points []vmath.Vec2
	head   int // Index of the oldest point
	size   int
}

// NewTrail creates a trail holding at most capacity points
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]vmath.Vec2, capacity)}
}

// Push appends p, evicting the oldest point when full. O(1)
func (t *Trail) Push(p vmath.Vec2) {
	c := len(t.points)
	if t.size < c {
		t.points[(t.head+t.size)%c] = p
		t.size++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % c
}

// Len returns the number of stored points
func (t *Trail) Len() int { return t.size }

// Cap returns the maximum number of stored points
func (t *Trail) Cap() int { return len(t.points) }

// At returns the i-th point, oldest first
func (t *Trail) At(i int) vmath.Vec2 {
	return t.points[(t.head+i)%len(t.points)]
}

// Each visits points oldest first
func (t *Trail) Each(fn func(i int, p vmath.Vec2)) {
	for i := 0; i < t.size; i++ {
		fn(i, t.At(i))
	}
}

// Clear drops all points, keeping capacity
func (t *Trail) Clear() {
	t.head = 0
	t.size = 0
}
