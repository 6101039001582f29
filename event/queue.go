package event

import "github.com/lixenwraith/gravity-sandbox/parameter"

// Queue collects the events raised during one tick for dispatch at its end
// The simulation loop is the only producer and consumer, so no synchronization is needed
type Queue struct {
	pending []GameEvent
	spare   []GameEvent
	dropped int
}

func NewQueue() *Queue {
	return &Queue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
		spare:   make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends ev; events past EventQueueSize in one tick are dropped and counted
func (q *Queue) Push(ev GameEvent) {
	if len(q.pending) >= parameter.EventQueueSize {
		q.dropped++
		return
	}
	q.pending = append(q.pending, ev)
}

// Emit is shorthand for pushing a typed payload
func (q *Queue) Emit(t EventType, payload any, frame int64) {
	q.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Drain returns pending events in emission order and starts a new batch
// The returned slice is reused by the next Drain
func (q *Queue) Drain() []GameEvent {
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int { return len(q.pending) }

// Dropped returns the number of events lost to the per-tick bound since creation
func (q *Queue) Dropped() int { return q.dropped }
