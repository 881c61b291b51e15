package event

// Queue collects display events raised during a scheduler pass.
// Single writer, single consumer (the tick loop owns both sides), so
// no synchronization is needed.
type Queue struct {
	pending []DisplayEvent
}

func NewQueue() *Queue {
	return &Queue{pending: make([]DisplayEvent, 0, 16)}
}

// Push appends an event for the current pass
func (q *Queue) Push(ev DisplayEvent) {
	q.pending = append(q.pending, ev)
}

// Consume returns all pending events in FIFO order and resets the queue
func (q *Queue) Consume() []DisplayEvent {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]DisplayEvent, 0, 16)
	return out
}

// Len reports the number of undrained events
func (q *Queue) Len() int {
	return len(q.pending)
}
