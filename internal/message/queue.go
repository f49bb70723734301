// Package message holds the player-facing notice queue and the formatter
// that packs pending notices into a fixed-size block of characters.
package message

// Message is a single notice and whether it has already been rendered.
type Message struct {
	Text string
	Sent bool
}

// Policy decides whether rendering consumes notices.
type Policy int

const (
	// Persist keeps notices on screen until they are evicted by capacity.
	Persist Policy = iota
	// Once marks every rendered notice as sent so it is shown exactly once.
	Once
)

// Queue is a bounded FIFO of notices. When full, appending evicts the oldest.
type Queue struct {
	items    []Message
	capacity int
}

// NewQueue creates a queue holding at most capacity notices (minimum 1).
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		items:    make([]Message, 0, capacity),
		capacity: capacity,
	}
}

// Push appends an unsent notice, evicting the oldest one if the queue is full.
func (q *Queue) Push(text string) {
	if len(q.items) == q.capacity {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, Message{Text: text})
}

// Last returns the newest notice text, or "" when the queue is empty.
func (q *Queue) Last() string {
	if len(q.items) == 0 {
		return ""
	}
	return q.items[len(q.items)-1].Text
}

// Unsent returns the texts of notices not yet rendered, oldest first.
func (q *Queue) Unsent() []string {
	out := make([]string, 0, len(q.items))
	for _, m := range q.items {
		if !m.Sent {
			out = append(out, m.Text)
		}
	}
	return out
}

// MarkSent flags the first n unsent notices as sent.
func (q *Queue) MarkSent(n int) {
	for i := range q.items {
		if n == 0 {
			return
		}
		if !q.items[i].Sent {
			q.items[i].Sent = true
			n--
		}
	}
}

// Render formats the unsent notices into a width x height block (see Format).
// Under the Once policy every notice shown in full is marked sent and will
// not be rendered again.
func (q *Queue) Render(width, height int, policy Policy) string {
	out, shown := Format(q.Unsent(), width, height)
	if policy == Once {
		q.MarkSent(shown)
	}
	return out
}
