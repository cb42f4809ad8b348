package input

// Queue is a scripted Source delivering one batch per Poll
// Once the script is exhausted Poll returns nil
type Queue struct {
	batches [][]Event
	polls   int
}

// NewQueue creates a queue from per-tick batches
func NewQueue(batches ...[]Event) *Queue {
	return &Queue{batches: batches}
}

// Push appends a batch delivered after the existing ones
func (q *Queue) Push(events ...Event) {
	q.batches = append(q.batches, events)
}

func (q *Queue) Poll() []Event {
	q.polls++
	if len(q.batches) == 0 {
		return nil
	}
	batch := q.batches[0]
	q.batches = q.batches[1:]
	return batch
}

// Polls returns how many times Poll was called
func (q *Queue) Polls() int {
	return q.polls
}

// Pending returns the number of undelivered batches
func (q *Queue) Pending() int {
	return len(q.batches)
}
