package queue

import "sync"

const (
	// QueueBufferSize represents the maximum size of a queue.
	QueueBufferSize = 1024
)

// InMemoryQueue implements an in-memory queue. When the buffer is full the
// oldest item is dropped so that producers never block the event loop.
type InMemoryQueue struct {
	lock  sync.Mutex
	items []interface{}
}

// NewInMemoryQueue creates a new queue.
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		items: make([]interface{}, 0, QueueBufferSize),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue) Enqueue(item interface{}) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if len(q.items) >= QueueBufferSize {
		q.items = q.items[1:]
	}
	q.items = append(q.items, item)
}

// ReadAllMessages removes and returns all pending items in FIFO order.
func (q *InMemoryQueue) ReadAllMessages() []interface{} {
	q.lock.Lock()
	defer q.lock.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	items := q.items
	q.items = make([]interface{}, 0, QueueBufferSize)
	return items
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.items)
}

// ClearQueue clears all items from the queue.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.items = q.items[:0]
}
