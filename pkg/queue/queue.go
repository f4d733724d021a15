// queue package

package queue

// Queue represents a basic FIFO queue.
type Queue interface {
	Enqueue(item interface{})
	ReadAllMessages() []interface{}
	Size() int
	ClearQueue()
}
