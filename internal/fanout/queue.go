// Package fanout provides the per-subscriber delivery queue used by worker groups.
//
// Each subscriber owns one Queue drained by a dedicated goroutine, which gives
// every subscriber its events in raise order, exactly once, without the raiser
// ever blocking. The queue is unbounded: the event contract carries no
// backpressure, so a slow subscriber accumulates a backlog instead of stalling
// scheduling.
package fanout

import "sync"

// Queue is an unbounded FIFO with a non-blocking producer side and a single
// blocking consumer.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Push appends v without blocking. It reports false if the queue has been
// closed, in which case v is discarded.
func (q *Queue[T]) Push(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, v)
	q.cond.Signal()

	return true
}

// Pop blocks until an item is available or the queue is closed and drained.
// Items pushed before Close are still delivered after it.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	v := q.items[0]
	q.items[0] = zero // release the reference for the garbage collector
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}

	return v, true
}

// Close stops accepting new items and wakes the consumer. Idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// Len reports the number of undelivered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
