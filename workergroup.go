package naiad

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/sherryshare/Naiad/internal/fanout"
	"github.com/sherryshare/Naiad/types"
)

// WorkerGroup is the event-based instrumentation surface of a scheduling
// runtime: a fixed vocabulary of worker lifecycle events fanned out to any
// number of observers.
//
// The group carries no scheduling state of its own beyond the worker count.
// Scheduling code raises events; observers subscribe to watch them. The
// contract is strictly observational:
//
//   - Raise never blocks the raising worker, whatever the subscribers do.
//   - Each subscriber sees every event raised strictly after its
//     registration completed, in raise order, exactly once. Events raised
//     concurrently with registration may or may not be seen.
//   - There is no ordering guarantee across different subscribers, event
//     kinds, or workers, and no backpressure or acknowledgment.
//   - A panicking handler is isolated: the panic is recovered, logged and
//     counted, never propagated into the scheduler.
//
// Workers raise events concurrently; all methods are safe for concurrent
// use.
type WorkerGroup struct {
	workers int
	logger  types.Logger
	metrics types.MetricsCollector

	subscribers      *xsync.Map[uint64, *subscriber]
	nextSubscriberID atomic.Uint64
	subscriberCount  atomic.Int64

	// closeMu serializes registration against Close, so a Subscribe racing
	// Close can neither leak a drain goroutine nor wg.Add concurrently with
	// wg.Wait. Raise stays lock-free on the closed flag.
	closeMu sync.RWMutex
	closed  atomic.Bool
	wg      sync.WaitGroup
}

// subscriber owns one delivery queue drained by one goroutine, which is what
// gives each observer its per-subscriber ordering without ever blocking the
// raiser.
type subscriber struct {
	queue   *fanout.Queue[types.Event]
	handler func(types.Event)
}

// NewWorkerGroup creates the event surface for a runtime with the given
// number of workers.
//
// Parameters:
//   - workers: Number of scheduling threads the runtime will run (>= 1)
//   - opts: Optional dependencies (logger, metrics)
//
// Returns:
//   - *WorkerGroup: Group ready for Subscribe and Raise
//   - error: ErrInvalidConfig if workers < 1
//
// Example:
//
//	g, err := naiad.NewWorkerGroup(cfg.WorkerCount, naiad.WithLogger(log))
//	if err != nil { ... }
//	defer g.Close()
//	cancel := g.Subscribe(func(ev naiad.Event) { trace(ev) })
//	defer cancel()
func NewWorkerGroup(workers int, opts ...Option) (*WorkerGroup, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker group needs at least one worker, got %d", ErrInvalidConfig, workers)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &WorkerGroup{
		workers:     workers,
		logger:      o.logger,
		metrics:     o.metrics,
		subscribers: xsync.NewMap[uint64, *subscriber](),
	}, nil
}

// Workers reports the number of workers the group was created for.
func (g *WorkerGroup) Workers() int {
	return g.workers
}

// Subscribe registers handler for every event kind and returns a function
// that cancels the registration.
//
// Registration may happen concurrently with Raise: the handler is guaranteed
// to see all events raised strictly after Subscribe returns. Cancellation
// stops new deliveries; events already queued for this subscriber are still
// delivered before its goroutine exits. Subscribing to a closed group is a
// no-op: the handler is never called and the returned cancel does nothing.
//
// Parameters:
//   - handler: Called once per event, in raise order, from a dedicated goroutine
//
// Returns:
//   - func(): Cancels the subscription (idempotent)
func (g *WorkerGroup) Subscribe(handler func(types.Event)) func() {
	g.closeMu.RLock()
	defer g.closeMu.RUnlock()
	if g.closed.Load() {
		return func() {}
	}

	sub := &subscriber{
		queue:   fanout.NewQueue[types.Event](),
		handler: handler,
	}

	id := g.nextSubscriberID.Add(1)
	g.subscribers.Store(id, sub)
	g.metrics.SetSubscriberCount(int(g.subscriberCount.Add(1)))

	g.wg.Add(1)
	go g.drain(sub)

	var once sync.Once
	return func() {
		once.Do(func() {
			if _, ok := g.subscribers.LoadAndDelete(id); ok {
				g.metrics.SetSubscriberCount(int(g.subscriberCount.Add(-1)))
			}
			sub.queue.Close()
		})
	}
}

// Raise delivers ev to every current subscriber without blocking.
//
// The raiser only appends to per-subscriber queues; handlers run on the
// subscribers' own goroutines. Raising on a closed group is a no-op.
func (g *WorkerGroup) Raise(ev types.Event) {
	if g.closed.Load() {
		return
	}

	g.metrics.RecordEventRaised(ev.Kind())
	switch e := ev.(type) {
	case types.RecordsSent:
		g.metrics.RecordRecordsSent(e.Count)
	case types.RecordsReceived:
		g.metrics.RecordRecordsReceived(e.Count)
	}

	g.subscribers.Range(func(_ uint64, sub *subscriber) bool {
		sub.queue.Push(ev)
		return true
	})
}

// Close cancels every subscription and waits until all queued events have
// been delivered and the drain goroutines have exited. Idempotent.
func (g *WorkerGroup) Close() {
	g.closeMu.Lock()
	if !g.closed.CompareAndSwap(false, true) {
		g.closeMu.Unlock()
		return
	}

	g.subscribers.Range(func(id uint64, sub *subscriber) bool {
		g.subscribers.Delete(id)
		sub.queue.Close()
		return true
	})
	g.subscriberCount.Store(0)
	g.metrics.SetSubscriberCount(0)
	g.closeMu.Unlock()

	g.wg.Wait()
}

// drain delivers queued events to one subscriber until its queue closes.
func (g *WorkerGroup) drain(sub *subscriber) {
	defer g.wg.Done()
	for {
		ev, ok := sub.queue.Pop()
		if !ok {
			return
		}
		g.deliver(sub, ev)
	}
}

// deliver invokes the handler for one event, isolating panics.
func (g *WorkerGroup) deliver(sub *subscriber, ev types.Event) {
	defer func() {
		if r := recover(); r != nil {
			g.metrics.RecordHandlerPanic()
			g.logger.Error("event subscriber panicked",
				"event", ev.Kind().String(),
				"panic", r,
			)
		}
	}()
	sub.handler(ev)
}
