package types

import "time"

// EventKind identifies one member of the closed worker-event vocabulary.
//
// The vocabulary is fixed: schedulers raise these events and observers
// subscribe to them, but neither side can extend the set. Each kind has
// exactly one payload type carrying the Event interface.
type EventKind int

const (
	// EventWorkerStarted fires once when a worker thread is created.
	EventWorkerStarted EventKind = iota

	// EventWorkerAwake fires when a worker returns from idling.
	EventWorkerAwake

	// EventWorkItemEnqueued fires when an operator work item is queued for a worker.
	EventWorkItemEnqueued

	// EventWorkItemStarting fires immediately before a worker runs an operator work item.
	EventWorkItemStarting

	// EventWorkItemEnded fires immediately after a worker finishes an operator work item.
	EventWorkItemEnded

	// EventWorkerSleeping fires when a worker is about to block waiting for work.
	EventWorkerSleeping

	// EventWorkerTerminated fires once when a worker shuts down.
	EventWorkerTerminated

	// EventRecordsReceived fires when a worker observes records arriving on a channel.
	EventRecordsReceived

	// EventRecordsSent fires when a worker observes records leaving on a channel.
	EventRecordsSent
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWorkerStarted:
		return "WorkerStarted"
	case EventWorkerAwake:
		return "WorkerAwake"
	case EventWorkItemEnqueued:
		return "WorkItemEnqueued"
	case EventWorkItemStarting:
		return "WorkItemStarting"
	case EventWorkItemEnded:
		return "WorkItemEnded"
	case EventWorkerSleeping:
		return "WorkerSleeping"
	case EventWorkerTerminated:
		return "WorkerTerminated"
	case EventRecordsReceived:
		return "RecordsReceived"
	case EventRecordsSent:
		return "RecordsSent"
	default:
		return "Unknown"
	}
}

// Event is one tagged notification variant raised by a worker group.
//
// Events are purely observational: handling one must never block or mutate
// the raising worker's control flow. The concrete types below form the
// complete set of variants; there is no ordering guarantee across kinds or
// across workers, only per-subscriber delivery in raise order.
type Event interface {
	// Kind reports which vocabulary member this event is.
	Kind() EventKind
}

// WorkerStarted reports creation of a worker thread.
type WorkerStarted struct {
	// Worker is the zero-based index of the worker within its group.
	Worker int
}

// WorkerAwake reports a worker returning from idle.
type WorkerAwake struct {
	Worker int
}

// WorkItemEnqueued reports an operator work item queued for a worker.
type WorkItemEnqueued struct {
	Worker int
	// Operator identifies the dataflow operator the work item belongs to.
	Operator int
}

// WorkItemStarting reports a worker about to run an operator work item.
type WorkItemStarting struct {
	Worker   int
	Operator int
}

// WorkItemEnded reports a worker having finished an operator work item.
type WorkItemEnded struct {
	Worker   int
	Operator int
	// Elapsed is how long the work item ran.
	Elapsed time.Duration
}

// WorkerSleeping reports a worker about to block waiting for work.
type WorkerSleeping struct {
	Worker int
}

// WorkerTerminated reports a worker shutting down.
type WorkerTerminated struct {
	Worker int
}

// RecordsReceived reports records arriving on a channel at a worker.
type RecordsReceived struct {
	Worker int
	// Channel identifies the dataflow channel the records arrived on.
	Channel int
	Count   int64
}

// RecordsSent reports records leaving on a channel at a worker.
type RecordsSent struct {
	Worker  int
	Channel int
	Count   int64
}

// Kind implements Event.
func (WorkerStarted) Kind() EventKind { return EventWorkerStarted }

// Kind implements Event.
func (WorkerAwake) Kind() EventKind { return EventWorkerAwake }

// Kind implements Event.
func (WorkItemEnqueued) Kind() EventKind { return EventWorkItemEnqueued }

// Kind implements Event.
func (WorkItemStarting) Kind() EventKind { return EventWorkItemStarting }

// Kind implements Event.
func (WorkItemEnded) Kind() EventKind { return EventWorkItemEnded }

// Kind implements Event.
func (WorkerSleeping) Kind() EventKind { return EventWorkerSleeping }

// Kind implements Event.
func (WorkerTerminated) Kind() EventKind { return EventWorkerTerminated }

// Kind implements Event.
func (RecordsReceived) Kind() EventKind { return EventRecordsReceived }

// Kind implements Event.
func (RecordsSent) Kind() EventKind { return EventRecordsSent }
