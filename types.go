package naiad

import "github.com/sherryshare/Naiad/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the module's core types and
// interfaces via type aliases. Internal packages depend on the `types`
// subpackage without depending on the root package, which avoids import
// cycles while still giving users convenient naiad.Endpoint, naiad.Logger,
// etc.
type (
	Endpoint  = types.Endpoint
	Event     = types.Event
	EventKind = types.EventKind
)

// Re-export interfaces from the types package for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Resolver         = types.Resolver
)

// Re-export event payload types from the types package.
type (
	WorkerStarted    = types.WorkerStarted
	WorkerAwake      = types.WorkerAwake
	WorkItemEnqueued = types.WorkItemEnqueued
	WorkItemStarting = types.WorkItemStarting
	WorkItemEnded    = types.WorkItemEnded
	WorkerSleeping   = types.WorkerSleeping
	WorkerTerminated = types.WorkerTerminated
	RecordsReceived  = types.RecordsReceived
	RecordsSent      = types.RecordsSent
)

// Re-export EventKind constants from the types package.
const (
	EventWorkerStarted    = types.EventWorkerStarted
	EventWorkerAwake      = types.EventWorkerAwake
	EventWorkItemEnqueued = types.EventWorkItemEnqueued
	EventWorkItemStarting = types.EventWorkItemStarting
	EventWorkItemEnded    = types.EventWorkItemEnded
	EventWorkerSleeping   = types.EventWorkerSleeping
	EventWorkerTerminated = types.EventWorkerTerminated
	EventRecordsReceived  = types.EventRecordsReceived
	EventRecordsSent      = types.EventRecordsSent
)
