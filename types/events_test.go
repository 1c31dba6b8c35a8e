package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventKindString(t *testing.T) {
	cases := map[EventKind]string{
		EventWorkerStarted:    "WorkerStarted",
		EventWorkerAwake:      "WorkerAwake",
		EventWorkItemEnqueued: "WorkItemEnqueued",
		EventWorkItemStarting: "WorkItemStarting",
		EventWorkItemEnded:    "WorkItemEnded",
		EventWorkerSleeping:   "WorkerSleeping",
		EventWorkerTerminated: "WorkerTerminated",
		EventRecordsReceived:  "RecordsReceived",
		EventRecordsSent:      "RecordsSent",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
	require.Equal(t, "Unknown", EventKind(99).String())
}

func TestEventKindMatchesPayload(t *testing.T) {
	events := []Event{
		WorkerStarted{Worker: 1},
		WorkerAwake{Worker: 1},
		WorkItemEnqueued{Worker: 1, Operator: 7},
		WorkItemStarting{Worker: 1, Operator: 7},
		WorkItemEnded{Worker: 1, Operator: 7, Elapsed: time.Millisecond},
		WorkerSleeping{Worker: 1},
		WorkerTerminated{Worker: 1},
		RecordsReceived{Worker: 1, Channel: 3, Count: 10},
		RecordsSent{Worker: 1, Channel: 3, Count: 10},
	}

	kinds := []EventKind{
		EventWorkerStarted,
		EventWorkerAwake,
		EventWorkItemEnqueued,
		EventWorkItemStarting,
		EventWorkItemEnded,
		EventWorkerSleeping,
		EventWorkerTerminated,
		EventRecordsReceived,
		EventRecordsSent,
	}

	require.Len(t, events, len(kinds))
	for i, ev := range events {
		require.Equal(t, kinds[i], ev.Kind())
	}
}
