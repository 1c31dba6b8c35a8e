package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sherryshare/Naiad/types"
)

func TestNewNop(t *testing.T) {
	collector := NewNop()

	require.NotNil(t, collector)
	require.IsType(t, &NopMetrics{}, collector)
}

func TestNopMetricsDiscardsEverything(t *testing.T) {
	collector := NewNop()

	require.NotPanics(t, func() {
		collector.RecordEventRaised(types.EventWorkerStarted)
		collector.RecordEventRaised(types.EventKind(999))
		collector.SetSubscriberCount(0)
		collector.SetSubscriberCount(-1)
		collector.RecordRecordsSent(1024)
		collector.RecordRecordsReceived(0)
		collector.RecordHandlerPanic()
	})
}
