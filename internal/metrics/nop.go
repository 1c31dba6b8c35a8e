// Package metrics provides MetricsCollector implementations for the Naiad runtime core.
package metrics

import "github.com/sherryshare/Naiad/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default when no collector is
// injected, so worker groups never need nil checks on the hot raise path.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordEventRaised discards the event counter increment.
func (n *NopMetrics) RecordEventRaised(_ /* kind */ types.EventKind) {}

// SetSubscriberCount discards the subscriber gauge update.
func (n *NopMetrics) SetSubscriberCount(_ /* count */ int) {}

// RecordRecordsSent discards the sent-records counter increment.
func (n *NopMetrics) RecordRecordsSent(_ /* count */ int64) {}

// RecordRecordsReceived discards the received-records counter increment.
func (n *NopMetrics) RecordRecordsReceived(_ /* count */ int64) {}

// RecordHandlerPanic discards the panic counter increment.
func (n *NopMetrics) RecordHandlerPanic() {}
