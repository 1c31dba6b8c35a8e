package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently from worker threads and must be
// thread-safe.
type MetricsCollector interface {
	// RecordEventRaised records that one worker event of the given kind fired.
	RecordEventRaised(kind EventKind)

	// SetSubscriberCount sets the current number of event subscribers (gauge metric).
	SetSubscriberCount(count int)

	// RecordRecordsSent adds to the running total of records observed leaving workers.
	RecordRecordsSent(count int64)

	// RecordRecordsReceived adds to the running total of records observed arriving at workers.
	RecordRecordsReceived(count int64)

	// RecordHandlerPanic records a subscriber handler panic that was isolated by the group.
	RecordHandlerPanic()
}
