// Package testing provides test utilities for the Naiad runtime core.
//
// This package offers helpers for unit-testing configuration building
// without touching the real DNS environment, following Go's convention of
// providing testing utilities in a dedicated package (similar to
// net/http/httptest).
//
// Key utilities:
//   - NewStaticResolver: Deterministic in-memory name resolution
//   - NewTestLogger: Logger that writes through testing.T
//   - NewCaptureLogger: Logger that records entries for assertions
//
// Example usage:
//
//	import (
//	    "testing"
//	    naiadtest "github.com/sherryshare/Naiad/testing"
//	)
//
//	func TestMyTopology(t *testing.T) {
//	    resolver := naiadtest.NewStaticResolver(map[string][]string{
//	        "node0": {"10.0.0.1"},
//	    })
//	    // Inject resolver into the builder under test.
//	}
package testing
