package naiad

import "github.com/sherryshare/Naiad/types"

// Error categories re-exported from the types package.
//
// Every failure returned by Builder.Build wraps exactly one of these, so the
// embedding process can classify faults with errors.Is() and choose its exit
// status at the top level. The builder itself never terminates the process.
var (
	// ErrUsage covers ordering violations, missing companion flags, and
	// malformed integers or ports.
	ErrUsage = types.ErrUsage

	// ErrResolution covers hostname lookup failures, hosts without a
	// qualifying IPv4 address, and unreadable or truncated hosts files.
	ErrResolution = types.ErrResolution

	// ErrConsistency covers cross-flag faults detected after the full scan:
	// a multi-process run without a host list, a process ID without a
	// process count, or a non-TCP broadcast protocol without an address.
	ErrConsistency = types.ErrConsistency

	// ErrHelp reports that the usage summary was printed on demand. Callers
	// typically exit with status zero when they see it.
	ErrHelp = types.ErrHelp

	// ErrInvalidConfig is returned by Config.Validate for programmatically
	// constructed configurations that violate an invariant.
	ErrInvalidConfig = types.ErrInvalidConfig
)
