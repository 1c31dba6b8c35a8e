package types

import "errors"

// Sentinel errors for the configuration builder.
//
// These mirror the error taxonomy of the builder: every failure it reports
// wraps exactly one of the category sentinels below, so callers can classify
// faults with errors.Is() without parsing messages. Components wrap external
// errors with context using fmt.Errorf("...: %w", err).
var (
	// ErrUsage is the category for command-line usage faults: ordering
	// violations, missing required companions, malformed integers and ports.
	ErrUsage = errors.New("usage error")

	// ErrResolution is the category for topology resolution faults: hostnames
	// that do not resolve, hosts without a qualifying IPv4 address, and
	// unreadable or truncated hosts files.
	ErrResolution = errors.New("resolution error")

	// ErrConsistency is the category for cross-flag consistency faults
	// detected after the full scan completes.
	ErrConsistency = errors.New("consistency error")

	// ErrHelp is returned after the usage summary has been printed on demand.
	// It is not a fault; callers typically exit with status zero.
	ErrHelp = errors.New("usage requested")

	// ErrInvalidConfig is returned when a programmatically constructed
	// configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)
