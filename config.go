package naiad

import (
	"fmt"
	"math"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/sherryshare/Naiad/types"
)

// BroadcastProtocol selects the transport used for control-message fan-out
// to all processes.
type BroadcastProtocol int

const (
	// TCPOnly fans control messages out over the ordinary TCP mesh.
	TCPOnly BroadcastProtocol = iota

	// UDPOnly fans control messages out over UDP to the broadcast address.
	UDPOnly

	// TCPUDP uses both transports. Requires a broadcast address like UDPOnly.
	TCPUDP
)

// String returns the command-line spelling of the protocol.
func (p BroadcastProtocol) String() string {
	switch p {
	case TCPOnly:
		return "tcp"
	case UDPOnly:
		return "udp"
	case TCPUDP:
		return "both"
	default:
		return "unknown"
	}
}

// SendBufferPolicy selects how send-side page buffers are pooled.
type SendBufferPolicy int

const (
	// SendPoolGlobal shares one buffer pool across the whole process.
	SendPoolGlobal SendBufferPolicy = iota

	// SendPoolPerProcess keeps one pool per remote process.
	SendPoolPerProcess

	// SendPoolPerWorker keeps one pool per local worker.
	SendPoolPerWorker
)

// String returns the command-line spelling of the policy.
func (p SendBufferPolicy) String() string {
	switch p {
	case SendPoolGlobal:
		return "global"
	case SendPoolPerProcess:
		return "process"
	case SendPoolPerWorker:
		return "worker"
	default:
		return "unknown"
	}
}

// InfiniteTimeout is the sentinel meaning "never time out". It is the
// default deadlock timeout.
const InfiniteTimeout time.Duration = math.MaxInt64

// Default buffer-page parameters, applied when the corresponding flags are
// absent. The values are stored, not bounds-checked; sizing semantics belong
// to the communication subsystem.
const (
	DefaultSendPageSize  = 16 * 1024
	DefaultSendPageCount = 256
)

// Config is the validated, immutable runtime configuration of one process in
// a distributed computation.
//
// A Config is built exactly once per process, before any concurrent
// subsystem exists, and is frozen from then on: every field is technically
// settable, but downstream code relies on the write-once-then-frozen
// contract, so it may be shared by read-only reference across all worker
// threads without locking.
//
// Topology fields (Endpoints, MultipleLocalProcesses, BroadcastAddress) are
// derived facts computed by the builder and are deliberately excluded from
// YAML; only declarative fields round-trip.
type Config struct {
	// ProcessID is this process's zero-based index into Endpoints.
	ProcessID int `yaml:"processId"`

	// Processes is the number of processes in the computation.
	Processes int `yaml:"processes"`

	// WorkerCount is the number of scheduling threads in this process.
	// It must be uniform across all processes; that invariant is not locally
	// enforceable, see Fingerprint.
	WorkerCount int `yaml:"workerCount"`

	// Replication is the fault-tolerance replication factor. Zero means no
	// replication.
	Replication int `yaml:"replication"`

	// Endpoints lists where every process listens, indexed by process ID.
	// Each entry is resolved to a concrete IPv4 address before the builder
	// returns.
	Endpoints []types.Endpoint `yaml:"-"`

	// MultipleLocalProcesses is true when two or more endpoints share the
	// same host token. CPU-affinity logic elsewhere consumes this signal;
	// the comparison is textual by design.
	MultipleLocalProcesses bool `yaml:"-"`

	// CompactionInterval is how often progress-reachability state is
	// compacted. Set by --reachability (milliseconds).
	CompactionInterval time.Duration `yaml:"compactionInterval"`

	// DeadlockTimeout bounds how long workers wait without progress before
	// reporting a stall. InfiniteTimeout disables the check.
	DeadlockTimeout time.Duration `yaml:"deadlockTimeout"`

	// Broadcast selects the control-message fan-out transport.
	Broadcast BroadcastProtocol `yaml:"broadcastProtocol"`

	// BroadcastAddress is required whenever Broadcast is not TCPOnly.
	BroadcastAddress *types.Endpoint `yaml:"-"`

	// SendPool selects the send-side buffer pooling policy.
	SendPool SendBufferPolicy `yaml:"sendPool"`

	// SendPageSize is the size in bytes of one send buffer page.
	SendPageSize int `yaml:"sendPageSize"`

	// SendPageCount is the number of pages per send pool.
	SendPageCount int `yaml:"sendPageCount"`

	// UseVarLengthIntCoding enables variable-length integer wire encoding.
	UseVarLengthIntCoding bool `yaml:"useVarLengthIntCoding"`

	// UseBasicCommunicator selects the unoptimized communicator.
	UseBasicCommunicator bool `yaml:"useBasicCommunicator"`

	// DistributedProgressTracker distributes progress tracking instead of
	// centralizing it on process 0.
	DistributedProgressTracker bool `yaml:"distributedProgressTracker"`

	// Impersonation enables credential impersonation on network channels.
	Impersonation bool `yaml:"impersonation"`

	// DuplexSockets uses one duplex socket per peer instead of a pair.
	DuplexSockets bool `yaml:"duplexSockets"`

	// Nagling leaves Nagle's algorithm enabled on peer sockets.
	Nagling bool `yaml:"nagling"`

	// KeepAlives enables TCP keep-alives on peer sockets.
	KeepAlives bool `yaml:"keepAlives"`

	// DisableHighPriorityQueue disables the separate high-priority work queue.
	DisableHighPriorityQueue bool `yaml:"disableHighPriorityQueue"`

	// DomainReporting, InlineReporting and AggregateReporting select the
	// diagnostic reporting channels.
	DomainReporting    bool `yaml:"domainReporting"`
	InlineReporting    bool `yaml:"inlineReporting"`
	AggregateReporting bool `yaml:"aggregateReporting"`

	// NetStats enables network statistics collection; NetStatsInterface
	// names the interface to sample.
	NetStats          bool   `yaml:"netStats"`
	NetStatsInterface string `yaml:"netStatsInterface"`

	// BroadcastWakeup wakes sleeping workers through the broadcast channel;
	// NetBroadcastWakeup does so across the network.
	BroadcastWakeup    bool `yaml:"broadcastWakeup"`
	NetBroadcastWakeup bool `yaml:"netBroadcastWakeup"`
}

// DefaultConfig returns the configuration of a single-process, single-worker
// computation with no replication.
//
// Returns:
//   - Config: Configuration with default values (endpoints not yet resolved)
func DefaultConfig() Config {
	return Config{
		ProcessID:          0,
		Processes:          1,
		WorkerCount:        1,
		Replication:        0,
		CompactionInterval: time.Second,
		DeadlockTimeout:    InfiniteTimeout,
		Broadcast:          TCPOnly,
		SendPool:           SendPoolGlobal,
		SendPageSize:       DefaultSendPageSize,
		SendPageCount:      DefaultSendPageCount,
	}
}

// ApplyDefaults fills in missing configuration values with defaults.
//
// Intended for configurations deserialized from YAML, where absent fields
// arrive as zero values. Boolean feature flags all default to false, so
// they need no treatment here.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func ApplyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Processes == 0 {
		cfg.Processes = defaults.Processes
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = defaults.WorkerCount
	}
	if cfg.CompactionInterval == 0 {
		cfg.CompactionInterval = defaults.CompactionInterval
	}
	if cfg.DeadlockTimeout == 0 {
		cfg.DeadlockTimeout = defaults.DeadlockTimeout
	}
	if cfg.SendPageSize == 0 {
		cfg.SendPageSize = defaults.SendPageSize
	}
	if cfg.SendPageCount == 0 {
		cfg.SendPageCount = defaults.SendPageCount
	}
}

// Validate checks configuration invariants and returns an error wrapping
// ErrInvalidConfig for the first violation.
//
// The builder enforces these invariants itself (with the finer-grained
// usage/consistency taxonomy); Validate exists for configurations
// constructed programmatically or deserialized from YAML.
//
// Returns:
//   - error: Validation error with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Processes < 1 {
		return fmt.Errorf("%w: Processes must be >= 1, got %d", ErrInvalidConfig, cfg.Processes)
	}
	if cfg.WorkerCount < 1 {
		return fmt.Errorf("%w: WorkerCount must be >= 1, got %d", ErrInvalidConfig, cfg.WorkerCount)
	}
	if cfg.Replication < 0 {
		return fmt.Errorf("%w: Replication must be >= 0, got %d", ErrInvalidConfig, cfg.Replication)
	}
	if cfg.ProcessID < 0 || cfg.ProcessID >= cfg.Processes {
		return fmt.Errorf(
			"%w: ProcessID (%d) must be in [0, %d)",
			ErrInvalidConfig, cfg.ProcessID, cfg.Processes,
		)
	}
	if cfg.Endpoints != nil && len(cfg.Endpoints) != cfg.Processes {
		return fmt.Errorf(
			"%w: Endpoints has %d entries for %d processes",
			ErrInvalidConfig, len(cfg.Endpoints), cfg.Processes,
		)
	}
	if cfg.Broadcast != TCPOnly && cfg.BroadcastAddress == nil {
		return fmt.Errorf(
			"%w: broadcast protocol %q requires a broadcast address",
			ErrInvalidConfig, cfg.Broadcast,
		)
	}

	return nil
}

// ValidateWithWarnings logs non-fatal operator guidance for values that are
// legal but rarely what a deployment wants.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger types.Logger) {
	if cfg.CompactionInterval < 100*time.Millisecond {
		logger.Warn(
			"CompactionInterval is very short, progress compaction may dominate scheduling",
			"compactionInterval", cfg.CompactionInterval,
			"recommended", "1s",
		)
	}

	if cfg.DeadlockTimeout != InfiniteTimeout && cfg.DeadlockTimeout < time.Second {
		logger.Warn(
			"DeadlockTimeout is very short, healthy computations may be reported as stalled",
			"deadlockTimeout", cfg.DeadlockTimeout,
		)
	}

	if cfg.SendPageSize > 0 && cfg.SendPageSize&(cfg.SendPageSize-1) != 0 {
		logger.Warn(
			"SendPageSize is not a power of two, send pools may waste allocator space",
			"sendPageSize", cfg.SendPageSize,
		)
	}
}

// Fingerprint hashes the cluster-uniform subset of the configuration.
//
// Every process in a computation must agree on worker count, topology,
// buffering and protocol parameters; only ProcessID may differ. Those
// invariants cannot be enforced locally, so processes exchange fingerprints
// and refuse to proceed on mismatch. Two configs differing only in
// ProcessID produce the same fingerprint.
func (cfg *Config) Fingerprint() uint64 {
	h := xxh3.New()

	writeInt := func(v int64) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	writeBool := func(v bool) {
		if v {
			writeInt(1)
		} else {
			writeInt(0)
		}
	}

	writeInt(int64(cfg.Processes))
	writeInt(int64(cfg.WorkerCount))
	writeInt(int64(cfg.Replication))
	writeInt(int64(cfg.CompactionInterval))
	writeInt(int64(cfg.DeadlockTimeout))
	writeInt(int64(cfg.Broadcast))
	writeInt(int64(cfg.SendPool))
	writeInt(int64(cfg.SendPageSize))
	writeInt(int64(cfg.SendPageCount))

	for _, ep := range cfg.Endpoints {
		_, _ = h.WriteString(ep.String())
	}
	if cfg.BroadcastAddress != nil {
		_, _ = h.WriteString(cfg.BroadcastAddress.String())
	}

	writeBool(cfg.UseVarLengthIntCoding)
	writeBool(cfg.UseBasicCommunicator)
	writeBool(cfg.DistributedProgressTracker)
	writeBool(cfg.Impersonation)
	writeBool(cfg.DuplexSockets)
	writeBool(cfg.Nagling)
	writeBool(cfg.KeepAlives)
	writeBool(cfg.DisableHighPriorityQueue)
	writeBool(cfg.DomainReporting)
	writeBool(cfg.InlineReporting)
	writeBool(cfg.AggregateReporting)
	writeBool(cfg.NetStats)
	_, _ = h.WriteString(cfg.NetStatsInterface)
	writeBool(cfg.BroadcastWakeup)
	writeBool(cfg.NetBroadcastWakeup)

	return h.Sum64()
}
