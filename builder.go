package naiad

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sherryshare/Naiad/internal/topology"
	"github.com/sherryshare/Naiad/types"
)

// Builder parses a raw argument vector into a validated Config.
//
// The builder recognizes the runtime flags listed in Usage and collects every
// other token, untouched and in order, into the remaining-argument slice for
// the embedding application's own parser. It never terminates the process:
// all faults come back as errors wrapping exactly one of the category
// sentinels (ErrUsage, ErrResolution, ErrConsistency, ErrHelp), and the
// top-level entry point decides whether and how to exit.
//
// Builders are stateless between calls and safe to reuse, though a process
// normally builds its configuration exactly once, at startup, before any
// concurrent subsystem exists.
type Builder struct {
	logger   types.Logger
	resolver types.Resolver
	out      io.Writer
}

// NewBuilder creates a configuration builder.
//
// Parameters:
//   - opts: Optional dependencies (logger, resolver, metrics, diagnostic writer)
//
// Returns:
//   - *Builder: Builder using the platform resolver and a no-op logger unless overridden
//
// Example:
//
//	b := naiad.NewBuilder(naiad.WithLogger(logging.NewSlogDefault()))
//	cfg, rest, err := b.Build(ctx, os.Args[1:])
func NewBuilder(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Builder{
		logger:   o.logger,
		resolver: o.resolver,
		out:      o.out,
	}
}

const usageText = `Runtime configuration options:
  --procid, -p <n>               zero-based index of this process
  --threads, -t <n>              scheduling threads (workers) per process
  --numprocs, -n <n>             number of processes in the computation
  --hosts, -h <list>             either <n> host[:port] tokens (one per
                                 process, in process-ID order) or a single
                                 @<path> naming a hosts file with one
                                 host[:port] entry per line;
                                 requires --numprocs first
  --local                        synthesize localhost:2101+k endpoints;
                                 requires --numprocs first
  --replication <n>              fault-tolerance replication factor
  --reachability <ms>            progress compaction interval
  --deadlocktimeout <ms>         stall-report timeout (<= 0 means never)
  --varlengthint                 variable-length integer wire encoding
  --basic                        use the unoptimized communicator
  --distributedprogresstracker   distribute progress tracking
  --impersonation                impersonate credentials on channels
  --duplex                       one duplex socket per peer
  --nagling                      leave Nagle's algorithm enabled
  --keepalives                   enable TCP keep-alives
  --nothighpriorityqueue         disable the high-priority work queue
  --domainreporting              log diagnostics to the domain channel
  --inlinereporting              log diagnostics inline
  --aggregatereporting           aggregate diagnostics before reporting
  --netstats                     collect network statistics
  --netstatsinterface <name>     interface to sample for --netstats
  --broadcastprotocol <p>        control fan-out transport: tcp, udp or both
  --broadcastaddress <host[:port]>  address for udp/both broadcast
  --broadcastwakeup              wake sleeping workers via broadcast
  --netbroadcastwakeup           wake sleeping workers across the network
  --sendpool <p>                 send buffer pooling: global, process or worker
  --sendpagesize <bytes>         size of one send buffer page
  --sendpagecount <n>            pages per send pool
  --usage, --help, -?            print this summary

Unrecognized tokens are passed through to the application unchanged.
`

// Usage returns the flag summary printed by --help.
func Usage() string {
	return usageText
}

// PrintUsage writes the flag summary to the builder's diagnostic writer.
func (b *Builder) PrintUsage() {
	fmt.Fprint(b.out, usageText)
}

// Build scans args left to right and produces the process configuration.
//
// Each recognized flag consumes itself plus a flag-specific number of
// following tokens; --hosts consumes either one @<path> token or exactly the
// previously-declared process count of host tokens. Unknown tokens never
// fail the scan: they are returned in remaining, preserving their relative
// order, because the same argument vector is shared with application-level
// parsing that runs afterwards.
//
// No configuration is returned until the full scan, all ordering and
// consistency validations, and every endpoint resolution have succeeded;
// there is no partial result on error.
//
// Parameters:
//   - ctx: Context bounding hosts-file reads and name resolution
//   - args: Raw argument vector, excluding the program name
//
// Returns:
//   - *Config: The frozen process configuration
//   - []string: Unrecognized tokens, in their original relative order
//   - error: A fault wrapping ErrUsage, ErrResolution, ErrConsistency or ErrHelp
func (b *Builder) Build(ctx context.Context, args []string) (*Config, []string, error) {
	cfg := DefaultConfig()
	var remaining []string

	var (
		procIDSet   bool
		numProcsSet bool
		hostsSet    bool
		localSet    bool

		hostTokens     []string
		broadcastToken string
	)

	for i := 0; i < len(args); i++ {
		switch flag := args[i]; flag {
		case "--procid", "-p":
			v, err := intValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.ProcessID = v
			procIDSet = true

		case "--threads", "-t":
			v, err := intValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.WorkerCount = v

		case "--numprocs", "-n":
			v, err := intValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.Processes = v
			numProcsSet = true

		case "--hosts", "-h":
			if !numProcsSet {
				return nil, nil, fmt.Errorf("%w: %s requires --numprocs to appear earlier", ErrUsage, flag)
			}
			if localSet {
				return nil, nil, fmt.Errorf("%w: %s cannot be combined with --local", ErrUsage, flag)
			}
			if cfg.Processes < 1 {
				return nil, nil, fmt.Errorf("%w: %s requires a positive process count, got %d", ErrUsage, flag, cfg.Processes)
			}
			first, err := value(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			if strings.HasPrefix(first, string(topology.FileSentinel)) {
				hostTokens, err = topology.ReadHostsFile(first[1:], cfg.Processes)
				if err != nil {
					return nil, nil, err
				}
			} else {
				// The first token is already consumed; the rest of the list
				// follows it, one token per remaining process.
				extra := cfg.Processes - 1
				if len(args)-(i+1) < extra {
					return nil, nil, fmt.Errorf(
						"%w: %s expects %d host tokens, found %d",
						ErrUsage, flag, cfg.Processes, 1+len(args)-(i+1),
					)
				}
				hostTokens = append([]string{first}, args[i+1:i+1+extra]...)
				i += extra
			}
			hostsSet = true

		case "--local":
			if !numProcsSet {
				return nil, nil, fmt.Errorf("%w: --local requires --numprocs to appear earlier", ErrUsage)
			}
			if hostsSet {
				return nil, nil, fmt.Errorf("%w: --local cannot be combined with --hosts", ErrUsage)
			}
			localSet = true

		case "--replication":
			v, err := intValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.Replication = v

		case "--reachability":
			d, err := millisValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.CompactionInterval = d

		case "--deadlocktimeout":
			d, err := millisValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			if d <= 0 {
				d = InfiniteTimeout
			}
			cfg.DeadlockTimeout = d

		case "--varlengthint":
			cfg.UseVarLengthIntCoding = true

		case "--basic":
			cfg.UseBasicCommunicator = true

		case "--distributedprogresstracker":
			cfg.DistributedProgressTracker = true

		case "--impersonation":
			cfg.Impersonation = true

		case "--duplex":
			cfg.DuplexSockets = true

		case "--nagling":
			cfg.Nagling = true

		case "--keepalives":
			cfg.KeepAlives = true

		case "--nothighpriorityqueue":
			cfg.DisableHighPriorityQueue = true

		case "--domainreporting":
			cfg.DomainReporting = true

		case "--inlinereporting":
			cfg.InlineReporting = true

		case "--aggregatereporting":
			cfg.AggregateReporting = true

		case "--netstats":
			cfg.NetStats = true

		case "--netstatsinterface":
			v, err := value(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.NetStatsInterface = v

		case "--broadcastprotocol":
			v, err := value(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			switch v {
			case "tcp":
				cfg.Broadcast = TCPOnly
			case "udp":
				cfg.Broadcast = UDPOnly
			case "both":
				cfg.Broadcast = TCPUDP
			default:
				// The flag itself is well-formed, so degrade to the safe
				// default instead of failing.
				b.logger.Warn("unknown broadcast protocol, defaulting to tcp", "value", v)
				cfg.Broadcast = TCPOnly
			}

		case "--broadcastaddress":
			v, err := value(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			broadcastToken = v

		case "--broadcastwakeup":
			cfg.BroadcastWakeup = true

		case "--netbroadcastwakeup":
			cfg.NetBroadcastWakeup = true

		case "--sendpool":
			v, err := value(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			switch v {
			case "global":
				cfg.SendPool = SendPoolGlobal
			case "process":
				cfg.SendPool = SendPoolPerProcess
			case "worker":
				cfg.SendPool = SendPoolPerWorker
			default:
				b.logger.Warn("unknown send pool policy, defaulting to global", "value", v)
				cfg.SendPool = SendPoolGlobal
			}

		case "--sendpagesize":
			v, err := intValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.SendPageSize = v

		case "--sendpagecount":
			v, err := intValue(args, &i, flag)
			if err != nil {
				return nil, nil, err
			}
			cfg.SendPageCount = v

		case "--usage", "--help", "-?":
			b.PrintUsage()
			return nil, nil, ErrHelp

		default:
			remaining = append(remaining, flag)
		}
	}

	// Consistency checks run only once the full scan has completed, so a
	// later flag can still satisfy an earlier one's companion requirement.
	if procIDSet && !numProcsSet {
		return nil, nil, fmt.Errorf("%w: a process ID was supplied without a process count", ErrConsistency)
	}
	if numProcsSet && cfg.Processes < 1 {
		return nil, nil, fmt.Errorf("%w: process count must be at least 1, got %d", ErrConsistency, cfg.Processes)
	}
	if cfg.WorkerCount < 1 {
		return nil, nil, fmt.Errorf("%w: worker count must be at least 1, got %d", ErrConsistency, cfg.WorkerCount)
	}
	if cfg.Replication < 0 {
		return nil, nil, fmt.Errorf("%w: replication must be >= 0, got %d", ErrConsistency, cfg.Replication)
	}
	if cfg.Processes > 1 && !hostsSet && !localSet {
		return nil, nil, fmt.Errorf(
			"%w: %d processes configured but no host list; a multi-process computation requires --hosts or --local",
			ErrConsistency, cfg.Processes,
		)
	}
	if hostsSet && len(hostTokens) != cfg.Processes {
		// A --numprocs after --hosts can change the count the host list was
		// sized against; the endpoint-per-process invariant must still hold.
		return nil, nil, fmt.Errorf(
			"%w: host list has %d entries but %d processes are configured",
			ErrConsistency, len(hostTokens), cfg.Processes,
		)
	}
	if cfg.ProcessID < 0 || cfg.ProcessID >= cfg.Processes {
		return nil, nil, fmt.Errorf(
			"%w: process ID %d is out of range for %d process(es)",
			ErrConsistency, cfg.ProcessID, cfg.Processes,
		)
	}
	if cfg.Broadcast != TCPOnly && broadcastToken == "" {
		return nil, nil, fmt.Errorf(
			"%w: broadcast protocol %q requires --broadcastaddress",
			ErrConsistency, cfg.Broadcast,
		)
	}

	// A single-process run with no explicit topology gets the same
	// synthesized endpoints as --local.
	if !hostsSet {
		hostTokens = topology.LocalHostTokens(cfg.Processes)
	}

	endpoints, multipleLocal, err := topology.ResolveAll(ctx, b.resolver, hostTokens)
	if err != nil {
		return nil, nil, err
	}
	cfg.Endpoints = endpoints
	cfg.MultipleLocalProcesses = multipleLocal

	if broadcastToken != "" {
		ep, err := topology.ResolveEndpoint(ctx, b.resolver, broadcastToken)
		if err != nil {
			return nil, nil, fmt.Errorf("broadcast address: %w", err)
		}
		cfg.BroadcastAddress = &ep
	}

	cfg.ValidateWithWarnings(b.logger)
	b.logger.Debug("configuration built",
		"processId", cfg.ProcessID,
		"processes", cfg.Processes,
		"workers", cfg.WorkerCount,
		"multipleLocalProcesses", cfg.MultipleLocalProcesses,
	)

	return &cfg, remaining, nil
}

// value consumes and returns the token following args[*i].
func value(args []string, i *int, flag string) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("%w: flag %s requires a value", ErrUsage, flag)
	}
	*i++

	return args[*i], nil
}

// intValue consumes the following token and parses it as an integer.
func intValue(args []string, i *int, flag string) (int, error) {
	s, err := value(args, i, flag)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: flag %s expects an integer, got %q", ErrUsage, flag, s)
	}

	return v, nil
}

// millisValue consumes the following token and parses it as milliseconds.
func millisValue(args []string, i *int, flag string) (time.Duration, error) {
	v, err := intValue(args, i, flag)
	if err != nil {
		return 0, err
	}

	return time.Duration(v) * time.Millisecond, nil
}
