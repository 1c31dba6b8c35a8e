// Package naiad provides the startup core of a distributed dataflow process:
// a validated, immutable runtime configuration built from command-line
// arguments, and the event-based instrumentation surface workers expose to
// observers.
//
// The hard part of configuration is not flag parsing but producing a
// consistent cluster-wide topology: resolving every process's endpoint (from
// literal arguments, a hosts file, or synthesized localhost entries),
// detecting when several processes co-reside on one machine, and rejecting
// flag combinations that cannot form a coherent multi-process computation.
// The builder fails fast (no partial configuration ever escapes), but it
// never terminates the process itself; faults come back as categorized
// errors and the embedding entry point chooses the exit.
//
// # Quick Start
//
//	b := naiad.NewBuilder(naiad.WithLogger(logging.NewSlogDefault()))
//	cfg, rest, err := b.Build(ctx, os.Args[1:])
//	switch {
//	case errors.Is(err, naiad.ErrHelp):
//	    os.Exit(0)
//	case err != nil:
//	    log.Fatal(err)
//	}
//
//	pctx, _ := naiad.NewProcessContext(cfg)
//	group, _ := pctx.NewWorkerGroup()
//	defer group.Close()
//
//	cancel := group.Subscribe(func(ev naiad.Event) {
//	    // trace worker lifecycle
//	})
//	defer cancel()
//
// The returned rest slice holds every token the builder did not recognize,
// in order, for the application's own argument parsing.
//
// # Key Properties
//
//   - All-or-nothing building: ordering rules, consistency rules and every
//     endpoint resolution must succeed before a Config is returned
//   - Pass-through arguments: unknown tokens never fail the scan
//   - Frozen configuration: safe to share by reference across all workers
//   - Non-blocking events: raising never stalls on slow observers, and each
//     observer sees events exactly once, in raise order
//
// # Error Taxonomy
//
// Every builder fault wraps one of ErrUsage, ErrResolution or
// ErrConsistency; --help wraps ErrHelp. Unknown values for otherwise valid
// enum flags are the one soft category: they log a warning and substitute a
// documented default instead of failing.
//
// See the examples/ directory for a complete embedding.
package naiad
