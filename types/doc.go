// Package types provides core type definitions and interfaces for the Naiad runtime core.
//
// This package contains shared types that are used across multiple packages in the
// module. By keeping these types in a separate package, we avoid import cycles
// between the root naiad package and its internal implementations.
//
// Key types:
//   - Endpoint: Resolved (address, port) pair for one process
//   - Event / EventKind: Worker lifecycle event vocabulary
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
//   - Resolver: Name-resolution interface satisfied by *net.Resolver
package types
