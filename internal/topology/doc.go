// Package topology turns raw host[:port] tokens into resolved process endpoints.
//
// It handles the three sources of a host list (literal tokens, an @-prefixed
// hosts file, and synthesized localhost entries), per-endpoint IPv4
// resolution, and textual co-location detection. All faults wrap the
// category sentinels in the types package.
package topology
