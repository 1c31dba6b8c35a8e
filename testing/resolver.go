package testing

import (
	"context"
	"net"

	"github.com/sherryshare/Naiad/types"
)

// StaticResolver is a deterministic in-memory types.Resolver for tests.
//
// Hosts map to fixed address lists; unknown hosts fail with *net.DNSError
// exactly like the platform resolver, so error-path tests behave the same
// as they would against real DNS.
type StaticResolver struct {
	hosts map[string][]net.IPAddr
}

// Compile-time assertion that StaticResolver implements Resolver.
var _ types.Resolver = (*StaticResolver)(nil)

// NewStaticResolver creates a resolver from a host → address-strings map.
//
// Parameters:
//   - hosts: Addresses each host resolves to, in textual form (IPv4 or IPv6)
//
// Returns:
//   - *StaticResolver: Resolver returning exactly the configured addresses
//
// Example:
//
//	resolver := NewStaticResolver(map[string][]string{
//	    "node0":     {"10.0.0.1"},
//	    "localhost": {"127.0.0.1"},
//	})
func NewStaticResolver(hosts map[string][]string) *StaticResolver {
	parsed := make(map[string][]net.IPAddr, len(hosts))
	for host, addrs := range hosts {
		ipAddrs := make([]net.IPAddr, 0, len(addrs))
		for _, addr := range addrs {
			ipAddrs = append(ipAddrs, net.IPAddr{IP: net.ParseIP(addr)})
		}
		parsed[host] = ipAddrs
	}

	return &StaticResolver{hosts: parsed}
}

// LookupIPAddr returns the configured addresses for host.
func (r *StaticResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	addrs, ok := r.hosts[host]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
	}

	return addrs, nil
}
