package types

import (
	"context"
	"net"
)

// Resolver looks hostnames up in the platform's name-resolution facility.
//
// *net.Resolver satisfies this interface, so net.DefaultResolver is the
// production implementation. Tests inject a static resolver to avoid
// depending on the DNS environment.
type Resolver interface {
	// LookupIPAddr resolves host to its IP addresses.
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}
