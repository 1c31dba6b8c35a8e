package types

import (
	"fmt"
	"net/netip"
)

// Endpoint is a resolved (address, port) pair identifying where a process
// listens for peer connections.
//
// Host preserves the hostname token exactly as supplied on the command line
// or in the hosts file; co-location detection compares these tokens
// textually, never the resolved addresses. Addr is always a concrete
// IPv4-family address by the time an Endpoint leaves the builder.
type Endpoint struct {
	// Host is the raw hostname token the endpoint was resolved from.
	Host string

	// Addr is the resolved IPv4 address.
	Addr netip.Addr

	// Port is the TCP/UDP port the process listens on.
	Port uint16
}

// String returns the endpoint in addr:port form.
func (e Endpoint) String() string {
	return fmt.Sprintf("%s:%d", e.Addr, e.Port)
}

// AddrPort returns the endpoint as a netip.AddrPort for use with the net stack.
func (e Endpoint) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(e.Addr, e.Port)
}
