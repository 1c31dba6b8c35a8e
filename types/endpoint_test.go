package types

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpointString(t *testing.T) {
	ep := Endpoint{
		Host: "node0.cluster",
		Addr: netip.MustParseAddr("10.0.0.5"),
		Port: 2101,
	}
	require.Equal(t, "10.0.0.5:2101", ep.String())
	require.Equal(t, netip.MustParseAddrPort("10.0.0.5:2101"), ep.AddrPort())
}
