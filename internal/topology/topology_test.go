package topology

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	naiadtest "github.com/sherryshare/Naiad/testing"
	"github.com/sherryshare/Naiad/types"
)

func TestLocalHostTokens(t *testing.T) {
	tokens := LocalHostTokens(3)
	require.Equal(t, []string{"localhost:2101", "localhost:2102", "localhost:2103"}, tokens)
}

func TestSplitToken(t *testing.T) {
	t.Run("defaults port when no colon present", func(t *testing.T) {
		host, port, err := SplitToken("node0")
		require.NoError(t, err)
		require.Equal(t, "node0", host)
		require.Equal(t, DefaultPort, port)
	})

	t.Run("splits on first colon", func(t *testing.T) {
		host, port, err := SplitToken("node0:4000")
		require.NoError(t, err)
		require.Equal(t, "node0", host)
		require.Equal(t, uint16(4000), port)
	})

	t.Run("rejects malformed port", func(t *testing.T) {
		_, _, err := SplitToken("node0:not-a-port")
		require.ErrorIs(t, err, types.ErrUsage)
	})

	t.Run("rejects out-of-range port", func(t *testing.T) {
		_, _, err := SplitToken("node0:70000")
		require.ErrorIs(t, err, types.ErrUsage)
	})

	t.Run("rejects port zero", func(t *testing.T) {
		_, _, err := SplitToken("node0:0")
		require.ErrorIs(t, err, types.ErrUsage)
	})
}

func TestReadHostsFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "hosts")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("reads trimmed entries up to count", func(t *testing.T) {
		path := writeFile(t, "  node0:2101 \nnode1\n\nnode2:2200\nignored\n")
		tokens, err := ReadHostsFile(path, 3)
		require.NoError(t, err)
		require.Equal(t, []string{"node0:2101", "node1", "node2:2200"}, tokens)
	})

	t.Run("truncated file is a resolution fault", func(t *testing.T) {
		path := writeFile(t, "node0\nnode1\n")
		_, err := ReadHostsFile(path, 3)
		require.ErrorIs(t, err, types.ErrResolution)
	})

	t.Run("missing file is a resolution fault", func(t *testing.T) {
		_, err := ReadHostsFile(filepath.Join(t.TempDir(), "missing"), 1)
		require.ErrorIs(t, err, types.ErrResolution)
	})
}

func TestResolveEndpoint(t *testing.T) {
	resolver := naiadtest.NewStaticResolver(map[string][]string{
		"node0":      {"10.0.0.1"},
		"dual":       {"fd00::1", "10.0.0.2"},
		"linklocal":  {"169.254.10.20", "10.0.0.3"},
		"v6only":     {"fd00::2"},
		"allauto":    {"169.254.0.1", "169.254.0.2"},
		"mapped":     {"::ffff:10.0.0.4"},
		"localhost":  {"127.0.0.1"},
		"node0.alt":  {"10.0.0.1"},
		"selfspells": {"10.0.0.9"},
	})
	ctx := context.Background()

	t.Run("resolves first qualifying IPv4", func(t *testing.T) {
		ep, err := ResolveEndpoint(ctx, resolver, "node0:4000")
		require.NoError(t, err)
		require.Equal(t, "node0", ep.Host)
		require.Equal(t, "10.0.0.1", ep.Addr.String())
		require.Equal(t, uint16(4000), ep.Port)
	})

	t.Run("skips IPv6 results", func(t *testing.T) {
		ep, err := ResolveEndpoint(ctx, resolver, "dual")
		require.NoError(t, err)
		require.Equal(t, "10.0.0.2", ep.Addr.String())
		require.Equal(t, DefaultPort, ep.Port)
	})

	t.Run("skips link-local auto-configuration addresses", func(t *testing.T) {
		ep, err := ResolveEndpoint(ctx, resolver, "linklocal")
		require.NoError(t, err)
		require.Equal(t, "10.0.0.3", ep.Addr.String())
	})

	t.Run("accepts IPv4-mapped addresses as IPv4", func(t *testing.T) {
		ep, err := ResolveEndpoint(ctx, resolver, "mapped")
		require.NoError(t, err)
		require.Equal(t, "10.0.0.4", ep.Addr.String())
	})

	t.Run("IPv6-only host is a resolution fault", func(t *testing.T) {
		_, err := ResolveEndpoint(ctx, resolver, "v6only")
		require.ErrorIs(t, err, types.ErrResolution)
	})

	t.Run("only link-local addresses is a resolution fault", func(t *testing.T) {
		_, err := ResolveEndpoint(ctx, resolver, "allauto")
		require.ErrorIs(t, err, types.ErrResolution)
	})

	t.Run("unknown host is a resolution fault", func(t *testing.T) {
		_, err := ResolveEndpoint(ctx, resolver, "no-such-host")
		require.ErrorIs(t, err, types.ErrResolution)
	})

	t.Run("resolution is deterministic for the same token", func(t *testing.T) {
		first, err := ResolveEndpoint(ctx, resolver, "node0:2101")
		require.NoError(t, err)
		second, err := ResolveEndpoint(ctx, resolver, "node0:2101")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestResolveAll(t *testing.T) {
	resolver := naiadtest.NewStaticResolver(map[string][]string{
		"A":         {"10.0.0.1"},
		"B":         {"10.0.0.2"},
		"localhost": {"127.0.0.1"},
	})
	ctx := context.Background()

	t.Run("distinct hosts are not co-located", func(t *testing.T) {
		eps, multiple, err := ResolveAll(ctx, resolver, []string{"A:2101", "B:2101"})
		require.NoError(t, err)
		require.Len(t, eps, 2)
		require.False(t, multiple)
	})

	t.Run("identical host tokens are co-located", func(t *testing.T) {
		_, multiple, err := ResolveAll(ctx, resolver, LocalHostTokens(3))
		require.NoError(t, err)
		require.True(t, multiple)
	})

	t.Run("single endpoint is never co-located", func(t *testing.T) {
		_, multiple, err := ResolveAll(ctx, resolver, []string{"A"})
		require.NoError(t, err)
		require.False(t, multiple)
	})

	t.Run("comparison is textual, not address based", func(t *testing.T) {
		// "A" and "B" could even resolve to the same machine; only the
		// spelling of the token matters for the affinity signal.
		eps, multiple, err := ResolveAll(ctx, resolver, []string{"A", "A", "B"})
		require.NoError(t, err)
		require.True(t, multiple)
		require.Equal(t, "A", eps[1].Host)
	})

	t.Run("failure names the offending process index", func(t *testing.T) {
		_, _, err := ResolveAll(ctx, resolver, []string{"A", "missing"})
		require.ErrorIs(t, err, types.ErrResolution)
		require.ErrorContains(t, err, "process 1")
	})

	t.Run("malformed port names the offending process index", func(t *testing.T) {
		_, _, err := ResolveAll(ctx, resolver, []string{"A", "B:bogus"})
		require.ErrorIs(t, err, types.ErrUsage)
		require.ErrorContains(t, err, "process 1")
	})
}
