package topology

import (
	"bufio"
	"context"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/sherryshare/Naiad/types"
)

const (
	// DefaultPort is assumed when a host token carries no explicit port.
	DefaultPort uint16 = 2101

	// LocalPortBase is the first port used when synthesizing localhost
	// endpoints; process k listens on LocalPortBase+k.
	LocalPortBase = 2101

	// FileSentinel marks a --hosts argument as a path to a hosts file.
	FileSentinel = '@'
)

// LocalHostTokens synthesizes count localhost:port tokens, one per process,
// with consecutive ports starting at LocalPortBase. No file I/O or name
// resolution is performed here; the tokens go through the same resolution
// path as user-supplied ones.
func LocalHostTokens(count int) []string {
	tokens := make([]string, count)
	for k := range count {
		tokens[k] = fmt.Sprintf("localhost:%d", LocalPortBase+k)
	}

	return tokens
}

// ReadHostsFile reads host[:port] tokens from the file at path, one entry per
// line (trimmed, blank lines skipped), until count entries are obtained.
//
// An unreadable path or a file with fewer than count entries is a resolution
// fault; extra lines beyond count are ignored.
func ReadHostsFile(path string, count int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open hosts file %q: %w", types.ErrResolution, path, err)
	}
	defer f.Close()

	tokens := make([]string, 0, count)
	scanner := bufio.NewScanner(f)
	for len(tokens) < count && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading hosts file %q: %w", types.ErrResolution, path, err)
	}
	if len(tokens) < count {
		return nil, fmt.Errorf(
			"%w: hosts file %q is truncated: need %d entries, found %d",
			types.ErrResolution, path, count, len(tokens),
		)
	}

	return tokens, nil
}

// SplitToken splits a host[:port] token on the first colon.
//
// A token without a colon defaults the port to DefaultPort. A malformed or
// out-of-range port is a usage fault.
func SplitToken(token string) (string, uint16, error) {
	host, portStr, found := strings.Cut(token, ":")
	if !found {
		return host, DefaultPort, nil
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil || port == 0 {
		return "", 0, fmt.Errorf("%w: malformed port %q in host token %q", types.ErrUsage, portStr, token)
	}

	return host, uint16(port), nil
}

// ResolveEndpoint resolves a single host[:port] token to a concrete endpoint.
//
// The host component is looked up through resolver; the first IPv4-family
// address that is not in the 169.254.0.0/16 auto-configuration range is
// selected. IPv6 results are never accepted. Resolution failure or the
// absence of any qualifying address is a resolution fault.
func ResolveEndpoint(ctx context.Context, resolver types.Resolver, token string) (types.Endpoint, error) {
	host, port, err := SplitToken(token)
	if err != nil {
		return types.Endpoint{}, err
	}

	ipAddrs, err := resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return types.Endpoint{}, fmt.Errorf("%w: cannot resolve host %q: %w", types.ErrResolution, host, err)
	}

	for _, ipAddr := range ipAddrs {
		addr, ok := netip.AddrFromSlice(ipAddr.IP)
		if !ok {
			continue
		}
		addr = addr.Unmap()
		if !addr.Is4() {
			continue
		}
		if addr.IsLinkLocalUnicast() {
			// 169.254.0.0/16 auto-configuration addresses are not routable
			// between cluster machines.
			continue
		}

		return types.Endpoint{Host: host, Addr: addr, Port: port}, nil
	}

	return types.Endpoint{}, fmt.Errorf(
		"%w: host %q has no usable IPv4 address among %d result(s)",
		types.ErrResolution, host, len(ipAddrs),
	)
}

// ResolveAll resolves one token per process, in process-ID order, and
// detects co-location.
//
// Co-location is purely textual: the returned flag is true iff some
// endpoint's host token equals the host token of the endpoint before it.
// Two spellings of the same machine therefore count as different hosts;
// downstream affinity logic relies on exactly this signal.
//
// Errors carry the offending process index.
func ResolveAll(ctx context.Context, resolver types.Resolver, tokens []string) ([]types.Endpoint, bool, error) {
	endpoints := make([]types.Endpoint, len(tokens))
	multipleLocal := false
	prevHost := ""

	for i, token := range tokens {
		ep, err := ResolveEndpoint(ctx, resolver, token)
		if err != nil {
			return nil, false, fmt.Errorf("process %d: %w", i, err)
		}
		if i > 0 && ep.Host == prevHost {
			multipleLocal = true
		}
		prevHost = ep.Host
		endpoints[i] = ep
	}

	return endpoints, multipleLocal, nil
}
