package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

const maxFetchRedirects = 10

// isBlockedIP returns true if the IP is private, loopback, link-local, or unspecified.
func isBlockedIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// screenHost resolves host and rejects it when any resolved address is
// blocked. Every address is screened, not just the first, so a name that
// mixes public and private records cannot slip through.
func screenHost(ctx context.Context, host string) ([]net.IPAddr, error) {
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no IP addresses found for host: %s", host)
	}
	for _, ipAddr := range ips {
		if isBlockedIP(ipAddr.IP) {
			return nil, fmt.Errorf("blocked request to private/loopback IP: %s (%s)", host, ipAddr.IP)
		}
	}
	return ips, nil
}

// newFetchClient returns the HTTP client used to fetch URL documents.
// Unless private IPs are explicitly allowed, it screens the target on the
// initial dial and again on every redirect hop, so a URL supplied by an
// AI agent cannot steer the server into internal endpoints.
func newFetchClient(cfg *serverConfig) *http.Client {
	if cfg.AllowPrivateIPs {
		return &http.Client{Timeout: cfg.FetchTimeout}
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	return &http.Client{
		Timeout: cfg.FetchTimeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}
				ips, err := screenHost(ctx, host)
				if err != nil {
					return nil, err
				}
				// Dial the first screened address so the connection goes
				// to an IP that passed the check, not a fresh resolution.
				return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxFetchRedirects {
				return fmt.Errorf("stopped after %d redirects", maxFetchRedirects)
			}
			_, err := screenHost(req.Context(), req.URL.Hostname())
			return err
		},
	}
}
