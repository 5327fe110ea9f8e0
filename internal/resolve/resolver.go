// Package resolve performs mail-exchanger lookups against a configurable
// set of nameservers.
package resolve

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/miekg/dns"

	"github.com/optimode/addrcheck/types"
)

// Config contains the resolver configuration.
type Config struct {
	// Nameservers is a list of DNS servers to query (e.g. "8.8.8.8:53").
	// If empty, system resolvers from /etc/resolv.conf are discovered on
	// first use, falling back to public DNS (8.8.8.8, 1.1.1.1).
	Nameservers []string

	// Timeout is the timeout for a single DNS query. Default is 5 seconds.
	Timeout time.Duration

	// RotateOnEmpty retries a query exactly once against the next
	// nameserver in rotation when the first attempt succeeds but carries
	// zero answers. Transport errors and non-success statuses are not
	// retried. Default is off; the package-level default enables it.
	RotateOnEmpty bool
}

// ResolutionError is the typed failure returned when an MX query fails at
// the transport or status level. Callers decide how to surface it; the
// resolver never swallows a failure.
type ResolutionError struct {
	// Rcode is the DNS response code, or -1 for transport failures.
	Rcode int
	Err   error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve: mx query failed: %v", e.Err)
	}
	return fmt.Sprintf("resolve: mx query status: %s", dns.RcodeToString[e.Rcode])
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ExchangeFunc issues one DNS query against one server.
// Injectable for testing via NewWithExchange.
type ExchangeFunc func(ctx context.Context, msg *dns.Msg, server string) (*dns.Msg, error)

// Resolver looks up MX records. The nameserver set and rotation cursor are
// explicit per-resolver state, not process-wide globals; construct one per
// process or inject one per call as needed.
type Resolver struct {
	cfg      Config
	exchange ExchangeFunc

	mu      sync.Mutex
	servers []string
	cursor  int
}

// New creates a resolver that queries over UDP with the configured timeout.
func New(cfg Config) *Resolver {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	client := &dns.Client{Timeout: cfg.Timeout}
	return &Resolver{
		cfg: cfg,
		exchange: func(ctx context.Context, msg *dns.Msg, server string) (*dns.Msg, error) {
			resp, _, err := client.ExchangeContext(ctx, msg, server)
			return resp, err
		},
	}
}

// NewWithExchange is a test-oriented constructor that overrides the
// exchange function.
func NewWithExchange(cfg Config, fn ExchangeFunc) *Resolver {
	r := New(cfg)
	r.exchange = fn
	return r
}

// Lookup returns the MX records for domain, sorted ascending by
// (preference, exchanger). A successful query with zero MX answers yields
// an empty, non-error result: interpreting "no records" is the caller's
// business, except for the one rotate-on-empty retry.
func (r *Resolver) Lookup(ctx context.Context, domain string) ([]types.MXRecord, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeMX)
	msg.RecursionDesired = true

	resp, err := r.exchange(ctx, msg, r.server())
	if err != nil {
		return nil, &ResolutionError{Rcode: -1, Err: err}
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, &ResolutionError{Rcode: resp.Rcode}
	}

	if len(resp.Answer) == 0 && r.cfg.RotateOnEmpty {
		// check with the next DNS server
		resp, err = r.exchange(ctx, msg, r.rotate())
		if err != nil {
			return nil, &ResolutionError{Rcode: -1, Err: err}
		}
		if resp.Rcode != dns.RcodeSuccess {
			return nil, &ResolutionError{Rcode: resp.Rcode}
		}
	}

	records := make([]types.MXRecord, 0, len(resp.Answer))
	for _, rr := range resp.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			records = append(records, types.MXRecord{
				Pref: mx.Preference,
				Host: strings.TrimSuffix(mx.Mx, "."),
			})
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Less(records[j]) })
	return records, nil
}

// server returns the current nameserver, discovering the set on first use.
func (r *Resolver) server() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discoverLocked()
	return r.servers[r.cursor]
}

// rotate advances the rotation cursor and returns the new current server.
func (r *Resolver) rotate() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discoverLocked()
	r.cursor = (r.cursor + 1) % len(r.servers)
	return r.servers[r.cursor]
}

func (r *Resolver) discoverLocked() {
	if len(r.servers) > 0 {
		return
	}
	if len(r.cfg.Nameservers) > 0 {
		r.servers = withDefaultPort(r.cfg.Nameservers)
		return
	}
	r.servers = systemNameservers()
}

// systemNameservers reads the system DNS servers from resolv.conf.
func systemNameservers() []string {
	config, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		return []string{"8.8.8.8:53", "1.1.1.1:53"}
	}

	servers := make([]string, 0, len(config.Servers))
	for _, s := range config.Servers {
		servers = append(servers, withPort(s, config.Port))
	}
	return servers
}

func withDefaultPort(servers []string) []string {
	out := make([]string, 0, len(servers))
	for _, s := range servers {
		out = append(out, withPort(s, "53"))
	}
	return out
}

func withPort(server, port string) string {
	if strings.Contains(server, ":") {
		return server
	}
	return server + ":" + port
}
