package addrcheck

import "time"

// ConcurrencyOptions configures concurrent check execution.
type ConcurrencyOptions struct {
	// Timeout is the global budget for one validation run. Checks still
	// running when it elapses are abandoned; they contribute no errors
	// and are not reported as errors either, which means a timed-out
	// check silently reduces coverage. Default: 7s
	Timeout time.Duration
}

func defaultConcurrencyOptions() ConcurrencyOptions {
	return ConcurrencyOptions{
		Timeout: 7 * time.Second,
	}
}

// DNSOptions configures the MX resolver.
type DNSOptions struct {
	// Nameservers to query, as "host" or "host:port".
	// Default: discovered from the system resolver configuration.
	Nameservers []string
	// Timeout is the maximum time for a single MX query. Default: 5s
	Timeout time.Duration
	// RotateOnEmpty retries an empty-but-successful query exactly once
	// against the next nameserver in rotation. Default: true
	RotateOnEmpty bool
}

func defaultDNSOptions() DNSOptions {
	return DNSOptions{
		Timeout:       5 * time.Second,
		RotateOnEmpty: true,
	}
}

// BatchOptions configures ValidateMany.
type BatchOptions struct {
	// Workers is the number of concurrent goroutines. Default: 5
	Workers int
}

func defaultBatchOptions() BatchOptions {
	return BatchOptions{
		Workers: 5,
	}
}
