package addrcheck

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/optimode/addrcheck/check"
	"github.com/optimode/addrcheck/internal/parse"
	"github.com/optimode/addrcheck/internal/resolve"
	"github.com/optimode/addrcheck/internal/spell"
	"github.com/optimode/addrcheck/types"
)

// checker is the internal interface for all validation checks.
// Every check/ package type implements this.
type checker interface {
	Name() string
	Check(ctx context.Context, email *parse.Email) []types.Error
}

// Validator runs every registered check against an address and merges the
// per-check error lists. Instantiate with New().
type Validator struct {
	// checks is the closed registry, in discovery order. The run loops
	// iterate whatever is registered here; adding a check means
	// appending to this slice in New, nothing else.
	checks []checker

	concurrent bool
	timeout    time.Duration
	correct    func(label string) string
}

// New creates a Validator with the full check registry: syntax, MX and
// no-op, in that order. Checks run sequentially by default; see
// WithConcurrency. The MX resolver uses the system nameservers with
// rotate-on-empty retry; see WithDNS.
func New() *Validator {
	o := defaultDNSOptions()
	return &Validator{
		checks: []checker{
			check.NewSyntaxChecker(),
			check.NewMXChecker(resolve.New(resolve.Config{
				Nameservers:   o.Nameservers,
				Timeout:       o.Timeout,
				RotateOnEmpty: o.RotateOnEmpty,
			})),
			check.NewNoopChecker(),
		},
		timeout: defaultConcurrencyOptions().Timeout,
		correct: spell.Correct,
	}
}

// WithConcurrency makes Validate run every check in its own goroutine,
// joined under a global timeout. Checks still running when the budget
// elapses are abandoned and contribute no errors: a slow check degrades
// coverage, never correctness, and never blocks validation indefinitely.
func (v *Validator) WithConcurrency(opts ...ConcurrencyOptions) *Validator {
	o := defaultConcurrencyOptions()
	if len(opts) > 0 && opts[0].Timeout > 0 {
		o = opts[0]
	}
	v.concurrent = true
	v.timeout = o.Timeout
	return v
}

// WithDNS replaces the MX check's resolver configuration.
func (v *Validator) WithDNS(opts ...DNSOptions) *Validator {
	o := defaultDNSOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return v.replaceCheck(check.NewMXChecker(resolve.New(resolve.Config{
		Nameservers:   o.Nameservers,
		Timeout:       o.Timeout,
		RotateOnEmpty: o.RotateOnEmpty,
	})))
}

// WithMXLookup overrides the MX lookup function. Mainly for tests and
// examples that must not touch the network.
func (v *Validator) WithMXLookup(fn check.LookupFunc) *Validator {
	return v.replaceCheck(check.NewMXCheckerWithLookup(fn))
}

// WithCorrector overrides the per-label corrector used by DidYouMean.
func (v *Validator) WithCorrector(fn func(label string) string) *Validator {
	v.correct = fn
	return v
}

// replaceCheck swaps the registry entry with the same name, keeping its
// position so merge order is unaffected.
func (v *Validator) replaceCheck(c checker) *Validator {
	for i, existing := range v.checks {
		if existing.Name() == c.Name() {
			v.checks[i] = c
			return v
		}
	}
	v.checks = append(v.checks, c)
	return v
}

// Validate runs every registered check on the given address and returns
// the merged error list. An empty list means the address passed every
// check. Validate never fails for a malformed address: problems come back
// as list entries, and the merge order always follows the registry order
// regardless of completion order, so callers can rely on a stable list.
func (v *Validator) Validate(ctx context.Context, email string) []types.Error {
	subject := parse.New(email)
	if v.concurrent {
		return v.runConcurrent(ctx, subject)
	}
	return v.runSequential(ctx, subject)
}

func (v *Validator) runSequential(ctx context.Context, subject *parse.Email) []types.Error {
	errs := []types.Error{}
	for _, c := range v.checks {
		errs = append(errs, runCheck(ctx, c, subject)...)
	}
	return errs
}

// runConcurrent launches one goroutine per registered check and joins them
// under the global timeout. Each goroutine delivers its result on its own
// buffered channel, so abandoned checks can still send and exit, and no
// two goroutines ever write one shared list. Merging happens here, single
// threaded, after collection.
func (v *Validator) runConcurrent(ctx context.Context, subject *parse.Email) []types.Error {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	results := make([]chan []types.Error, len(v.checks))
	for i, c := range v.checks {
		out := make(chan []types.Error, 1)
		results[i] = out
		go func(c checker) {
			out <- runCheck(ctx, c, subject)
		}(c)
	}

	errs := []types.Error{}
	for i := range results {
		select {
		case r := <-results[i]:
			errs = append(errs, r...)
		case <-ctx.Done():
			// Budget spent. Collect whatever has already finished,
			// abandon the rest without waiting on them.
			for _, out := range results[i:] {
				select {
				case r := <-out:
					errs = append(errs, r...)
				default:
				}
			}
			return errs
		}
	}
	return errs
}

// runCheck absorbs panics so one faulty check cannot abort its siblings.
// A panicking check contributes no errors; checks that want a fault
// surfaced must convert it to a types.Error themselves, the way the MX
// check converts resolution failures.
func runCheck(ctx context.Context, c checker, subject *parse.Email) (errs []types.Error) {
	defer func() {
		if recover() != nil {
			errs = nil
		}
	}()
	return c.Check(ctx, subject)
}

// ValidateMany validates multiple addresses with a bounded number of
// concurrent workers. The result order matches the input slice order.
func (v *Validator) ValidateMany(ctx context.Context, emails []string, opts ...BatchOptions) [][]types.Error {
	o := defaultBatchOptions()
	if len(opts) > 0 && opts[0].Workers > 0 {
		o = opts[0]
	}

	results := make([][]types.Error, len(emails))

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i, email := range emails {
		i, email := i, email
		g.Go(func() error {
			results[i] = v.Validate(ctx, email)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; problems live in the lists

	return results
}
