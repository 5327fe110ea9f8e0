package check

import (
	"context"

	"github.com/optimode/addrcheck/internal/parse"
	"github.com/optimode/addrcheck/internal/resolve"
	"github.com/optimode/addrcheck/types"
)

// LookupFunc resolves a domain's mail-exchanger records.
type LookupFunc func(ctx context.Context, domain string) ([]types.MXRecord, error)

// MXChecker ensures the domain has at least one mail-exchanger record.
type MXChecker struct {
	lookup LookupFunc // injectable for testability
}

func NewMXChecker(r *resolve.Resolver) *MXChecker {
	return &MXChecker{lookup: r.Lookup}
}

// NewMXCheckerWithLookup is a test-oriented constructor that overrides the
// MX lookup function.
func NewMXCheckerWithLookup(fn LookupFunc) *MXChecker {
	return &MXChecker{lookup: fn}
}

func (c *MXChecker) Name() string { return "mx" }

// Check reports one severity-7 error when the domain is missing, the
// lookup fails, or the lookup succeeds with zero records. The distinction
// between those failure causes stays in the resolver's typed error; at the
// validation level they all mean the same thing. On success the records
// are cached on the subject and no error is reported.
func (c *MXChecker) Check(ctx context.Context, email *parse.Email) []types.Error {
	noMX := []types.Error{{
		Message:  "No MX records found for the domain.",
		Severity: types.SeverityNoMXRecords,
	}}

	if !email.HasDomain || email.Domain == "" {
		return noMX
	}

	records, err := c.lookup(ctx, email.LookupDomain())
	if err != nil || len(records) == 0 {
		return noMX
	}

	email.MX = records
	return nil
}
