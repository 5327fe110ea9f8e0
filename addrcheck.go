// Package addrcheck is an email-address validation engine. It matches the
// input against the RFC 2822 addr-spec grammar, verifies that the domain
// has mail-exchanger records, and merges every problem it finds into one
// severity-ranked error list. It can also suggest a correction for a
// misspelled domain.
//
// Basic usage:
//
//	errs := addrcheck.New().Validate(ctx, "user@example.com")
//
// Concurrent checks under a global time budget, plus a suggestion:
//
//	v := addrcheck.New().WithConcurrency()
//	errs := v.Validate(ctx, "bob@gnail.com")
//	if s, ok := v.DidYouMean("bob@gnail.com"); ok {
//	    fmt.Println("did you mean", s, "?")
//	}
package addrcheck

import "github.com/optimode/addrcheck/types"

// Error is a re-export from the types package so that consumers
// don't need to import the types package directly.
type Error = types.Error

// MXRecord is a re-export.
type MXRecord = types.MXRecord

// Severity constants re-exported.
const (
	SeverityInvalidSyntax = types.SeverityInvalidSyntax
	SeverityNoMXRecords   = types.SeverityNoMXRecords
)
