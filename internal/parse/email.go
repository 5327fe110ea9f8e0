// Package parse builds the validation subject from a raw address string.
package parse

import (
	"strings"

	"golang.org/x/net/idna"

	"github.com/optimode/addrcheck/types"
)

// Email is one address under validation. The check packages receive it as
// parameter. It is owned by a single validation request and never shared
// across requests.
type Email struct {
	Raw       string // the original input, untouched
	Local     string // the part before the first @
	Domain    string // the part after the first @, empty if absent
	HasDomain bool   // false iff Raw contains no @

	// MX is a cache slot populated by the MX check on a successful
	// lookup. Single-writer field: no other check reads or writes it,
	// so concurrent check execution needs no locking around it.
	MX []types.MXRecord
}

// New splits the raw string on the first @. No validation happens here;
// the syntax check decides validity against the full raw input.
func New(raw string) *Email {
	local, domain, found := strings.Cut(raw, "@")
	if !found {
		return &Email{Raw: raw, Local: raw}
	}
	return &Email{Raw: raw, Local: local, Domain: domain, HasDomain: true}
}

// LookupDomain returns the domain in ASCII/Punycode form for DNS queries.
// Internationalized domains are converted via IDNA2008; if conversion
// fails the domain is returned as-is and the query itself reports the
// problem.
func (e *Email) LookupDomain() string {
	d := strings.ToLower(strings.TrimSpace(e.Domain))
	for _, r := range d {
		if r > 127 {
			if a, err := idna.Lookup.ToASCII(d); err == nil {
				return a
			}
			break
		}
	}
	return d
}
