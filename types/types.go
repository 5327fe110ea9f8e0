// Package types contains the shared types for addrcheck.
// This package does not import anything from other addrcheck packages
// to avoid circular imports.
package types

// Severity values used by the built-in checks. Larger means more severe.
// The scale is open-ended; future checks may pick their own values.
const (
	SeverityInvalidSyntax = 10
	SeverityNoMXRecords   = 7
)

// Error is a single problem found with an email address.
// A validation run produces an ordered list of these; an empty list
// means the address passed every check.
type Error struct {
	Message  string `json:"message"`
	Severity int    `json:"severity"`
}

// MXRecord is one mail-exchanger record for a domain.
type MXRecord struct {
	Pref uint16 `json:"pref"`
	Host string `json:"host"`
}

// Less orders records ascending by (preference, exchanger host),
// the natural tuple order.
func (r MXRecord) Less(other MXRecord) bool {
	if r.Pref != other.Pref {
		return r.Pref < other.Pref
	}
	return r.Host < other.Host
}
