// Package spell corrects single domain tokens against a dictionary of
// well-known mail providers and top-level domains.
package spell

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// maxDistance is the edit distance within which a token is considered a
// likely typo of a known token. One keeps "gnail" -> "gmail" while leaving
// legitimate unrelated domains alone.
const maxDistance = 1

// knownTokens are dot-separated domain labels worth correcting towards:
// major mail providers first, then common TLDs. Order matters only for
// breaking distance ties (first listed wins).
var knownTokens = []string{
	"gmail", "googlemail",
	"yahoo", "ymail",
	"outlook", "hotmail", "live", "msn",
	"icloud", "me", "mac",
	"protonmail", "proton",
	"aol", "zoho", "yandex", "mail", "gmx", "fastmail", "tutanota",
	"comcast", "verizon", "att", "sbcglobal",
	"com", "net", "org", "edu", "gov", "co", "uk", "de", "fr", "info", "io",
}

// Correct returns the known token closest to the input within maxDistance,
// or the input unchanged when there is no close-enough candidate. The
// comparison is case-insensitive; corrections come back lowercase.
func Correct(token string) string {
	if token == "" {
		return token
	}
	lower := strings.ToLower(token)

	best := ""
	bestDist := maxDistance + 1
	for _, known := range knownTokens {
		if lower == known {
			return token
		}
		if dist := edlib.LevenshteinDistance(lower, known); dist < bestDist {
			bestDist = dist
			best = known
		}
	}

	if best == "" {
		return token
	}
	return best
}
