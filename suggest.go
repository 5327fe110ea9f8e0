package addrcheck

import (
	"strings"

	"github.com/optimode/addrcheck/internal/parse"
)

// DidYouMean proposes a spelling correction for the address: every
// dot-separated domain label is run through the corrector and the address
// is reassembled from the original local part and the corrected labels.
// ok is false when the address has no domain, or when the corrected
// address is identical to the input (nothing to suggest).
func (v *Validator) DidYouMean(email string) (suggestion string, ok bool) {
	subject := parse.New(email)
	if !subject.HasDomain || subject.Domain == "" {
		return "", false
	}

	labels := strings.Split(subject.Domain, ".")
	for i, label := range labels {
		labels[i] = v.correct(label)
	}

	suggestion = subject.Local + "@" + strings.Join(labels, ".")
	if suggestion == email {
		return "", false
	}
	return suggestion, true
}
