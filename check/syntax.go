package check

import (
	"context"

	"github.com/optimode/addrcheck/internal/grammar"
	"github.com/optimode/addrcheck/internal/parse"
	"github.com/optimode/addrcheck/types"
)

// SyntaxChecker decides membership of the raw input in the RFC 2822
// addr-spec language. It never fails in any other way: every string is
// classifiable.
type SyntaxChecker struct{}

func NewSyntaxChecker() *SyntaxChecker {
	return &SyntaxChecker{}
}

func (c *SyntaxChecker) Name() string { return "syntax" }

// Check returns a single severity-10 error when the address fails the
// grammar match, and nothing on success.
func (c *SyntaxChecker) Check(_ context.Context, email *parse.Email) []types.Error {
	if grammar.Valid(email.Raw) {
		return nil
	}
	return []types.Error{{
		Message:  "Invalid email address.",
		Severity: types.SeverityInvalidSyntax,
	}}
}
