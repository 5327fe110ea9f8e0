package check_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/addrcheck/check"
	"github.com/optimode/addrcheck/internal/parse"
	"github.com/optimode/addrcheck/types"
)

func TestSyntaxChecker(t *testing.T) {
	c := check.NewSyntaxChecker()
	ctx := context.Background()

	tests := []struct {
		name   string
		email  string
		wantOK bool
	}{
		{"valid simple", "user@example.com", true},
		{"valid with plus", "user+tag@example.com", true},
		{"valid quoted local", `"user name"@example.com`, true},
		{"valid domain literal", "user@[127.0.0.1]", true},
		{"valid with comment", "user(comment)@example.com", true},
		{"empty", "", false},
		{"no at sign", "not-an-email", false},
		{"no domain", "user@", false},
		{"no local", "@example.com", false},
		{"double dot local", "user..name@example.com", false},
		{"embedded address", "<user@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := c.Check(ctx, parse.New(tt.email))
			if tt.wantOK {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, []types.Error{{
				Message:  "Invalid email address.",
				Severity: types.SeverityInvalidSyntax,
			}}, errs)
		})
	}
}

func TestSyntaxCheckerName(t *testing.T) {
	assert.Equal(t, "syntax", check.NewSyntaxChecker().Name())
}
