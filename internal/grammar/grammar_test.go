package grammar

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// exact anchors a single production at both ends, the same way the full
// addr-spec pattern is anchored, so each token can be tested in isolation.
func exact(production string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + production + `)\z`)
}

func TestFWS(t *testing.T) {
	re := exact(fws)

	assert.True(t, re.MatchString(" "))
	assert.True(t, re.MatchString("\t"))
	assert.True(t, re.MatchString("   \t "))
	assert.True(t, re.MatchString(" \r\n "), "fold: WSP* CRLF WSP+")
	assert.True(t, re.MatchString("\r\n\t"))

	assert.False(t, re.MatchString(""))
	assert.False(t, re.MatchString("\r\n"), "a fold must be followed by whitespace")
	assert.False(t, re.MatchString(" \r\n"))
}

func TestQuotedPair(t *testing.T) {
	re := exact(quotedPair)

	assert.True(t, re.MatchString(`\"`))
	assert.True(t, re.MatchString(`\\`))
	assert.True(t, re.MatchString(`\a`))

	assert.False(t, re.MatchString(`\`))
	assert.False(t, re.MatchString(`a`))
	assert.False(t, re.MatchString(`\ab`))
}

func TestComment(t *testing.T) {
	re := exact(comment)

	assert.True(t, re.MatchString("()"))
	assert.True(t, re.MatchString("(comment)"))
	assert.True(t, re.MatchString("(two words)"))
	assert.True(t, re.MatchString(`(escaped \) paren)`))
	assert.True(t, re.MatchString("( folded\r\n comment)"))

	assert.False(t, re.MatchString("(unclosed"))
	assert.False(t, re.MatchString("unopened)"))
	assert.False(t, re.MatchString("((nested))"), "ccontent does not recurse into comment")
}

func TestDotAtomText(t *testing.T) {
	re := exact(dotAtomText)

	assert.True(t, re.MatchString("abc"))
	assert.True(t, re.MatchString("a.b.c"))
	assert.True(t, re.MatchString("user+tag"))
	assert.True(t, re.MatchString("ab_c-d"))

	assert.False(t, re.MatchString(""))
	assert.False(t, re.MatchString(".a"))
	assert.False(t, re.MatchString("a."))
	assert.False(t, re.MatchString("a..b"))
	assert.False(t, re.MatchString("a b"))
}

func TestQuotedString(t *testing.T) {
	re := exact(quotedString)

	assert.True(t, re.MatchString(`"abc"`))
	assert.True(t, re.MatchString(`""`))
	assert.True(t, re.MatchString(`"two words"`))
	assert.True(t, re.MatchString(`"with \" escape"`))

	assert.False(t, re.MatchString(`"unterminated`))
	assert.False(t, re.MatchString(`unquoted`))
}

func TestDomainLiteral(t *testing.T) {
	re := exact(domainLiteral)

	assert.True(t, re.MatchString("[127.0.0.1]"))
	assert.True(t, re.MatchString("[ 10.0.0.1 ]"))
	assert.True(t, re.MatchString("[IPv6:::1]"))

	assert.False(t, re.MatchString("[unclosed"))
	assert.False(t, re.MatchString("127.0.0.1"))
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		addr  string
		valid bool
	}{
		{"simple", "user@example.com", true},
		{"plus tag", "user+tag@example.com", true},
		{"dotted local", "first.last@example.co.uk", true},
		{"atext specials", "!#$%&'*+-/=?^_`{|}~@example.com", true},
		{"quoted local", `"user name"@example.com`, true},
		{"quoted with escape", `"user\"name"@example.com`, true},
		{"domain literal", "user@[127.0.0.1]", true},
		{"comment after local", "user(comment)@example.com", true},
		{"comment before local", "(comment)user@example.com", true},
		{"folded whitespace", " user@example.com", true},

		{"empty", "", false},
		{"missing at", "not-an-email", false},
		{"missing domain", "user@", false},
		{"missing local", "@example.com", false},
		{"two ats", "user@host@example.com", false},
		{"double dot local", "us..er@example.com", false},
		{"leading dot local", ".user@example.com", false},
		{"double dot domain", "user@example..com", false},
		{"unbalanced quote", `"user@example.com`, false},
		{"space in local", "us er@example.com", false},
		{"control char", "user\x00@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Valid(tt.addr))
		})
	}
}

// Valid must anchor at both ends: embedding a valid address in a larger
// string must not match unless the whole string is itself valid.
func TestValidAnchorsWholeString(t *testing.T) {
	assert.True(t, Valid("user@example.com"))

	assert.False(t, Valid("<user@example.com>"))
	assert.False(t, Valid("user@example.com>"))
	assert.False(t, Valid("user@example.com\n"))
	assert.False(t, Valid("mailto:user@example.com"))
	assert.False(t, Valid("user@example.com, second@example.com"))
}
