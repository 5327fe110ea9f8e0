// Package grammar decides whether a string is a valid RFC 2822 addr-spec.
//
// All we are really doing is comparing the input string to one gigantic
// regular expression. Building that expression, and auditing its
// correctness, is much easier when it is assembled from the named tokens
// the RFC defines, so each production below is a separate constant and is
// exercised on its own in the accompanying test file.
//
// The RFC 2822 section each production derives from is noted alongside it.
package grammar

import "regexp"

const (
	wsp        = `[ \t]`                          // 2.2.2 Structured Header Field Bodies
	crlf       = `(?:\r\n)`                       // 2.2.3 Long Header Fields
	noWsCtl    = `\x01-\x08\x0b\x0c\x0f-\x1f\x7f` // 3.2.1 Primitive Tokens
	quotedPair = `(?:\\.)`                        // 3.2.2 Quoted characters

	// 3.2.3 Folding white space and comments
	fws      = `(?:(?:` + wsp + `*` + crlf + `)?` + wsp + `+)`
	ctext    = `[` + noWsCtl + `\x21-\x27\x2a-\x5b\x5d-\x7e]`
	ccontent = `(?:` + ctext + `|` + quotedPair + `)` // the RFC includes comment here too, but that would be circular
	comment  = `\((?:` + fws + `?` + ccontent + `)*` + fws + `?\)`
	cfws     = `(?:` + fws + `?` + comment + `)*(?:` + fws + `?` + comment + `|` + fws + `)`

	// 3.2.4 Atom
	atext       = `[A-Za-z0-9_!#$%&'*+\-/=?^` + "`" + `{|}~]`
	atom        = cfws + `?` + atext + `+` + cfws + `?`
	dotAtomText = atext + `+(?:\.` + atext + `+)*`
	dotAtom     = cfws + `?` + dotAtomText + cfws + `?`

	// 3.2.5 Quoted strings
	qtext        = `[` + noWsCtl + `\x21\x23-\x5b\x5d-\x7e]`
	qcontent     = `(?:` + qtext + `|` + quotedPair + `)`
	quotedString = cfws + `?"(?:` + fws + `?` + qcontent + `)*` + fws + `?"` + cfws + `?`

	// 3.4.1 Addr-spec specification
	localPart     = `(?:` + dotAtom + `|` + quotedString + `)`
	dtext         = `[` + noWsCtl + `\x21-\x5a\x5e-\x7e]`
	dcontent      = `(?:` + dtext + `|` + quotedPair + `)`
	domainLiteral = cfws + `?\[(?:` + fws + `?` + dcontent + `)*` + fws + `?\]` + cfws + `?`
	domain        = `(?:` + dotAtom + `|` + domainLiteral + `)`
	addrSpec      = localPart + `@` + domain
)

// addrSpecRE is anchored at both ends: a valid address matches exactly the
// 3.4.1 addr-spec, never a substring of the input. Compiled once so the
// construction cost is paid at package load, not per call.
var addrSpecRE = regexp.MustCompile(`\A` + addrSpec + `\z`)

// Valid reports whether s is a syntactically valid addr-spec.
// Any string is classifiable; there are no error cases.
func Valid(s string) bool {
	return addrSpecRE.MatchString(s)
}
