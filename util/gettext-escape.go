package util

import (
	"strings"
)

var poEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// PoEscape escapes s for embedding in a single quoted PO line: backslashes
// are doubled, double quotes escaped and newlines (LF or CRLF) written as
// the two characters `\n`. Tabs and lone carriage returns become `\t` and
// `\r`.
func PoEscape(s string) string {
	// One pass: backslashes inserted for quotes and newlines are not doubled again.
	return poEscaper.Replace(s)
}

// PoUnescape decodes PO escape sequences in s into real characters.
// PO uses \n (newline), \t (tab), \r (carriage return), \" (quote), \\ (backslash).
// Unknown sequences are kept as is.
func PoUnescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case '"':
				b.WriteByte('"')
				i++
			case '\\':
				b.WriteByte('\\')
				i++
			default:
				b.WriteByte(s[i])
			}
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
