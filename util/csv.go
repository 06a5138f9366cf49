package util

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSeparator is the field separator of spreadsheet exports.
	DefaultSeparator = ';'
	// BOM is the UTF-8 byte order mark.
	BOM = "\uFEFF"
)

// csvState is the quote state of the delimited text scanner.
type csvState int

const (
	csvUnquoted csvState = iota
	csvQuoted
)

// QuoteMode selects when SerializeDelimited wraps a field in quotes.
type QuoteMode int

const (
	// QuoteAuto quotes fields containing the separator, a quote or a newline.
	QuoteAuto QuoteMode = iota
	// QuoteAlways quotes every field.
	QuoteAlways
	// QuoteNever writes fields as is, with newlines flattened to spaces.
	QuoteNever
)

// ParseQuoteMode converts "auto", "always" or "never" into a QuoteMode.
func ParseQuoteMode(s string) (QuoteMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return QuoteAuto, true
	case "always":
		return QuoteAlways, true
	case "never":
		return QuoteNever, true
	}
	return QuoteAuto, false
}

func (m QuoteMode) String() string {
	switch m {
	case QuoteAlways:
		return "always"
	case QuoteNever:
		return "never"
	}
	return "auto"
}

// StripBOM removes a leading byte order mark.
func StripBOM(text string) string {
	return strings.TrimPrefix(text, BOM)
}

// csvScanner splits delimited text into fields and rows. It does not
// validate quoting: a quote opens a quoted field only as the first rune of
// the field, anywhere else in an unquoted field it is a literal character.
type csvScanner struct {
	sep   rune
	state csvState
	field strings.Builder
	row   []string
	rows  [][]string
	// started is set once the current field has consumed a rune.
	started bool
	// dirty is set once anything of the current row was consumed.
	dirty bool
}

func (s *csvScanner) endField() {
	s.row = append(s.row, s.field.String())
	s.field.Reset()
	s.started = false
}

func (s *csvScanner) endRow() {
	s.endField()
	s.rows = append(s.rows, s.row)
	s.row = nil
	s.dirty = false
}

// next consumes ch, with peek being the following rune (or -1 at the end of
// input), and returns the number of extra runes consumed.
func (s *csvScanner) next(ch, peek rune) int {
	s.dirty = true
	switch s.state {
	case csvQuoted:
		if ch == '"' {
			if peek == '"' {
				s.field.WriteRune('"')
				return 1
			}
			s.state = csvUnquoted
			return 0
		}
		s.field.WriteRune(ch)
	case csvUnquoted:
		switch {
		case ch == '"' && !s.started:
			s.state = csvQuoted
		case ch == s.sep:
			s.endField()
			return 0
		case ch == '\r':
			s.endRow()
			if peek == '\n' {
				return 1
			}
			return 0
		case ch == '\n':
			s.endRow()
			return 0
		default:
			s.field.WriteRune(ch)
		}
		s.started = true
	}
	return 0
}

// scan feeds text to the scanner. With firstOnly, scanning stops at the
// first unquoted separator.
func (s *csvScanner) scan(text string, firstOnly bool) {
	for i := 0; i < len(text); {
		ch, size := utf8.DecodeRuneInString(text[i:])
		if firstOnly && ch == s.sep && s.state == csvUnquoted {
			break
		}
		i += size
		peek, peekSize := rune(-1), 0
		if i < len(text) {
			peek, peekSize = utf8.DecodeRuneInString(text[i:])
		}
		if s.next(ch, peek) > 0 {
			i += peekSize
		}
	}
	if s.dirty {
		s.endRow()
	}
}

// ParseDelimited parses quote-aware delimited text into rows of fields. A
// leading BOM is removed. Newlines inside quoted fields are kept; "" inside
// quotes is a literal quote. A last row without trailing newline is kept.
func ParseDelimited(data []byte, sep rune) [][]string {
	s := csvScanner{sep: sep}
	s.scan(StripBOM(string(data)), false)
	return s.rows
}

// ParseFirstFields returns the first field of every physical line of data,
// split once on the first unquoted separator. Quotes around the field are
// removed. Unlike ParseDelimited, a newline always ends a row, so an empty
// line yields an empty value.
func ParseFirstFields(data []byte, sep rune) []string {
	lines := splitPoLines([]byte(StripBOM(string(data))))
	values := make([]string, 0, len(lines))
	for _, line := range lines {
		s := csvScanner{sep: sep}
		s.scan(line, true)
		value := ""
		if len(s.rows) > 0 {
			value = s.rows[0][0]
		}
		values = append(values, value)
	}
	return values
}

// SerializeOptions controls SerializeDelimited.
type SerializeOptions struct {
	// Separator defaults to DefaultSeparator.
	Separator rune
	Quote     QuoteMode
	// NoBOM omits the leading byte order mark.
	NoBOM bool
}

func (o SerializeOptions) separator() rune {
	if o.Separator == 0 {
		return DefaultSeparator
	}
	return o.Separator
}

func needsQuote(field string, sep rune) bool {
	return strings.ContainsRune(field, sep) || strings.ContainsAny(field, "\"\r\n")
}

func quoteField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// SerializeDelimited writes rows as delimited text. Rows are joined with LF
// and there is no newline after the last row. The output starts with a BOM
// so that spreadsheet applications detect UTF-8.
func SerializeDelimited(rows [][]string, opts SerializeOptions) []byte {
	var b strings.Builder
	sep := opts.separator()

	if !opts.NoBOM {
		b.WriteString(BOM)
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteRune(sep)
			}
			switch opts.Quote {
			case QuoteAlways:
				b.WriteString(quoteField(field))
			case QuoteNever:
				b.WriteString(flattenNewlines(field))
			default:
				// A lone empty field would otherwise be an empty line.
				if needsQuote(field, sep) || (len(row) == 1 && field == "") {
					b.WriteString(quoteField(field))
				} else {
					b.WriteString(field)
				}
			}
		}
	}
	return []byte(b.String())
}

// flattenNewlines replaces line breaks with a space.
func flattenNewlines(s string) string {
	return poNewlineRegex.ReplaceAllString(s, " ")
}

// TrimTrailingEmpty drops trailing values that are empty after trimming
// white space.
func TrimTrailingEmpty(values []string) []string {
	for len(values) > 0 && strings.TrimSpace(values[len(values)-1]) == "" {
		values = values[:len(values)-1]
	}
	return values
}

// Column returns field idx of every row, or "" for short rows.
func Column(rows [][]string, idx int) []string {
	values := make([]string, len(rows))
	for i, row := range rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}
