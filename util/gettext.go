// Package util provides PO catalog, delimited table and flat JSON handling
// for the conversion commands.
package util

import (
	"regexp"
	"strings"
)

// PoEntry is one translation unit. ID and Value keep PO escapes as they
// appear in the file; use PoUnescape to decode them.
type PoEntry struct {
	ID    string
	Value string
}

// PoCatalog is a parsed PO file: entries in file order and the raw lines.
type PoCatalog struct {
	Entries []PoEntry
	Lines   []string
}

// poState is the state of the catalog scanner.
type poState int

const (
	poStateNone poState = iota
	poStateInID
	poStateInValue
)

// poLineKind classifies one trimmed line of a PO file.
type poLineKind int

const (
	poLineOther poLineKind = iota
	poLineMsgID
	poLineMsgStr
	poLineContinuation
	// msgid_plural, msgstr[N], msgctxt: not handled, but they end the
	// current msgid/msgstr so their continuations are not misattributed.
	poLineKeyword
)

var (
	poNewlineRegex = regexp.MustCompile(`\r?\n`)
	poKeywordRegex = regexp.MustCompile(`^(msgid_plural|msgstr\[\d+\]|msgctxt)\s`)
)

// splitPoLines splits data into lines; CRLF and LF are both line endings.
func splitPoLines(data []byte) []string {
	return poNewlineRegex.Split(string(data), -1)
}

func classifyPoLine(trimmed string) poLineKind {
	switch {
	case strings.HasPrefix(trimmed, "msgid "):
		return poLineMsgID
	case strings.HasPrefix(trimmed, "msgstr "):
		return poLineMsgStr
	case strings.HasPrefix(trimmed, `"`):
		return poLineContinuation
	case poKeywordRegex.MatchString(trimmed):
		return poLineKeyword
	}
	return poLineOther
}

// quotedContent returns the text between the first and the last double quote
// of line, or an empty string if there is no such span.
func quotedContent(line string) string {
	first := strings.IndexByte(line, '"')
	last := strings.LastIndexByte(line, '"')
	if first < 0 || last <= first {
		return ""
	}
	return line[first+1 : last]
}

// poScanner accumulates the current msgid/msgstr pair.
type poScanner struct {
	state   poState
	id      *string
	value   *string
	entries []PoEntry
}

// flush emits the accumulated entry if either slot was set.
func (s *poScanner) flush() {
	if s.id != nil || s.value != nil {
		var e PoEntry
		if s.id != nil {
			e.ID = *s.id
		}
		if s.value != nil {
			e.Value = *s.value
		}
		s.entries = append(s.entries, e)
	}
	s.id = nil
	s.value = nil
	s.state = poStateNone
}

// next is the transition function of the scanner.
func (s *poScanner) next(kind poLineKind, trimmed string) {
	switch kind {
	case poLineMsgID:
		s.flush()
		id := quotedContent(trimmed)
		s.id = &id
		s.state = poStateInID
	case poLineMsgStr:
		value := quotedContent(trimmed)
		s.value = &value
		s.state = poStateInValue
	case poLineContinuation:
		part := quotedContent(trimmed)
		switch s.state {
		case poStateInID:
			*s.id += part
		case poStateInValue:
			*s.value += part
		}
	case poLineKeyword:
		s.state = poStateNone
	}
}

// ParsePoCatalog parses PO text into entries in file order. The header
// entry (msgid "") is kept as the first entry; see Units.
func ParsePoCatalog(data []byte) *PoCatalog {
	var s poScanner

	lines := splitPoLines(data)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		s.next(classifyPoLine(trimmed), trimmed)
	}
	s.flush()

	return &PoCatalog{
		Entries: s.entries,
		Lines:   lines,
	}
}

// HasHeader returns true if the first entry is the metadata header.
func (c *PoCatalog) HasHeader() bool {
	return len(c.Entries) > 0 && c.Entries[0].ID == ""
}

// Header returns the header entry, or nil if the catalog has none.
func (c *PoCatalog) Header() *PoEntry {
	if !c.HasHeader() {
		return nil
	}
	return &c.Entries[0]
}

// Units returns the translation units, that is all entries but the header.
func (c *PoCatalog) Units() []PoEntry {
	if c.HasHeader() {
		return c.Entries[1:]
	}
	return c.Entries
}

// UnitValues returns the values of all translation units.
func (c *PoCatalog) UnitValues() []string {
	units := c.Units()
	values := make([]string, len(units))
	for i, e := range units {
		values[i] = e.Value
	}
	return values
}

// KeyValues returns the translation units as key/value pairs for keyed
// alignment.
func (c *PoCatalog) KeyValues() []KeyValue {
	units := c.Units()
	kvs := make([]KeyValue, len(units))
	for i, e := range units {
		kvs[i] = KeyValue{Key: e.ID, Value: e.Value}
	}
	return kvs
}
