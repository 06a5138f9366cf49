package util

import (
	log "github.com/sirupsen/logrus"
)

// MsgStrCSVOptions controls BuildMsgStrCSV.
type MsgStrCSVOptions struct {
	// Header is the text of the single header cell, e.g. the language code.
	Header    string
	Separator rune
	Quote     QuoteMode
}

// BuildMsgStrCSV writes a one-column table: a header row, then the msgstr
// of every translation unit of cat in order. The values keep their PO
// escapes, so a multi-line translation stays on one row.
func BuildMsgStrCSV(cat *PoCatalog, opts MsgStrCSVOptions) []byte {
	values := cat.UnitValues()
	log.Debugf("exporting %d msgstr values, quote mode %s", len(values), opts.Quote)
	rows := make([][]string, 0, len(values)+1)
	rows = append(rows, []string{opts.Header})
	for _, value := range values {
		rows = append(rows, []string{value})
	}
	return SerializeDelimited(rows, SerializeOptions{
		Separator: opts.Separator,
		Quote:     opts.Quote,
	})
}

// ApplyCSVOptions controls ApplyCSVToPo.
type ApplyCSVOptions struct {
	// SkipLines is the number of header lines of the CSV file.
	SkipLines           int
	Separator           rune
	RemoveContinuations bool
	// Unescape decodes PO escapes (\n, \", \\) in the cells, for tables
	// exported by BuildMsgStrCSV. Otherwise cells are taken literally.
	Unescape bool
}

// ReadColumnValues returns the first field of every line of a CSV file
// after skipLines header lines. Empty lines are kept: they stand for empty
// translations. Only the empty line after the final newline is dropped.
func ReadColumnValues(data []byte, sep rune, skipLines int) []string {
	lines := ParseFirstFields(data, sep)
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if skipLines >= len(lines) {
		log.Debugf("no values after %d header lines (%d lines)", skipLines, len(lines))
		return nil
	}
	return lines[skipLines:]
}

// ApplyCSVToPo writes the values of the first CSV column into the msgstr
// entries of po, by position. Values are trimmed and escaped for PO; with
// opts.Unescape they are decoded from PO escapes first.
func ApplyCSVToPo(po, csv []byte, opts ApplyCSVOptions) *ReplaceResult {
	values := ReadColumnValues(csv, opts.Separator, opts.SkipLines)
	if opts.Unescape {
		for i := range values {
			values[i] = PoUnescape(values[i])
		}
	}
	log.Debugf("read %d CSV values after %d header lines", len(values), opts.SkipLines)
	return ReplaceMsgStrs(po, values, ReplaceOptions{
		Trim:                true,
		RemoveContinuations: opts.RemoveContinuations,
	})
}
