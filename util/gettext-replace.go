package util

import (
	"strings"
)

// ReplaceOptions controls ReplaceMsgStrs.
type ReplaceOptions struct {
	// Trim removes leading and trailing white space from values.
	Trim bool
	// Verbatim values are already PO escaped and written as is.
	Verbatim bool
	// RemoveContinuations deletes the continuation lines of a replaced
	// msgstr instead of blanking them. Line numbers of the file change.
	RemoveContinuations bool
	// Lookup, if set, gives the value of each msgstr from the msgid of its
	// block instead of taking the values in order. Slots whose msgid is not
	// found get an empty msgstr.
	Lookup func(msgid string) (string, bool)
}

// ReplaceResult is the output of ReplaceMsgStrs. Slots is the number of
// msgstr lines that can take a value.
type ReplaceResult struct {
	PositionalStat
	Data []byte
	// Replaced is the number of msgstr lines rewritten from a value.
	Replaced int
}

// ReplaceMsgStrs rewrites every msgstr of data, except the header's, with the
// next value of values. Every other line is kept. A rewritten msgstr is a
// single line; its old continuation lines are blanked so that the line
// numbers of the file do not change. Slots without a value get an empty
// msgstr and extra values are ignored; the mismatch is not an error, the
// caller checks result.Mismatch(). Lines are joined with LF.
func ReplaceMsgStrs(data []byte, values []string, opts ReplaceOptions) *ReplaceResult {
	var (
		lines     = splitPoLines(data)
		out       = make([]string, 0, len(lines))
		result    = &ReplaceResult{PositionalStat: PositionalStat{Values: len(values)}}
		state     = poStateNone
		blockID   string
		blocks    int
		skipConts bool
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		kind := classifyPoLine(trimmed)

		if skipConts {
			if kind == poLineContinuation {
				if !opts.RemoveContinuations {
					out = append(out, "")
				}
				continue
			}
			skipConts = false
		}

		switch kind {
		case poLineMsgID:
			blockID = quotedContent(trimmed)
			blocks++
			state = poStateInID
		case poLineContinuation:
			if state == poStateInID {
				blockID += quotedContent(trimmed)
			}
		case poLineKeyword:
			state = poStateNone
		case poLineMsgStr:
			state = poStateInValue
			// The header is the first block with an empty msgid.
			if blocks == 1 && blockID == "" {
				break
			}
			value, found := "", false
			if opts.Lookup != nil {
				value, found = opts.Lookup(blockID)
			} else if result.Slots < len(values) {
				value, found = values[result.Slots], true
			}
			if found {
				result.Replaced++
			}
			result.Slots++
			if opts.Trim {
				value = strings.TrimSpace(value)
			}
			if !opts.Verbatim {
				value = PoEscape(value)
			}
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			line = indent + `msgstr "` + value + `"`
			skipConts = true
		}
		out = append(out, line)
	}

	result.Data = []byte(strings.Join(out, "\n"))
	if opts.Lookup != nil {
		result.Values = result.Slots
	}
	return result
}
