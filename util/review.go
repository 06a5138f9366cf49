package util

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Review status values of keyed review tables. The language codes are
// appended to the missing/only prefixes, e.g. "missing_da".
const (
	ReviewStatusSame    = "same"
	ReviewStatusDiff    = "diff"
	reviewMissingPrefix = "missing_"
	reviewOnlyPrefix    = "only_in_"
)

// ReviewOptions names the languages of the two catalogs.
type ReviewOptions struct {
	Source    string
	Target    string
	Separator rune
}

// ReviewStat counts the rows of a review table.
type ReviewStat struct {
	Rows    int
	Same    int
	Diff    int
	Missing int
	Extra   int
}

// MissingColumnError reports a review table without a required column.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("CSV must have columns '%s'", strings.Join(e.Columns, "' and '"))
}

// BuildStrictReview writes a msgid;<source>;<target> table from two
// catalogs that must have the same msgids in the same order. The header
// entry is not written.
func BuildStrictReview(src, dst *PoCatalog, opts ReviewOptions) ([]byte, int, error) {
	if err := ValidateExactOrder(src.Entries, dst.Entries); err != nil {
		return nil, 0, err
	}
	log.Debugf("both catalogs have the same %d msgids in order", len(src.Entries))
	rows := [][]string{{"msgid", opts.Source, opts.Target}}
	for i := range src.Entries {
		id := src.Entries[i].ID
		if i == 0 && id == "" {
			continue
		}
		rows = append(rows, []string{id, src.Entries[i].Value, dst.Entries[i].Value})
	}
	data := SerializeDelimited(rows, SerializeOptions{
		Separator: opts.Separator,
		Quote:     QuoteAlways,
	})
	return data, len(rows) - 1, nil
}

func reviewStatus(row AlignedRow, opts ReviewOptions) string {
	switch {
	case row.Extra:
		return reviewOnlyPrefix + opts.Target
	case row.Primary != "" && row.Secondary != "":
		if row.Primary == row.Secondary {
			return ReviewStatusSame
		}
		return ReviewStatusDiff
	case row.Primary != "":
		return reviewMissingPrefix + opts.Target
	case row.Secondary != "":
		return reviewMissingPrefix + opts.Source
	}
	return ""
}

func nonEmptyKeys(kvs []KeyValue) []KeyValue {
	out := kvs[:0:0]
	for _, kv := range kvs {
		if kv.Key != "" {
			out = append(out, kv)
		}
	}
	return out
}

// escapeNewlines writes line breaks as `\n` so a spreadsheet keeps one row
// per entry.
func escapeNewlines(s string) string {
	return poNewlineRegex.ReplaceAllString(s, `\n`)
}

// BuildKeyedReview writes a msgid;<source>;<target>;status table in the
// order of src, matching dst entries by msgid. Entries only in dst are
// appended with status only_in_<target>.
func BuildKeyedReview(src, dst *PoCatalog, opts ReviewOptions) ([]byte, ReviewStat) {
	var stat ReviewStat

	aligned := AlignKeyed(nonEmptyKeys(src.KeyValues()), nonEmptyKeys(dst.KeyValues()))
	rows := make([][]string, 0, len(aligned)+1)
	rows = append(rows, []string{"msgid", opts.Source, opts.Target, "status"})
	for _, row := range aligned {
		status := reviewStatus(row, opts)
		switch {
		case row.Extra:
			stat.Extra++
		case status == ReviewStatusSame:
			stat.Same++
		case status == ReviewStatusDiff:
			stat.Diff++
		case status != "":
			stat.Missing++
		}
		rows = append(rows, []string{
			escapeNewlines(row.Key),
			escapeNewlines(row.Primary),
			escapeNewlines(row.Secondary),
			status,
		})
	}
	stat.Rows = len(rows) - 1
	log.Debugf("review rows: %d (same: %d, diff: %d, missing: %d, only in %s: %d)",
		stat.Rows, stat.Same, stat.Diff, stat.Missing, opts.Target, stat.Extra)
	return SerializeDelimited(rows, SerializeOptions{
		Separator: opts.Separator,
		Quote:     QuoteAlways,
	}), stat
}

// ApplyReviewOptions controls ApplyReviewToPo.
type ApplyReviewOptions struct {
	// Target is the header of the column holding the new translations.
	Target              string
	Separator           rune
	RemoveContinuations bool
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// ReadReviewTranslations reads the msgid and target columns of a review
// table into a map. Rows with an empty msgid are skipped.
func ReadReviewTranslations(review []byte, opts ApplyReviewOptions) (map[string]string, error) {
	rows := ParseDelimited(review, opts.Separator)
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}
	idIdx := columnIndex(rows[0], "msgid")
	valueIdx := columnIndex(rows[0], opts.Target)
	if idIdx < 0 || valueIdx < 0 {
		return nil, &MissingColumnError{Columns: []string{"msgid", opts.Target}}
	}

	translations := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] {
		if idIdx >= len(row) || row[idIdx] == "" {
			continue
		}
		value := ""
		if valueIdx < len(row) {
			value = row[valueIdx]
		}
		translations[row[idIdx]] = PoUnescape(value)
	}
	log.Debugf("review columns: msgid at %d, %s at %d; %d translations",
		idIdx, opts.Target, valueIdx, len(translations))
	return translations, nil
}

// ApplyReviewToPo rewrites every msgstr of po, but the header's, with the
// target column of the review table for the same msgid, or with an empty
// string if the review has no row for it. It returns the number of loaded
// translations with the result.
func ApplyReviewToPo(po, review []byte, opts ApplyReviewOptions) (*ReplaceResult, int, error) {
	translations, err := ReadReviewTranslations(review, opts)
	if err != nil {
		return nil, 0, err
	}
	result := ReplaceMsgStrs(po, nil, ReplaceOptions{
		RemoveContinuations: opts.RemoveContinuations,
		Lookup: func(msgid string) (string, bool) {
			value, ok := translations[msgid]
			return value, ok
		},
	})
	return result, len(translations), nil
}
