package util

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// BuildJSONValuesCSV writes a one-column table: header, then the values
// of j in key order, every field quoted.
func BuildJSONValuesCSV(j *FlatJSON, header string, sep rune) []byte {
	rows := make([][]string, 0, j.Len()+1)
	rows = append(rows, []string{header})
	for _, value := range j.Values() {
		rows = append(rows, []string{value})
	}
	log.Debugf("exporting %d JSON values", j.Len())
	return SerializeDelimited(rows, SerializeOptions{
		Separator: sep,
		Quote:     QuoteAlways,
	})
}

// FillOptions controls FillJSONFromCSV.
type FillOptions struct {
	SkipLines int
	Column    int
	Separator rune
}

// FillJSONFromCSV assigns the rows of one CSV column, after SkipLines
// header rows, to the keys of j in order. Quoted cells may span lines.
func FillJSONFromCSV(j *FlatJSON, csv []byte, opts FillOptions) PositionalStat {
	rows := ParseDelimited(csv, opts.Separator)
	log.Debugf("parsed %d CSV rows, skipping %d, using column %d",
		len(rows), opts.SkipLines, opts.Column)
	if opts.SkipLines < len(rows) {
		rows = rows[opts.SkipLines:]
	} else {
		rows = nil
	}
	return j.Fill(Column(rows, opts.Column))
}

// DebugWindowLines describes the keys of j with index in [from, to],
// clamped to the existing keys.
func DebugWindowLines(j *FlatJSON, from, to int, label string) []string {
	if from < 0 {
		from = 0
	}
	if to > j.Len()-1 {
		to = j.Len() - 1
	}
	var lines []string
	for i := from; i <= to; i++ {
		key := j.Keys[i]
		value, _ := j.Get(key)
		quoted, err := jsonString(value)
		if err != nil {
			quoted = fmt.Sprintf("%q", value)
		}
		lines = append(lines, fmt.Sprintf("%d: key=%s | %s=%s", i, key, label, quoted))
	}
	return lines
}
