package util

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CompareMarkSame marks equal rows in a comparison table.
const CompareMarkSame = "SAME"

// CompareOptions controls CompareFirstColumns.
type CompareOptions struct {
	Source    string
	Target    string
	Separator rune
}

// CompareStat counts the rows of a comparison table.
type CompareStat struct {
	SourceRows int
	TargetRows int
	Same       int
	Diff       int
}

// readFirstColumn returns the header and the trimmed first-column values
// of a CSV file; trailing blank lines are dropped.
func readFirstColumn(data []byte, sep rune) (string, []string) {
	lines := TrimTrailingEmpty(ParseFirstFields(data, sep))
	if len(lines) == 0 {
		return "", nil
	}
	values := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values = append(values, strings.TrimSpace(line))
	}
	return lines[0], values
}

// CompareFirstColumns puts the first columns of two CSV files side by side
// in an index;<source>;<target>;equal table. The shorter file is padded
// with empty values.
func CompareFirstColumns(source, target []byte, opts CompareOptions) ([]byte, CompareStat) {
	_, src := readFirstColumn(source, opts.Separator)
	_, dst := readFirstColumn(target, opts.Separator)

	stat := CompareStat{SourceRows: len(src), TargetRows: len(dst)}
	if stat.SourceRows != stat.TargetRows {
		log.Debugf("padding the shorter column: %d and %d rows", stat.SourceRows, stat.TargetRows)
	}
	n := len(src)
	if len(dst) > n {
		n = len(dst)
	}
	srcValues, _ := AlignPositional(n, src)
	dstValues, _ := AlignPositional(n, dst)

	rows := make([][]string, 0, n+1)
	rows = append(rows, []string{"index", opts.Source, opts.Target, "equal"})
	for i := 0; i < n; i++ {
		mark := ""
		if srcValues[i] == dstValues[i] {
			mark = CompareMarkSame
			stat.Same++
		} else {
			stat.Diff++
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), srcValues[i], dstValues[i], mark})
	}
	return SerializeDelimited(rows, SerializeOptions{
		Separator: opts.Separator,
		Quote:     QuoteAlways,
	}), stat
}
