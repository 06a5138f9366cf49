package util

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

var (
	verifyBad  = color.New(color.FgRed).SprintFunc()
	verifyGood = color.New(color.FgGreen).SprintFunc()
	verifyWarn = color.New(color.FgYellow).SprintFunc()
)

// VerifyMismatch is one msgstr that differs from its CSV row.
type VerifyMismatch struct {
	Index    int
	MsgID    string
	PoValue  string
	CSVValue string
}

// VerifyReport is the result of VerifyPoAgainstCSV.
type VerifyReport struct {
	PoCount    int
	CSVCount   int
	Mismatches []VerifyMismatch
}

// SameLength returns true if the catalog and the table have as many values.
func (r *VerifyReport) SameLength() bool {
	return r.PoCount == r.CSVCount
}

// OK returns true if the table matches the catalog in order and content.
func (r *VerifyReport) OK() bool {
	return r.SameLength() && len(r.Mismatches) == 0
}

// VerifyPoAgainstCSV compares the msgstr of every translation unit of cat
// with the first column of csv, row by row, after headerLines header
// lines. Values are compared untrimmed.
func VerifyPoAgainstCSV(cat *PoCatalog, csv []byte, sep rune, headerLines int) *VerifyReport {
	units := cat.Units()
	values := ReadColumnValues(csv, sep, headerLines)
	report := VerifyReport{
		PoCount:  len(units),
		CSVCount: len(values),
	}
	n := len(units)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		if units[i].Value != values[i] {
			report.Mismatches = append(report.Mismatches, VerifyMismatch{
				Index:    i,
				MsgID:    units[i].ID,
				PoValue:  units[i].Value,
				CSVValue: values[i],
			})
		}
	}
	return &report
}

// PrintVerifyReport writes at most maxShown mismatches and a summary to w.
// A negative maxShown shows all mismatches.
func PrintVerifyReport(w io.Writer, r *VerifyReport, maxShown int) {
	fmt.Fprintf(w, "msgstr in PO (without header): %d\n", r.PoCount)
	fmt.Fprintf(w, "rows in CSV (without header):  %d\n", r.CSVCount)

	for i, m := range r.Mismatches {
		if maxShown >= 0 && i >= maxShown {
			fmt.Fprintf(w, "... %d more mismatches not shown\n", len(r.Mismatches)-maxShown)
			break
		}
		fmt.Fprintf(w, "%s at index %d\n", verifyBad("mismatch"), m.Index)
		fmt.Fprintf(w, "   msgid: %s\n", m.MsgID)
		fmt.Fprintf(w, "   PO:    %s\n", strconv.Quote(m.PoValue))
		fmt.Fprintf(w, "   CSV:   %s\n", strconv.Quote(m.CSVValue))
	}

	if !r.SameLength() {
		fmt.Fprintf(w, "%s: PO has %d msgstr, CSV has %d rows\n",
			verifyWarn("different length"), r.PoCount, r.CSVCount)
	}
	if r.OK() {
		fmt.Fprintf(w, "%s: CSV matches PO (order and content)\n", verifyGood("OK"))
	} else {
		fmt.Fprintf(w, "total mismatches: %d\n", len(r.Mismatches))
	}
}
