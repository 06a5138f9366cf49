package util

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ReportWarnAndErrors shows messages as warnings if ok, as errors otherwise.
func ReportWarnAndErrors(msgs []string, prompt string, ok bool) {
	if ok {
		reportResultMessages(msgs, prompt, log.WarnLevel)
	} else {
		reportResultMessages(msgs, prompt, log.ErrorLevel)
	}
}

func reportResultMessages(msgs []string, prompt string, level log.Level) {
	var fn func(format string, args ...interface{})

	if len(msgs) == 0 {
		return
	}

	switch level {
	case log.WarnLevel:
		fn = log.Warnf
	default:
		fn = log.Errorf
	}

	showHorizontalLine()

	for _, msg := range msgs {
		if msg == "" {
			fn("%s", prompt)
			continue
		}
		for _, line := range strings.Split(msg, "\n") {
			if prompt == "" {
				fn("%s", line)
			} else if line == "" {
				fn("%s", prompt)
			} else {
				fn("%s\t%s", prompt, line)
			}
		}
	}
}

func showHorizontalLine() {
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 78))
}

// PositionalWarnings describes a cardinality mismatch between values and
// slots, named by what and into.
func PositionalWarnings(stat PositionalStat, what, into string) []string {
	var msgs []string
	if n := stat.Shortfall(); n > 0 {
		msgs = append(msgs, fmt.Sprintf("only %d %s for %d %s: %d left empty",
			stat.Values, what, stat.Slots, into, n))
	}
	if n := stat.Excess(); n > 0 {
		msgs = append(msgs, fmt.Sprintf("%d %s for %d %s: %d extra %s ignored",
			stat.Values, what, stat.Slots, into, n, what))
	}
	return msgs
}
