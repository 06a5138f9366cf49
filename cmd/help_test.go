package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestFlagUsagesByGroup(t *testing.T) {
	c := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	c.Flags().Int("skip-lines", 2, "header lines")
	c.Flags().Int("debug-from", -1, "first index")
	c.Flags().Bool("plain", false, "ungrouped flag")
	c.Flags().Int("column", 0, "column index")
	setFlagGroup(c, "Input options", "skip-lines", "column")
	setFlagGroup(c, "Debug options", "debug-from")
	useGroupedUsage(c)

	out := flagUsagesByGroup(c)
	input := strings.Index(out, "Input options:\n")
	debug := strings.Index(out, "Debug options:\n")
	other := strings.Index(out, "Other options:\n")
	if input < 0 || debug < 0 || other < 0 {
		t.Fatalf("missing section:\n%s", out)
	}
	if !(input < debug && debug < other) {
		t.Errorf("wrong section order:\n%s", out)
	}
	if column := strings.Index(out, "--column"); column < input || column > debug {
		t.Errorf("--column should be listed under Input options:\n%s", out)
	}
	if plain := strings.Index(out, "--plain"); plain < other {
		t.Errorf("--plain should be listed under Other options:\n%s", out)
	}
}
