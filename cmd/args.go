package cmd

import (
	"github.com/l10n-kit/po-csv-helper/flag"
	"github.com/l10n-kit/po-csv-helper/util"
)

// argOrDefault returns args[i], or def when the argument is omitted.
func argOrDefault(args []string, i int, def string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	return def
}

// checkMaxArgs returns a user error when more than max arguments are given.
func checkMaxArgs(args []string, max int) error {
	if len(args) > max {
		return newUserErrorF("too many arguments (%d > %d)", len(args), max)
	}
	return nil
}

// readInput reads an input file in the encoding given by --encoding.
func readInput(name string) ([]byte, error) {
	if !util.IsFile(name) {
		return nil, newUserError("file does not exist:", name)
	}
	return util.ReadTextFile(name, flag.Encoding())
}
