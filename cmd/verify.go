package cmd

import (
	"os"

	"github.com/l10n-kit/po-csv-helper/util"
	"github.com/spf13/cobra"
)

type verifyCommand struct {
	cmd *cobra.Command
	O   struct {
		HeaderLines int
		MaxReport   int
	}
}

func (v *verifyCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "verify [<file.po> [<file.csv>]]",
		Short: "Check that a CSV column holds the msgstr of a PO file, in order",
		Long: `Compare the msgstr of every entry of a PO file, except the header, with the
first column of a CSV file, row by row. Values are compared as is, so
differences in leading or trailing spaces are reported.

Exits with an error when any row differs or the numbers of rows differ.

Defaults: nb.po and norskpo.csv.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().IntVar(&v.O.HeaderLines, "header-lines", 1,
		"number of header lines in the CSV")
	v.cmd.Flags().IntVar(&v.O.MaxReport, "max-report", 10,
		"show at most this many mismatches (-1 for all)")

	return v.cmd
}

func (v verifyCommand) Execute(args []string) error {
	if err := checkMaxArgs(args, 2); err != nil {
		return err
	}
	if v.O.HeaderLines < 0 {
		return newUserErrorF("bad --header-lines: %d", v.O.HeaderLines)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	poFile := argOrDefault(args, 0, "nb.po")
	csvFile := argOrDefault(args, 1, "norskpo.csv")

	po, err := readInput(poFile)
	if err != nil {
		return err
	}
	csv, err := readInput(csvFile)
	if err != nil {
		return err
	}

	report := util.VerifyPoAgainstCSV(util.ParsePoCatalog(po), csv,
		cfg.SeparatorRune(), v.O.HeaderLines)
	util.PrintVerifyReport(os.Stdout, report, v.O.MaxReport)
	if !report.OK() {
		return errExecute
	}
	return nil
}

var verifyCmd = verifyCommand{}

func init() {
	rootCmd.AddCommand(verifyCmd.Command())
}
