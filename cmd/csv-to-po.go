package cmd

import (
	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type csvToPoCommand struct {
	cmd *cobra.Command
	O   struct {
		SkipLines           int
		RemoveContinuations bool
		Unescape            bool
	}
}

func (v *csvToPoCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "csv-to-po [<input.po> [<translations.csv> [<output.po>]]]",
		Short: "Fill the msgstr of a PO file from a CSV column, by position",
		Long: `Replace the msgstr of every entry of a PO file, except the header, with the
first column of a CSV file. Row N after the header lines goes to entry N:
the CSV must be in the same order as the PO file, and empty lines are kept
as empty translations.

Cells are taken literally and escaped for PO. Use --unescape for a CSV
exported by po-to-csv, whose cells hold PO escapes such as \n and \".

When the CSV has fewer rows than the PO file has entries, the remaining
msgstr are emptied; extra rows are ignored. Both cases are warned about.

Defaults: nb.po and dansk.csv are read and da2.po is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().IntVar(&v.O.SkipLines, "skip-lines", -1,
		"number of header lines in the CSV (default from config, 2)")
	v.cmd.Flags().BoolVar(&v.O.Unescape, "unescape", false,
		"decode PO escapes in the cells (CSV exported by po-to-csv)")
	v.cmd.Flags().BoolVar(&v.O.RemoveContinuations, "remove-continuations", false,
		"delete old msgstr continuation lines instead of blanking them")

	return v.cmd
}

func (v csvToPoCommand) Execute(args []string) error {
	if err := checkMaxArgs(args, 3); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	skipLines := v.O.SkipLines
	if skipLines < 0 {
		skipLines = cfg.SkipLines()
	}

	poFile := argOrDefault(args, 0, "nb.po")
	csvFile := argOrDefault(args, 1, "dansk.csv")
	outFile := argOrDefault(args, 2, "da2.po")

	po, err := readInput(poFile)
	if err != nil {
		return err
	}
	csv, err := readInput(csvFile)
	if err != nil {
		return err
	}

	result := util.ApplyCSVToPo(po, csv, util.ApplyCSVOptions{
		SkipLines:           skipLines,
		Separator:           cfg.SeparatorRune(),
		RemoveContinuations: v.O.RemoveContinuations,
		Unescape:            v.O.Unescape,
	})
	log.Infof("translations (after %d header lines): %d", skipLines, result.Values)
	log.Infof("msgstr entries replaced: %d of %d", result.Replaced, result.Slots)
	util.ReportWarnAndErrors(
		util.PositionalWarnings(result.PositionalStat, "CSV rows", "msgstr entries"),
		"", true)

	if err := util.WriteOutputFile(outFile, result.Data); err != nil {
		return err
	}
	log.Infof("wrote new PO: %s", outFile)
	return nil
}

var csvToPoCmd = csvToPoCommand{}

func init() {
	rootCmd.AddCommand(csvToPoCmd.Command())
}
