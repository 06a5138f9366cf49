package cmd

import (
	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type reviewToPoCommand struct {
	cmd *cobra.Command
	O   struct {
		Column              string
		RemoveContinuations bool
	}
}

func (v *reviewToPoCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "review-to-po [<source.po> [<review.csv> [<output.po>]]]",
		Short: "Write the translations of a review CSV into a PO file, by msgid",
		Long: `Read a review CSV (as written by po-review) and replace the msgstr of every
entry of the source PO file, except the header, with the translation in the
target language column of the row with the same msgid. Entries without a
row get an empty msgstr. A literal \n typed in a cell is a line break.

The CSV must have a "msgid" column and a column named after the target
language; the command stops before writing anything otherwise.

Defaults: nb.po and fresh-review-nb-da.csv are read and da.clean.po is
written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().StringVar(&v.O.Column, "column", "",
		"header of the column with the translations (default: target language)")
	v.cmd.Flags().BoolVar(&v.O.RemoveContinuations, "remove-continuations", false,
		"delete old msgstr continuation lines instead of blanking them")

	return v.cmd
}

func (v reviewToPoCommand) Execute(args []string) error {
	if err := checkMaxArgs(args, 3); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	column := v.O.Column
	if column == "" {
		column = cfg.Languages.Target
	}

	poFile := argOrDefault(args, 0, "nb.po")
	csvFile := argOrDefault(args, 1, "fresh-review-nb-da.csv")
	outFile := argOrDefault(args, 2, "da.clean.po")

	po, err := readInput(poFile)
	if err != nil {
		return err
	}
	review, err := readInput(csvFile)
	if err != nil {
		return err
	}

	result, loaded, err := util.ApplyReviewToPo(po, review, util.ApplyReviewOptions{
		Target:              column,
		Separator:           cfg.SeparatorRune(),
		RemoveContinuations: v.O.RemoveContinuations,
	})
	if err != nil {
		return newUserErrorF("%s: %v", csvFile, err)
	}
	log.Infof("loaded %d %s strings from CSV", loaded, column)

	if err := util.WriteOutputFile(outFile, result.Data); err != nil {
		return err
	}
	log.Infof("wrote %s with %d msgstr entries (%d translated)",
		outFile, result.Slots, result.Replaced)
	return nil
}

var reviewToPoCmd = reviewToPoCommand{}

func init() {
	rootCmd.AddCommand(reviewToPoCmd.Command())
}
