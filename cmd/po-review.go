package cmd

import (
	"errors"

	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type poReviewCommand struct {
	cmd *cobra.Command
	O   struct {
		Strict bool
	}
}

func (v *poReviewCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "po-review [--strict] [<source.po> [<target.po> [<output.csv>]]]",
		Short: "Put two translations of a PO file side by side in a review CSV",
		Long: `Write a review CSV with one row per msgid of the source PO file and the
translations of both PO files next to each other.

By default entries are matched by msgid: the rows follow the order of the
source file, a status column tells whether the translations are the same,
different, or missing on either side, and msgids only found in the target
file are appended with status only_in_<target>.

With --strict the two files must have the same msgids in the same order;
the command stops without writing anything at the first difference.

Defaults: nb.po and da.po are read; fresh-review-nb-da.csv is written
(review-nb-da.csv with --strict).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().BoolVar(&v.O.Strict, "strict", false,
		"require the same msgids in the same order, and match entries by position")

	return v.cmd
}

func (v poReviewCommand) Execute(args []string) error {
	if err := checkMaxArgs(args, 3); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srcFile := argOrDefault(args, 0, "nb.po")
	dstFile := argOrDefault(args, 1, "da.po")
	defaultOut := "fresh-review-nb-da.csv"
	if v.O.Strict {
		defaultOut = "review-nb-da.csv"
	}
	outFile := argOrDefault(args, 2, defaultOut)

	srcData, err := readInput(srcFile)
	if err != nil {
		return err
	}
	dstData, err := readInput(dstFile)
	if err != nil {
		return err
	}
	src := util.ParsePoCatalog(srcData)
	dst := util.ParsePoCatalog(dstData)
	opts := util.ReviewOptions{
		Source:    cfg.Languages.Source,
		Target:    cfg.Languages.Target,
		Separator: cfg.SeparatorRune(),
	}

	if v.O.Strict {
		csv, rows, err := util.BuildStrictReview(src, dst, opts)
		if err != nil {
			var alignErr *util.AlignmentError
			if errors.As(err, &alignErr) && alignErr.Index >= 0 {
				log.Errorf("msgid mismatch at index %d", alignErr.Index)
				log.Errorf("%s: %s", opts.Source, alignErr.Left)
				log.Errorf("%s: %s", opts.Target, alignErr.Right)
				return errExecute
			}
			return err
		}
		if err := util.WriteOutputFile(outFile, csv); err != nil {
			return err
		}
		log.Infof("wrote %s with %d rows", outFile, rows)
		return nil
	}

	csv, stat := util.BuildKeyedReview(src, dst, opts)
	if err := util.WriteOutputFile(outFile, csv); err != nil {
		return err
	}
	log.Infof("wrote %s with %d rows (msgid/%s/%s/status)",
		outFile, stat.Rows, opts.Source, opts.Target)
	if stat.Extra > 0 {
		log.Warnf("%d msgid only found in %s", stat.Extra, dstFile)
	}
	return nil
}

var poReviewCmd = poReviewCommand{}

func init() {
	rootCmd.AddCommand(poReviewCmd.Command())
}
