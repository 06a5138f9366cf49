package cmd

import (
	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type compareCSVCommand struct {
	cmd *cobra.Command
}

func (v *compareCSVCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "compare-csv [<target.csv> [<source.csv> [<output.csv>]]]",
		Short: "Compare the first columns of two CSV files row by row",
		Long: `Put the first column of two CSV files side by side, one row per index,
and mark rows where both values are equal with SAME. The first line of each
file is a header; values are trimmed.

Defaults: dansk.csv and norskpo.csv are read and compare-nb-da.csv is
written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v compareCSVCommand) Execute(args []string) error {
	if err := checkMaxArgs(args, 3); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dstFile := argOrDefault(args, 0, "dansk.csv")
	srcFile := argOrDefault(args, 1, "norskpo.csv")
	outFile := argOrDefault(args, 2, "compare-nb-da.csv")

	dst, err := readInput(dstFile)
	if err != nil {
		return err
	}
	src, err := readInput(srcFile)
	if err != nil {
		return err
	}

	csv, stat := util.CompareFirstColumns(src, dst, util.CompareOptions{
		Source:    cfg.Languages.Source,
		Target:    cfg.Languages.Target,
		Separator: cfg.SeparatorRune(),
	})
	log.Infof("%s rows: %d", cfg.Languages.Source, stat.SourceRows)
	log.Infof("%s rows: %d", cfg.Languages.Target, stat.TargetRows)
	if err := util.WriteOutputFile(outFile, csv); err != nil {
		return err
	}
	log.Infof("same rows: %d", stat.Same)
	log.Infof("different or missing rows: %d", stat.Diff)
	log.Infof("wrote comparison to %s", outFile)
	return nil
}

var compareCSVCmd = compareCSVCommand{}

func init() {
	rootCmd.AddCommand(compareCSVCmd.Command())
}
