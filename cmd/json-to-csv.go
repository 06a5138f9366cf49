package cmd

import (
	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type jsonToCSVCommand struct {
	cmd *cobra.Command
}

func (v *jsonToCSVCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "json-to-csv [<file.json | dir>...]",
		Short: "Export the values of flat JSON files to one-column CSV files",
		Long: `Write the values of each flat key-value JSON file, in key order, to a CSV
file with one quoted column and a header with the source language.

For "nb.json" the output is "nb - nb-only.csv". Directories are expanded to
their *.json files; the default is the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v jsonToCSVCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	files, err := util.ExpandInputFiles(args, ".json")
	if err != nil {
		return newUserError(err)
	}
	if len(files) == 0 {
		log.Warn("no JSON files found")
		return nil
	}

	deriver := util.SuffixDeriver{
		Suffix: " - " + cfg.Languages.Source + "-only",
		Ext:    ".csv",
	}
	failed := 0
	for _, file := range files {
		data, err := readInput(file)
		if err != nil {
			return err
		}
		j, err := util.ParseFlatJSON(data)
		if err != nil {
			log.Errorf("%s: %v", file, err)
			failed++
			continue
		}
		out := deriver.Derive(file)
		csv := util.BuildJSONValuesCSV(j, cfg.Languages.Source, cfg.SeparatorRune())
		if err := util.WriteOutputFile(out, csv); err != nil {
			return err
		}
		log.Infof("%s: %d values written to %s", file, j.Len(), out)
	}
	if failed > 0 {
		return errExecute
	}
	return nil
}

var jsonToCSVCmd = jsonToCSVCommand{}

func init() {
	rootCmd.AddCommand(jsonToCSVCmd.Command())
}
