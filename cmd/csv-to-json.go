package cmd

import (
	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type csvToJSONCommand struct {
	cmd *cobra.Command
	O   struct {
		SkipLines int
		Column    int
		DebugFrom int
		DebugTo   int
	}
}

func (v *csvToJSONCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "csv-to-json [<template.json> [<translations.csv> [<output.json>]]]",
		Short: "Fill the values of a flat JSON template from a CSV column, by position",
		Long: `Assign the rows of one CSV column, after the header lines, to the keys of a
flat JSON template in key order. Quoted cells may contain separators and
newlines.

A different number of rows and keys is warned about: missing values are
left empty and extra rows are ignored. With -v, the keys in the debug
window are printed with their new values.

Defaults: nb.json.da.json and dk-translations.csv are read and da.json is
written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().IntVar(&v.O.SkipLines, "skip-lines", -1,
		"number of header lines in the CSV (default from config, 2)")
	v.cmd.Flags().IntVar(&v.O.Column, "column", 0,
		"0-based index of the CSV column with the translations")
	v.cmd.Flags().IntVar(&v.O.DebugFrom, "debug-from", -1,
		"first key index printed with -v (default from config)")
	v.cmd.Flags().IntVar(&v.O.DebugTo, "debug-to", -1,
		"last key index printed with -v (default from config)")
	setFlagGroup(v.cmd, "Input options", "skip-lines", "column")
	setFlagGroup(v.cmd, "Debug options", "debug-from", "debug-to")
	useGroupedUsage(v.cmd)

	return v.cmd
}

func (v csvToJSONCommand) Execute(args []string) error {
	if err := checkMaxArgs(args, 3); err != nil {
		return err
	}
	if v.O.Column < 0 {
		return newUserErrorF("bad --column: %d", v.O.Column)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	skipLines := v.O.SkipLines
	if skipLines < 0 {
		skipLines = cfg.SkipLines()
	}
	debugFrom, debugTo := cfg.DebugWindow()
	if v.O.DebugFrom >= 0 {
		debugFrom = v.O.DebugFrom
	}
	if v.O.DebugTo >= 0 {
		debugTo = v.O.DebugTo
	}

	templateFile := argOrDefault(args, 0, "nb.json.da.json")
	csvFile := argOrDefault(args, 1, "dk-translations.csv")
	outFile := argOrDefault(args, 2, "da.json")

	data, err := readInput(templateFile)
	if err != nil {
		return err
	}
	j, err := util.ParseFlatJSON(data)
	if err != nil {
		return newUserErrorF("%s: %v", templateFile, err)
	}
	csv, err := readInput(csvFile)
	if err != nil {
		return err
	}

	stat := util.FillJSONFromCSV(j, csv, util.FillOptions{
		SkipLines: skipLines,
		Column:    v.O.Column,
		Separator: cfg.SeparatorRune(),
	})
	log.Infof("keys in template: %d", stat.Slots)
	log.Infof("translations (after %d header lines): %d", skipLines, stat.Values)
	util.ReportWarnAndErrors(
		util.PositionalWarnings(stat, "CSV rows", "JSON keys"),
		"", true)

	if debugFrom >= 0 && debugTo >= 0 {
		for _, line := range util.DebugWindowLines(j, debugFrom, debugTo, cfg.Languages.Target) {
			log.Debug(line)
		}
	}

	content, err := j.MarshalIndent()
	if err != nil {
		return err
	}
	if err := util.WriteOutputFile(outFile, content); err != nil {
		return err
	}
	log.Infof("wrote %s", outFile)
	return nil
}

var csvToJSONCmd = csvToJSONCommand{}

func init() {
	rootCmd.AddCommand(csvToJSONCmd.Command())
}
