package cmd

import (
	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type poToCSVCommand struct {
	cmd *cobra.Command
	O   struct {
		Header string
		Quote  string
	}
}

func (v *poToCSVCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "po-to-csv [<input.po> [<output.csv>]]",
		Short: "Export the msgstr of a PO file as a one-column CSV",
		Long: `Write the msgstr of every entry of a PO file, in file order and without
the header entry, as one column of a CSV file for a spreadsheet.

The first row holds the column header (the source language by default).
Translations keep their PO escapes, so every entry is exactly one row.

Defaults: da.po is read and msgstr-nb.csv is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().StringVar(&v.O.Header, "header", "",
		"text of the header cell (default: source language)")
	v.cmd.Flags().StringVar(&v.O.Quote, "quote", "auto",
		"quote fields: auto, always or never (never flattens line breaks)")

	return v.cmd
}

func (v poToCSVCommand) Execute(args []string) error {
	if err := checkMaxArgs(args, 2); err != nil {
		return err
	}
	quote, ok := util.ParseQuoteMode(v.O.Quote)
	if !ok {
		return newUserErrorF("bad --quote value: %s", v.O.Quote)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.CSV.AlwaysQuote && quote == util.QuoteAuto {
		quote = util.QuoteAlways
	}

	poFile := argOrDefault(args, 0, "da.po")
	outFile := argOrDefault(args, 1, "msgstr-nb.csv")
	header := v.O.Header
	if header == "" {
		header = cfg.Languages.Source
	}

	data, err := readInput(poFile)
	if err != nil {
		return err
	}
	cat := util.ParsePoCatalog(data)
	csv := util.BuildMsgStrCSV(cat, util.MsgStrCSVOptions{
		Header:    header,
		Separator: cfg.SeparatorRune(),
		Quote:     quote,
	})
	if err := util.WriteOutputFile(outFile, csv); err != nil {
		return err
	}
	log.Infof("extracted %d msgstr values", len(cat.Units()))
	log.Infof("wrote CSV to %s", outFile)
	return nil
}

var poToCSVCmd = poToCSVCommand{}

func init() {
	rootCmd.AddCommand(poToCSVCmd.Command())
}
