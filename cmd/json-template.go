package cmd

import (
	"path/filepath"

	"github.com/l10n-kit/po-csv-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type jsonTemplateCommand struct {
	cmd *cobra.Command
	O   struct {
		From   string
		To     string
		Locale string
	}
}

func (v *jsonTemplateCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "json-template [<file.json | dir>...]",
		Short: "Create empty translation templates from flat JSON files",
		Long: `Write a copy of each flat key-value JSON file with the same keys in the
same order and every value empty.

The output name replaces the first occurrence of the source token (default
"Bokmål", case-insensitive) with the target token (default "Dansk"). Without
the token, ".<locale>" is inserted before the extension: "nb.json" becomes
"nb.da.json". Directories are expanded to their *.json files; the default is
the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().StringVar(&v.O.From, "from-token", "",
		"token of the source language in file names (default from config)")
	v.cmd.Flags().StringVar(&v.O.To, "to-token", "",
		"token of the target language in file names (default from config)")
	v.cmd.Flags().StringVar(&v.O.Locale, "locale", "",
		"target locale inserted in file names (default target language)")
	setFlagGroup(v.cmd, "File name options", "from-token", "to-token", "locale")
	useGroupedUsage(v.cmd)

	return v.cmd
}

func (v jsonTemplateCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	from, to, locale := cfg.JSON.FromToken, cfg.JSON.ToToken, cfg.Languages.Target
	if v.O.From != "" {
		from = v.O.From
	}
	if v.O.To != "" {
		to = v.O.To
	}
	if v.O.Locale != "" {
		locale = v.O.Locale
	}
	deriver, err := util.NewLocaleTokenDeriver(from, to, locale)
	if err != nil {
		return newUserError(err)
	}

	files, err := util.ExpandInputFiles(args, ".json")
	if err != nil {
		return newUserError(err)
	}
	if len(files) == 0 {
		log.Warn("no JSON files found")
		return nil
	}

	failed := 0
	for _, file := range files {
		out := deriver.Derive(file)
		if filepath.Clean(out) == filepath.Clean(file) {
			log.Warnf("%s: output name is the input name, skipped", file)
			continue
		}
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
		content, err := j.EmptyTemplate().MarshalIndent()
		if err != nil {
			return err
		}
		if err := util.WriteOutputFile(out, content); err != nil {
			return err
		}
		log.Infof("%s: template with %d keys written to %s", file, j.Len(), out)
	}
	if failed > 0 {
		return errExecute
	}
	return nil
}

var jsonTemplateCmd = jsonTemplateCommand{}

func init() {
	rootCmd.AddCommand(jsonTemplateCmd.Command())
}
