// Package cmd provides CLI implementations.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/l10n-kit/po-csv-helper/config"
	"github.com/l10n-kit/po-csv-helper/flag"
	"github.com/l10n-kit/po-csv-helper/repository"
	"github.com/l10n-kit/po-csv-helper/version"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding global flags,
// e.g. PO_CSV_HELPER_SEPARATOR.
const EnvPrefix = "PO_CSV_HELPER"

var (
	rootCmd = rootCommand{}

	// errExecute is returned when the failure was already reported.
	errExecute = errors.New("fail to execute")
)

// errorWithUsage marks an error that should display command usage.
type errorWithUsage struct{ msg string }

func (e errorWithUsage) Error() string { return e.msg }

// newUserError creates an error that should display usage (e.g. argument/flag errors).
func newUserError(a ...interface{}) error {
	return errorWithUsage{msg: strings.TrimSuffix(fmt.Sprintln(a...), "\n")}
}

// newUserErrorF creates an error that should display usage.
func newUserErrorF(format string, a ...interface{}) error {
	return errorWithUsage{msg: fmt.Sprintf(format, a...)}
}

// IsErrorWithUsage returns true if the error should display command usage.
func IsErrorWithUsage(err error) bool {
	var e errorWithUsage
	return errors.As(err, &e)
}

// Response wraps error for subcommand, and is returned from cmd package.
type Response struct {
	// Err contains error returned from the subcommand executed.
	Err error

	// Cmd contains the command object.
	Cmd *cobra.Command
}

// IsUserError returns true if the usage of the command should be shown.
func (v Response) IsUserError() bool {
	return v.Err != nil && IsErrorWithUsage(v.Err)
}

// IsReported returns true if the error was already reported to the user.
func (v Response) IsReported() bool {
	return errors.Is(v.Err, errExecute)
}

type rootCommand struct {
	cmd *cobra.Command
}

func (v *rootCommand) initLog() {
	f := new(log.TextFormatter)
	f.DisableTimestamp = true
	f.DisableLevelTruncation = true
	if flag.Color() || isatty.IsTerminal(os.Stderr.Fd()) {
		f.ForceColors = true
	}
	if flag.Color() {
		color.NoColor = false
	}
	log.SetFormatter(f)
	verbose := flag.Verbose()
	quiet := flag.Quiet()
	if verbose == 1 {
		log.SetLevel(log.DebugLevel)
	} else if verbose > 1 {
		log.SetLevel(log.TraceLevel)
	} else if quiet == 1 {
		log.SetLevel(log.WarnLevel)
	} else if quiet > 1 {
		log.SetLevel(log.ErrorLevel)
	}
}

// initEnv loads .env from the working directory, then lets environment
// variables override unset flags.
func (v *rootCommand) initEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("fail to load .env: %v", err)
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func (v *rootCommand) initRepository() {
	repository.OpenRepository("")
}

// Command represents the base command when called without any subcommands
func (v *rootCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "po-csv-helper",
		Short: "Convert translations between PO, CSV and JSON files",
		Long: `Convert translations between gettext PO catalogs, semicolon separated
CSV files for review in a spreadsheet, and flat key-value JSON files.`,
		// Let main.go handle error output; do not show usage on every error
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Version = version.Version
	v.cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
	v.cmd.PersistentFlags().Bool("dryrun",
		false,
		"dryrun mode: do not write output files")
	v.cmd.PersistentFlags().CountP("quiet",
		"q",
		"quiet mode")
	v.cmd.PersistentFlags().CountP("verbose",
		"v",
		"verbose mode")
	v.cmd.PersistentFlags().Bool("color",
		false,
		"force colored output even if stderr is not a terminal")
	v.cmd.PersistentFlags().String("config",
		"",
		"load configuration from this file (overrides ~/.po-csv-helper.yaml and repo po-csv-helper.yaml)")
	v.cmd.PersistentFlags().String("separator",
		"",
		"field separator of CSV files (default from config, ';')")
	v.cmd.PersistentFlags().String("encoding",
		"",
		"character encoding of input files, e.g. windows-1252 (default utf-8)")

	for _, name := range []string{
		"dryrun",
		"quiet",
		"verbose",
		"color",
		"config",
		"separator",
		"encoding",
	} {
		_ = viper.BindPFlag(name, v.cmd.PersistentFlags().Lookup(name))
	}

	return v.cmd
}

func (v rootCommand) Execute(args []string) error {
	return newUserError("run 'po-csv-helper -h' for help")
}

func (v *rootCommand) AddCommand(cmds ...*cobra.Command) {
	v.Command().AddCommand(cmds...)
}

// loadConfig loads the configuration files and applies global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(flag.ConfigFile())
	if err != nil {
		return nil, err
	}
	if sep := flag.Separator(); sep != "" {
		cfg.Separator = sep
		if err := cfg.Validate(); err != nil {
			return nil, newUserErrorF("bad --separator: %v", err)
		}
	}
	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() Response {
	var (
		resp Response
	)

	// Ensure all commands use SilenceErrors so main.go handles error output.
	setSilenceErrorsRecursive(rootCmd.Command())

	c, err := rootCmd.Command().ExecuteC()
	resp.Err = err
	resp.Cmd = c
	return resp
}

func init() {
	cobra.OnInitialize(rootCmd.initEnv)
	cobra.OnInitialize(rootCmd.initLog)
	cobra.OnInitialize(rootCmd.initRepository)
}

// setSilenceErrorsRecursive sets SilenceErrors on c and all its descendants.
func setSilenceErrorsRecursive(c *cobra.Command) {
	c.SilenceErrors = true
	for _, child := range c.Commands() {
		setSilenceErrorsRecursive(child)
	}
}
