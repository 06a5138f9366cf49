// Package flag gives access to global command line flags bound to viper.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns the count of -v flags.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of -q flags.
func Quiet() int {
	return viper.GetInt("quiet")
}

// Dryrun means no output file is written.
func Dryrun() bool {
	return viper.GetBool("dryrun")
}

// Color forces colored output.
func Color() bool {
	return viper.GetBool("color")
}

// ConfigFile is the configuration file given by --config.
func ConfigFile() string {
	return viper.GetString("config")
}

// Separator overrides the field separator of delimited files.
func Separator() string {
	return viper.GetString("separator")
}

// Encoding is the character encoding of input files, empty for UTF-8.
func Encoding() string {
	return viper.GetString("encoding")
}
