// Package config provides configuration structures and loading for po-csv-helper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/l10n-kit/po-csv-helper/repository"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// UserConfigName is the name of the configuration file in the home directory.
	UserConfigName = ".po-csv-helper.yaml"
	// RepoConfigName is the name of the configuration file at the top of a worktree.
	RepoConfigName = "po-csv-helper.yaml"
)

// Config holds the complete configuration.
type Config struct {
	Separator string          `yaml:"separator"`
	Languages LanguagesConfig `yaml:"languages"`
	CSV       CSVConfig       `yaml:"csv"`
	JSON      JSONConfig      `yaml:"json"`
	Debug     DebugConfig     `yaml:"debug"`
}

// LanguagesConfig names the source and target languages. They are used as
// CSV column headers and in status values of review files.
type LanguagesConfig struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// CSVConfig holds options for delimited files.
type CSVConfig struct {
	// SkipLines is the number of header lines before the first translation
	// in spreadsheet exports (e.g. "Column1" and "da").
	SkipLines   *int `yaml:"skip_lines"`
	AlwaysQuote bool `yaml:"always_quote"`
}

// JSONConfig controls filename derivation for JSON templates.
type JSONConfig struct {
	FromToken string `yaml:"from_token"`
	ToToken   string `yaml:"to_token"`
}

// DebugConfig is the 0-based index window printed by csv-to-json in verbose mode.
type DebugConfig struct {
	From *int `yaml:"from"`
	To   *int `yaml:"to"`
}

func intPtr(i int) *int {
	return &i
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Separator: ";",
		Languages: LanguagesConfig{
			Source: "nb",
			Target: "da",
		},
		CSV: CSVConfig{
			SkipLines: intPtr(2),
		},
		JSON: JSONConfig{
			FromToken: "Bokmål",
			ToToken:   "Dansk",
		},
		Debug: DebugConfig{
			From: intPtr(550),
			To:   intPtr(570),
		},
	}
}

// SeparatorRune returns the separator as a rune.
func (c *Config) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// SkipLines returns the configured number of CSV header lines.
func (c *Config) SkipLines() int {
	if c.CSV.SkipLines == nil {
		return 0
	}
	return *c.CSV.SkipLines
}

// DebugWindow returns the debug window bounds.
func (c *Config) DebugWindow() (from, to int) {
	from, to = -1, -1
	if c.Debug.From != nil {
		from = *c.Debug.From
	}
	if c.Debug.To != nil {
		to = *c.Debug.To
	}
	return from, to
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	switch c.SeparatorRune() {
	case '"', '\n', '\r':
		return fmt.Errorf("separator %q is not allowed", c.Separator)
	}
	if c.Languages.Source == "" || c.Languages.Target == "" {
		return errors.New("languages.source and languages.target are required")
	}
	for _, tag := range []string{c.Languages.Source, c.Languages.Target} {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("invalid language tag %q: %w", tag, err)
		}
	}
	if c.SkipLines() < 0 {
		return fmt.Errorf("csv.skip_lines must not be negative, got %d", c.SkipLines())
	}
	if from, to := c.DebugWindow(); from >= 0 && to >= 0 && from > to {
		return fmt.Errorf("debug.from (%d) is greater than debug.to (%d)", from, to)
	}
	return nil
}

// loadConfigFromFile loads configuration from a YAML file.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of override onto base.
func mergeConfigs(base, override *Config) *Config {
	merged := *base
	if override == nil {
		return &merged
	}
	if override.Separator != "" {
		merged.Separator = override.Separator
	}
	if override.Languages.Source != "" {
		merged.Languages.Source = override.Languages.Source
	}
	if override.Languages.Target != "" {
		merged.Languages.Target = override.Languages.Target
	}
	if override.CSV.SkipLines != nil {
		merged.CSV.SkipLines = intPtr(*override.CSV.SkipLines)
	}
	if override.CSV.AlwaysQuote {
		merged.CSV.AlwaysQuote = true
	}
	if override.JSON.FromToken != "" {
		merged.JSON.FromToken = override.JSON.FromToken
	}
	if override.JSON.ToToken != "" {
		merged.JSON.ToToken = override.JSON.ToToken
	}
	if override.Debug.From != nil {
		merged.Debug.From = intPtr(*override.Debug.From)
	}
	if override.Debug.To != nil {
		merged.Debug.To = intPtr(*override.Debug.To)
	}
	return &merged
}

// LoadConfig loads the built-in defaults, then ~/.po-csv-helper.yaml, then
// po-csv-helper.yaml at the top of the worktree, then configFile if given.
// Missing user and repo files are skipped; a missing configFile is an error.
func LoadConfig(configFile string) (*Config, error) {
	cfg := Default()

	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, UserConfigName))
	}
	if p := repository.ConfigPath(RepoConfigName); p != "" {
		candidates = append(candidates, p)
	}
	for _, path := range candidates {
		fileCfg, err := loadConfigFromFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		log.Debugf("loaded config from %s", path)
		cfg = mergeConfigs(cfg, fileCfg)
	}

	if configFile != "" {
		fileCfg, err := loadConfigFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
		log.Debugf("loaded config from %s", configFile)
		cfg = mergeConfigs(cfg, fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
