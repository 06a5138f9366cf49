package util

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// FilenameDeriver derives an output file name from an input file name.
type FilenameDeriver interface {
	Derive(name string) string
}

// LocaleTokenDeriver replaces the first case-insensitive occurrence of From
// in the base name with To ("Barnehage Bokmål.json" -> "Barnehage
// Dansk.json"). If From does not occur, ".<Locale>" is inserted before the
// extension ("nb.json" -> "nb.da.json").
type LocaleTokenDeriver struct {
	From   string
	To     string
	Locale string

	fromRegex *regexp.Regexp
}

// NewLocaleTokenDeriver checks locale and returns a LocaleTokenDeriver.
func NewLocaleTokenDeriver(from, to, locale string) (*LocaleTokenDeriver, error) {
	if _, err := language.Parse(locale); err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	d := LocaleTokenDeriver{
		From:   from,
		To:     to,
		Locale: locale,
	}
	if from != "" {
		d.fromRegex = regexp.MustCompile("(?i)" + regexp.QuoteMeta(from))
	}
	return &d, nil
}

// Derive implements FilenameDeriver.
func (d *LocaleTokenDeriver) Derive(name string) string {
	dir, base := filepath.Split(name)
	if d.fromRegex != nil {
		if loc := d.fromRegex.FindStringIndex(base); loc != nil {
			return dir + base[:loc[0]] + d.To + base[loc[1]:]
		}
	}
	ext := filepath.Ext(base)
	return dir + strings.TrimSuffix(base, ext) + "." + d.Locale + ext
}

// SuffixDeriver replaces the extension of a file name with Suffix followed
// by Ext ("nb.json" -> "nb - nb-only.csv").
type SuffixDeriver struct {
	Suffix string
	Ext    string
}

// Derive implements FilenameDeriver.
func (d SuffixDeriver) Derive(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + d.Suffix + d.Ext
}
