package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimited(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		sep    rune
		expect [][]string
	}{
		{
			name:   "quoted separator and doubled quote",
			input:  "a;b\n\"c;d\";\"e\"\"f\"\n",
			sep:    ';',
			expect: [][]string{{"a", "b"}, {"c;d", `e"f`}},
		},
		{
			name:   "newline inside quotes",
			input:  "\"line1\nline2\";x",
			sep:    ';',
			expect: [][]string{{"line1\nline2", "x"}},
		},
		{
			name:   "CRLF rows",
			input:  "a;b\r\nc;d\r\n",
			sep:    ';',
			expect: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:   "leading BOM",
			input:  BOM + "h\nv",
			sep:    ';',
			expect: [][]string{{"h"}, {"v"}},
		},
		{
			name:   "empty line is an empty row",
			input:  "a\n\nb\n",
			sep:    ';',
			expect: [][]string{{"a"}, {""}, {"b"}},
		},
		{
			name:   "trailing empty fields",
			input:  "a;;\n",
			sep:    ';',
			expect: [][]string{{"a", "", ""}},
		},
		{
			name:   "quote inside unquoted field is literal",
			input:  "ab\"c;d",
			sep:    ';',
			expect: [][]string{{`ab"c`, "d"}},
		},
		{
			name:   "PO escapes in unquoted field",
			input:  `Si \"hei\";x` + "\n" + `"quoted";tail "end"`,
			sep:    ';',
			expect: [][]string{{`Si \"hei\"`, "x"}, {"quoted", `tail "end"`}},
		},
		{
			name:   "text after closing quote",
			input:  `"a;b"c"d;e`,
			sep:    ';',
			expect: [][]string{{`a;bc"d`, "e"}},
		},
		{
			name:   "comma separator",
			input:  "a,\"b,c\";d",
			sep:    ',',
			expect: [][]string{{"a", "b,c;d"}},
		},
		{
			name:   "empty input",
			input:  "",
			sep:    ';',
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseDelimited([]byte(tt.input), tt.sep))
		})
	}
}

func TestParseFirstFields(t *testing.T) {
	input := BOM + "header;x\n\"a;b\";c\n\n\"say \"\"hi\"\"\"\r\nlast"
	assert.Equal(t,
		[]string{"header", "a;b", "", `say "hi"`, "last"},
		ParseFirstFields([]byte(input), ';'))

	assert.Equal(t, []string{"x", ""}, ParseFirstFields([]byte("x\n"), ';'))

	input = "ab\"c;d\n" + `Si \"hei\";x` + "\n" + `Si \"hei\" da`
	assert.Equal(t,
		[]string{`ab"c`, `Si \"hei\"`, `Si \"hei\" da`},
		ParseFirstFields([]byte(input), ';'))
}

func TestSerializeDelimited(t *testing.T) {
	rows := [][]string{
		{"h"},
		{"a;b"},
		{`say "hi"`},
		{""},
		{"plain", ""},
	}

	assert.Equal(t,
		"h\n\"a;b\"\n\"say \"\"hi\"\"\"\n\"\"\nplain;",
		string(SerializeDelimited(rows, SerializeOptions{NoBOM: true})))

	assert.Equal(t,
		BOM+"\"h\"\n\"a;b\"\n\"say \"\"hi\"\"\"\n\"\"\n\"plain\";\"\"",
		string(SerializeDelimited(rows, SerializeOptions{Quote: QuoteAlways})))

	assert.Equal(t,
		"one two|x",
		string(SerializeDelimited([][]string{{"one\ntwo", "x"}},
			SerializeOptions{Separator: '|', Quote: QuoteNever, NoBOM: true})))
}

func TestDelimitedRoundTrip(t *testing.T) {
	rows := [][]string{
		{"msgid", "nb", "da"},
		{"Hello", "Hei", "Hej"},
		{"semi;colon", "quote \"x\"", "multi\nline"},
		{""},
		{"", ""},
		{"trailing space ", " leading", "æøå"},
	}

	for _, sep := range []rune{';', ',', '\t'} {
		for _, quote := range []QuoteMode{QuoteAuto, QuoteAlways} {
			data := SerializeDelimited(rows, SerializeOptions{Separator: sep, Quote: quote})
			require.Equal(t, rows, ParseDelimited(data, sep),
				"separator %q, quote %s", sep, quote)
		}
	}
}

func TestParseQuoteMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		mode, ok := ParseQuoteMode(s)
		require.True(t, ok, s)
		assert.Equal(t, s, mode.String())
	}
	mode, ok := ParseQuoteMode("")
	assert.True(t, ok)
	assert.Equal(t, QuoteAuto, mode)

	_, ok = ParseQuoteMode("sometimes")
	assert.False(t, ok)
}

func TestColumnAndTrim(t *testing.T) {
	rows := [][]string{{"a", "1"}, {"b"}, {"c", "3"}}
	assert.Equal(t, []string{"1", "", "3"}, Column(rows, 1))
	assert.Equal(t, []string{"a", "b", "c"}, Column(rows, 0))

	assert.Equal(t, []string{"a", "", "b"}, TrimTrailingEmpty([]string{"a", "", "b", " ", ""}))
	assert.Empty(t, TrimTrailingEmpty([]string{"", "  "}))
}
