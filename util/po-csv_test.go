package util

import (
	"reflect"
	"strings"
	"testing"
)

const testPoCSVCatalog = `msgid ""
msgstr ""
"Language: nb\n"

msgid "Hello"
msgstr "Hei"

msgid "Empty"
msgstr ""

msgid "Quote"
msgstr "Si \"hei\"\nnå"
`

func TestBuildMsgStrCSV(t *testing.T) {
	cat := ParsePoCatalog([]byte(testPoCSVCatalog))
	data := BuildMsgStrCSV(cat, MsgStrCSVOptions{Header: "nb", Separator: ';'})
	expect := BOM + "nb\nHei\n\"\"\n\"Si \\\"\"hei\\\"\"\\nnå\""
	if string(data) != expect {
		t.Errorf("expect %q, got %q", expect, data)
	}
}

func TestReadColumnValues(t *testing.T) {
	data := []byte("h1\nh2\nx;ignored\n\n\"y;z\"\n")
	expect := []string{"x", "", "y;z"}
	if got := ReadColumnValues(data, ';', 2); !reflect.DeepEqual(expect, got) {
		t.Errorf("expect %q, got %q", expect, got)
	}
	if got := ReadColumnValues(data, ';', 10); len(got) != 0 {
		t.Errorf("expect no values, got %q", got)
	}
}

func TestApplyCSVToPo(t *testing.T) {
	csv := []byte("da\nblank header line\n  Hej  \n\nSig \\\"hej\\\"\\nnu\n")
	result := ApplyCSVToPo([]byte(testPoCSVCatalog), csv, ApplyCSVOptions{
		SkipLines: 2,
		Separator: ';',
		Unescape:  true,
	})
	expect := `msgid ""
msgstr ""
"Language: nb\n"

msgid "Hello"
msgstr "Hej"

msgid "Empty"
msgstr ""

msgid "Quote"
msgstr "Sig \"hej\"\nnu"
`
	if string(result.Data) != expect {
		t.Fatalf("expect:\n%s\nactual:\n%s", expect, result.Data)
	}
	if result.Mismatch() {
		t.Errorf("unexpected mismatch: %+v", result.PositionalStat)
	}
}

func TestApplyCSVToPoLiteralCells(t *testing.T) {
	csv := []byte("da\n" + `C:\new` + "\n\n" + `Sig "hej"` + "\n")
	result := ApplyCSVToPo([]byte(testPoCSVCatalog), csv, ApplyCSVOptions{
		SkipLines: 1,
		Separator: ';',
	})
	for _, expect := range []string{
		`msgstr "C:\\new"`,
		`msgstr "Sig \"hej\""`,
	} {
		if !strings.Contains(string(result.Data), expect) {
			t.Errorf("output does not contain %s:\n%s", expect, result.Data)
		}
	}
}

func TestPoCSVRoundTrip(t *testing.T) {
	cat := ParsePoCatalog([]byte(testPoCSVCatalog))

	for _, quote := range []QuoteMode{QuoteAuto, QuoteAlways, QuoteNever} {
		t.Run(quote.String(), func(t *testing.T) {
			csv := BuildMsgStrCSV(cat, MsgStrCSVOptions{
				Header:    "nb",
				Separator: ';',
				Quote:     quote,
			})

			report := VerifyPoAgainstCSV(cat, csv, ';', 1)
			if !report.OK() {
				t.Errorf("exported CSV does not verify: %+v", report)
			}

			result := ApplyCSVToPo([]byte(testPoCSVCatalog), csv, ApplyCSVOptions{
				SkipLines: 1,
				Separator: ';',
				Unescape:  true,
			})
			if string(result.Data) != testPoCSVCatalog {
				t.Errorf("round trip changed the catalog:\n%s", result.Data)
			}
		})
	}
}

func TestQuoteNeverExportKeepsPoEscapes(t *testing.T) {
	cat := ParsePoCatalog([]byte("msgid \"a\"\nmsgstr \"Si \\\"hei\\\" da\"\n"))
	csv := BuildMsgStrCSV(cat, MsgStrCSVOptions{Header: "nb", Separator: ';', Quote: QuoteNever})
	if expect := BOM + `nb` + "\n" + `Si \"hei\" da`; string(csv) != expect {
		t.Fatalf("expect %q, got %q", expect, csv)
	}
	if got := ReadColumnValues(csv, ';', 1); !reflect.DeepEqual([]string{`Si \"hei\" da`}, got) {
		t.Errorf("wrong values read back: %q", got)
	}
}
