package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testNbPo = `msgid ""
msgstr ""
"Language: nb\n"

msgid "Hello"
msgstr "Hei"

msgid "Bye"
msgstr ""
"Ha det "
"bra"
`

func TestCSVToPo(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"nb.po":     testNbPo,
		"dansk.csv": "Column1\nda\nHej\nFarvel\n",
	})
	out := filepath.Join(dir, "da2.po")

	cmd := csvToPoCommand{}
	cmd.O.SkipLines = -1
	err := cmd.Execute([]string{
		filepath.Join(dir, "nb.po"),
		filepath.Join(dir, "dansk.csv"),
		out,
	})
	if err != nil {
		t.Fatalf("csv-to-po failed: %v", err)
	}

	expect := `msgid ""
msgstr ""
"Language: nb\n"

msgid "Hello"
msgstr "Hej"

msgid "Bye"
msgstr "Farvel"


`
	if actual := readTestFile(t, out); expect != actual {
		t.Errorf("expect:\n%s\nactual:\n%s", expect, actual)
	}
}

func TestCSVToPoShortfall(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"nb.po":     testNbPo,
		"dansk.csv": "da\nHej\n",
	})
	out := filepath.Join(dir, "da2.po")

	cmd := csvToPoCommand{}
	cmd.O.SkipLines = 1
	cmd.O.RemoveContinuations = true
	err := cmd.Execute([]string{
		filepath.Join(dir, "nb.po"),
		filepath.Join(dir, "dansk.csv"),
		out,
	})
	if err != nil {
		t.Fatalf("csv-to-po failed: %v", err)
	}

	expect := `msgid ""
msgstr ""
"Language: nb\n"

msgid "Hello"
msgstr "Hej"

msgid "Bye"
msgstr ""
`
	if actual := readTestFile(t, out); expect != actual {
		t.Errorf("expect:\n%s\nactual:\n%s", expect, actual)
	}
}

func TestPoToCSVAndVerify(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"nb.po": testNbPo,
	})
	po := filepath.Join(dir, "nb.po")
	csv := filepath.Join(dir, "norskpo.csv")

	export := poToCSVCommand{}
	export.O.Quote = "auto"
	if err := export.Execute([]string{po, csv}); err != nil {
		t.Fatalf("po-to-csv failed: %v", err)
	}
	if actual := readTestFile(t, csv); actual != "\uFEFFnb\nHei\nHa det bra" {
		t.Errorf("unexpected CSV: %q", actual)
	}

	check := verifyCommand{}
	check.O.HeaderLines = 1
	check.O.MaxReport = 10
	if err := check.Execute([]string{po, csv}); err != nil {
		t.Errorf("verify failed: %v", err)
	}

	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("nb\nHei\n Ha det bra\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := check.Execute([]string{po, bad}); !errors.Is(err, errExecute) {
		t.Errorf("expect errExecute for mismatching CSV, got %v", err)
	}
}

func TestPoToCSVQuoteNeverThenVerify(t *testing.T) {
	catalog := `msgid ""
msgstr ""
"Language: nb\n"

msgid "Greeting"
msgstr "Si \"hei\" da"

msgid "Path"
msgstr "C:\\mappe\nny linje"
`
	dir := setupTestDir(t, map[string]string{
		"nb.po": catalog,
	})
	po := filepath.Join(dir, "nb.po")
	csv := filepath.Join(dir, "msgstr-nb.csv")

	export := poToCSVCommand{}
	export.O.Quote = "never"
	if err := export.Execute([]string{po, csv}); err != nil {
		t.Fatalf("po-to-csv failed: %v", err)
	}
	expect := "\uFEFFnb\n" + `Si \"hei\" da` + "\n" + `C:\\mappe\nny linje`
	if actual := readTestFile(t, csv); actual != expect {
		t.Fatalf("expect %q, got %q", expect, actual)
	}

	check := verifyCommand{}
	check.O.HeaderLines = 1
	check.O.MaxReport = 10
	if err := check.Execute([]string{po, csv}); err != nil {
		t.Errorf("verify failed on exported CSV: %v", err)
	}

	out := filepath.Join(dir, "back.po")
	apply := csvToPoCommand{}
	apply.O.SkipLines = 1
	apply.O.Unescape = true
	if err := apply.Execute([]string{po, csv, out}); err != nil {
		t.Fatalf("csv-to-po failed: %v", err)
	}
	if actual := readTestFile(t, out); actual != catalog {
		t.Errorf("round trip changed the catalog:\n%s", actual)
	}
}
