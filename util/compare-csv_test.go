package util

import (
	"strings"
	"testing"
)

func TestCompareFirstColumns(t *testing.T) {
	source := []byte("nb;note\na;x\n b \nc\n\n\n")
	target := []byte(BOM + "da\na\nB\n")

	data, stat := CompareFirstColumns(source, target, CompareOptions{
		Source:    "nb",
		Target:    "da",
		Separator: ';',
	})
	expect := BOM + strings.Join([]string{
		`"index";"nb";"da";"equal"`,
		`"1";"a";"a";"SAME"`,
		`"2";"b";"B";""`,
		`"3";"c";"";""`,
	}, "\n")
	if string(data) != expect {
		t.Errorf("expect:\n%s\nactual:\n%s", expect, data)
	}
	if stat != (CompareStat{SourceRows: 3, TargetRows: 2, Same: 1, Diff: 2}) {
		t.Errorf("wrong stat: %+v", stat)
	}
}

func TestCompareFirstColumnsEmpty(t *testing.T) {
	data, stat := CompareFirstColumns(nil, []byte("da\n"), CompareOptions{
		Source:    "nb",
		Target:    "da",
		Separator: ';',
	})
	if string(data) != BOM+`"index";"nb";"da";"equal"` {
		t.Errorf("unexpected output: %q", data)
	}
	if stat.Same != 0 || stat.Diff != 0 {
		t.Errorf("wrong stat: %+v", stat)
	}
}
