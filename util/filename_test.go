package util

import (
	"path/filepath"
	"testing"
)

func TestLocaleTokenDeriver(t *testing.T) {
	d, err := NewLocaleTokenDeriver("Bokmål", "Dansk", "da")
	if err != nil {
		t.Fatalf("NewLocaleTokenDeriver failed: %v", err)
	}

	for _, tt := range []struct {
		input  string
		expect string
	}{
		{"Barnehage Bokmål.json", "Barnehage Dansk.json"},
		{"barnehage bokmål.json", "barnehage Dansk.json"},
		{"Bokmål Bokmål.json", "Dansk Bokmål.json"},
		{"nb.json", "nb.da.json"},
		{"noext", "noext.da"},
		{filepath.Join("Bokmål", "nb.json"), filepath.Join("Bokmål", "nb.da.json")},
		{filepath.Join("dir", "Skole Bokmål.json"), filepath.Join("dir", "Skole Dansk.json")},
	} {
		if got := d.Derive(tt.input); got != tt.expect {
			t.Errorf("Derive(%q) = %q, expect %q", tt.input, got, tt.expect)
		}
	}
}

func TestLocaleTokenDeriverWithoutToken(t *testing.T) {
	d, err := NewLocaleTokenDeriver("", "", "sv")
	if err != nil {
		t.Fatalf("NewLocaleTokenDeriver failed: %v", err)
	}
	if got := d.Derive("nb.json"); got != "nb.sv.json" {
		t.Errorf("expect nb.sv.json, got %s", got)
	}
}

func TestLocaleTokenDeriverBadLocale(t *testing.T) {
	if _, err := NewLocaleTokenDeriver("Bokmål", "Dansk", "not a locale"); err == nil {
		t.Fatal("expect error for bad locale")
	}
}

func TestSuffixDeriver(t *testing.T) {
	d := SuffixDeriver{Suffix: " - nb-only", Ext: ".csv"}
	for _, tt := range []struct {
		input  string
		expect string
	}{
		{"nb.json", "nb - nb-only.csv"},
		{filepath.Join("dir", "x.y.json"), filepath.Join("dir", "x.y - nb-only.csv")},
		{"noext", "noext - nb-only.csv"},
	} {
		var deriver FilenameDeriver = d
		if got := deriver.Derive(tt.input); got != tt.expect {
			t.Errorf("Derive(%q) = %q, expect %q", tt.input, got, tt.expect)
		}
	}
}
