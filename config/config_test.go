package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	src := `# word counter
capacity 100
hash hash1
top 5
dumpfilename counts.rdb
logtofile yes
`
	p, err := parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := &CounterProperties{
		Capacity:     100,
		HashFunction: "hash1",
		Top:          5,
		Workers:      4,
		DumpFilename: "counts.rdb",
		LogDir:       "logs",
		LogToFile:    true,
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWhitespace(t *testing.T) {
	src := "capacity\t64\n  hash   hash1  \n  # top 3\ntop\n"
	p, err := parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if p.Capacity != 64 || p.HashFunction != "hash1" || p.Top != 10 {
		t.Errorf("unexpected properties %+v", p)
	}
}

func TestParseBadInt(t *testing.T) {
	if _, err := parse(strings.NewReader("capacity many\n")); err == nil {
		t.Error("expected error for non-numeric capacity")
	}
}

func TestSetupConfigProperties(t *testing.T) {
	defer func() { Properties = defaultProperties() }()
	if err := SetupConfigProperties(filepath.Join(t.TempDir(), "missing.conf")); err == nil {
		t.Error("expected error for missing file")
	}
	name := filepath.Join(t.TempDir(), "wc.conf")
	if err := os.WriteFile(name, []byte("workers 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SetupConfigProperties(name); err != nil {
		t.Fatal(err)
	}
	if Properties.Workers != 2 || Properties.Capacity != 2500 {
		t.Errorf("unexpected properties %+v", Properties)
	}
}
