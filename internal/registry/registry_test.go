package registry

import (
	"strings"
	"testing"
)

func TestDefault_SevenDatasets(t *testing.T) {
	reg := Default()
	if len(reg) != 7 {
		t.Fatalf("len = %d, want 7", len(reg))
	}

	seen := map[string]bool{}
	for _, entry := range reg {
		if seen[entry.Name] {
			t.Fatalf("duplicate dataset name %q", entry.Name)
		}
		seen[entry.Name] = true

		if !strings.HasSuffix(entry.Name, ".tsv.gz") {
			t.Fatalf("dataset %q is not a .tsv.gz file", entry.Name)
		}
		if entry.URL != "https://datasets.imdbws.com/"+entry.Name {
			t.Fatalf("dataset %q has URL %q", entry.Name, entry.URL)
		}
	}
}

func TestNames_PreservesOrder(t *testing.T) {
	reg := Registry{{Name: "b.gz"}, {Name: "a.gz"}}
	names := reg.Names()
	if len(names) != 2 || names[0] != "b.gz" || names[1] != "a.gz" {
		t.Fatalf("names = %v", names)
	}
}

func TestExtractedName(t *testing.T) {
	if got := ExtractedName("title.basics.tsv.gz"); got != "title.basics.tsv" {
		t.Fatalf("got %q, want title.basics.tsv", got)
	}
	// names without the suffix pass through untouched
	if got := ExtractedName("already.tsv"); got != "already.tsv" {
		t.Fatalf("got %q, want already.tsv", got)
	}
}
