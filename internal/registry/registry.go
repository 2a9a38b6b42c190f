package registry

import "strings"

// Entry maps a dataset filename to the URL it is fetched from.
type Entry struct {
	Name string
	URL  string
}

// Registry is the fixed, ordered set of datasets the service manages.
// The set is defined once at startup and never changes at runtime.
type Registry []Entry

// Default returns the seven IMDb dataset files published at datasets.imdbws.com.
func Default() Registry {
	names := []string{
		"name.basics.tsv.gz",
		"title.akas.tsv.gz",
		"title.basics.tsv.gz",
		"title.crew.tsv.gz",
		"title.episode.tsv.gz",
		"title.principals.tsv.gz",
		"title.ratings.tsv.gz",
	}

	entries := make(Registry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Name: name,
			URL:  "https://datasets.imdbws.com/" + name,
		})
	}
	return entries
}

// Names returns the dataset filenames in registry order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for _, e := range r {
		names = append(names, e.Name)
	}
	return names
}

// ExtractedName derives the decompressed filename from a compressed one,
// e.g. "title.basics.tsv.gz" -> "title.basics.tsv".
func ExtractedName(name string) string {
	return strings.TrimSuffix(name, ".gz")
}
