package registry

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Build sorts entries by id and wraps them in a Registry. The sort is
// stable and uses locale-aware collation, so entries with equal ids keep
// their input order. Entries without a string id sort with an empty key.
// The input slice is not modified.
func Build(entries []Entry) *Registry {
	type keyed struct {
		key   string
		entry Entry
	}

	items := make([]keyed, len(entries))
	for i, e := range entries {
		items[i] = keyed{key: e.IDString(), entry: e}
	}

	c := collate.New(language.Und)
	slices.SortStableFunc(items, func(a, b keyed) int {
		return c.CompareString(a.key, b.key)
	})

	plugins := make([]Entry, len(items))
	for i, it := range items {
		plugins[i] = it.entry
	}

	return &Registry{
		Version: FormatVersion,
		Plugins: plugins,
	}
}
