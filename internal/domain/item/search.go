package item

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abbr-trainer/backend/internal/normalize"
)

// Search filters items whose full name or abbreviation contains query,
// ignoring case and whitespace. An empty query keeps everything.
// The result is ordered by full name using Japanese collation.
func Search(items []Item, query string) []Item {
	q := normalize.Norm(query)

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if q == "" ||
			strings.Contains(normalize.Norm(it.Full), q) ||
			strings.Contains(normalize.Norm(it.Abbr), q) {
			out = append(out, it)
		}
	}

	// A Collator is not safe for concurrent use.
	c := collate.New(language.Japanese)
	slices.SortStableFunc(out, func(a, b Item) int {
		return c.CompareString(a.Full, b.Full)
	})
	return out
}
