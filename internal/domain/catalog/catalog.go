package catalog

import (
	"strconv"

	"github.com/abbr-trainer/backend/internal/domain/item"
)

// Entry is one fixed (full name, abbreviation) pair.
type Entry struct {
	Full string
	Abbr string
}

// Derive builds the unscored item list for the given entries.
// An item's ID is its index in entries, so reordering the catalog
// changes IDs; progress continuity relies on item.Key instead.
func Derive(entries []Entry) []item.Item {
	items := make([]item.Item, len(entries))
	for i, e := range entries {
		items[i] = item.Item{
			ID:    strconv.Itoa(i),
			Full:  e.Full,
			Abbr:  e.Abbr,
			Score: 0,
		}
	}
	return items
}
