package catalog_test

import (
	"testing"

	"github.com/abbr-trainer/backend/internal/domain/catalog"
)

func TestDerive(t *testing.T) {
	items := catalog.Derive([]catalog.Entry{
		{Full: "味噌ラーメン", Abbr: "ミ"},
		{Full: "塩ラーメン", Abbr: "塩"},
	})

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].ID != "0" || items[1].ID != "1" {
		t.Errorf("expected index IDs, got %q and %q", items[0].ID, items[1].ID)
	}

	for _, it := range items {
		if it.Score != 0 {
			t.Errorf("expected score 0 for %q, got %d", it.Full, it.Score)
		}
	}

	if items[1].Full != "塩ラーメン" || items[1].Abbr != "塩" {
		t.Errorf("unexpected pair %q/%q", items[1].Full, items[1].Abbr)
	}
}

func TestDerive_Empty(t *testing.T) {
	if items := catalog.Derive(nil); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestMenu_UniquePairs(t *testing.T) {
	fulls := make(map[string]bool)
	abbrs := make(map[string]bool)

	for _, e := range catalog.Menu {
		if e.Full == "" || e.Abbr == "" {
			t.Errorf("empty field in entry %+v", e)
		}
		if fulls[e.Full] {
			t.Errorf("duplicate full name %q", e.Full)
		}
		if abbrs[e.Abbr] {
			t.Errorf("duplicate abbreviation %q", e.Abbr)
		}
		fulls[e.Full] = true
		abbrs[e.Abbr] = true
	}

	if len(catalog.Menu) < 4 {
		t.Errorf("multiple choice needs at least 4 entries, got %d", len(catalog.Menu))
	}
}
