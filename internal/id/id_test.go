package id_test

import (
	"testing"

	"github.com/abbr-trainer/backend/internal/id"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := id.New()
		if v == "" {
			t.Fatal("expected non-empty ID")
		}
		if seen[v] {
			t.Fatalf("duplicate ID %q", v)
		}
		seen[v] = true
	}
}
