// Package quiz holds the three quiz modes. Each mode picks an item, shows
// one side of it per the current Direction, judges the answer and feeds the
// verdict back through State.Mark.
//
// Controllers keep per-presentation state and are not safe for concurrent
// use.
package quiz

import (
	"errors"

	"github.com/abbr-trainer/backend/internal/domain/item"
)

var (
	ErrAllMastered     = errors.New("all items mastered")
	ErrNoQuestion      = errors.New("no items to quiz")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrUnknownOption   = errors.New("option not offered")
	ErrStaleQuestion   = errors.New("question is no longer current")
)

// State is the application state a controller reads from and reports to.
type State interface {
	Items() []item.Item
	Direction() Direction
	Mark(id string, correct bool) (item.Item, error)
}

func find(items []item.Item, id string) (item.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return item.Item{}, false
}
