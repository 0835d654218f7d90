package quiz_test

import (
	"errors"
	"math/rand/v2"

	"github.com/abbr-trainer/backend/internal/domain/catalog"
	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/quiz"
	"github.com/abbr-trainer/backend/internal/domain/selector"
)

// fakeState is an in-memory quiz.State that records every mark.
type fakeState struct {
	items []item.Item
	dir   quiz.Direction
	marks []mark
	err   error
}

type mark struct {
	id      string
	correct bool
}

func newState(entries ...catalog.Entry) *fakeState {
	return &fakeState{items: catalog.Derive(entries), dir: quiz.FullToAbbr}
}

func (s *fakeState) Items() []item.Item        { return item.Clone(s.items) }
func (s *fakeState) Direction() quiz.Direction { return s.dir }

func (s *fakeState) Mark(id string, correct bool) (item.Item, error) {
	if s.err != nil {
		return item.Item{}, s.err
	}
	for i, it := range s.items {
		if it.ID == id {
			s.items[i] = it.Apply(correct)
			s.marks = append(s.marks, mark{id, correct})
			return s.items[i], nil
		}
	}
	return item.Item{}, errors.New("no such item")
}

func (s *fakeState) setScores(score int) {
	for i := range s.items {
		s.items[i].Score = score
	}
}

func newSelector(seed uint64) *selector.Selector {
	return selector.New(rand.New(rand.NewPCG(seed, seed*7+1)))
}

var menuSample = []catalog.Entry{
	{Full: "味噌ラーメン", Abbr: "ミ"},
	{Full: "味噌コーンラーメン", Abbr: "ミコ"},
	{Full: "塩ラーメン", Abbr: "塩"},
	{Full: "デラックスラーメン", Abbr: "DX"},
	{Full: "ぎょうざ(5個)おみやげ", Abbr: "To ギ"},
	{Full: "岩塩ラーメン", Abbr: "G"},
}

func byID(items []item.Item, id string) item.Item {
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	return item.Item{}
}
