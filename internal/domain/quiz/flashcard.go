package quiz

import (
	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/selector"
)

// Card is what the flashcard mode shows. When AllMastered is set there is
// no card and nothing left to do.
type Card struct {
	ItemID      string    `json:"item_id,omitempty"`
	Direction   Direction `json:"direction"`
	Question    string    `json:"question,omitempty"`
	Answer      string    `json:"answer,omitempty"`
	Flipped     bool      `json:"flipped"`
	Score       int       `json:"score"`
	AllMastered bool      `json:"all_mastered"`
}

// Side is the text currently facing the learner.
func (c Card) Side() string {
	if c.Flipped {
		return c.Answer
	}
	return c.Question
}

// Flashcard draws only unmastered items and trusts the learner to grade
// themselves. Once every item is mastered it stays on the all-mastered card.
type Flashcard struct {
	state State
	sel   *selector.Selector

	current *item.Item
	dir     Direction
	flipped bool
}

func NewFlashcard(state State, sel *selector.Selector) *Flashcard {
	f := &Flashcard{state: state, sel: sel}
	f.draw(state.Items())
	return f
}

func (f *Flashcard) draw(items []item.Item) {
	f.dir = f.state.Direction()
	f.flipped = false
	f.current = nil
	if it, ok := f.sel.PickWeighted(item.Unmastered(items)); ok {
		f.current = &it
	}
}

// sync redraws when the direction changed or the card on display is no
// longer in the pool, e.g. after a reset or progress made in another mode.
func (f *Flashcard) sync() {
	items := f.state.Items()
	if f.dir != f.state.Direction() {
		f.draw(items)
		return
	}
	if f.current == nil {
		if len(item.Unmastered(items)) > 0 {
			f.draw(items)
		}
		return
	}
	it, ok := find(items, f.current.ID)
	if !ok || it.Mastered() {
		f.draw(items)
		return
	}
	f.current = &it
}

func (f *Flashcard) view() Card {
	if f.current == nil {
		return Card{Direction: f.dir, AllMastered: true}
	}
	return Card{
		ItemID:    f.current.ID,
		Direction: f.dir,
		Question:  f.dir.Question(*f.current),
		Answer:    f.dir.Answer(*f.current),
		Flipped:   f.flipped,
		Score:     f.current.Score,
	}
}

// Current returns the card on display.
func (f *Flashcard) Current() Card {
	f.sync()
	return f.view()
}

// Flip turns the card over.
func (f *Flashcard) Flip() (Card, error) {
	f.sync()
	if f.current == nil {
		return f.view(), ErrAllMastered
	}
	f.flipped = !f.flipped
	return f.view(), nil
}

// Mark records the learner's own verdict and moves to the next card.
// It returns the updated item alongside the new card.
func (f *Flashcard) Mark(correct bool) (item.Item, Card, error) {
	f.sync()
	if f.current == nil {
		return item.Item{}, f.view(), ErrAllMastered
	}

	updated, err := f.state.Mark(f.current.ID, correct)
	if err != nil {
		return item.Item{}, f.view(), err
	}

	f.draw(f.state.Items())
	return updated, f.view(), nil
}
