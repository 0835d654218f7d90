package quiz

import (
	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/selector"
	"github.com/abbr-trainer/backend/internal/id"
)

// OptionCount is the number of options offered, the correct one included.
const OptionCount = 4

// Choice is one multiple-choice presentation. Correct and IsCorrect are
// only filled in once the question has been answered, at which point a UI
// highlights both Selected and Correct.
type Choice struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Direction Direction `json:"direction"`
	Prompt    string    `json:"prompt"`
	Options   []string  `json:"options"`
	Answered  bool      `json:"answered"`
	Selected  string    `json:"selected,omitempty"`
	Correct   string    `json:"correct,omitempty"`
	IsCorrect bool      `json:"is_correct"`
}

type choice struct {
	id       string
	item     item.Item
	dir      Direction
	options  []string
	correct  string
	selected string
	answered bool
}

// MultipleChoice asks for the matching side out of four options, drawing
// questions with the review fallback policy.
type MultipleChoice struct {
	state State
	sel   *selector.Selector
	q     *choice
}

func NewMultipleChoice(state State, sel *selector.Selector) *MultipleChoice {
	m := &MultipleChoice{state: state, sel: sel}
	m.generate()
	return m
}

// Options builds the shuffled option list for it: the correct answer plus
// up to OptionCount-1 distinct distractors sampled from the same field of
// items.
func Options(sel *selector.Selector, items []item.Item, it item.Item, dir Direction) []string {
	correct := dir.Answer(it)

	seen := map[string]bool{correct: true}
	bank := make([]string, 0, len(items))
	for _, other := range items {
		v := dir.Answer(other)
		if !seen[v] {
			seen[v] = true
			bank = append(bank, v)
		}
	}

	opts := append([]string{correct}, sel.Sample(bank, OptionCount-1)...)
	return sel.Shuffle(opts)
}

func (m *MultipleChoice) generate() {
	items := m.state.Items()
	dir := m.state.Direction()

	it, ok := m.sel.Next(items)
	if !ok {
		m.q = nil
		return
	}
	m.q = &choice{
		id:      id.New(),
		item:    it,
		dir:     dir,
		options: Options(m.sel, items, it, dir),
		correct: dir.Answer(it),
	}
}

func (m *MultipleChoice) view() Choice {
	q := m.q
	c := Choice{
		ID:        q.id,
		ItemID:    q.item.ID,
		Direction: q.dir,
		Prompt:    q.dir.Question(q.item),
		Options:   append([]string(nil), q.options...),
		Answered:  q.answered,
	}
	if q.answered {
		c.Selected = q.selected
		c.Correct = q.correct
		c.IsCorrect = q.selected == q.correct
	}
	return c
}

// Current returns the question on display, regenerating it when the
// direction has changed since it was built.
func (m *MultipleChoice) Current() (Choice, error) {
	if m.q == nil || m.q.dir != m.state.Direction() {
		m.generate()
	}
	if m.q == nil {
		return Choice{}, ErrNoQuestion
	}
	return m.view(), nil
}

// Answer records the pick for the question identified by questionID (an
// empty questionID means the current one). Only the first pick counts;
// later picks return the question unchanged.
func (m *MultipleChoice) Answer(questionID, option string) (Choice, error) {
	if _, err := m.Current(); err != nil {
		return Choice{}, err
	}
	if questionID != "" && questionID != m.q.id {
		return m.view(), ErrStaleQuestion
	}
	if m.q.answered {
		return m.view(), nil
	}

	offered := false
	for _, o := range m.q.options {
		if o == option {
			offered = true
			break
		}
	}
	if !offered {
		return m.view(), ErrUnknownOption
	}

	updated, err := m.state.Mark(m.q.item.ID, option == m.q.correct)
	if err != nil {
		return m.view(), err
	}
	m.q.item = updated
	m.q.selected = option
	m.q.answered = true
	return m.view(), nil
}

// Next discards the current question and builds a fresh one.
func (m *MultipleChoice) Next() (Choice, error) {
	m.generate()
	if m.q == nil {
		return Choice{}, ErrNoQuestion
	}
	return m.view(), nil
}
