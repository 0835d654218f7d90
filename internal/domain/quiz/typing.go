package quiz

import (
	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/selector"
	"github.com/abbr-trainer/backend/internal/grader"
)

// Result is the outcome of a typing check.
type Result string

const (
	ResultNone Result = "none"
	ResultOK   Result = "ok"
	ResultNG   Result = "ng"
)

// Prompt is one typing question. Answer is revealed once it was checked.
type Prompt struct {
	ItemID    string    `json:"item_id"`
	Direction Direction `json:"direction"`
	Question  string    `json:"question"`
	Given     string    `json:"given,omitempty"`
	Result    Result    `json:"result"`
	Answer    string    `json:"answer,omitempty"`
}

// Typing asks the learner to type the other side, graded by a Grader.
type Typing struct {
	state  State
	sel    *selector.Selector
	grader grader.Grader

	current *item.Item
	dir     Direction
	given   string
	result  Result
}

func NewTyping(state State, sel *selector.Selector, g grader.Grader) *Typing {
	t := &Typing{state: state, sel: sel, grader: g}
	t.draw()
	return t
}

func (t *Typing) draw() {
	t.dir = t.state.Direction()
	t.given = ""
	t.result = ResultNone
	t.current = nil
	if it, ok := t.sel.Next(t.state.Items()); ok {
		t.current = &it
	}
}

func (t *Typing) view() Prompt {
	p := Prompt{
		ItemID:    t.current.ID,
		Direction: t.dir,
		Question:  t.dir.Question(*t.current),
		Given:     t.given,
		Result:    t.result,
	}
	if t.result != ResultNone {
		p.Answer = t.dir.Answer(*t.current)
	}
	return p
}

// Current returns the question on display.
func (t *Typing) Current() (Prompt, error) {
	if t.current == nil || t.dir != t.state.Direction() {
		t.draw()
	}
	if t.current == nil {
		return Prompt{}, ErrNoQuestion
	}
	return t.view(), nil
}

// Check grades given against the expected answer and records the verdict.
// A question can be checked once; call Next to move on.
func (t *Typing) Check(given string) (Prompt, error) {
	if _, err := t.Current(); err != nil {
		return Prompt{}, err
	}
	if t.result != ResultNone {
		return t.view(), ErrAlreadyAnswered
	}

	ok := t.grader.Check(t.dir.Answer(*t.current), given)
	updated, err := t.state.Mark(t.current.ID, ok)
	if err != nil {
		return t.view(), err
	}

	t.current = &updated
	t.given = given
	t.result = ResultNG
	if ok {
		t.result = ResultOK
	}
	return t.view(), nil
}

// Next moves to a new question using the review fallback policy.
func (t *Typing) Next() (Prompt, error) {
	t.draw()
	if t.current == nil {
		return Prompt{}, ErrNoQuestion
	}
	return t.view(), nil
}
