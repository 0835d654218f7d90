// Package simulation replays study sessions with simulated learners who
// answer correctly with a fixed probability. It shows how many rounds the
// weighted selector needs before every item is mastered.
package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/abbr-trainer/backend/internal/domain/catalog"
	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/quiz"
	"github.com/abbr-trainer/backend/internal/domain/selector"
	"github.com/abbr-trainer/backend/internal/grader"
	"github.com/abbr-trainer/backend/internal/worker"
)

type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeTyping    Mode = "typing"
)

type Config struct {
	Mode      Mode
	Learners  int
	Workers   int
	Accuracy  float64 // chance of a correct answer, 0..1
	MaxRounds int     // per learner
	Direction quiz.Direction
	Seed      uint64 // 0 = seed from the clock
}

func (c Config) Validate() error {
	var errs []error
	if c.Mode != ModeFlashcard && c.Mode != ModeTyping {
		errs = append(errs, fmt.Errorf("mode must be %s or %s, got %q", ModeFlashcard, ModeTyping, c.Mode))
	}
	if c.Learners < 1 {
		errs = append(errs, errors.New("learners must be at least 1"))
	}
	if c.Accuracy < 0 || c.Accuracy > 1 {
		errs = append(errs, fmt.Errorf("accuracy must be within [0, 1], got %v", c.Accuracy))
	}
	if c.MaxRounds < 1 {
		errs = append(errs, errors.New("max rounds must be at least 1"))
	}
	return errors.Join(errs...)
}

// Outcome is one learner's run.
type Outcome struct {
	Learner  int  `json:"learner"`
	Rounds   int  `json:"rounds"`
	Mastered int  `json:"mastered"`
	Total    int  `json:"total"`
	Finished bool `json:"finished"`
}

type Summary struct {
	Outcomes   []Outcome `json:"outcomes"`
	Finished   int       `json:"finished"`
	MeanRounds float64   `json:"mean_rounds"` // over finished learners
}

// Run drills entries with cfg.Learners independent learners spread over a
// worker pool. Learner i always uses the same random streams for a given
// non-zero seed.
func Run(entries []catalog.Entry, cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Direction == "" {
		cfg.Direction = quiz.DefaultDirection
	}

	pool := worker.NewPool[Outcome](cfg.Workers, cfg.Learners)
	go func() {
		for i := range cfg.Learners {
			pool.Submit(strconv.Itoa(i), func() Outcome {
				return learn(i, entries, cfg)
			})
		}
		pool.Close()
	}()

	s := Summary{Outcomes: make([]Outcome, cfg.Learners)}
	totalRounds := 0
	for res := range pool.Results() {
		o := res.Output
		s.Outcomes[o.Learner] = o
		if o.Finished {
			s.Finished++
			totalRounds += o.Rounds
		}
	}
	if s.Finished > 0 {
		s.MeanRounds = float64(totalRounds) / float64(s.Finished)
	}
	return s, nil
}

func learn(learner int, entries []catalog.Entry, cfg Config) Outcome {
	seed := cfg.Seed + uint64(learner)
	d := &deck{items: catalog.Derive(entries), dir: cfg.Direction}
	sel := selector.NewSeeded(seed)
	luck := rand.New(rand.NewPCG(seed, ^seed))
	knows := func() bool { return luck.Float64() < cfg.Accuracy }

	var step func() bool
	switch cfg.Mode {
	case ModeTyping:
		t := quiz.NewTyping(d, sel, grader.NormalizedGrader{})
		step = func() bool {
			p, err := t.Current()
			if err != nil {
				return false
			}
			typed := "?"
			if it, ok := d.find(p.ItemID); ok && knows() {
				typed = d.dir.Answer(it)
			}
			if _, err := t.Check(typed); err != nil {
				return false
			}
			_, err = t.Next()
			return err == nil
		}
	default:
		f := quiz.NewFlashcard(d, sel)
		step = func() bool {
			_, _, err := f.Mark(knows())
			return err == nil
		}
	}

	o := Outcome{Learner: learner, Total: len(d.items)}
	for o.Rounds < cfg.MaxRounds && !d.done() {
		if !step() {
			break
		}
		o.Rounds++
	}
	o.Mastered = item.CountMastered(d.items)
	o.Finished = d.done()
	return o
}

// deck is a learner's private, unpersisted state.
type deck struct {
	items []item.Item
	dir   quiz.Direction
}

var _ quiz.State = (*deck)(nil)

func (d *deck) Items() []item.Item        { return item.Clone(d.items) }
func (d *deck) Direction() quiz.Direction { return d.dir }

func (d *deck) Mark(id string, correct bool) (item.Item, error) {
	for i := range d.items {
		if d.items[i].ID == id {
			d.items[i] = d.items[i].Apply(correct)
			return d.items[i], nil
		}
	}
	return item.Item{}, fmt.Errorf("item %q not in deck", id)
}

func (d *deck) find(id string) (item.Item, bool) {
	for _, it := range d.items {
		if it.ID == id {
			return it, true
		}
	}
	return item.Item{}, false
}

func (d *deck) done() bool {
	return item.CountMastered(d.items) == len(d.items)
}
