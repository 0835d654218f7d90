// internal/service/trainer.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/quiz"
	"github.com/abbr-trainer/backend/internal/progress"
	"github.com/abbr-trainer/backend/internal/worker"
)

var (
	ErrItemNotFound         = errors.New("item not found")
	ErrConfirmationRequired = errors.New("reset needs explicit confirmation")
)

// Stats summarizes mastery across the catalog.
type Stats struct {
	Mastered int `json:"mastered"`
	Total    int `json:"total"`
}

func (s Stats) String() string {
	return fmt.Sprintf("%d/%d", s.Mastered, s.Total)
}

// Persister is the slice of the progress store the Trainer needs.
type Persister interface {
	Load(ctx context.Context) []item.Item
	Save(ctx context.Context, items []item.Item) error
}

// Trainer owns the in-memory item list and the current direction. It is the
// single writer for both: every mutation goes through its mutex and is then
// persisted as a full snapshot on a one-worker save queue, so saves land in
// order and the last one wins.
type Trainer struct {
	store       Persister
	logger      *slog.Logger
	exportLimit int

	mu        sync.Mutex
	items     []item.Item
	direction quiz.Direction
	seq       uint64
	closed    bool

	saves   *worker.Pool[error]
	drained chan struct{}
}

// Compile-time check: *Trainer is the state every quiz mode reports to.
var _ quiz.State = (*Trainer)(nil)

// Options tunes a Trainer. Zero values select the defaults.
type Options struct {
	ExportLimit int
	SaveBuffer  int
}

// NewTrainer loads progress and starts the save queue. Call Close to flush
// pending saves.
func NewTrainer(ctx context.Context, store Persister, logger *slog.Logger, opts Options) *Trainer {
	if opts.ExportLimit == 0 {
		opts.ExportLimit = progress.DefaultExportLimit
	}
	if opts.SaveBuffer <= 0 {
		opts.SaveBuffer = 16
	}

	t := &Trainer{
		store:       store,
		logger:      logger,
		exportLimit: opts.ExportLimit,
		items:       store.Load(ctx),
		direction:   quiz.DefaultDirection,
		saves:       worker.NewPool[error](1, opts.SaveBuffer),
		drained:     make(chan struct{}),
	}
	go t.drain()

	logger.Info("progress loaded", "items", len(t.items), "mastered", item.CountMastered(t.items))
	return t
}

// drain consumes save results so the worker never blocks.
func (t *Trainer) drain() {
	defer close(t.drained)
	for res := range t.saves.Results() {
		if res.Output != nil {
			t.logger.Error("failed to save progress", "save", res.JobID, "error", res.Output)
		}
	}
}

// persistLocked queues a snapshot save. The returned channel receives the
// save's outcome; fire-and-forget callers ignore it. t.mu must be held.
func (t *Trainer) persistLocked() <-chan error {
	done := make(chan error, 1)
	if t.closed {
		t.logger.Warn("trainer closed, change not saved")
		done <- errors.New("trainer closed")
		return done
	}

	snapshot := item.Clone(t.items)
	t.seq++
	t.saves.Submit(strconv.FormatUint(t.seq, 10), func() error {
		err := t.store.Save(context.Background(), snapshot)
		done <- err
		return err
	})
	return done
}

func (t *Trainer) indexLocked(id string) (int, error) {
	for i, it := range t.items {
		if it.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("item %q: %w", id, ErrItemNotFound)
}

// Items returns a snapshot of every item in catalog order.
func (t *Trainer) Items() []item.Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	return item.Clone(t.items)
}

// Item returns one item by ID.
func (t *Trainer) Item(id string) (item.Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, err := t.indexLocked(id)
	if err != nil {
		return item.Item{}, err
	}
	return t.items[i], nil
}

// Search is the browse view: filtered by query, sorted by full name.
func (t *Trainer) Search(query string) []item.Item {
	return item.Search(t.Items(), query)
}

func (t *Trainer) Direction() quiz.Direction {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.direction
}

func (t *Trainer) SetDirection(d quiz.Direction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.direction = d
}

// ToggleDirection flips the direction and returns the new one.
func (t *Trainer) ToggleDirection() quiz.Direction {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.direction = t.direction.Toggle()
	return t.direction
}

// Mark applies a quiz verdict to an item and saves in the background.
func (t *Trainer) Mark(id string, correct bool) (item.Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, err := t.indexLocked(id)
	if err != nil {
		return item.Item{}, err
	}
	before := t.items[i].Score
	t.items[i] = t.items[i].Apply(correct)
	t.persistLocked()

	t.logger.Debug("item marked",
		"item_id", id,
		"correct", correct,
		"score_before", before,
		"score_after", t.items[i].Score,
	)
	return t.items[i], nil
}

// ResetItem clears one item's score.
func (t *Trainer) ResetItem(id string) (item.Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, err := t.indexLocked(id)
	if err != nil {
		return item.Item{}, err
	}
	t.items[i] = t.items[i].Reset()
	t.persistLocked()

	t.logger.Info("item reset", "item_id", id)
	return t.items[i], nil
}

// ResetAll clears every score once confirmed, and waits for that save to
// land before returning.
func (t *Trainer) ResetAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	t.mu.Lock()
	for i := range t.items {
		t.items[i] = t.items[i].Reset()
	}
	done := t.persistLocked()
	t.mu.Unlock()

	t.logger.Info("all progress reset")

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats counts mastered items.
func (t *Trainer) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{Mastered: item.CountMastered(t.items), Total: len(t.items)}
}

// Export renders the current state as indented JSON, truncated to the
// configured limit unless full is set.
func (t *Trainer) Export(full bool) (string, error) {
	limit := t.exportLimit
	if full {
		limit = 0
	}
	return progress.Export(t.Items(), limit)
}

// Close stops accepting saves and waits for queued ones to finish.
func (t *Trainer) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.mu.Unlock()

	t.saves.Close()
	<-t.drained
}
