package item

// MaxScore is the mastery level at which an item counts as learned.
const MaxScore = 3

// Item is the persisted mastery state for one catalog entry.
type Item struct {
	ID    string `json:"id"`
	Full  string `json:"full"`
	Abbr  string `json:"abbr"`
	Score int    `json:"score"`
}

// Key identifies an item by its text pair. It is the join key used when
// saved progress is merged onto the catalog, independent of ID and Score.
func (it Item) Key() string {
	return it.Full + "@@" + it.Abbr
}

// Mastered reports whether the item has reached MaxScore.
func (it Item) Mastered() bool {
	return it.Score >= MaxScore
}

// Apply is the scoring transition shared by every quiz mode:
// a correct answer moves one level up (capped at MaxScore),
// a wrong answer drops the item back to zero.
func (it Item) Apply(correct bool) Item {
	if correct {
		it.Score = min(MaxScore, ClampScore(it.Score)+1)
	} else {
		it.Score = 0
	}
	return it
}

// Reset returns the item with its score cleared.
func (it Item) Reset() Item {
	it.Score = 0
	return it
}

// ClampScore forces a score into [0, MaxScore].
func ClampScore(score int) int {
	return max(0, min(MaxScore, score))
}

// Unmastered returns the items still below MaxScore, in order.
func Unmastered(items []Item) []Item {
	pool := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.Mastered() {
			pool = append(pool, it)
		}
	}
	return pool
}

// CountMastered returns how many items are at MaxScore.
func CountMastered(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Mastered() {
			n++
		}
	}
	return n
}

// Clone copies the slice so callers can hand out snapshots.
func Clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
