package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbr-trainer/backend/internal/domain/catalog"
	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/quiz"
)

func fieldValues(items []item.Item, dir quiz.Direction) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[dir.Answer(it)] = true
	}
	return m
}

func TestOptions_FourDistinctFromField(t *testing.T) {
	items := catalog.Derive(catalog.Menu)
	sel := newSelector(10)

	for _, dir := range []quiz.Direction{quiz.FullToAbbr, quiz.AbbrToFull} {
		field := fieldValues(items, dir)
		for i := 0; i < 200; i++ {
			it := items[i%len(items)]
			opts := quiz.Options(sel, items, it, dir)

			require.Len(t, opts, quiz.OptionCount)
			assert.Contains(t, opts, dir.Answer(it))

			seen := map[string]bool{}
			for _, o := range opts {
				require.True(t, field[o], "option %q is not from the %s field", o, dir)
				require.False(t, seen[o], "duplicate option %q", o)
				seen[o] = true
			}
		}
	}
}

func TestOptions_CorrectPositionVaries(t *testing.T) {
	items := catalog.Derive(menuSample)
	sel := newSelector(11)

	positions := map[int]bool{}
	for i := 0; i < 100; i++ {
		opts := quiz.Options(sel, items, items[0], quiz.FullToAbbr)
		for p, o := range opts {
			if o == items[0].Abbr {
				positions[p] = true
			}
		}
	}
	assert.Len(t, positions, quiz.OptionCount)
}

func TestOptions_SmallCatalog(t *testing.T) {
	items := catalog.Derive([]catalog.Entry{{Full: "A", Abbr: "a"}, {Full: "B", Abbr: "b"}})

	opts := quiz.Options(newSelector(12), items, items[0], quiz.FullToAbbr)
	assert.ElementsMatch(t, []string{"a", "b"}, opts)
}

func TestMultipleChoice_CorrectAnswer(t *testing.T) {
	state := newState(menuSample...)
	m := quiz.NewMultipleChoice(state, newSelector(13))

	q, err := m.Current()
	require.NoError(t, err)
	require.False(t, q.Answered)
	assert.Empty(t, q.Correct, "correct option stays hidden until answered")

	want := byID(state.items, q.ItemID).Abbr
	assert.Equal(t, byID(state.items, q.ItemID).Full, q.Prompt)

	q, err = m.Answer(q.ID, want)
	require.NoError(t, err)
	assert.True(t, q.Answered)
	assert.True(t, q.IsCorrect)
	assert.Equal(t, want, q.Selected)
	assert.Equal(t, want, q.Correct)
	assert.Equal(t, 1, byID(state.items, q.ItemID).Score)
}

func TestMultipleChoice_WrongAnswerResetsScore(t *testing.T) {
	state := newState(menuSample...)
	state.setScores(2)
	m := quiz.NewMultipleChoice(state, newSelector(14))

	q, err := m.Current()
	require.NoError(t, err)
	correct := byID(state.items, q.ItemID).Abbr

	var wrong string
	for _, o := range q.Options {
		if o != correct {
			wrong = o
			break
		}
	}

	q, err = m.Answer("", wrong)
	require.NoError(t, err)
	assert.False(t, q.IsCorrect)
	assert.Equal(t, wrong, q.Selected)
	assert.Equal(t, correct, q.Correct)
	assert.Equal(t, 0, byID(state.items, q.ItemID).Score)
}

func TestMultipleChoice_OnlyFirstPickCounts(t *testing.T) {
	state := newState(menuSample...)
	m := quiz.NewMultipleChoice(state, newSelector(15))

	q, _ := m.Current()
	correct := byID(state.items, q.ItemID).Abbr

	var wrong string
	for _, o := range q.Options {
		if o != correct {
			wrong = o
		}
	}

	_, err := m.Answer(q.ID, wrong)
	require.NoError(t, err)

	again, err := m.Answer(q.ID, correct)
	require.NoError(t, err)
	assert.Equal(t, wrong, again.Selected)
	assert.False(t, again.IsCorrect)
	assert.Len(t, state.marks, 1)
}

func TestMultipleChoice_RejectsUnknownOptionAndStaleID(t *testing.T) {
	state := newState(menuSample...)
	m := quiz.NewMultipleChoice(state, newSelector(16))
	q, _ := m.Current()

	_, err := m.Answer(q.ID, "not an option")
	assert.ErrorIs(t, err, quiz.ErrUnknownOption)

	_, err = m.Answer("some-old-question", q.Options[0])
	assert.ErrorIs(t, err, quiz.ErrStaleQuestion)
	assert.Empty(t, state.marks)
}

func TestMultipleChoice_NextBuildsFreshQuestion(t *testing.T) {
	state := newState(menuSample...)
	m := quiz.NewMultipleChoice(state, newSelector(17))

	q, _ := m.Current()
	_, err := m.Answer(q.ID, q.Options[0])
	require.NoError(t, err)

	next, err := m.Next()
	require.NoError(t, err)
	assert.NotEqual(t, q.ID, next.ID)
	assert.False(t, next.Answered)
	assert.Len(t, next.Options, quiz.OptionCount)
}

func TestMultipleChoice_AllMasteredStillReviews(t *testing.T) {
	state := newState(menuSample...)
	state.setScores(item.MaxScore)
	m := quiz.NewMultipleChoice(state, newSelector(18))

	q, err := m.Current()
	require.NoError(t, err)
	assert.NotEmpty(t, q.ItemID)
}

func TestMultipleChoice_DirectionChangeRegenerates(t *testing.T) {
	state := newState(menuSample...)
	m := quiz.NewMultipleChoice(state, newSelector(19))
	before, _ := m.Current()

	state.dir = quiz.AbbrToFull
	q, err := m.Current()
	require.NoError(t, err)
	assert.NotEqual(t, before.ID, q.ID)
	assert.Equal(t, byID(state.items, q.ItemID).Abbr, q.Prompt)

	fulls := fieldValues(state.items, quiz.AbbrToFull)
	for _, o := range q.Options {
		assert.True(t, fulls[o], "option %q", o)
	}
}

func TestMultipleChoice_Empty(t *testing.T) {
	m := quiz.NewMultipleChoice(newState(), newSelector(20))

	_, err := m.Current()
	assert.ErrorIs(t, err, quiz.ErrNoQuestion)
	_, err = m.Next()
	assert.ErrorIs(t, err, quiz.ErrNoQuestion)
	_, err = m.Answer("", "x")
	assert.ErrorIs(t, err, quiz.ErrNoQuestion)
}
