package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/domain/quiz"
)

func TestDirection_Sides(t *testing.T) {
	it := item.Item{Full: "塩ラーメン", Abbr: "塩"}

	assert.Equal(t, "塩ラーメン", quiz.FullToAbbr.Question(it))
	assert.Equal(t, "塩", quiz.FullToAbbr.Answer(it))
	assert.Equal(t, "塩", quiz.AbbrToFull.Question(it))
	assert.Equal(t, "塩ラーメン", quiz.AbbrToFull.Answer(it))
}

func TestDirection_Toggle(t *testing.T) {
	assert.Equal(t, quiz.AbbrToFull, quiz.FullToAbbr.Toggle())
	assert.Equal(t, quiz.FullToAbbr, quiz.AbbrToFull.Toggle())
	assert.Equal(t, quiz.FullToAbbr, quiz.DefaultDirection)
}

func TestParseDirection(t *testing.T) {
	d, err := quiz.ParseDirection("ABBR_TO_FULL")
	require.NoError(t, err)
	assert.Equal(t, quiz.AbbrToFull, d)

	_, err = quiz.ParseDirection("sideways")
	assert.Error(t, err)
}
