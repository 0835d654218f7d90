package quiz

import (
	"fmt"

	"github.com/abbr-trainer/backend/internal/domain/item"
)

// Direction selects which side of an item is asked and which is answered.
type Direction string

const (
	FullToAbbr Direction = "FULL_TO_ABBR"
	AbbrToFull Direction = "ABBR_TO_FULL"
)

// DefaultDirection is used at every start; the direction is not persisted.
const DefaultDirection = FullToAbbr

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case FullToAbbr, AbbrToFull:
		return d, nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be %s or %s", s, FullToAbbr, AbbrToFull)
	}
}

func (d Direction) Toggle() Direction {
	if d == AbbrToFull {
		return FullToAbbr
	}
	return AbbrToFull
}

// Question is the side shown to the learner.
func (d Direction) Question(it item.Item) string {
	if d == AbbrToFull {
		return it.Abbr
	}
	return it.Full
}

// Answer is the side the learner has to produce.
func (d Direction) Answer(it item.Item) string {
	if d == AbbrToFull {
		return it.Full
	}
	return it.Abbr
}
