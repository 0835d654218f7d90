package grader

import "github.com/abbr-trainer/backend/internal/normalize"

// Grader decides whether a typed answer matches the expected one.
// Implementations may be strict, lenient, or canned (for tests).
type Grader interface {
	Check(expected, given string) bool
}

// NormalizedGrader accepts an answer when both sides are equal after
// normalize.Norm, so spacing, dash variants and letter case do not matter.
type NormalizedGrader struct{}

// Compile-time check: NormalizedGrader satisfies the Grader interface.
var _ Grader = NormalizedGrader{}

func (NormalizedGrader) Check(expected, given string) bool {
	return normalize.Equal(expected, given)
}

