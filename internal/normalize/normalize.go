// Package normalize canonicalizes answer text so that typed input can be
// compared without caring about spacing, hyphen variants or letter case.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Hyphen is the canonical hyphen every dash variant is folded into.
const Hyphen = '-'

// dashes lists the hyphen-like runes folded into Hyphen, including the
// half-width katakana prolonged sound mark.
const dashes = "‐‑‒–—―ｰ"

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func foldDash(r rune) rune {
	if strings.ContainsRune(dashes, r) {
		return Hyphen
	}
	return r
}

// Norm strips all whitespace, folds dash variants into Hyphen and
// uppercases the result. Norm(Norm(s)) == Norm(s) for any s.
func Norm(s string) string {
	// Chained transformers keep internal buffers, so build one per call.
	t := transform.Chain(
		runes.Remove(runes.Predicate(isSpace)),
		runes.Map(foldDash),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Only reachable on invalid transformer state; fall back to the raw text.
		out = s
	}
	return strings.ToUpper(out)
}

// Equal reports whether a and b are the same answer after normalization.
func Equal(a, b string) bool {
	return Norm(a) == Norm(b)
}
