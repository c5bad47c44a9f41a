package nlp

import (
	"strings"
	"unicode"
)

// Normalize lower-cases the text, strips punctuation and collapses runs of
// whitespace to single spaces. It is deterministic and idempotent, so feature
// extraction sees the same surface form no matter how often it is applied.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, lowered)
	return strings.Join(strings.Fields(stripped), " ")
}

// Tokenize splits normalized text into its whitespace-separated tokens.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
