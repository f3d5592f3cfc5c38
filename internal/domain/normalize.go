package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeValue prepares a surface form coming from an external source:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//   - composes the string into Unicode NFC
//
// Case is preserved; use WordKey for comparisons.
func NormalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	value = strings.Join(strings.Fields(value), " ")
	return norm.NFC.String(value)
}

// WordKey returns the identity key of a word value: NFC-composed and
// Unicode case-folded. Two words with equal keys are the same word.
func WordKey(value string) string {
	if value == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(value))
}

// SameWord reports whether a and b denote the same word.
func SameWord(a, b string) bool {
	return WordKey(a) == WordKey(b)
}
