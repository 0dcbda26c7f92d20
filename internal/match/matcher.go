// Package match implements normalization and keyword matching over
// bibliographic text fields. All functions are pure; Memo adds per-evaluation
// caching on top without observable side effects.
package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects how a keyword is tested against normalized text.
type Mode int

const (
	// ModeAuto picks ModeBoundary for short single-token keywords
	// (vertebral-level codes such as "C1") and ModeSubstring otherwise.
	ModeAuto Mode = iota
	// ModeSubstring matches the keyword anywhere in the text.
	ModeSubstring
	// ModeBoundary matches the keyword only when it is not part of a longer
	// alphanumeric run, so "C12" never satisfies "C1".
	ModeBoundary
	// ModeDocType matches publication-type keywords: multi-word phrases as
	// substrings, single words only at word boundaries. A title equal to,
	// starting with, ending with, or containing the word separately all count.
	ModeDocType
)

// Keywords of at most this many runes are considered ambiguous short codes
// under ModeAuto and get boundary anchoring.
const shortKeywordRunes = 3

// Normalize case-folds text to upper case and collapses runs of whitespace,
// returning the canonical form all matching operates on.
func Normalize(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), " "))
}

// ContainsAny reports whether any keyword occurs in the normalized text under
// the given mode. Keywords are expected to be normalized already.
func ContainsAny(text string, keywords []string, mode Mode) bool {
	for _, kw := range keywords {
		if Contains(text, kw, mode) {
			return true
		}
	}
	return false
}

// Contains tests a single keyword against normalized text.
func Contains(text, keyword string, mode Mode) bool {
	if text == "" || keyword == "" {
		return false
	}

	switch effectiveMode(keyword, mode) {
	case ModeBoundary:
		return containsBoundary(text, keyword)
	default:
		return strings.Contains(text, keyword)
	}
}

func effectiveMode(keyword string, mode Mode) Mode {
	switch mode {
	case ModeAuto:
		if !strings.Contains(keyword, " ") && utf8.RuneCountInString(keyword) <= shortKeywordRunes {
			return ModeBoundary
		}
		return ModeSubstring
	case ModeDocType:
		if strings.Contains(keyword, " ") {
			return ModeSubstring
		}
		return ModeBoundary
	default:
		return mode
	}
}

func containsBoundary(text, keyword string) bool {
	for start := 0; start+len(keyword) <= len(text); {
		idx := strings.Index(text[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start

		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(keyword)) {
			return true
		}
		start = idx + 1
	}
	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
