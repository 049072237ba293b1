package convert

import (
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r belongs to a word: a letter, a number or an
// underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isWordToken(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && isWordRune(r)
}

// Split partitions text into maximal runs of word and non-word characters.
//
// Concatenating the result always yields text again. Empty tokens are never
// produced, so an empty input gives a nil slice.
func Split(text string) []string {
	var out []string
	start := 0
	inWord := false
	for i, r := range text {
		w := isWordRune(r)
		if i > start && w != inWord {
			out = append(out, text[start:i])
			start = i
		}
		inWord = w
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
