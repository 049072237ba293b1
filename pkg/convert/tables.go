package convert

import (
	"strings"
	"unicode/utf8"
)

// punctuation maps ASCII punctuation to its full-width counterpart.
var punctuation = map[rune]rune{
	',': '，',
	'.': '。',
	'!': '！',
	'?': '？',
	':': '：',
	';': '；',
	'(': '（',
	')': '）',
	'[': '【',
	']': '】',
	'<': '《',
	'>': '》',
}

// Grammatical particles, rendered with class="mark".
var particles = map[string]struct{}{
	"li": {},
	"e":  {},
	"pi": {},
	"o":  {},
	"la": {},
}

// Prepositions, rendered with class="prepo".
var prepositions = map[string]struct{}{
	"kepeken": {},
	"lon":     {},
	"sama":    {},
	"tan":     {},
	"tawa":    {},
}

// IsParticle reports whether word is a grammatical particle.
func IsParticle(word string) bool {
	_, ok := particles[word]
	return ok
}

// IsPreposition reports whether word is a preposition.
func IsPreposition(word string) bool {
	_, ok := prepositions[word]
	return ok
}

// ConvertPunctuation replaces each mapped ASCII punctuation rune of s with its
// full-width form. Every other byte, including invalid UTF-8, is copied as is.
func ConvertPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < utf8.RuneSelf {
			if fw, ok := punctuation[rune(c)]; ok {
				b.WriteRune(fw)
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
