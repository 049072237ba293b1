// Package convert turns daoben text into Han script.
//
// A single pass over the input produces two parallel renderings:
//
//   - Plain: every dictionary word replaced by its target text, every other
//     token kept with ASCII punctuation swapped for full-width glyphs.
//   - HTML: the same output, escaped, with each dictionary word wrapped in a
//     <span> whose title attribute shows "<word> : <gloss>".
//
// Unknown words and characters are never an error: they are passed through
// unchanged, so a partial dictionary still yields lossless output.
package convert

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Dictionary is the read-only lookup used by a Converter.
//
// *dictionary.Table satisfies it.
type Dictionary interface {
	Lookup(word string) (string, bool)
	Gloss(word string) string
}

// Kind classifies a token.
type Kind int

const (
	// Separator is a run of non-word characters: punctuation, spaces, symbols.
	Separator Kind = iota
	// Word is a run of word characters with no dictionary match.
	Word
	// Match is a lowercase word found in the dictionary.
	Match
)

func (k Kind) String() string {
	switch k {
	case Separator:
		return "separator"
	case Word:
		return "word"
	case Match:
		return "match"
	default:
		return "unknown"
	}
}

// Token is one element of the lossless partition of the input.
//
// Replacement and Gloss are only set for Match tokens.
type Token struct {
	Kind        Kind
	Text        string
	Replacement string
	Gloss       string
}

// Result holds both renderings of a conversion.
type Result struct {
	Tokens []Token
	Plain  string
	HTML   string
}

// Converter applies a dictionary to text. It holds no mutable state and may
// be shared between goroutines.
type Converter struct {
	dict Dictionary
}

// New returns a Converter backed by dict. A nil dict converts punctuation
// only.
func New(dict Dictionary) *Converter {
	return &Converter{dict: dict}
}

// Convert splits text into tokens and renders them.
func (c *Converter) Convert(text string) Result {
	raw := Split(text)
	tokens := make([]Token, 0, len(raw))

	var plain, body strings.Builder
	plain.Grow(len(text))
	body.Grow(len(text) * 2)

	for _, r := range raw {
		tok := c.Classify(r)
		tokens = append(tokens, tok)
		plain.WriteString(tok.Plain())
		body.WriteString(tok.HTML())
	}

	return Result{
		Tokens: tokens,
		Plain:  plain.String(),
		HTML:   body.String(),
	}
}

// Classify decides how a single raw token is rendered.
func (c *Converter) Classify(raw string) Token {
	if !isWordToken(raw) {
		return Token{Kind: Separator, Text: raw}
	}
	if c.dict != nil && isLowerWord(raw) {
		if rep, ok := c.dict.Lookup(raw); ok {
			return Token{
				Kind:        Match,
				Text:        raw,
				Replacement: rep,
				Gloss:       c.dict.Gloss(raw),
			}
		}
	}
	return Token{Kind: Word, Text: raw}
}

// Plain returns the token's plain-text rendering.
func (t Token) Plain() string {
	if t.Kind == Match {
		return t.Replacement
	}
	return ConvertPunctuation(t.Text)
}

// HTML returns the token's HTML fragment.
func (t Token) HTML() string {
	if t.Kind != Match {
		escaped := html.EscapeString(ConvertPunctuation(t.Text))
		return strings.ReplaceAll(escaped, "\n", "\n<br>")
	}

	var b strings.Builder
	b.WriteString("<span")
	switch {
	case IsParticle(t.Text):
		b.WriteString(` class="mark"`)
	case IsPreposition(t.Text):
		b.WriteString(` class="prepo"`)
	}
	b.WriteString(` title="`)
	b.WriteString(html.EscapeString(t.Text + " : " + t.Gloss))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(t.Replacement))
	b.WriteString("</span>")
	return b.String()
}

// isLowerWord reports whether every rune of s is a lowercase letter.
func isLowerWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
