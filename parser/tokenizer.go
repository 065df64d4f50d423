// File: tokenizer.go
// Title: Stage Tokenizer
// Description: Tokenizes one pipeline stage into quote-aware tokens
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package parser

import (
	"strings"
)

// token is one word of a stage. quoted records whether the token's
// first character opened a quote, which exempts it from flag parsing.
type token struct {
	text   string
	quoted bool
}

// tokenizer walks a stage string byte by byte. Quote and escape
// characters structure the scan and are not part of the token text.
type tokenizer struct {
	input string
	pos   int
}

func newTokenizer(input string) *tokenizer {
	return &tokenizer{input: input}
}

// next returns the next token. The second return value is false when
// the stage is exhausted.
func (t *tokenizer) next() (token, bool) {
	t.skipWhitespace()
	if t.pos >= len(t.input) {
		return token{}, false
	}

	var b strings.Builder
	quoted := false
	first := true

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case ch == '\\':
			t.pos++
			t.readEscaped(&b)
		case ch == '\'' || ch == '"':
			if first {
				quoted = true
			}
			t.pos++
			t.readQuoted(&b, ch)
		case isSpace(ch):
			return token{text: b.String(), quoted: quoted}, true
		default:
			b.WriteByte(ch)
			t.pos++
		}
		first = false
	}
	return token{text: b.String(), quoted: quoted}, true
}

// readEscaped consumes the character after a backslash. A trailing
// backslash with nothing to escape is kept literally.
func (t *tokenizer) readEscaped(b *strings.Builder) {
	if t.pos >= len(t.input) {
		b.WriteByte('\\')
		return
	}
	b.WriteByte(t.input[t.pos])
	t.pos++
}

// readQuoted consumes characters up to the closing quote. Escapes
// still apply inside quotes. An unterminated quote runs to the end of
// the stage.
func (t *tokenizer) readQuoted(b *strings.Builder, quote byte) {
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch == quote {
			t.pos++
			return
		}
		if ch == '\\' {
			t.pos++
			t.readEscaped(b)
			continue
		}
		b.WriteByte(ch)
		t.pos++
	}
}

func (t *tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && isSpace(t.input[t.pos]) {
		t.pos++
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
