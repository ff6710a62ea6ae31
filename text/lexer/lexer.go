// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer provides the fast byte-level scanners used to classify
// source text into comments, strings, keywords, whitespace and
// brackets, along with the secondary scanners used inside comments
// and strings.
package lexer

import "cogentcore.org/srcedit/text/token"

// Source is a pull-based token source over a string.
// Offsets are byte offsets into the text given to SetText.
type Source interface {
	// SetText resets the source to scan the given text from the start.
	SetText(text string)

	// Next scans the next token and returns its kind, or
	// [token.EOF] when the text is exhausted.
	Next() token.Kinds

	// StartOffset returns the start offset of the last token.
	StartOffset() int

	// Offset returns the offset just past the last token.
	Offset() int

	// Data returns the text of the last token.
	Data() string
}

// base holds the position state shared by all scanners.
type base struct {
	text  string
	start int
	pos   int
}

func (bs *base) SetText(text string) {
	bs.text = text
	bs.start = 0
	bs.pos = 0
}

func (bs *base) StartOffset() int { return bs.start }

func (bs *base) Offset() int { return bs.pos }

func (bs *base) Data() string { return bs.text[bs.start:bs.pos] }

// peek returns the byte at pos+off, or 0 past the end.
func (bs *base) peek(off int) byte {
	i := bs.pos + off
	if i >= len(bs.text) {
		return 0
	}
	return bs.text[i]
}

func (bs *base) atEnd() bool { return bs.pos >= len(bs.text) }

// skipSpaceTab consumes a run of spaces or tabs when visible is false,
// and only one when it is true, returning the kind to report.
func (bs *base) skipSpaceTab(visible bool) token.Kinds {
	c := bs.text[bs.pos]
	if visible {
		bs.pos++
		if c == '\t' {
			return token.WhitespaceTab
		}
		return token.WhitespaceSpace
	}
	for !bs.atEnd() && IsSpaceTab(bs.text[bs.pos]) {
		bs.pos++
	}
	return token.Whitespace
}

// Tokens scans all of text with given source, returning the tokens
// offset by start.
func Tokens(src Source, text string, start int) []token.Token {
	src.SetText(text)
	var tks []token.Token
	for {
		k := src.Next()
		if k == token.EOF {
			return tks
		}
		tks = append(tks, token.Token{Kind: k, Start: start + src.StartOffset(), End: start + src.Offset()})
	}
}

// IsIdent returns true for bytes that may appear in an identifier:
// ASCII letters and digits, underscore, and every byte of a multi-byte
// UTF-8 sequence.
func IsIdent(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c >= 0x80
}

// IsSpaceTab returns true for space and tab.
func IsSpaceTab(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsNewline returns true for carriage return and line feed.
func IsNewline(c byte) bool {
	return c == '\r' || c == '\n'
}
