// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "cogentcore.org/srcedit/text/token"

// Scanner is the code scanner: it classifies comments, strings,
// keywords, whitespace, brackets and everything else.
type Scanner struct {
	base

	// Keywords is the keyword set; nil means no keywords.
	Keywords Keywords

	// WhitespaceVisible reports each space and tab as its own token.
	WhitespaceVisible bool

	// CSS disables // line comments and allows - in identifiers.
	CSS bool
}

// NewScanner returns a new code scanner with given keywords.
func NewScanner(kw Keywords) *Scanner {
	return &Scanner{Keywords: kw}
}

func (sc *Scanner) Next() token.Kinds {
	sc.start = sc.pos
	if sc.atEnd() {
		return token.EOF
	}
	c := sc.text[sc.pos]
	switch {
	case c == '/':
		return sc.slash()
	case c == '\'' || c == '"':
		sc.pos = scanString(sc.text, sc.pos)
		return token.String
	case c == '{' || c == '}' || c == '(' || c == ')' || c == '[' || c == ']' || c == '<' || c == '>':
		sc.pos++
		return token.Bracket
	case IsSpaceTab(c):
		if sc.WhitespaceVisible {
			return sc.skipSpaceTab(true)
		}
		sc.skipWhitespace()
		return token.Whitespace
	case IsNewline(c):
		if sc.WhitespaceVisible {
			for !sc.atEnd() && IsNewline(sc.text[sc.pos]) {
				sc.pos++
			}
		} else {
			sc.skipWhitespace()
		}
		return token.Whitespace
	case sc.isIdent(c):
		for !sc.atEnd() && sc.isIdent(sc.text[sc.pos]) {
			sc.pos++
		}
		if sc.Keywords.Has(sc.Data()) {
			return token.Keyword
		}
		return token.Unknown
	}
	sc.pos++
	return token.Unknown
}

func (sc *Scanner) isIdent(c byte) bool {
	return IsIdent(c) || (sc.CSS && c == '-')
}

func (sc *Scanner) skipWhitespace() {
	for !sc.atEnd() {
		c := sc.text[sc.pos]
		if !IsSpaceTab(c) && !IsNewline(c) {
			return
		}
		sc.pos++
	}
}

// slash scans a token starting with '/'.
func (sc *Scanner) slash() token.Kinds {
	switch sc.peek(1) {
	case '/':
		if sc.CSS {
			break
		}
		sc.pos = scanLineComment(sc.text, sc.pos)
		return token.LineComment
	case '*':
		kind := token.BlockComment
		if sc.peek(2) == '*' && sc.peek(3) != '/' {
			kind = token.DocComment
		}
		sc.pos = scanBlockComment(sc.text, sc.pos)
		return kind
	}
	sc.pos++
	return token.Unknown
}

// scanString returns the end of a string starting at the quote at
// pos. A backslash escapes the following byte unless it is a line
// break; a line break or the end of text terminates the string
// without being consumed, so strings never span lines.
func scanString(text string, pos int) int {
	q := text[pos]
	i := pos + 1
	for i < len(text) {
		c := text[i]
		switch {
		case c == '\\':
			if i+1 < len(text) && !IsNewline(text[i+1]) {
				i += 2
				continue
			}
		case c == q:
			return i + 1
		case IsNewline(c):
			return i
		}
		i++
	}
	return i
}

// scanLineComment returns the end of a // comment starting at pos,
// excluding the line break.
func scanLineComment(text string, pos int) int {
	i := pos + 2
	for i < len(text) && !IsNewline(text[i]) {
		i++
	}
	return i
}

// scanBlockComment returns the end of a /* comment starting at pos,
// just past the closing */, or the end of text when unterminated.
func scanBlockComment(text string, pos int) int {
	i := pos + 2
	for i+1 < len(text) {
		if text[i] == '*' && text[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(text)
}
