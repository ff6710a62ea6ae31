// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical token kinds produced by the
// scanners in package lexer.
package token

import (
	"fmt"
	"strings"
)

// Kinds is the kind of a lexical token.
type Kinds int32

const (
	// Unknown is any text that is not otherwise classified:
	// identifiers, numbers, operators and other punctuation.
	Unknown Kinds = iota

	// Keyword is an identifier found in the keyword set.
	Keyword

	// String is a quoted string, possibly unterminated.
	String

	// LineComment is a // comment up to the end of the line.
	LineComment

	// BlockComment is a /* */ comment, possibly unterminated.
	BlockComment

	// DocComment is a /** */ comment, possibly unterminated.
	DocComment

	// Whitespace is a run of whitespace styled as one opaque token.
	Whitespace

	// WhitespaceTab is a single tab, when whitespace is visible.
	WhitespaceTab

	// WhitespaceSpace is a single space, when whitespace is visible.
	WhitespaceSpace

	// HTMLMarkup is <...> markup within a doc comment.
	HTMLMarkup

	// DocTag is an @word tag within a doc comment.
	DocTag

	// TaskTag is a TODO marker within a comment.
	TaskTag

	// Bracket is a single { } ( ) [ ] < > character.
	Bracket

	// EOF is returned when the scanner is exhausted.
	EOF

	// KindsN is the number of token kinds.
	KindsN
)

var kindNames = [...]string{"Unknown", "Keyword", "String", "LineComment", "BlockComment", "DocComment", "Whitespace", "WhitespaceTab", "WhitespaceSpace", "HTMLMarkup", "DocTag", "TaskTag", "Bracket", "EOF"}

func (tk Kinds) String() string {
	if tk < 0 || tk >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(tk))
	}
	return kindNames[tk]
}

// MarshalText implements [encoding.TextMarshaler].
func (tk Kinds) MarshalText() ([]byte, error) {
	return []byte(tk.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tk *Kinds) UnmarshalText(b []byte) error {
	s := string(b)
	for i, nm := range kindNames {
		if strings.EqualFold(nm, s) {
			*tk = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("token.Kinds: unknown kind %q", s)
}

// IsComment returns true for the three comment kinds.
func (tk Kinds) IsComment() bool {
	return tk == LineComment || tk == BlockComment || tk == DocComment
}

// IsMultiline returns true for kinds that can span lines and are
// therefore recorded in the comment index.
func (tk Kinds) IsMultiline() bool {
	return tk == BlockComment || tk == DocComment
}

// IsWhitespace returns true for the whitespace kinds.
func (tk Kinds) IsWhitespace() bool {
	return tk == Whitespace || tk == WhitespaceTab || tk == WhitespaceSpace
}

// Token is one scanned token, in the local coordinates of the text
// given to the scanner.
type Token struct {
	Kind  Kinds
	Start int
	End   int
}

func (tk Token) String() string {
	return fmt.Sprintf("%v %d %d", tk.Kind, tk.Start, tk.End)
}

// BracePair returns the matching brace-like punctuation for given byte,
// which must be one of { } ( ) [ ] < >. It also returns true if it is
// a right (closing) bracket. ok is false for any other byte.
func BracePair(c byte) (match byte, right, ok bool) {
	switch c {
	case '{':
		return '}', false, true
	case '}':
		return '{', true, true
	case '(':
		return ')', false, true
	case ')':
		return '(', true, true
	case '[':
		return ']', false, true
	case ']':
		return '[', true, true
	case '<':
		return '>', false, true
	case '>':
		return '<', true, true
	}
	return 0, false, false
}
