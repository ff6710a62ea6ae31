// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "cogentcore.org/srcedit/text/token"

// TaskMarker is the marker recognized as a task tag in comments.
const TaskMarker = "TODO"

// CommentScanner scans the inside of a comment, yielding markup and
// doc tags (doc comments only), task tags, whitespace and Unknown
// runs.
type CommentScanner struct {
	base

	// WhitespaceVisible reports each space and tab as its own token.
	WhitespaceVisible bool

	kind token.Kinds
}

// SetKind sets the kind of comment being scanned, which must be
// one of the comment kinds.
func (cs *CommentScanner) SetKind(kind token.Kinds) {
	cs.kind = kind
}

func (cs *CommentScanner) Next() token.Kinds {
	cs.start = cs.pos
	if cs.atEnd() {
		return token.EOF
	}
	c := cs.text[cs.pos]
	doc := cs.kind == token.DocComment
	switch {
	case IsSpaceTab(c):
		return cs.skipSpaceTab(cs.WhitespaceVisible)
	case c == '<' && doc:
		for !cs.atEnd() {
			if cs.text[cs.pos] == '>' {
				cs.pos++
				return token.HTMLMarkup
			}
			cs.pos++
		}
		return token.Unknown
	case c == '@' && doc:
		cs.pos++
		for !cs.atEnd() && IsIdent(cs.text[cs.pos]) {
			cs.pos++
		}
		return token.DocTag
	case c == 'T' && cs.isTask(cs.pos):
		cs.pos += len(TaskMarker)
		return token.TaskTag
	}
	cs.pos++
	for !cs.atEnd() {
		c := cs.text[cs.pos]
		if IsSpaceTab(c) || (c == 'T' && cs.isTask(cs.pos)) || (doc && (c == '<' || c == '@')) {
			break
		}
		cs.pos++
	}
	return token.Unknown
}

// isTask returns true if the task marker starts at pos and is not
// followed by an identifier character. The preceding character does
// not matter, so the marker in xTODO is found.
func (cs *CommentScanner) isTask(pos int) bool {
	end := pos + len(TaskMarker)
	if end > len(cs.text) || cs.text[pos:end] != TaskMarker {
		return false
	}
	return end == len(cs.text) || !IsIdent(cs.text[end])
}
