// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "cogentcore.org/srcedit/text/token"

// FirstScanner is the first-pass scanner used to build the comment
// index. It only distinguishes comments and strings; everything in
// between is returned as large Unknown runs.
type FirstScanner struct {
	base

	// CSS disables // line comments.
	CSS bool
}

func (fs *FirstScanner) Next() token.Kinds {
	fs.start = fs.pos
	if fs.atEnd() {
		return token.EOF
	}
	switch fs.text[fs.pos] {
	case '/':
		switch fs.peek(1) {
		case '/':
			if fs.CSS {
				break
			}
			fs.pos = scanLineComment(fs.text, fs.pos)
			return token.LineComment
		case '*':
			kind := token.BlockComment
			if fs.peek(2) == '*' && fs.peek(3) != '/' {
				kind = token.DocComment
			}
			fs.pos = scanBlockComment(fs.text, fs.pos)
			return kind
		}
	case '\'', '"':
		fs.pos = scanString(fs.text, fs.pos)
		return token.String
	}
	fs.pos++
	for !fs.atEnd() {
		c := fs.text[fs.pos]
		if c == '/' || c == '\'' || c == '"' {
			break
		}
		fs.pos++
	}
	return token.Unknown
}
