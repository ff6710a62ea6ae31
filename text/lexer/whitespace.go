// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "cogentcore.org/srcedit/text/token"

// WhitespaceScanner splits text into single space and tab tokens
// and Unknown runs. It is used inside strings when whitespace is
// visible.
type WhitespaceScanner struct {
	base
}

func (ws *WhitespaceScanner) Next() token.Kinds {
	ws.start = ws.pos
	if ws.atEnd() {
		return token.EOF
	}
	if IsSpaceTab(ws.text[ws.pos]) {
		return ws.skipSpaceTab(true)
	}
	for !ws.atEnd() && !IsSpaceTab(ws.text[ws.pos]) {
		ws.pos++
	}
	return token.Unknown
}
