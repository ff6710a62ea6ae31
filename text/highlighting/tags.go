// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"

	"cogentcore.org/srcedit/text/token"
	"github.com/alecthomas/chroma/v2"
)

// Tags is the style tag of a span. Tags name what a span is;
// renderers map them to concrete styles.
type Tags int32

const (
	// Plain is unstyled text.
	Plain Tags = iota
	Keyword
	String
	Comment
	DocComment
	DocHTMLMarkup
	DocTag
	TaskTag
	Tab
	Space

	TagsN
)

var tagNames = [...]string{"Plain", "Keyword", "String", "Comment", "DocComment", "DocHTMLMarkup", "DocTag", "TaskTag", "Tab", "Space"}

func (tg Tags) String() string {
	if tg < 0 || tg >= TagsN {
		return fmt.Sprintf("Tags(%d)", int32(tg))
	}
	return tagNames[tg]
}

// MarshalText implements [encoding.TextMarshaler].
func (tg Tags) MarshalText() ([]byte, error) {
	return []byte(tg.String()), nil
}

// Chroma returns the chroma token type used to render the tag.
func (tg Tags) Chroma() chroma.TokenType {
	switch tg {
	case Keyword:
		return chroma.Keyword
	case String:
		return chroma.LiteralString
	case Comment:
		return chroma.Comment
	case DocComment:
		return chroma.CommentSpecial
	case DocHTMLMarkup:
		return chroma.NameTag
	case DocTag:
		return chroma.NameDecorator
	case TaskTag:
		return chroma.GenericStrong
	case Tab, Space:
		return chroma.TextWhitespace
	}
	return chroma.Text
}

// commentTag returns the tag of a comment of the given kind.
func commentTag(kind token.Kinds) Tags {
	if kind == token.DocComment {
		return DocComment
	}
	return Comment
}

// StyleSpan is a styled range of text. Links carry their target URL.
type StyleSpan struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Tag   Tags   `yaml:"tag"`
	URL   string `yaml:"url,omitempty"`
}

func (sp StyleSpan) String() string {
	if sp.URL != "" {
		return fmt.Sprintf("%v %d %d %s", sp.Tag, sp.Start, sp.End, sp.URL)
	}
	return fmt.Sprintf("%v %d %d", sp.Tag, sp.Start, sp.End)
}

// CommentRange is an indexed block or doc comment.
type CommentRange struct {
	Start int         `yaml:"start"`
	End   int         `yaml:"end"`
	Kind  token.Kinds `yaml:"kind"`
}

// ChromaTokens converts the text, starting at offset start, and its
// spans into chroma tokens, for rendering with chroma formatters.
// Links are rendered underlined.
func ChromaTokens(text string, start int, spans []StyleSpan) []chroma.Token {
	var toks []chroma.Token
	pos := 0
	for _, sp := range spans {
		s, e := sp.Start-start, sp.End-start
		if s > pos {
			toks = append(toks, chroma.Token{Type: chroma.Text, Value: text[pos:s]})
		}
		typ := sp.Tag.Chroma()
		if sp.URL != "" {
			typ = chroma.GenericUnderline
		}
		toks = append(toks, chroma.Token{Type: typ, Value: text[s:e]})
		pos = e
	}
	if pos < len(text) {
		toks = append(toks, chroma.Token{Type: chroma.Text, Value: text[pos:]})
	}
	return toks
}
