// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"log/slog"
	"strings"
)

// Keywords is a set of keywords matched exactly against identifiers.
// A nil set contains nothing.
type Keywords map[string]struct{}

// NewKeywords returns a keyword set containing given words.
// Empty words are skipped with a warning.
func NewKeywords(words ...string) Keywords {
	kw := make(Keywords, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			slog.Warn("lexer: skipping empty keyword")
			continue
		}
		kw[w] = struct{}{}
	}
	return kw
}

// Has returns true if word is a keyword.
func (kw Keywords) Has(word string) bool {
	_, ok := kw[word]
	return ok
}

// CodeKeywords is the default keyword list for C-like languages.
var CodeKeywords = []string{
	"break", "case", "catch", "class", "const", "continue",
	"debugger", "default", "delete", "do", "else", "enum", "export",
	"extends", "false", "finally", "for", "function", "if", "implements",
	"import", "in", "instanceof", "interface", "let", "new", "null",
	"package", "private", "protected", "public", "return", "static",
	"super", "switch", "this", "throw", "true", "try", "typeof",
	"undefined", "var", "void", "while", "with", "yield",
}
