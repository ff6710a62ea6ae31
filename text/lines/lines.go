// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides the text model interface consumed by the
// highlighting, annotation and projection packages, and [Lines], a
// rope-backed implementation of it with an incrementally maintained
// line index.
package lines

import (
	"sort"

	"cogentcore.org/srcedit/events"
	"cogentcore.org/srcedit/text/textpos"
	"github.com/zyedidia/rope"
)

// Model is the text buffer contract: offset and line queries plus
// a single edit operation, with two-phase change notifications.
// All offsets are byte offsets.
type Model interface {
	events.Emitter[textpos.Change]

	// Text returns the text in the range [start, end).
	Text(start, end int) string

	// Line returns the text of the given line, without its delimiter.
	Line(ln int) string

	// LineAtOffset returns the line containing the given offset.
	LineAtOffset(off int) int

	// LineStart returns the offset of the first character of the line,
	// or -1 if the line is out of range.
	LineStart(ln int) int

	// LineEnd returns the offset of the end of the line, optionally
	// including its delimiter, or -1 if the line is out of range.
	LineEnd(ln int, withDelimiter bool) int

	// CharCount returns the length of the text.
	CharCount() int

	// LineCount returns the number of lines, which is always at least 1.
	LineCount() int

	// SetText replaces the range [start, end) with text.
	SetText(text string, start, end int)
}

// String returns the full text of the given model.
func String(m Model) string {
	return m.Text(0, m.CharCount())
}

// Lines is a rope-backed [Model]. Line start offsets are cached and
// patched on every edit so that line queries are a binary search.
type Lines struct {

	// text is the document storage.
	text *rope.Node

	// starts holds the start offset of each line; starts[0] is always 0.
	starts []int

	changing events.Listeners[textpos.Change]
	changed  events.Listeners[textpos.Change]
}

// New returns a new Lines holding the given text.
func New(text string) *Lines {
	ls := &Lines{}
	ls.setText(text)
	return ls
}

// setText resets the whole text without sending events.
func (ls *Lines) setText(text string) {
	ls.text = rope.New([]byte(text))
	ls.starts = appendLineStarts([]int{0}, text, 0)
}

// appendLineStarts appends to starts the offset following each line
// delimiter in txt, which begins at offset base. Delimiters are
// "\n", "\r\n" and "\r".
func appendLineStarts(starts []int, txt string, base int) []int {
	for i := 0; i < len(txt); i++ {
		switch txt[i] {
		case '\n':
			starts = append(starts, base+i+1)
		case '\r':
			if i+1 < len(txt) && txt[i+1] == '\n' {
				i++
			}
			starts = append(starts, base+i+1)
		}
	}
	return starts
}

// CountDelimiters returns the number of line delimiters in txt,
// which is the number of lines it adds when inserted.
func CountDelimiters(txt string) int {
	return len(appendLineStarts(nil, txt, 0))
}

func (ls *Lines) charCount() int {
	return ls.text.Len()
}

func (ls *Lines) clamp(off int) int {
	return min(max(off, 0), ls.charCount())
}

func (ls *Lines) slice(start, end int) string {
	start, end = ls.clamp(start), ls.clamp(end)
	if end <= start {
		return ""
	}
	return string(ls.text.Slice(start, end))
}

func (ls *Lines) lineAtOffset(off int) int {
	off = ls.clamp(off)
	return sort.Search(len(ls.starts), func(i int) bool {
		return ls.starts[i] > off
	}) - 1
}

func (ls *Lines) isValidLine(ln int) bool {
	return ln >= 0 && ln < len(ls.starts)
}

func (ls *Lines) lineEnd(ln int, withDelimiter bool) int {
	if !ls.isValidLine(ln) {
		return -1
	}
	if ln+1 == len(ls.starts) {
		return ls.charCount()
	}
	end := ls.starts[ln+1]
	if withDelimiter {
		return end
	}
	dl := ls.slice(max(end-2, ls.starts[ln]), end)
	if len(dl) == 2 && dl == "\r\n" {
		return end - 2
	}
	return end - 1
}

// replace applies the edit to the rope and patches the line index.
func (ls *Lines) replace(text string, start, end int) {
	sl := ls.lineAtOffset(start)
	el := ls.lineAtOffset(end)
	first := max(sl-1, 0)
	n := len(ls.starts)
	winEnd := ls.charCount()
	if el+1 < n {
		winEnd = ls.starts[el+1]
	}
	if end > start {
		ls.text.Remove(start, end)
	}
	if len(text) > 0 {
		ls.text.Insert(start, []byte(text))
	}
	delta := len(text) - (end - start)
	wst := ls.starts[first]
	starts := make([]int, 0, n+CountDelimiters(text))
	starts = append(starts, ls.starts[:first+1]...)
	starts = appendLineStarts(starts, ls.slice(wst, winEnd+delta), wst)
	if el+2 < n {
		for _, st := range ls.starts[el+2:] {
			starts = append(starts, st+delta)
		}
	}
	ls.starts = starts
}
