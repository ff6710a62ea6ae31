// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "cogentcore.org/srcedit/text/textpos"

// this file contains the exported API for Lines

// Text returns the text in the range [start, end), clamped to the document.
func (ls *Lines) Text(start, end int) string {
	return ls.slice(start, end)
}

// String returns the full text.
func (ls *Lines) String() string {
	return ls.slice(0, ls.charCount())
}

// Line returns the text of the given line without its delimiter.
// It returns "" for an invalid line.
func (ls *Lines) Line(ln int) string {
	if !ls.isValidLine(ln) {
		return ""
	}
	return ls.slice(ls.starts[ln], ls.lineEnd(ln, false))
}

// LineAtOffset returns the line containing the given offset.
// Offsets are clamped to the document.
func (ls *Lines) LineAtOffset(off int) int {
	return ls.lineAtOffset(off)
}

// LineStart returns the offset of the start of the line, or -1.
func (ls *Lines) LineStart(ln int) int {
	if !ls.isValidLine(ln) {
		return -1
	}
	return ls.starts[ln]
}

// LineEnd returns the offset of the end of the line, or -1.
func (ls *Lines) LineEnd(ln int, withDelimiter bool) int {
	return ls.lineEnd(ln, withDelimiter)
}

// CharCount returns the length of the text in bytes.
func (ls *Lines) CharCount() int {
	return ls.charCount()
}

// LineCount returns the number of lines.
func (ls *Lines) LineCount() int {
	return len(ls.starts)
}

// SetText replaces the range [start, end) with text, sending a
// Changing event before and a Changed event after the edit.
// The range is clamped to the document.
func (ls *Lines) SetText(text string, start, end int) {
	start, end = ls.clamp(start), ls.clamp(end)
	if end < start {
		start, end = end, start
	}
	ch := textpos.Change{
		Start:            start,
		RemovedCharCount: end - start,
		AddedCharCount:   len(text),
		RemovedLineCount: CountDelimiters(ls.slice(start, end)),
		AddedLineCount:   CountDelimiters(text),
		Text:             text,
	}
	ls.changing.Call(ch)
	ls.replace(text, start, end)
	ls.changed.Call(ch)
}
