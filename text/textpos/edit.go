// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "fmt"

// Change describes one edit to a text model: RemovedCharCount bytes
// starting at Start were replaced by AddedCharCount bytes.
// It is the payload of both the Changing and Changed notifications.
type Change struct {

	// Start is the offset at which the edit happens.
	Start int

	// RemovedCharCount is the number of bytes removed at Start.
	RemovedCharCount int

	// AddedCharCount is the number of bytes inserted at Start.
	AddedCharCount int

	// RemovedLineCount is the number of line delimiters removed.
	RemovedLineCount int

	// AddedLineCount is the number of line delimiters inserted.
	AddedLineCount int

	// Text is the inserted text.
	Text string
}

// End returns the end of the removed range, in pre-edit offsets.
func (ch Change) End() int {
	return ch.Start + ch.RemovedCharCount
}

// Delta returns the net change in length caused by the edit.
func (ch Change) Delta() int {
	return ch.AddedCharCount - ch.RemovedCharCount
}

// AdjustOffset adjusts the given pre-edit offset as a function of the
// edit. Offsets at or after the end of the removed range move by Delta,
// so an offset at an insertion point ends up after the inserted text.
// Offsets before the edit are unchanged, and offsets strictly inside
// the removed range return -1.
func (ch Change) AdjustOffset(off int) int {
	if off >= ch.End() {
		return off + ch.Delta()
	}
	if off <= ch.Start {
		return off
	}
	return -1
}

func (ch Change) String() string {
	return fmt.Sprintf("@%d -%d +%d (lines -%d +%d)", ch.Start, ch.RemovedCharCount, ch.AddedCharCount, ch.RemovedLineCount, ch.AddedLineCount)
}
