// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ApplyDiff edits the model until its text equals the given text,
// using a minimal sequence of replacements computed by a diff of the
// current and new text. Each replacement is one SetText call, so
// observers see ordinary edit notifications. It returns the number
// of edits applied.
func ApplyDiff(m Model, text string) int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(String(m), text, false)
	off, n, removed := 0, 0, 0
	var added strings.Builder
	flush := func() {
		if removed == 0 && added.Len() == 0 {
			return
		}
		m.SetText(added.String(), off, off+removed)
		off += added.Len()
		removed = 0
		added.Reset()
		n++
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			off += len(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += len(d.Text)
		case diffmatchpatch.DiffInsert:
			added.WriteString(d.Text)
		}
	}
	flush()
	return n
}
