// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"strings"
	"testing"

	"cogentcore.org/srcedit/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLineQueries(t *testing.T) {
	ls := New("line0\nline1\r\n\rline3")
	assert.Equal(t, 4, ls.LineCount())
	assert.Equal(t, 19, ls.CharCount())
	assert.Equal(t, "line0", ls.Line(0))
	assert.Equal(t, "line1", ls.Line(1))
	assert.Equal(t, "", ls.Line(2))
	assert.Equal(t, "line3", ls.Line(3))
	assert.Equal(t, "", ls.Line(4))

	assert.Equal(t, 6, ls.LineStart(1))
	assert.Equal(t, 11, ls.LineEnd(1, false))
	assert.Equal(t, 13, ls.LineEnd(1, true))
	assert.Equal(t, 13, ls.LineStart(2))
	assert.Equal(t, 13, ls.LineEnd(2, false))
	assert.Equal(t, 14, ls.LineEnd(2, true))
	assert.Equal(t, 19, ls.LineEnd(3, true))
	assert.Equal(t, -1, ls.LineStart(-1))
	assert.Equal(t, -1, ls.LineEnd(4, false))

	assert.Equal(t, 0, ls.LineAtOffset(5))
	assert.Equal(t, 1, ls.LineAtOffset(6))
	assert.Equal(t, 1, ls.LineAtOffset(12))
	assert.Equal(t, 3, ls.LineAtOffset(19))
	assert.Equal(t, 3, ls.LineAtOffset(100))
	assert.Equal(t, "ine1", ls.Text(7, 11))
}

func TestEmpty(t *testing.T) {
	ls := New("")
	assert.Equal(t, 1, ls.LineCount())
	assert.Equal(t, 0, ls.CharCount())
	assert.Equal(t, "", ls.Line(0))
	assert.Equal(t, 0, ls.LineEnd(0, true))
	ls.SetText("a\nb", 0, 0)
	assert.Equal(t, 2, ls.LineCount())
	assert.Equal(t, "a\nb", ls.String())
}

func TestSetTextEvents(t *testing.T) {
	ls := New("abc\ndef")
	var got []string
	ls.OnChanging(func(ch textpos.Change) {
		got = append(got, "changing "+ls.String())
		assert.Equal(t, textpos.Change{Start: 2, RemovedCharCount: 3, AddedCharCount: 4, RemovedLineCount: 1, AddedLineCount: 2, Text: "X\nY\n"}, ch)
	})
	ls.OnChanged(func(ch textpos.Change) {
		got = append(got, "changed "+ls.String())
	})
	ls.OnChangedFirst(func(ch textpos.Change) {
		got = append(got, "first")
	})
	ls.SetText("X\nY\n", 2, 5)
	assert.Equal(t, []string{"changing abc\ndef", "first", "changed abX\nY\nef"}, got)
	assert.Equal(t, 3, ls.LineCount())
}

func TestCRLFJoin(t *testing.T) {
	ls := New("a\rb")
	assert.Equal(t, 2, ls.LineCount())
	ls.SetText("\n", 2, 2)
	assert.Equal(t, "a\r\nb", ls.String())
	assert.Equal(t, 2, ls.LineCount())
	assert.Equal(t, 3, ls.LineStart(1))
	ls.SetText("", 1, 2)
	assert.Equal(t, "a\nb", ls.String())
	assert.Equal(t, 2, ls.LineStart(1))
}

// TestLineIndexProperty checks that the incrementally patched line
// index always equals the index of a fresh Lines with the same text.
func TestLineIndexProperty(t *testing.T) {
	alphabet := rapid.SampledFrom([]string{"a", "b", "\n", "\r", "\r\n", " "})
	rapid.Check(t, func(t *rapid.T) {
		ls := New(strings.Join(rapid.SliceOf(alphabet).Draw(t, "init"), ""))
		n := rapid.IntRange(1, 20).Draw(t, "edits")
		for range n {
			cc := ls.CharCount()
			st := rapid.IntRange(0, cc).Draw(t, "start")
			ed := rapid.IntRange(st, cc).Draw(t, "end")
			txt := strings.Join(rapid.SliceOfN(alphabet, 0, 4).Draw(t, "text"), "")
			ls.SetText(txt, st, ed)
			fresh := New(ls.String())
			require.Equal(t, fresh.starts, ls.starts, "text %q", ls.String())
		}
	})
}

func TestApplyDiff(t *testing.T) {
	ls := New("func a() {\n\treturn 1\n}\n")
	var edits []textpos.Change
	ls.OnChanged(func(ch textpos.Change) {
		edits = append(edits, ch)
	})
	trg := "func b() {\n\t// note\n\treturn 1\n}\n"
	n := ApplyDiff(ls, trg)
	assert.Equal(t, trg, ls.String())
	assert.Equal(t, n, len(edits))
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, ApplyDiff(ls, trg))
}
