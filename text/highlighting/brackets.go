// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"cogentcore.org/srcedit/text/annotations"
	"cogentcore.org/srcedit/text/projection"
	"cogentcore.org/srcedit/text/token"
)

// MatchBracket returns the base offset of the bracket matching the one
// at base offset off, or -1 if there is none. Brackets inside strings
// and comments are ignored. At most Settings.MaxBracketLines lines
// beyond the line of off are scanned, or all lines if it is 0.
func (st *Styler) MatchBracket(off int) int {
	c := st.base.Text(off, off+1)
	if c == "" {
		return -1
	}
	open := c[0]
	match, right, ok := token.BracePair(open)
	if !ok {
		return -1
	}
	if right {
		open, match = match, open
	}
	ln := st.base.LineAtOffset(off)
	bs := st.lineBrackets(ln, open, match)
	idx := -1
	for i, b := range bs {
		if abs(b)-1 == off {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1
	}
	maxLines := st.Settings.MaxBracketLines
	nlines := st.base.LineCount()
	level := 1
	if !right {
		for {
			for _, b := range bs[idx+1:] {
				if level = level + sign(b); level == 0 {
					return abs(b) - 1
				}
			}
			ln++
			if ln >= nlines || (maxLines > 0 && ln-st.base.LineAtOffset(off) > maxLines) {
				return -1
			}
			bs, idx = st.lineBrackets(ln, open, match), -1
		}
	}
	for {
		for i := idx - 1; i >= 0; i-- {
			if level = level - sign(bs[i]); level == 0 {
				return abs(bs[i]) - 1
			}
		}
		ln--
		if ln < 0 || (maxLines > 0 && st.base.LineAtOffset(off)-ln > maxLines) {
			return -1
		}
		bs = st.lineBrackets(ln, open, match)
		idx = len(bs)
	}
}

// SetCaret updates the current and matching bracket annotations for
// the view caret offset, looking at the character before the caret.
func (st *Styler) SetCaret(caret int) {
	if st.anns == nil {
		return
	}
	var add []*annotations.Annotation
	off := caret - 1
	if off >= 0 && st.proj != nil {
		off = st.proj.MapOffset(off, false)
	}
	if off >= 0 && off != projection.Unmapped {
		if m := st.MatchBracket(off); m >= 0 {
			add = append(add,
				st.Types.New(annotations.TypeCurrentBracket, off, off+1, ""),
				st.Types.New(annotations.TypeMatchingBracket, m, m+1, ""))
		}
	}
	st.anns.Replace(st.brackets, add)
	st.brackets = add
}

// lineBrackets returns the open and close brackets of the base line
// outside of strings and comments, in order. An open bracket at
// offset o is o+1 and a close bracket is -(o+1).
func (st *Styler) lineBrackets(ln int, lb, rb byte) []int {
	start, end := st.base.LineStart(ln), st.base.LineEnd(ln, false)
	var bs []int
	pos := start
	i := st.search(start, true, 0)
	for ; i < len(st.comments) && st.comments[i].Start < end; i++ {
		c := st.comments[i]
		if c.Start > pos {
			bs = st.codeBrackets(pos, c.Start, lb, rb, bs)
		}
		pos = min(c.End, end)
	}
	if pos < end {
		bs = st.codeBrackets(pos, end, lb, rb, bs)
	}
	return bs
}

// codeBrackets appends the brackets of the code in [start, end).
func (st *Styler) codeBrackets(start, end int, lb, rb byte, bs []int) []int {
	sc := &st.scanner
	sc.SetText(st.base.Text(start, end))
	for k := sc.Next(); k != token.EOF; k = sc.Next() {
		if k != token.Bracket {
			continue
		}
		o := start + sc.StartOffset()
		switch sc.Data()[0] {
		case lb:
			bs = append(bs, o+1)
		case rb:
			bs = append(bs, -(o + 1))
		}
	}
	return bs
}

func sign(b int) int {
	if b < 0 {
		return -1
	}
	return 1
}

func abs(b int) int {
	if b < 0 {
		return -b
	}
	return b
}
