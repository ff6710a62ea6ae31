// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projection

import (
	"strings"

	"cogentcore.org/srcedit/text/textpos"
)

// Segment is a piece of a view range that comes either from the
// base model or from the substitute content of one projection.
type Segment struct {

	// View is the range of the segment in view coordinates.
	View textpos.Range

	// Projection is the projection whose substitute content holds the
	// segment, or nil for a base segment.
	Projection *Projection

	// Offset is the start of the segment in base coordinates, or in
	// the substitute content when Projection is set.
	Offset int
}

// Base returns true if the segment comes from the base model.
func (sg Segment) Base() bool {
	return sg.Projection == nil
}

// Segments decomposes the view range [start, end) into base and
// substitute segments, in order. Empty segments are omitted.
func (m *Model) Segments(start, end int) []Segment {
	start, end = m.clamp(start), m.clamp(end)
	if end <= start {
		return nil
	}
	var sgs []Segment
	add := func(view, n int, p *Projection, off int) {
		s, e := max(view, start), min(view+n, end)
		if e <= s {
			return
		}
		sgs = append(sgs, Segment{View: textpos.Range{Start: s, End: e}, Projection: p, Offset: off + s - view})
	}
	view, prev := 0, 0
	for _, p := range m.projections {
		if view >= end {
			return sgs
		}
		add(view, p.Start-prev, nil, prev)
		view += p.Start - prev
		cc := p.Text.CharCount()
		add(view, cc, p, 0)
		view += cc
		prev = p.End
	}
	add(view, m.base.CharCount()-prev, nil, prev)
	return sgs
}

// Text returns the view text in the range [start, end).
func (m *Model) Text(start, end int) string {
	var sb strings.Builder
	for _, sg := range m.Segments(start, end) {
		n := sg.View.Len()
		if sg.Base() {
			sb.WriteString(m.base.Text(sg.Offset, sg.Offset+n))
		} else {
			sb.WriteString(sg.Projection.Text.Text(sg.Offset, sg.Offset+n))
		}
	}
	return sb.String()
}

// String returns the full view text.
func (m *Model) String() string {
	return m.Text(0, m.CharCount())
}

// CharCount returns the length of the view text.
func (m *Model) CharCount() int {
	n := m.base.CharCount()
	for _, p := range m.projections {
		n += p.delta()
	}
	return n
}

// LineCount returns the number of view lines.
func (m *Model) LineCount() int {
	n := m.base.LineCount()
	for _, p := range m.projections {
		n += p.lineDelta()
	}
	return n
}

// LineAtOffset returns the view line containing the view offset.
func (m *Model) LineAtOffset(off int) int {
	off = m.clamp(off)
	delta, lineDelta := 0, 0
	for _, p := range m.projections {
		pv := p.Start + delta
		if pv > off {
			break
		}
		if off < pv+p.Text.CharCount() {
			return p.lineIndex + lineDelta + p.Text.LineAtOffset(off-pv)
		}
		lineDelta += p.lineDelta()
		delta += p.delta()
	}
	return m.base.LineAtOffset(off-delta) + lineDelta
}

// LineStart returns the view offset of the start of the view line,
// or -1 if the line is out of range.
func (m *Model) LineStart(ln int) int {
	if ln < 0 || ln >= m.LineCount() {
		return -1
	}
	delta, lineDelta := 0, 0
	for _, p := range m.projections {
		bl := ln - lineDelta
		if p.lineIndex >= bl {
			break
		}
		pln := p.Text.LineCount()
		if p.lineIndex+pln-1 >= bl {
			return p.Text.LineStart(bl-p.lineIndex) + p.Start + delta
		}
		lineDelta += p.lineDelta()
		delta += p.delta()
	}
	return m.base.LineStart(ln-lineDelta) + delta
}

// LineEnd returns the view offset of the end of the view line,
// optionally including its delimiter, or -1 if the line is out of range.
func (m *Model) LineEnd(ln int, withDelimiter bool) int {
	if ln < 0 || ln >= m.LineCount() {
		return -1
	}
	delta, lineDelta := 0, 0
	for _, p := range m.projections {
		bl := ln - lineDelta
		if p.lineIndex > bl {
			break
		}
		pln := p.Text.LineCount()
		if p.lineIndex+pln-1 > bl {
			return p.Text.LineEnd(bl-p.lineIndex, withDelimiter) + p.Start + delta
		}
		lineDelta += p.lineDelta()
		delta += p.delta()
	}
	return m.base.LineEnd(ln-lineDelta, withDelimiter) + delta
}

// Line returns the text of the view line without its delimiter.
func (m *Model) Line(ln int) string {
	st := m.LineStart(ln)
	if st < 0 {
		return ""
	}
	return m.Text(st, m.LineEnd(ln, false))
}

// OnChanging adds a listener called before each view change.
func (m *Model) OnChanging(fun func(ch textpos.Change)) {
	m.changing.Add(fun)
}

// OnChanged adds a listener called after each view change.
func (m *Model) OnChanged(fun func(ch textpos.Change)) {
	m.changed.Add(fun)
}

func (m *Model) clamp(off int) int {
	return min(max(off, 0), m.CharCount())
}
