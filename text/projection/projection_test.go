// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projection

import (
	"slices"
	"strings"
	"testing"

	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMapOffset(t *testing.T) {
	base := lines.New(strings.Repeat("x", 60))
	m := NewModel(base)
	require.NoError(t, m.AddProjection(New(20, 40, "")))
	assert.Equal(t, 25, m.MapOffset(45, true))
	assert.Equal(t, 45, m.MapOffset(25, false))
	assert.Equal(t, Unmapped, m.MapOffset(30, true))
	assert.Equal(t, Unmapped, m.MapOffset(20, true))
	assert.Equal(t, 10, m.MapOffset(10, true))
	assert.Equal(t, 40, m.CharCount())
	assert.Equal(t, 20, m.ViewOffset(20))
	assert.Equal(t, 20, m.ViewOffset(30))
	assert.Equal(t, 25, m.ViewOffset(45))

	m.RemoveProjection(m.Projections()[0])
	assert.Equal(t, 45, m.MapOffset(45, true))
	assert.Empty(t, m.Projections())
}

func TestAddRemoveEvents(t *testing.T) {
	m := NewModel(lines.New("0123456789"))
	var evs []string
	m.OnChanging(func(ch textpos.Change) { evs = append(evs, "changing "+ch.String()) })
	m.OnChanged(func(ch textpos.Change) { evs = append(evs, "changed "+ch.String()) })
	p := New(2, 5, "ab")
	require.NoError(t, m.AddProjection(p))
	assert.Equal(t, "01ab56789", m.String())
	assert.ErrorIs(t, m.AddProjection(New(4, 6, "")), ErrOverlap)
	assert.ErrorIs(t, m.AddProjection(New(3, 3, "")), ErrOverlap)
	assert.Error(t, m.AddProjection(New(8, 20, "")))
	m.RemoveProjection(p)
	m.RemoveProjection(p)
	assert.Equal(t, "0123456789", m.String())
	want := textpos.Change{Start: 2, RemovedCharCount: 3, AddedCharCount: 2}
	back := textpos.Change{Start: 2, RemovedCharCount: 2, AddedCharCount: 3}
	assert.Equal(t, []string{
		"changing " + want.String(), "changed " + want.String(),
		"changing " + back.String(), "changed " + back.String(),
	}, evs)
}

func TestLineQueries(t *testing.T) {
	base := lines.New("l0\nl1\nl2\nl3\nl4")
	m := NewModel(base)
	// fold lines 2 and 3 into the line before them
	require.NoError(t, m.AddProjection(New(base.LineStart(2), base.LineEnd(3, true), "")))
	assert.Equal(t, "l0\nl1\nl4", m.String())
	assert.Equal(t, 3, m.LineCount())
	assert.Equal(t, "l4", m.Line(2))
	assert.Equal(t, 6, m.LineStart(2))
	assert.Equal(t, 5, m.LineEnd(1, false))
	assert.Equal(t, 2, m.LineAtOffset(7))
	assert.Equal(t, -1, m.LineStart(3))
	assert.Equal(t, -1, m.LineEnd(-1, false))
}

func TestSegments(t *testing.T) {
	m := NewModel(lines.New("0123456789"))
	p := New(2, 5, "ab")
	require.NoError(t, m.AddProjection(p))
	sgs := m.Segments(1, 6)
	require.Len(t, sgs, 3)
	assert.Equal(t, Segment{View: textpos.Range{Start: 1, End: 2}, Offset: 1}, sgs[0])
	assert.Equal(t, Segment{View: textpos.Range{Start: 2, End: 4}, Projection: p, Offset: 0}, sgs[1])
	assert.Equal(t, Segment{View: textpos.Range{Start: 4, End: 6}, Offset: 5}, sgs[2])
	assert.True(t, sgs[0].Base())
	assert.Nil(t, m.Segments(6, 6))
}

func TestSetText(t *testing.T) {
	setup := func() (*lines.Lines, *Model) {
		base := lines.New("0123456789")
		m := NewModel(base)
		require.NoError(t, m.AddProjection(New(2, 5, "abc")))
		return base, m
	}

	// starts inside substitute content
	base, m := setup()
	m.SetText("Z", 3, 7)
	assert.Equal(t, "01aZ789", m.String())
	assert.Equal(t, "01234Z789", base.String())
	assert.Equal(t, "[2, 5) -> \"a\"", m.Projections()[0].String())

	// ends inside substitute content
	base, m = setup()
	m.SetText("Z", 1, 3)
	assert.Equal(t, "0Zbc56789", m.String())
	assert.Equal(t, "0Z56789", base.String())
	assert.Equal(t, "[2, 2) -> \"bc\"", m.Projections()[0].String())

	// covers the projection
	base, m = setup()
	m.SetText("", 1, 6)
	assert.Equal(t, "06789", m.String())
	assert.Equal(t, "06789", base.String())
	assert.Empty(t, m.Projections())

	// entirely inside substitute content
	base, m = setup()
	var got []textpos.Change
	m.OnChanged(func(ch textpos.Change) { got = append(got, ch) })
	m.SetText("Q", 3, 4)
	assert.Equal(t, "01aQc56789", m.String())
	assert.Equal(t, "0123456789", base.String())
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Start)

	// after the projection shifts nothing, before shifts it
	base, m = setup()
	m.SetText("xy", 0, 0)
	assert.Equal(t, "xy01abc56789", m.String())
	assert.Equal(t, "[4, 7) -> \"abc\"", m.Projections()[0].String())
	m.SetText("", 9, 10)
	assert.Equal(t, "xy01abc5689", m.String())
	assert.Equal(t, "xy012345689", base.String())
}

func TestBaseEdits(t *testing.T) {
	base := lines.New("0123456789")
	m := NewModel(base)
	var order []string
	base.OnChanged(func(ch textpos.Change) {
		order = append(order, m.String())
	})
	dropped := 0
	p := New(2, 5, "")
	p.Dropped = func(p *Projection) { dropped++ }
	require.NoError(t, m.AddProjection(p))

	var views []textpos.Change
	m.OnChanged(func(ch textpos.Change) { views = append(views, ch) })

	base.SetText("ab", 0, 0)
	assert.Equal(t, "[4, 7) -> \"\"", p.String())
	assert.Equal(t, "ab0156789", m.String())
	assert.Equal(t, []string{"ab0156789"}, order)
	require.Len(t, views, 1)
	assert.Equal(t, 0, views[0].Start)

	base.SetText("", 8, 9)
	assert.Equal(t, "ab015789", m.String())
	assert.Equal(t, 5, views[1].Start)

	base.SetText("x", 5, 5)
	assert.Equal(t, 1, dropped)
	assert.Empty(t, m.Projections())
	assert.Equal(t, base.String(), m.String())
}

// TestMapOffsetRoundTrip checks that every mapped base offset maps back.
func TestMapOffsetRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := randomModel(t)
		for off := 0; off <= m.Base().CharCount(); off++ {
			v := m.MapOffset(off, true)
			if v == Unmapped {
				continue
			}
			if back := m.MapOffset(v, false); back != off {
				t.Fatalf("offset %d maps to %d and back to %d", off, v, back)
			}
		}
	})
}

// TestStitchedQueries checks the view queries against a model of the
// materialized view text.
func TestStitchedQueries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := randomModel(t)
		ref := lines.New(m.String())
		if m.CharCount() != ref.CharCount() || m.LineCount() != ref.LineCount() {
			t.Fatalf("counts %d/%d, want %d/%d", m.CharCount(), m.LineCount(), ref.CharCount(), ref.LineCount())
		}
		for ln := range ref.LineCount() {
			if m.LineStart(ln) != ref.LineStart(ln) || m.LineEnd(ln, false) != ref.LineEnd(ln, false) ||
				m.LineEnd(ln, true) != ref.LineEnd(ln, true) || m.Line(ln) != ref.Line(ln) {
				t.Fatalf("line %d: got [%d %d %q], want [%d %d %q]", ln, m.LineStart(ln), m.LineEnd(ln, true), m.Line(ln),
					ref.LineStart(ln), ref.LineEnd(ln, true), ref.Line(ln))
			}
		}
		for off := 0; off <= ref.CharCount(); off++ {
			if m.LineAtOffset(off) != ref.LineAtOffset(off) {
				t.Fatalf("offset %d: line %d, want %d", off, m.LineAtOffset(off), ref.LineAtOffset(off))
			}
		}
	})
}

// TestSetTextProperty checks that editing the view edits its text
// exactly, whatever projections the edit crosses.
func TestSetTextProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := randomModel(t)
		n := m.CharCount()
		start := rapid.IntRange(0, n).Draw(t, "start")
		end := rapid.IntRange(start, n).Draw(t, "end")
		text := rapid.SampledFrom([]string{"", "q", "r\ns"}).Draw(t, "text")
		before := m.String()
		m.SetText(text, start, end)
		want := before[:start] + text + before[end:]
		if got := m.String(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
		ref := lines.New(want)
		if m.LineCount() != ref.LineCount() {
			t.Fatalf("line count %d, want %d", m.LineCount(), ref.LineCount())
		}
	})
}

func randomModel(t *rapid.T) *Model {
	parts := rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "\n"})).Draw(t, "base")
	base := lines.New(strings.Join(parts, ""))
	m := NewModel(base)
	n := base.CharCount()
	cuts := rapid.SliceOfN(rapid.IntRange(0, n), 0, 8).Draw(t, "cuts")
	slices.Sort(cuts)
	for i := 0; i+1 < len(cuts); i += 2 {
		sub := rapid.SampledFrom([]string{"", "X", "Y\nZ", "\n"}).Draw(t, "sub")
		m.AddProjection(New(cuts[i], cuts[i+1], sub))
	}
	return m
}
