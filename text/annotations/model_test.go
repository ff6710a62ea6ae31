// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotations

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"cogentcore.org/srcedit/text/lines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newModel(n int) (*lines.Lines, *Model) {
	txt := lines.New(strings.Repeat("x", n))
	return txt, NewModel(txt)
}

func TestInsertShifts(t *testing.T) {
	txt, m := newModel(50)
	a := &Annotation{Type: TypeError, Start: 20, End: 30}
	m.Add(a)
	var got *Change
	m.OnChanged(func(ch *Change) { got = ch })
	txt.SetText("12345", 10, 10)
	assert.Equal(t, 25, a.Start)
	assert.Equal(t, 35, a.End)
	require.NotNil(t, got)
	assert.Equal(t, []*Annotation{a}, got.Changed)
	assert.Empty(t, got.Added)
	assert.Empty(t, got.Removed)
	assert.Equal(t, 10, got.Text.Start)
}

func TestEditRules(t *testing.T) {
	txt, m := newModel(50)
	before := &Annotation{Start: 0, End: 10}
	straddle := &Annotation{Start: 5, End: 30}
	covered := &Annotation{Start: 12, End: 18}
	tail := &Annotation{Start: 15, End: 40}
	after := &Annotation{Start: 30, End: 35}
	m.Replace(nil, []*Annotation{after, tail, covered, straddle, before})
	var changing, changed *Change
	var startsAtChanging []int
	m.OnChanging(func(ch *Change) {
		changing = ch
		startsAtChanging = append(startsAtChanging, after.Start)
	})
	m.OnChanged(func(ch *Change) { changed = ch })
	txt.SetText("ab", 10, 20)
	assert.Same(t, changing, changed)
	assert.Equal(t, []int{30}, startsAtChanging)
	assert.Equal(t, []*Annotation{covered, tail}, changed.Removed)
	assert.Equal(t, []*Annotation{straddle, after}, changed.Changed)
	assert.Equal(t, "[0 10] [5 22] [22 27]", spans(m))

	// an insertion at the end of an annotation does not extend it
	txt.SetText("z", 10, 10)
	assert.Equal(t, "[0 10] [5 23] [23 28]", spans(m))
	assert.Equal(t, []int{30, 22}, startsAtChanging)
}

func spans(m *Model) string {
	var s []string
	for _, a := range m.All() {
		s = append(s, fmt.Sprintf("[%d %d]", a.Start, a.End))
	}
	return strings.Join(s, " ")
}

func TestIdentityRemove(t *testing.T) {
	_, m := newModel(10)
	a := &Annotation{Type: TypeTask, Start: 2, End: 4}
	b := &Annotation{Type: TypeTask, Start: 2, End: 4}
	m.Add(a)
	m.Add(b)
	events := 0
	m.OnChanged(func(ch *Change) { events++ })
	m.Remove(a)
	m.Remove(a)
	assert.Equal(t, []*Annotation{b}, m.All())
	assert.Equal(t, 1, events)
}

func TestReplaceAndRemoveAll(t *testing.T) {
	_, m := newModel(10)
	e1 := &Annotation{Type: TypeError, Start: 1, End: 2}
	e2 := &Annotation{Type: TypeError, Start: 3, End: 4}
	w := &Annotation{Type: TypeWarning, Start: 5, End: 6}
	var evs []*Change
	m.OnChanged(func(ch *Change) { evs = append(evs, ch) })
	m.Replace(nil, []*Annotation{e1, w})
	m.Replace([]*Annotation{e1}, []*Annotation{e2})
	require.Len(t, evs, 2)
	assert.Equal(t, []*Annotation{e1}, evs[1].Removed)
	assert.Equal(t, []*Annotation{e2}, evs[1].Added)
	m.Replace(nil, nil)
	assert.Len(t, evs, 2)

	m.RemoveAll(TypeError)
	assert.Equal(t, []*Annotation{w}, m.All())
	m.RemoveAll("")
	assert.Equal(t, 0, m.Len())
}

func TestModify(t *testing.T) {
	_, m := newModel(10)
	a := DefaultTypes().New(TypeBookmark, 0, 1, "mine")
	assert.Equal(t, "mine", a.Title)
	m.Add(a)
	var got *Change
	m.OnChanging(func(ch *Change) { assert.Equal(t, "mine", a.Title) })
	m.OnChanged(func(ch *Change) { got = ch })
	m.Modify(a, Hints{Title: "other"})
	assert.Equal(t, "other", a.Title)
	assert.Equal(t, []*Annotation{a}, got.Changed)
}

func TestQueryEmptyRange(t *testing.T) {
	_, m := newModel(20)
	a := &Annotation{Start: 5, End: 10}
	z := &Annotation{Start: 5, End: 5}
	m.Replace(nil, []*Annotation{a, z})
	assert.ElementsMatch(t, []*Annotation{a, z}, slices.Collect(m.Query(5, 5)))
	assert.Equal(t, []*Annotation{a}, slices.Collect(m.Query(7, 7)))
	assert.Empty(t, slices.Collect(m.Query(10, 12)))
	assert.Empty(t, slices.Collect(m.Query(0, 5)))
}

// TestQueryProperty checks queries against the inclusion predicate
// over all annotations, across random edits.
func TestQueryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := 40
		txt, m := newModel(n)
		for range rapid.IntRange(0, 12).Draw(t, "count") {
			s := rapid.IntRange(0, n).Draw(t, "start")
			e := rapid.IntRange(s, n).Draw(t, "end")
			m.Add(&Annotation{Start: s, End: e})
		}
		for range rapid.IntRange(0, 3).Draw(t, "edits") {
			cc := txt.CharCount()
			s := rapid.IntRange(0, cc).Draw(t, "edit start")
			e := rapid.IntRange(s, cc).Draw(t, "edit end")
			txt.SetText(strings.Repeat("y", rapid.IntRange(0, 6).Draw(t, "added")), s, e)
		}
		all := m.All()
		for i := 1; i < len(all); i++ {
			if all[i].Start < all[i-1].Start {
				t.Fatalf("annotations out of order: %v", all)
			}
		}
		cc := txt.CharCount()
		qs := rapid.IntRange(0, cc).Draw(t, "query start")
		qe := rapid.IntRange(qs, cc).Draw(t, "query end")
		var want []*Annotation
		for _, a := range all {
			if Overlaps(a, qs, qe) {
				want = append(want, a)
			}
		}
		got := slices.Collect(m.Query(qs, qe))
		if len(got) != len(want) {
			t.Fatalf("query [%d, %d): got %v, want %v", qs, qe, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("query [%d, %d): got %v, want %v", qs, qe, got, want)
			}
		}
	})
}

func TestTypeList(t *testing.T) {
	tl := NewTypeList(TypeError, TypeWarning, TypeError)
	assert.Equal(t, []string{TypeError, TypeWarning}, tl.Types())
	assert.Equal(t, 2, tl.TypePriority(TypeWarning))
	assert.Equal(t, 0, tl.TypePriority(TypeTask))
	tl.RemoveType(TypeError)
	assert.Equal(t, 1, tl.TypePriority(TypeWarning))
	assert.False(t, tl.IsVisible(TypeError))
	var _ TypeFilter = tl
}
