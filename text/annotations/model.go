// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotations

import (
	"iter"
	"sort"

	"cogentcore.org/srcedit/events"
	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/textpos"
)

// Change describes one change to a [Model]. Text is set when the
// change was caused by an edit of the text model.
type Change struct {
	Added   []*Annotation
	Removed []*Annotation
	Changed []*Annotation
	Text    *textpos.Change
}

// IsEmpty returns true if the change lists no annotations.
func (ch *Change) IsEmpty() bool {
	return len(ch.Added) == 0 && len(ch.Removed) == 0 && len(ch.Changed) == 0
}

// Model is the annotation index over a text model. Annotations are
// kept sorted by start and are updated on every text edit.
type Model struct {
	text lines.Model

	// anns holds the annotations sorted by start.
	anns []*Annotation

	// maxSpan is an upper bound on the length of any annotation,
	// used to bound the backward reach of a query.
	maxSpan int

	changing events.Listeners[*Change]
	changed  events.Listeners[*Change]
}

// NewModel returns a new annotation index over the given text model.
func NewModel(text lines.Model) *Model {
	m := &Model{text: text}
	text.OnChanged(m.textChanged)
	return m
}

// Text returns the text model.
func (m *Model) Text() lines.Model {
	return m.text
}

// Len returns the number of annotations.
func (m *Model) Len() int {
	return len(m.anns)
}

// All returns all annotations, in start order.
func (m *Model) All() []*Annotation {
	return append([]*Annotation(nil), m.anns...)
}

// OnChanging adds a listener called before each change.
func (m *Model) OnChanging(fun func(ch *Change)) {
	m.changing.Add(fun)
}

// OnChanged adds a listener called after each change.
func (m *Model) OnChanged(fun func(ch *Change)) {
	m.changed.Add(fun)
}

// Add adds the annotation.
func (m *Model) Add(a *Annotation) {
	m.Replace(nil, []*Annotation{a})
}

// Remove removes the annotation, which is matched by identity.
// Removing an annotation that is not in the model does nothing.
func (m *Model) Remove(a *Annotation) {
	m.Replace([]*Annotation{a}, nil)
}

// RemoveAll removes all annotations of the given type,
// or all annotations if typ is empty.
func (m *Model) RemoveAll(typ string) {
	var rm []*Annotation
	for _, a := range m.anns {
		if typ == "" || a.Type == typ {
			rm = append(rm, a)
		}
	}
	m.Replace(rm, nil)
}

// Replace removes and adds the given annotations, sending a single
// pair of Changing and Changed events. Nothing is sent when there
// is nothing to do.
func (m *Model) Replace(remove, add []*Annotation) {
	ch := &Change{Added: add}
	for _, a := range remove {
		if m.indexOf(a) >= 0 {
			ch.Removed = append(ch.Removed, a)
		}
	}
	if ch.IsEmpty() {
		return
	}
	m.changing.Call(ch)
	for _, a := range ch.Removed {
		m.remove(a)
	}
	for _, a := range add {
		m.insert(a)
	}
	m.changed.Call(ch)
}

// Modify replaces the hints of the annotation, sending Changing and
// Changed events listing it as changed.
func (m *Model) Modify(a *Annotation, hints Hints) {
	if m.indexOf(a) < 0 {
		a.Hints = hints
		return
	}
	ch := &Change{Changed: []*Annotation{a}}
	m.changing.Call(ch)
	a.Hints = hints
	m.changed.Call(ch)
}

// Query returns the annotations that overlap [start, end), in start
// order. An annotation starting at start always matches, so that an
// empty query range finds the annotations starting there. The start
// of the scan is found by binary search, after which the scan is
// linear up to end.
func (m *Model) Query(start, end int) iter.Seq[*Annotation] {
	return func(yield func(*Annotation) bool) {
		i := m.search(start - m.maxSpan)
		for ; i < len(m.anns); i++ {
			a := m.anns[i]
			if Overlaps(a, start, end) {
				if !yield(a) {
					return
				}
				continue
			}
			if a.Start >= end {
				return
			}
		}
	}
}

// Overlaps returns true if a is selected by a query of [start, end).
func Overlaps(a *Annotation, start, end int) bool {
	if start == a.Start {
		return true
	}
	if start > a.Start {
		return start < a.End
	}
	return a.Start < end
}

//////// unexported api

// search returns the index of the first annotation starting at or
// after off.
func (m *Model) search(off int) int {
	return sort.Search(len(m.anns), func(i int) bool {
		return m.anns[i].Start >= off
	})
}

func (m *Model) indexOf(a *Annotation) int {
	for i := m.search(a.Start); i < len(m.anns) && m.anns[i].Start == a.Start; i++ {
		if m.anns[i] == a {
			return i
		}
	}
	return -1
}

func (m *Model) insert(a *Annotation) {
	if a.End < a.Start {
		a.Start, a.End = a.End, a.Start
	}
	i := m.search(a.Start)
	m.anns = append(m.anns, nil)
	copy(m.anns[i+1:], m.anns[i:])
	m.anns[i] = a
	m.maxSpan = max(m.maxSpan, a.End-a.Start)
	if a.Fold != nil {
		a.Fold.anns = m
	}
}

func (m *Model) remove(a *Annotation) {
	i := m.indexOf(a)
	if i < 0 {
		return
	}
	m.anns = append(m.anns[:i], m.anns[i+1:]...)
	if len(m.anns) == 0 {
		m.maxSpan = 0
	}
	if a.Fold != nil && a.Fold.anns == m {
		a.Fold.anns = nil
	}
}

// textChanged updates the annotations for an edit of the text model,
// in one pass: annotations before the edit are untouched, those after
// it are shifted, those straddling its start with an end at or past
// the removed range are extended, and all others are removed.
// Removed folds are expanded.
func (m *Model) textChanged(tc textpos.Change) {
	start, end, delta := tc.Start, tc.End(), tc.Delta()
	ch := &Change{Text: &tc}
	for _, a := range m.anns {
		switch {
		case a.Start >= end:
			if delta != 0 {
				ch.Changed = append(ch.Changed, a)
			}
		case a.End <= start:
		case a.Start < start && end <= a.End:
			if delta != 0 {
				ch.Changed = append(ch.Changed, a)
			}
		default:
			ch.Removed = append(ch.Removed, a)
		}
	}
	if ch.IsEmpty() {
		return
	}
	m.changing.Call(ch)
	for _, a := range ch.Removed {
		m.remove(a)
		if a.Fold != nil {
			a.Fold.Expand()
		}
	}
	for _, a := range ch.Changed {
		a.Start = tc.AdjustOffset(a.Start)
		a.End = tc.AdjustOffset(a.End)
		m.maxSpan = max(m.maxSpan, a.End-a.Start)
	}
	m.changed.Call(ch)
}
