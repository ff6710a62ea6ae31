// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package projection provides a [lines.Model] view over a base model
// in which designated base ranges are replaced by substitute content.
// It is the mechanism behind folding.
package projection

import (
	"errors"
	"fmt"
	"sort"

	"cogentcore.org/srcedit/events"
	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/textpos"
)

// Unmapped is returned by [Model.MapOffset] for offsets that have no
// counterpart in the other coordinate space.
const Unmapped = -1

// ErrOverlap is returned when adding a projection that overlaps an
// existing one.
var ErrOverlap = errors.New("projection: overlaps an existing projection")

// Projection replaces the base range [Start, End) with the content
// of Text. Start and End must not be modified while the projection
// is added to a [Model]; the model keeps them current across edits.
type Projection struct {

	// Start is the start of the hidden base range.
	Start int

	// End is the end of the hidden base range.
	End int

	// Text is the substitute content.
	Text *lines.Lines

	// Dropped, if set, is called after the projection is removed
	// because an edit covered it or, for edits made directly on the
	// base model, touched its hidden range.
	Dropped func(p *Projection)

	// lineIndex is the base line containing Start.
	lineIndex int

	// lineCount is the number of base line breaks in [Start, End).
	lineCount int
}

// New returns a projection hiding [start, end) behind text.
func New(start, end int, text string) *Projection {
	return &Projection{Start: start, End: end, Text: lines.New(text)}
}

func (p *Projection) String() string {
	return fmt.Sprintf("[%d, %d) -> %q", p.Start, p.End, p.Text.String())
}

// hidden returns the length of the hidden base range.
func (p *Projection) hidden() int {
	return p.End - p.Start
}

// delta returns the change in length the projection makes.
func (p *Projection) delta() int {
	return p.Text.CharCount() - p.hidden()
}

// lineDelta returns the change in line count the projection makes.
func (p *Projection) lineDelta() int {
	return p.Text.LineCount() - 1 - p.lineCount
}

// Model is a projected view of a base [lines.Model]. It implements
// [lines.Model] itself, in view coordinates. Projections never
// overlap and are kept sorted by start.
type Model struct {
	base        lines.Model
	projections []*Projection

	// pending is the in-flight edit made through SetText.
	pending *edit

	// external is the view change of an in-flight base edit.
	external *textpos.Change

	changing events.Listeners[textpos.Change]
	changed  events.Listeners[textpos.Change]
}

// firstEmitter is implemented by models that can place a listener
// ahead of all others, such as [lines.Lines].
type firstEmitter interface {
	OnChangingFirst(fun func(ch textpos.Change))
	OnChangedFirst(fun func(ch textpos.Change))
}

// NewModel returns a new projection model over the given base model.
func NewModel(base lines.Model) *Model {
	m := &Model{base: base}
	if fe, ok := base.(firstEmitter); ok {
		fe.OnChangingFirst(m.baseChanging)
		fe.OnChangedFirst(m.baseChanged)
	} else {
		base.OnChanging(m.baseChanging)
		base.OnChanged(m.baseChanged)
	}
	return m
}

// Base returns the base model.
func (m *Model) Base() lines.Model {
	return m.base
}

// Projections returns a copy of the current projections, in order.
func (m *Model) Projections() []*Projection {
	return append([]*Projection(nil), m.projections...)
}

// AddProjection adds the projection, sending Changing and Changed
// events describing the change in view coordinates.
func (m *Model) AddProjection(p *Projection) error {
	if p.Text == nil {
		p.Text = lines.New("")
	}
	if p.End < p.Start {
		p.Start, p.End = p.End, p.Start
	}
	if p.Start < 0 || p.End > m.base.CharCount() {
		return fmt.Errorf("projection: range [%d, %d) outside of base text of length %d", p.Start, p.End, m.base.CharCount())
	}
	if m.overlaps(p) {
		return ErrOverlap
	}
	idx := m.insertIndex(p)
	m.updateLines(p)
	ch := textpos.Change{
		Start:            m.viewOffset(p.Start, idx),
		RemovedCharCount: p.hidden(),
		AddedCharCount:   p.Text.CharCount(),
		RemovedLineCount: p.lineCount,
		AddedLineCount:   p.Text.LineCount() - 1,
	}
	m.changing.Call(ch)
	m.projections = append(m.projections, nil)
	copy(m.projections[idx+1:], m.projections[idx:])
	m.projections[idx] = p
	m.changed.Call(ch)
	return nil
}

// RemoveProjection removes the projection, sending Changing and
// Changed events. Removing a projection that is not in the model
// does nothing.
func (m *Model) RemoveProjection(p *Projection) {
	idx := m.indexOf(p)
	if idx < 0 {
		return
	}
	ch := textpos.Change{
		Start:            m.viewOffset(p.Start, idx),
		RemovedCharCount: p.Text.CharCount(),
		AddedCharCount:   p.hidden(),
		RemovedLineCount: p.Text.LineCount() - 1,
		AddedLineCount:   p.lineCount,
	}
	m.changing.Call(ch)
	m.projections = append(m.projections[:idx], m.projections[idx+1:]...)
	m.changed.Call(ch)
}

// MapOffset maps an offset from base to view coordinates when fromBase
// is true, and from view to base coordinates otherwise. It returns
// [Unmapped] for base offsets in a hidden range and for view offsets
// in substitute content.
func (m *Model) MapOffset(off int, fromBase bool) int {
	delta := 0
	if fromBase {
		for _, p := range m.projections {
			if p.Start > off {
				break
			}
			if p.End > off {
				return Unmapped
			}
			delta += p.delta()
		}
		return off + delta
	}
	for _, p := range m.projections {
		if p.Start > off-delta {
			break
		}
		if p.Start+p.Text.CharCount() > off-delta {
			return Unmapped
		}
		delta += p.delta()
	}
	return off - delta
}

// ViewOffset returns the view offset of the base offset. Unlike
// [Model.MapOffset] it always succeeds: an offset at the start of a
// hidden range maps to the start of its substitute content, and an
// offset inside one maps to the end of its substitute content.
func (m *Model) ViewOffset(off int) int {
	delta := 0
	for _, p := range m.projections {
		if p.End > off {
			if p.Start < off {
				return p.Start + delta + p.Text.CharCount()
			}
			break
		}
		delta += p.delta()
	}
	return off + delta
}

//////// unexported api

// viewOffset returns the view offset of the base offset, counting
// only the first n projections.
func (m *Model) viewOffset(off, n int) int {
	for _, p := range m.projections[:n] {
		off += p.delta()
	}
	return off
}

func (m *Model) indexOf(p *Projection) int {
	for i, q := range m.projections {
		if q == p {
			return i
		}
	}
	return -1
}

// insertIndex returns the sorted position for p. Insertion-only
// projections sort before a hidden range starting at the same offset.
func (m *Model) insertIndex(p *Projection) int {
	return sort.Search(len(m.projections), func(i int) bool {
		q := m.projections[i]
		return q.Start > p.Start || (q.Start == p.Start && q.End > p.End)
	})
}

func (m *Model) overlaps(p *Projection) bool {
	for _, q := range m.projections {
		if q.Start < p.End && p.Start < q.End {
			return true
		}
		if q.Start == p.Start && q.End == p.End {
			return true
		}
		if p.hidden() == 0 && q.Start < p.Start && p.Start < q.End {
			return true
		}
		if q.hidden() == 0 && p.Start < q.Start && q.Start < p.End {
			return true
		}
	}
	return false
}

// updateLines recomputes the cached base line metadata of p.
func (m *Model) updateLines(p *Projection) {
	p.lineIndex = m.base.LineAtOffset(p.Start)
	p.lineCount = m.base.LineAtOffset(p.End) - p.lineIndex
}
