// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projection

import (
	"slices"

	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/textpos"
)

// edit is the projection bookkeeping for an edit made through
// [Model.SetText], applied once the base model has changed.
type edit struct {
	// first is the index of the first projection at or after the edit.
	first int

	// last is the index past the covered projections; the projection
	// at last is the end projection when endLocal > 0.
	last int

	// startProj is cut at startLocal.
	startProj  *Projection
	startLocal int

	// endProj keeps its substitute from endLocal and becomes
	// insertion-only.
	endProj  *Projection
	endLocal int

	// delta is the change in base length.
	delta int

	// ch is the edit in view coordinates.
	ch textpos.Change
}

// SetText replaces the view range [start, end) with text. The
// Changed event is sent from the base model's Changed dispatch, ahead
// of the base model's other listeners. An edit
// starting inside substitute content truncates it at the edit start,
// an edit ending inside substitute content turns that projection into
// an insertion of its remaining content, and projections covered by
// the edit are removed.
func (m *Model) SetText(text string, start, end int) {
	start, end = m.clamp(start), m.clamp(end)
	if end < start {
		start, end = end, start
	}
	ch := textpos.Change{
		Start:            start,
		RemovedCharCount: end - start,
		AddedCharCount:   len(text),
		RemovedLineCount: lines.CountDelimiters(m.Text(start, end)),
		AddedLineCount:   lines.CountDelimiters(text),
		Text:             text,
	}
	ed := &edit{}
	delta, i := 0, 0
	mapStart := -1
	for ; i < len(m.projections); i++ {
		p := m.projections[i]
		pv, cc := p.Start+delta, p.Text.CharCount()
		if start < pv || (start == pv && cc > 0) {
			break
		}
		if start < pv+cc {
			if end <= pv+cc {
				m.changing.Call(ch)
				p.Text.SetText(text, start-pv, end-pv)
				m.changed.Call(ch)
				return
			}
			ed.startProj, ed.startLocal = p, start-pv
			mapStart = p.End
			delta += p.delta()
			i++
			break
		}
		delta += p.delta()
	}
	if mapStart < 0 {
		mapStart = start - delta
	}
	ed.first = i
	mapEnd := -1
	for ; i < len(m.projections); i++ {
		p := m.projections[i]
		pv, cc := p.Start+delta, p.Text.CharCount()
		if end <= pv {
			break
		}
		if end < pv+cc {
			ed.endProj, ed.endLocal = p, end-pv
			mapEnd = p.End
			break
		}
		delta += p.delta()
	}
	if mapEnd < 0 {
		mapEnd = end - delta
	}
	ed.last = i
	ed.delta = len(text) - (mapEnd - mapStart)
	ed.ch = ch

	m.changing.Call(ch)
	m.pending = ed
	m.base.SetText(text, mapStart, mapEnd)
}

// apply updates the projections for a completed SetText edit.
func (m *Model) apply(ed *edit) {
	if ed.startProj != nil {
		ed.startProj.Text.SetText("", ed.startLocal, ed.startProj.Text.CharCount())
	}
	if ed.endProj != nil {
		ed.endProj.Text.SetText("", 0, ed.endLocal)
		ed.endProj.Start = ed.endProj.End
	}
	covered := slices.Clone(m.projections[ed.first:ed.last])
	m.projections = append(m.projections[:ed.first], m.projections[ed.last:]...)
	for _, p := range m.projections[ed.first:] {
		p.Start += ed.delta
		p.End += ed.delta
	}
	for _, p := range m.projections {
		m.updateLines(p)
	}
	for _, p := range covered {
		if p.Dropped != nil {
			p.Dropped(p)
		}
	}
}

// touches returns true if an edit made directly on the base model
// reaches into the hidden range of p.
func touches(p *Projection, ch textpos.Change) bool {
	if ch.RemovedCharCount == 0 {
		return p.Start < ch.Start && ch.Start < p.End
	}
	return ch.Start < p.End && p.Start < ch.End()
}

// baseChanging drops the projections touched by an edit made directly
// on the base model and forwards the edit in view coordinates.
func (m *Model) baseChanging(ch textpos.Change) {
	if m.pending != nil {
		return
	}
	var dropped []*Projection
	for _, p := range m.projections {
		if touches(p, ch) {
			dropped = append(dropped, p)
		}
	}
	for _, p := range dropped {
		m.RemoveProjection(p)
		if p.Dropped != nil {
			p.Dropped(p)
		}
	}
	vc := ch
	vc.Start = m.ViewOffset(ch.Start)
	m.external = &vc
	m.changing.Call(vc)
}

func (m *Model) baseChanged(ch textpos.Change) {
	if ed := m.pending; ed != nil {
		m.pending = nil
		m.apply(ed)
		m.changed.Call(ed.ch)
		return
	}
	for _, p := range m.projections {
		if p.Start >= ch.End() && p.End > ch.Start {
			p.Start = ch.AdjustOffset(p.Start)
			p.End = ch.AdjustOffset(p.End)
		}
	}
	for _, p := range m.projections {
		m.updateLines(p)
	}
	vc := ch
	if m.external != nil {
		vc = *m.external
		m.external = nil
	}
	m.changed.Call(vc)
}
