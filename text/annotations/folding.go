// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotations

import (
	"log/slog"

	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/projection"
)

// Fold is the folding state of a [TypeFolding] annotation.
// A collapsed fold owns one projection in the view that hides every
// line of the annotation after its first.
type Fold struct {
	ann   *Annotation
	view  *projection.Model
	types *Types

	// anns is the annotation model holding the annotation, if any.
	anns *Model

	// proj is the projection of a collapsed fold.
	proj *projection.Projection
}

// NewFolding returns a new expanded folding annotation over the base
// range [start, end) of the given view.
func NewFolding(types *Types, view *projection.Model, start, end int) *Annotation {
	a := types.New(TypeFolding, start, end, "")
	a.Fold = &Fold{ann: a, view: view, types: types}
	return a
}

// Expanded returns true if the fold is expanded.
func (fd *Fold) Expanded() bool {
	return fd.proj == nil
}

// Projection returns the projection of a collapsed fold, or nil.
func (fd *Fold) Projection() *projection.Projection {
	return fd.proj
}

// Collapse hides the lines of the fold after its first line. It does
// nothing if the fold is collapsed or spans a single line. A range
// ending just past a line delimiter ends on the line of that delimiter.
// A fold whose hidden lines sit between a bare \r and a \n is not
// collapsed, since the view would join them into one delimiter.
func (fd *Fold) Collapse() {
	if fd.proj != nil {
		return
	}
	base := fd.view.Base()
	sl := base.LineAtOffset(fd.ann.Start)
	el := base.LineAtOffset(max(fd.ann.End-1, fd.ann.Start))
	start, end := base.LineStart(sl+1), base.LineEnd(el, true)
	if el <= sl || start >= end || joinsDelimiter(base, start, end) {
		return
	}
	p := projection.New(start, end, "")
	p.Dropped = func(p *projection.Projection) {
		if fd.proj == p {
			fd.proj = nil
			fd.setHints(TypeFolding)
		}
	}
	if err := fd.view.AddProjection(p); err != nil {
		slog.Error("annotations: collapsing fold", "fold", fd.ann, "err", err)
		return
	}
	fd.proj = p
	fd.setHints(TypeFoldingCollapsed)
}

// Expand shows the hidden lines of a collapsed fold.
func (fd *Fold) Expand() {
	if fd.proj == nil {
		return
	}
	p := fd.proj
	fd.proj = nil
	fd.view.RemoveProjection(p)
	fd.setHints(TypeFolding)
}

// Toggle collapses an expanded fold and expands a collapsed one.
func (fd *Fold) Toggle() {
	if fd.Expanded() {
		fd.Collapse()
	} else {
		fd.Expand()
	}
}

func (fd *Fold) setHints(typ string) {
	h, _ := fd.types.Hints(typ)
	if fd.anns != nil {
		fd.anns.Modify(fd.ann, h)
	} else {
		fd.ann.Hints = h
	}
}

// joinsDelimiter returns true if removing [start, end) from the text
// would put a \r right before a \n.
func joinsDelimiter(txt lines.Model, start, end int) bool {
	return start > 0 && end < txt.CharCount() &&
		txt.Text(start-1, start) == "\r" && txt.Text(end, end+1) == "\n"
}
