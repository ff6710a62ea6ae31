// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotations

import (
	"slices"
	"strings"

	"cogentcore.org/srcedit/text/lines"
)

// Marker is the merged ruler marker of one line.
type Marker struct {

	// HTML is the marker markup, from the highest priority annotation
	// that starts on the line, or the Multiple hints of the ruler when
	// annotations with differing markup start there.
	HTML string

	// Title joins the distinct titles of the merged annotations.
	Title string

	// Style is the marker style class.
	Style string

	// Overlay is the markup drawn over a marker that merges
	// annotations with differing markup.
	Overlay string

	// Multiple is set when annotations with differing markup merged.
	Multiple bool

	// Annotations are the merged annotations, in priority order.
	Annotations []*Annotation
}

// Mapper maps offsets between the base and a projected view.
// It is implemented by *projection.Model.
type Mapper interface {
	MapOffset(off int, fromBase bool) int
}

// Ruler computes the per-line markers of a line range of a view.
type Ruler struct {

	// View is the text model the lines refer to: the base text of the
	// annotation model or a projection of it implementing [Mapper].
	View lines.Model

	// Model is the annotation index.
	Model *Model

	// Filter selects and orders the annotation types shown.
	Filter TypeFilter

	// Multiple are the hints used for a marker merging annotations
	// with differing markup. If nil, the highest priority markup is kept.
	Multiple *Hints

	// MultipleOverlay is the overlay markup of such markers.
	MultipleOverlay string
}

// Annotations returns the markers of the view lines in
// [startLine, endLine), keyed by view line. Lines without
// annotations are absent.
func (ru *Ruler) Annotations(startLine, endLine int) map[int]*Marker {
	res := map[int]*Marker{}
	if ru.Model == nil || endLine <= startLine {
		return res
	}
	base := ru.Model.Text()
	mapper, _ := ru.View.(Mapper)
	start := ru.View.LineStart(max(startLine, 0))
	end := ru.View.LineEnd(min(endLine, ru.View.LineCount())-1, true)
	if start < 0 || end < 0 {
		return res
	}
	if mapper != nil {
		start = ru.toBase(mapper, start, false)
		end = ru.toBase(mapper, end, true)
	}
	for _, a := range ru.byPriority(start, end) {
		first := base.LineAtOffset(a.Start)
		last := base.LineAtOffset(max(a.Start, a.End-1))
		for ln := first; ln <= last; ln++ {
			vl := ln
			if mapper != nil {
				off := mapper.MapOffset(base.LineStart(ln), true)
				if off < 0 {
					continue
				}
				vl = ru.View.LineAtOffset(off)
			}
			if vl < startLine || vl >= endLine {
				continue
			}
			mk := res[vl]
			if mk == nil {
				mk = &Marker{}
				res[vl] = mk
			}
			ru.merge(mk, a, ln == first)
		}
	}
	if ru.Multiple != nil {
		for _, mk := range res {
			if mk.Multiple {
				mk.HTML = ru.Multiple.HTML
				mk.Style = ru.Multiple.Style
			}
		}
	}
	return res
}

// byPriority returns the visible annotations overlapping the base
// range, sorted by type priority.
func (ru *Ruler) byPriority(start, end int) []*Annotation {
	var anns []*Annotation
	for a := range ru.Model.Query(start, end) {
		if ru.priority(a.Type) > 0 {
			anns = append(anns, a)
		}
	}
	slices.SortStableFunc(anns, func(a, b *Annotation) int {
		return ru.priority(a.Type) - ru.priority(b.Type)
	})
	return anns
}

func (ru *Ruler) priority(typ string) int {
	if ru.Filter == nil {
		return 1
	}
	return ru.Filter.TypePriority(typ)
}

// toBase maps a view offset to the base, moving past substitute
// content in the given direction when it has no base counterpart.
func (ru *Ruler) toBase(mp Mapper, off int, forward bool) int {
	for {
		b := mp.MapOffset(off, false)
		if b >= 0 {
			return b
		}
		if forward {
			off++
		} else {
			off--
		}
		if off < 0 {
			return 0
		}
	}
}

// merge merges a into the marker. Only the first line of an
// annotation contributes its markup.
func (ru *Ruler) merge(mk *Marker, a *Annotation, first bool) {
	mk.Annotations = append(mk.Annotations, a)
	if a.Title != "" && !slices.Contains(strings.Split(mk.Title, "\n"), a.Title) {
		if mk.Title != "" {
			mk.Title += "\n"
		}
		mk.Title += a.Title
	}
	if mk.Style == "" {
		mk.Style = a.Style
	}
	if !first || a.HTML == "" {
		return
	}
	switch {
	case mk.HTML == "":
		mk.HTML = a.HTML
	case mk.HTML != a.HTML && !mk.Multiple:
		mk.Multiple = true
		mk.Overlay = ru.MultipleOverlay
	}
}
