// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotations provides typed, range-anchored decorations over
// a text model: an index kept current across edits, ordered type
// filters, per-line ruler markers, and folding.
package annotations

import "fmt"

// Standard annotation types.
const (
	TypeError           = "error"
	TypeWarning         = "warning"
	TypeTask            = "task"
	TypeBreakpoint      = "breakpoint"
	TypeBookmark        = "bookmark"
	TypeCurrentBracket  = "currentBracket"
	TypeMatchingBracket = "matchingBracket"
	TypeCurrentLine     = "currentLine"
	TypeCurrentSearch   = "currentSearch"
	TypeMatchingSearch  = "matchingSearch"
	TypeReadOccurrence  = "readOccurrence"
	TypeWriteOccurrence = "writeOccurrence"
	TypeFolding         = "folding"

	// TypeFoldingCollapsed names the hints used by a collapsed fold;
	// the annotation type of a fold is always [TypeFolding].
	TypeFoldingCollapsed = "folding.collapsed"
)

// Hints are the display hints of an annotation. They are style class
// names and markup for a renderer; the core never interprets them.
type Hints struct {

	// Title is the tooltip text.
	Title string

	// HTML is the ruler marker markup.
	HTML string

	// Style is the ruler marker style class.
	Style string

	// OverviewStyle is the overview ruler style class.
	OverviewStyle string

	// RangeStyle is the style class applied to the annotated text.
	RangeStyle string

	// LineStyle is the style class applied to the whole line.
	LineStyle string
}

// Annotation is a typed decoration over the base range [Start, End).
// Annotations are compared by identity: two annotations can share
// type and range.
type Annotation struct {
	Hints

	// Type is the annotation type, one of the Type constants or any
	// caller defined type.
	Type string

	// Start is the start offset in base coordinates.
	Start int

	// End is the end offset in base coordinates.
	End int

	// Fold is set for folding annotations.
	Fold *Fold
}

func (a *Annotation) String() string {
	return fmt.Sprintf("%s [%d, %d)", a.Type, a.Start, a.End)
}

// Types is a registry of default hints per annotation type.
type Types struct {
	hints map[string]Hints
}

// NewTypes returns an empty registry.
func NewTypes() *Types {
	return &Types{hints: map[string]Hints{}}
}

// DefaultTypes returns a registry holding the standard types.
func DefaultTypes() *Types {
	ts := NewTypes()
	marker := func(typ, title string) {
		ts.Register(typ, Hints{
			Title:         title,
			HTML:          "<div class='annotationHTML " + typ + "'></div>",
			OverviewStyle: "annotationOverview " + typ,
			RangeStyle:    "annotationRange " + typ,
		})
	}
	rng := func(typ string) {
		ts.Register(typ, Hints{OverviewStyle: "annotationOverview " + typ, RangeStyle: "annotationRange " + typ})
	}
	marker(TypeError, "Error")
	marker(TypeWarning, "Warning")
	marker(TypeTask, "Task")
	marker(TypeBreakpoint, "Breakpoint")
	marker(TypeBookmark, "Bookmark")
	rng(TypeCurrentBracket)
	rng(TypeMatchingBracket)
	rng(TypeCurrentSearch)
	rng(TypeMatchingSearch)
	rng(TypeReadOccurrence)
	rng(TypeWriteOccurrence)
	ts.Register(TypeCurrentLine, Hints{LineStyle: "annotationLine currentLine"})
	ts.Register(TypeFolding, Hints{Title: "Collapse", HTML: "<div class='annotationHTML expanded'></div>"})
	ts.Register(TypeFoldingCollapsed, Hints{
		Title:      "Expand",
		HTML:       "<div class='annotationHTML collapsed'></div>",
		RangeStyle: "annotationRange collapsed",
	})
	return ts
}

// Register sets the hints of the given type.
func (ts *Types) Register(typ string, h Hints) {
	ts.hints[typ] = h
}

// Hints returns the hints of the given type.
func (ts *Types) Hints(typ string) (Hints, bool) {
	h, ok := ts.hints[typ]
	return h, ok
}

// New returns a new annotation of the given type with its registered
// hints. A non-empty title replaces the default title.
func (ts *Types) New(typ string, start, end int, title string) *Annotation {
	a := &Annotation{Type: typ, Start: start, End: end}
	a.Hints, _ = ts.Hints(typ)
	if title != "" {
		a.Title = title
	}
	return a
}
