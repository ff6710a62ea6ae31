// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting provides the incremental styler: it keeps an
// index of the block comments of a text model current across edits,
// computes style spans for any range of a view on demand, and
// maintains the task, bracket and folding annotations derived from
// the text.
package highlighting

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/srcedit/events"
	"cogentcore.org/srcedit/text/annotations"
	"cogentcore.org/srcedit/text/lexer"
	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/projection"
	"cogentcore.org/srcedit/text/textpos"
	"cogentcore.org/srcedit/text/token"
	"github.com/patrickmn/go-cache"
)

// Styler computes style spans over a view of a text model.
// The view is either the base model itself or a [projection.Model]
// over it. All work is synchronous and driven by the base model's
// Changed events.
type Styler struct {

	// Settings are the styler settings; call [Styler.Compute] after
	// changing them.
	Settings Settings

	// Types are the annotation types used for task, bracket and
	// folding annotations.
	Types *annotations.Types

	view lines.Model
	base lines.Model
	proj *projection.Model
	anns *annotations.Model

	// comments is the comment index: block and doc comments in base
	// coordinates, sorted and non-overlapping.
	comments []CommentRange

	scanner  lexer.Scanner
	first    lexer.FirstScanner
	comment  lexer.CommentScanner
	spaces   lexer.WhitespaceScanner
	keywords lexer.Keywords

	// brackets are the current bracket annotations.
	brackets []*annotations.Annotation

	// spans caches computed spans per view range and text.
	spans *cache.Cache

	redraw events.Listeners[textpos.Range]
}

// NewStyler returns a new styler over the view, computing the comment
// index and the derived annotations. The annotation model, which may
// be nil, must be over the base model and created before the styler,
// so that annotations are current when the styler reconciles an edit.
// Nil settings mean the defaults.
func NewStyler(view lines.Model, anns *annotations.Model, settings *Settings) *Styler {
	st := &Styler{view: view, base: view, anns: anns, Types: annotations.DefaultTypes()}
	if settings != nil {
		st.Settings = *settings
	} else {
		st.Settings.Defaults()
	}
	if pm, ok := view.(*projection.Model); ok {
		st.proj = pm
		st.base = pm.Base()
		pm.OnChanged(func(ch textpos.Change) { st.spans.Flush() })
	}
	st.spans = cache.New(cache.NoExpiration, 0)
	st.base.OnChanged(func(ch textpos.Change) { st.Reconcile(ch) })
	st.Compute()
	return st
}

// Comments returns a copy of the comment index.
func (st *Styler) Comments() []CommentRange {
	if len(st.comments) == 0 {
		return nil
	}
	return slices.Clone(st.comments)
}

// OnRedraw adds a listener called with the view range to redraw
// when an edit changed the styling of text outside the edit itself.
func (st *Styler) OnRedraw(fun func(r textpos.Range)) {
	st.redraw.Add(fun)
}

// Compute rebuilds the comment index from the whole base text, along
// with the task and folding annotations.
func (st *Styler) Compute() {
	st.keywords = lexer.NewKeywords(st.Settings.Keywords...)
	st.scanner = lexer.Scanner{Keywords: st.keywords, WhitespaceVisible: st.Settings.WhitespaceVisible, CSS: st.Settings.CSS}
	st.first = lexer.FirstScanner{CSS: st.Settings.CSS}
	st.comment = lexer.CommentScanner{WhitespaceVisible: st.Settings.WhitespaceVisible}
	st.spans.Flush()

	n := st.base.CharCount()
	all := st.findComments(st.base.Text(0, n), 0)
	st.comments = multiline(all)
	slog.Debug("highlighting: computed comment index", "chars", n, "comments", len(st.comments))
	if st.anns == nil {
		return
	}
	st.updateTasks(0, n, all)
	if st.foldingEnabled() {
		var remove, add []*annotations.Annotation
		for _, a := range st.anns.All() {
			if a.Type == annotations.TypeFolding {
				a.Fold.Expand()
				remove = append(remove, a)
			}
		}
		for _, c := range st.comments {
			if a := st.newFolding(c); a != nil {
				add = append(add, a)
			}
		}
		st.anns.Replace(remove, add)
	}
}

//////// unexported api

// findComments returns every comment in text, which starts at base
// offset off, including line comments.
func (st *Styler) findComments(text string, off int) []CommentRange {
	var cs []CommentRange
	fs := &st.first
	fs.SetText(text)
	for k := fs.Next(); k != token.EOF; k = fs.Next() {
		if k.IsComment() {
			cs = append(cs, CommentRange{Start: off + fs.StartOffset(), End: off + fs.Offset(), Kind: k})
		}
	}
	return cs
}

// multiline returns the block and doc comments of cs.
func multiline(cs []CommentRange) []CommentRange {
	var res []CommentRange
	for _, c := range cs {
		if c.Kind.IsMultiline() {
			res = append(res, c)
		}
	}
	return res
}

// terminated returns true if the comment text is a closed block comment.
func terminated(text string) bool {
	return len(text) >= 4 && strings.HasSuffix(text, "*/")
}

// updateTasks replaces the task annotations starting in [start, end)
// with those found in the given comments.
func (st *Styler) updateTasks(start, end int, cs []CommentRange) {
	var remove, add []*annotations.Annotation
	for a := range st.anns.Query(start, end) {
		if a.Type == annotations.TypeTask && a.Start >= start && a.Start < end {
			remove = append(remove, a)
		}
	}
	cscan := lexer.CommentScanner{}
	for _, c := range cs {
		text := st.base.Text(c.Start, c.End)
		cend := c.End
		if c.Kind.IsMultiline() && terminated(text) {
			cend -= 2
		}
		cscan.SetKind(c.Kind)
		cscan.SetText(text)
		for k := cscan.Next(); k != token.EOF; k = cscan.Next() {
			if k != token.TaskTag {
				continue
			}
			ts := c.Start + cscan.StartOffset()
			te := min(st.base.LineEnd(st.base.LineAtOffset(ts), false), cend)
			title := strings.TrimSpace(st.base.Text(ts, te))
			add = append(add, st.Types.New(annotations.TypeTask, ts, te, title))
		}
	}
	if len(remove) > 0 || len(add) > 0 {
		st.anns.Replace(remove, add)
	}
}

func (st *Styler) foldingEnabled() bool {
	return st.Settings.Folding && st.proj != nil && st.anns != nil
}

// isMultiline returns true if the range spans more than one base line.
// A range ending just past a line delimiter ends on the line of that
// delimiter.
func (st *Styler) isMultiline(start, end int) bool {
	return st.base.LineAtOffset(start) != st.base.LineAtOffset(max(end-1, start))
}

// newFolding returns a folding annotation for the comment, or nil
// if it spans a single line.
func (st *Styler) newFolding(c CommentRange) *annotations.Annotation {
	if !st.isMultiline(c.Start, c.End) {
		return nil
	}
	return annotations.NewFolding(st.Types, st.proj, c.Start, c.End)
}

// toView returns the view offset of a base offset.
func (st *Styler) toView(off int) int {
	if st.proj == nil {
		return off
	}
	return st.proj.ViewOffset(off)
}

func cacheKey(text string, start int) string {
	return fmt.Sprintf("%d\x00%s", start, text)
}
