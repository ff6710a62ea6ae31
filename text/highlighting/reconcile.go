// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"log/slog"

	"cogentcore.org/srcedit/text/annotations"
	"cogentcore.org/srcedit/text/textpos"
	"cogentcore.org/srcedit/text/token"
)

// Reconcile updates the comment index and the derived annotations
// for an edit of the base model, which has already been applied.
// It is called automatically on every base Changed event. Only the
// window from the start of the edited line, or of the comment
// containing it, through the end of the first comment at or after
// the edit is rescanned. It returns true and the view range to
// redraw when the comments in that window changed; the range is also
// sent to the OnRedraw listeners.
func (st *Styler) Reconcile(ch textpos.Change) (bool, textpos.Range) {
	st.spans.Flush()
	start, delta := ch.Start, ch.Delta()
	charCount := st.base.CharCount()
	lineStart := st.base.LineStart(st.base.LineAtOffset(start))
	cms := st.comments
	n := len(cms)

	cstart := st.search(lineStart, true, 0)
	cend := st.search(ch.End(), false, max(cstart-1, 0))
	var ts int
	switch {
	case cstart < n && cms[cstart].Start <= lineStart && lineStart < cms[cstart].End:
		ts = cms[cstart].Start
	case cstart == n && n > 0 && charCount-delta == cms[n-1].End:
		cstart = n - 1
		ts = cms[n-1].Start
	default:
		ts = lineStart
	}

	te := charCount
	if cend < n {
		te = cms[cend].End + delta
		cend++
	}

	var found []CommentRange
	for {
		found = st.findComments(st.base.Text(ts, te), ts)
		if te >= charCount || st.windowSynced(ts, te) {
			break
		}
		if cend < n {
			te = cms[cend].End + delta
			cend++
		} else {
			te = charCount
		}
	}
	fresh := multiline(found)

	redraw := cend-cstart != len(fresh)
	if !redraw {
		for i, c := range fresh {
			if c != shiftComment(cms[cstart+i], ch) {
				redraw = true
				break
			}
		}
	}
	comments := make([]CommentRange, 0, n-(cend-cstart)+len(fresh))
	comments = append(comments, cms[:cstart]...)
	comments = append(comments, fresh...)
	for _, c := range cms[cend:] {
		comments = append(comments, CommentRange{Start: c.Start + delta, End: c.End + delta, Kind: c.Kind})
	}
	st.comments = comments

	if st.anns != nil {
		st.updateTasks(ts, te, found)
		if st.foldingEnabled() {
			st.updateFolding(ts, te, fresh)
		}
	}
	if !redraw {
		return false, textpos.Range{}
	}
	r := textpos.Range{Start: st.toView(ts), End: st.toView(te)}
	slog.Debug("highlighting: comments changed", "edit", ch, "window", textpos.Range{Start: ts, End: te})
	st.redraw.Call(r)
	return true, r
}

// search returns the index of the comment containing off, or of the
// first comment starting at or after off. A comment contains off when
// it starts before it and ends after it, or, if inclusive is false,
// ends at it.
func (st *Styler) search(off int, inclusive bool, lo int) int {
	cms := st.comments
	hi := len(cms)
	for lo < hi {
		mid := (lo + hi) / 2
		c := cms[mid]
		switch {
		case off <= c.Start:
			hi = mid
		case off < c.End || (!inclusive && off == c.End):
			return mid
		default:
			lo = mid + 1
		}
	}
	return hi
}

// shiftComment returns the old comment moved by the edit, keeping
// its start when the edit is inside it.
func shiftComment(c CommentRange, ch textpos.Change) CommentRange {
	if c.Start >= ch.End() {
		c.Start += ch.Delta()
	}
	if c.End >= ch.End() {
		c.End += ch.Delta()
	}
	return c
}

// windowSynced returns true if scanning the window [ts, te) ends with
// a token that a scan of the whole text would also end at te, so that
// the index beyond te is still valid.
func (st *Styler) windowSynced(ts, te int) bool {
	last := st.lastToken(ts, te)
	next := st.base.Text(te, te+1)
	if last.Kind == token.Unknown {
		data := st.base.Text(last.Start, last.End)
		return !(data == "/" && (next == "*" || (next == "/" && !st.Settings.CSS)))
	}
	fs := &st.first
	fs.SetText(st.base.Text(last.Start, te+1))
	fs.Next()
	return last.Start+fs.Offset() <= te
}

// lastToken returns the last first-pass token of [start, end).
func (st *Styler) lastToken(start, end int) token.Token {
	fs := &st.first
	fs.SetText(st.base.Text(start, end))
	var last token.Token
	for k := fs.Next(); k != token.EOF; k = fs.Next() {
		last = token.Token{Kind: k, Start: start + fs.StartOffset(), End: start + fs.Offset()}
	}
	return last
}

// updateFolding reconciles the folding annotations in [ts, te) with
// the comments now found there. Folds whose comment is gone or now
// fits on one line are expanded and removed; the others keep their
// state; new multi-line comments get new folds.
func (st *Styler) updateFolding(ts, te int, fresh []CommentRange) {
	var remove, add, all []*annotations.Annotation
	for a := range st.anns.Query(ts, te) {
		if a.Type != annotations.TypeFolding {
			continue
		}
		all = append(all, a)
		i := matchComment(fresh, a)
		if i < 0 || !st.isMultiline(a.Start, a.End) {
			remove = append(remove, a)
		}
	}
	for _, a := range remove {
		a.Fold.Expand()
	}
	for _, c := range fresh {
		if matchFold(all, c) {
			continue
		}
		if a := st.newFolding(c); a != nil {
			add = append(add, a)
		}
	}
	if len(remove) > 0 || len(add) > 0 {
		st.anns.Replace(remove, add)
	}
}

func matchComment(cs []CommentRange, a *annotations.Annotation) int {
	for i, c := range cs {
		if c.Start == a.Start && c.End == a.End {
			return i
		}
	}
	return -1
}

func matchFold(anns []*annotations.Annotation, c CommentRange) bool {
	for _, a := range anns {
		if c.Start == a.Start && c.End == a.End {
			return true
		}
	}
	return false
}
