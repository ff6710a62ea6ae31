// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"slices"
	"sort"

	"cogentcore.org/srcedit/text/token"
	"github.com/patrickmn/go-cache"
)

// ComputeStyles returns the style spans of text, which is the view
// text starting at view offset start, typically one line. Spans are
// in view coordinates, ordered and non-overlapping; text without a
// span is plain. Substitute content of projections is plain.
func (st *Styler) ComputeStyles(text string, start int) []StyleSpan {
	key := cacheKey(text, start)
	if v, ok := st.spans.Get(key); ok {
		return slices.Clone(v.([]StyleSpan))
	}
	var spans []StyleSpan
	if st.proj == nil {
		spans = st.styleBase(text, start, spans)
	} else {
		for _, sg := range st.proj.Segments(start, start+len(text)) {
			if !sg.Base() {
				continue
			}
			n := len(spans)
			spans = st.styleBase(text[sg.View.Start-start:sg.View.End-start], sg.Offset, spans)
			shift := sg.View.Start - sg.Offset
			for i := n; i < len(spans); i++ {
				spans[i].Start += shift
				spans[i].End += shift
			}
		}
	}
	st.spans.Set(key, spans, cache.NoExpiration)
	return slices.Clone(spans)
}

// LineStyles returns the style spans of the given view line.
func (st *Styler) LineStyles(ln int) []StyleSpan {
	ls := st.view.LineStart(ln)
	if ls < 0 {
		return nil
	}
	return st.ComputeStyles(st.view.Text(ls, st.view.LineEnd(ln, true)), ls)
}

// styleBase appends the spans of the base text starting at base
// offset off, in base coordinates. Comment ranges are routed to the
// comment scanner and the gaps between them to the code scanner.
func (st *Styler) styleBase(text string, off int, spans []StyleSpan) []StyleSpan {
	end := off + len(text)
	i := sort.Search(len(st.comments), func(i int) bool {
		return st.comments[i].End > off
	})
	pos := off
	for ; i < len(st.comments) && st.comments[i].Start < end; i++ {
		c := st.comments[i]
		if c.Start > pos {
			spans = st.parse(text[pos-off:c.Start-off], pos, spans)
		}
		cs, ce := max(c.Start, pos), min(c.End, end)
		spans = st.parseComment(text[cs-off:ce-off], cs, c.Kind, spans)
		pos = ce
	}
	if pos < end {
		spans = st.parse(text[pos-off:], pos, spans)
	}
	return spans
}

// parse appends the spans of code text starting at offset off.
func (st *Styler) parse(text string, off int, spans []StyleSpan) []StyleSpan {
	sc := &st.scanner
	sc.SetText(text)
	for k := sc.Next(); k != token.EOF; k = sc.Next() {
		s, e := off+sc.StartOffset(), off+sc.Offset()
		switch k {
		case token.Keyword:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: Keyword})
		case token.String:
			if st.Settings.WhitespaceVisible {
				spans = st.parseString(sc.Data(), s, spans)
			} else {
				spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: String})
			}
		case token.LineComment, token.BlockComment, token.DocComment:
			spans = st.parseComment(sc.Data(), s, k, spans)
		case token.WhitespaceTab:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: Tab})
		case token.WhitespaceSpace:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: Space})
		}
	}
	return spans
}

// parseComment appends the spans of comment text of the given kind
// starting at offset off.
func (st *Styler) parseComment(text string, off int, kind token.Kinds, spans []StyleSpan) []StyleSpan {
	tag := commentTag(kind)
	if !st.Settings.WhitespaceVisible && !st.Settings.DetectHyperlinks {
		return addSpan(spans, StyleSpan{Start: off, End: off + len(text), Tag: tag})
	}
	cs := &st.comment
	cs.SetKind(kind)
	cs.SetText(text)
	for k := cs.Next(); k != token.EOF; k = cs.Next() {
		s, e := off+cs.StartOffset(), off+cs.Offset()
		switch k {
		case token.WhitespaceTab:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: Tab})
		case token.WhitespaceSpace:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: Space})
		case token.HTMLMarkup:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: DocHTMLMarkup})
		case token.DocTag:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: DocTag})
		case token.TaskTag:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: TaskTag})
		case token.Unknown:
			if st.Settings.DetectHyperlinks {
				spans = st.detectHyperlinks(cs.Data(), s, tag, spans)
				break
			}
			fallthrough
		default:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: tag})
		}
	}
	return spans
}

// parseString appends the spans of a string with visible whitespace.
func (st *Styler) parseString(text string, off int, spans []StyleSpan) []StyleSpan {
	ws := &st.spaces
	ws.SetText(text)
	for k := ws.Next(); k != token.EOF; k = ws.Next() {
		s, e := off+ws.StartOffset(), off+ws.Offset()
		switch k {
		case token.WhitespaceTab:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: Tab})
		case token.WhitespaceSpace:
			spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: Space})
		default:
			if st.Settings.DetectHyperlinks {
				spans = st.detectHyperlinks(ws.Data(), s, String, spans)
			} else {
				spans = addSpan(spans, StyleSpan{Start: s, End: e, Tag: String})
			}
		}
	}
	return spans
}

// addSpan appends sp, merging it into the last span when they are
// adjacent plain-tagged spans of the same tag.
func addSpan(spans []StyleSpan, sp StyleSpan) []StyleSpan {
	if sp.End <= sp.Start {
		return spans
	}
	if n := len(spans); n > 0 {
		last := &spans[n-1]
		if last.End == sp.Start && last.Tag == sp.Tag && last.URL == "" && sp.URL == "" && mergeable(sp.Tag) {
			last.End = sp.End
			return spans
		}
	}
	return append(spans, sp)
}

// mergeable returns true for tags whose adjacent spans are merged.
// Each tab, space and markup token keeps its own span.
func mergeable(tg Tags) bool {
	return tg == Comment || tg == DocComment || tg == String
}

// isLinkChar returns true for the characters of a URL scheme.
func isLinkChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}
