// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import "strings"

// linkDelimiters are the pairs of characters that can enclose a URL.
const linkDelimiters = `""''(){}[]<>`

// detectHyperlinks appends the spans of a comment or string word
// starting at offset off, styling URLs and bug references as links.
// A URL enclosed in a delimiter pair splits the word into prefix,
// link and suffix spans; otherwise the whole word is the link.
func (st *Styler) detectHyperlinks(text string, off int, tag Tags, spans []StyleSpan) []StyleSpan {
	end := off + len(text)
	if idx := strings.Index(text, "://"); idx > 0 {
		start := idx
		for start > 0 && isLinkChar(text[start-1]) {
			start--
		}
		if start > 0 {
			if di := strings.IndexByte(linkDelimiters, text[start-1]); di >= 0 && di%2 == 0 {
				if ci := strings.LastIndexByte(text, linkDelimiters[di+1]); ci > start {
					spans = addSpan(spans, StyleSpan{Start: off, End: off + start, Tag: tag})
					spans = addSpan(spans, StyleSpan{Start: off + start, End: off + ci, Tag: tag, URL: text[start:ci]})
					return addSpan(spans, StyleSpan{Start: off + ci, End: end, Tag: tag})
				}
			}
		}
		return addSpan(spans, StyleSpan{Start: off, End: end, Tag: tag, URL: text})
	}
	if len(text) > 4 && strings.EqualFold(text[:4], "bug#") {
		n := 4
		for n < len(text) && text[n] >= '0' && text[n] <= '9' {
			n++
		}
		if n > 4 {
			return addSpan(spans, StyleSpan{Start: off, End: end, Tag: tag, URL: st.Settings.BugURL + text[4:n]})
		}
	}
	return addSpan(spans, StyleSpan{Start: off, End: end, Tag: tag})
}
