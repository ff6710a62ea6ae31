// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "cogentcore.org/srcedit/text/textpos"

// OnChanging adds a listener called before each edit is applied.
func (ls *Lines) OnChanging(fun func(ch textpos.Change)) {
	ls.changing.Add(fun)
}

// OnChanged adds a listener called after each edit is applied.
func (ls *Lines) OnChanged(fun func(ch textpos.Change)) {
	ls.changed.Add(fun)
}

// OnChangingFirst adds a listener called before each edit, ahead of
// all other listeners. It is used by models layered on this one.
func (ls *Lines) OnChangingFirst(fun func(ch textpos.Change)) {
	ls.changing.AddFirst(fun)
}

// OnChangedFirst adds a listener called after each edit, ahead of
// all other listeners. It is used by models layered on this one.
func (ls *Lines) OnChangedFirst(fun func(ch textpos.Change)) {
	ls.changed.AddFirst(fun)
}
