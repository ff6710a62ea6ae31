// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides typed listener lists used by the text models
// to publish two-phase Changing / Changed notifications.
package events

import "log/slog"

// Listeners is an ordered list of listener functions receiving events
// of type T. Listeners are closure methods with all context captured.
// The zero value is ready to use.
type Listeners[T any] struct {
	funs []func(ev T)

	// calling is set while Call is dispatching, to detect re-entrant
	// dispatch, which corrupts the sorted state of the emitting model.
	calling bool
}

// Add adds a function to the end of the list.
func (ls *Listeners[T]) Add(fun func(ev T)) {
	ls.funs = append(ls.funs, fun)
}

// AddFirst adds a function ahead of all existing functions.
// Models layered on top of another model use this so that their
// own bookkeeping is current before any other observer runs.
func (ls *Listeners[T]) AddFirst(fun func(ev T)) {
	ls.funs = append([]func(T){fun}, ls.funs...)
}

// Len returns the number of registered functions.
func (ls *Listeners[T]) Len() int {
	return len(ls.funs)
}

// Call calls all functions in the order they were added.
// Functions added during the call are not called for this event.
func (ls *Listeners[T]) Call(ev T) {
	n := len(ls.funs)
	if n == 0 {
		return
	}
	if ls.calling {
		slog.Error("events: re-entrant dispatch; a listener mutated the model it is observing")
	}
	ls.calling = true
	defer func() { ls.calling = false }()
	for _, fun := range ls.funs[:n] {
		fun(ev)
	}
}

// Emitter is implemented by models that publish two-phase change
// notifications: Changing is always sent before a structural mutation
// and Changed always after it.
type Emitter[T any] interface {
	// OnChanging adds a listener called before each mutation.
	OnChanging(fun func(ev T))

	// OnChanged adds a listener called after each mutation.
	OnChanged(fun func(ev T))
}
