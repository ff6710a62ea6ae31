// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotations

import "slices"

// TypeFilter selects annotation types and orders them by priority.
type TypeFilter interface {
	// AddType makes the type visible, with the lowest priority so far.
	AddType(typ string)

	// RemoveType hides the type.
	RemoveType(typ string)

	// IsVisible returns true if the type is visible.
	IsVisible(typ string) bool

	// TypePriority returns the priority of the type, where 1 is the
	// highest priority and 0 means the type is hidden.
	TypePriority(typ string) int
}

// TypeList is a [TypeFilter] in which a type's priority is its
// position in the list.
type TypeList struct {
	types []string
}

// NewTypeList returns a type list holding the given types, in
// priority order.
func NewTypeList(types ...string) *TypeList {
	tl := &TypeList{}
	for _, t := range types {
		tl.AddType(t)
	}
	return tl
}

func (tl *TypeList) AddType(typ string) {
	if !slices.Contains(tl.types, typ) {
		tl.types = append(tl.types, typ)
	}
}

func (tl *TypeList) RemoveType(typ string) {
	if i := slices.Index(tl.types, typ); i >= 0 {
		tl.types = slices.Delete(tl.types, i, i+1)
	}
}

func (tl *TypeList) IsVisible(typ string) bool {
	return tl.TypePriority(typ) != 0
}

func (tl *TypeList) TypePriority(typ string) int {
	return slices.Index(tl.types, typ) + 1
}

// Types returns the visible types in priority order.
func (tl *TypeList) Types() []string {
	return slices.Clone(tl.types)
}
