// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotations

import (
	"testing"

	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rulerSetup() (*lines.Lines, *Model, *Types) {
	txt := lines.New("l0\nl1\nl2\nl3\n")
	m := NewModel(txt)
	ts := DefaultTypes()
	m.Replace(nil, []*Annotation{
		ts.New(TypeError, 0, 1, ""),
		ts.New(TypeWarning, 1, 2, ""),
		ts.New(TypeTask, 3, 8, ""),
		ts.New(TypeBookmark, 9, 10, ""),
		ts.New(TypeBookmark, 10, 11, ""),
	})
	return txt, m, ts
}

func TestRuler(t *testing.T) {
	txt, m, ts := rulerSetup()
	filter := NewTypeList(TypeError, TypeWarning, TypeTask, TypeBookmark)
	ru := &Ruler{View: txt, Model: m, Filter: filter, Multiple: &Hints{HTML: "multi"}, MultipleOverlay: "overlay"}
	mks := ru.Annotations(0, 4)
	require.Len(t, mks, 4)

	mk := mks[0]
	assert.True(t, mk.Multiple)
	assert.Equal(t, "multi", mk.HTML)
	assert.Equal(t, "overlay", mk.Overlay)
	assert.Equal(t, "Error\nWarning", mk.Title)
	require.Len(t, mk.Annotations, 2)
	assert.Equal(t, TypeError, mk.Annotations[0].Type)

	task, _ := ts.Hints(TypeTask)
	assert.Equal(t, task.HTML, mks[1].HTML)
	assert.Equal(t, "", mks[2].HTML)
	assert.Len(t, mks[2].Annotations, 1)

	bm, _ := ts.Hints(TypeBookmark)
	assert.False(t, mks[3].Multiple)
	assert.Equal(t, bm.HTML, mks[3].HTML)
	assert.Equal(t, "Bookmark", mks[3].Title)
	assert.Len(t, mks[3].Annotations, 2)

	mks = ru.Annotations(1, 2)
	assert.Len(t, mks, 1)
	assert.Contains(t, mks, 1)

	filter.RemoveType(TypeWarning)
	mks = ru.Annotations(0, 1)
	assert.False(t, mks[0].Multiple)
	er, _ := ts.Hints(TypeError)
	assert.Equal(t, er.HTML, mks[0].HTML)
}

func TestRulerProjection(t *testing.T) {
	txt, m, _ := rulerSetup()
	pm := projection.NewModel(txt)
	require.NoError(t, pm.AddProjection(projection.New(txt.LineStart(1), txt.LineEnd(2, true), "")))
	ru := &Ruler{View: pm, Model: m}
	mks := ru.Annotations(0, pm.LineCount())
	require.Len(t, mks, 2)
	assert.Len(t, mks[0].Annotations, 2)
	assert.Len(t, mks[1].Annotations, 2)
	assert.Equal(t, TypeBookmark, mks[1].Annotations[0].Type)
}
