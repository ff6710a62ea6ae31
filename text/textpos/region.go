// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides offset ranges and the edit notification
// record shared by the text models.
package textpos

import "fmt"

// Range is a contiguous half-open byte range [Start, End) of a document.
type Range struct {
	// Start is the first offset in the range.
	Start int

	// End is one past the last offset in the range.
	End int
}

// Len returns the number of bytes in the range.
func (rg Range) Len() int {
	return rg.End - rg.Start
}

func (rg Range) String() string {
	return fmt.Sprintf("[%d, %d)", rg.Start, rg.End)
}
