// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command srcedit runs the source editing core on files: it dumps
// tokens and style spans, renders highlighted HTML, replays edits
// between two versions of a file and watches a file for changes.
package main

import (
	"os"

	"cogentcore.org/srcedit/cmd/srcedit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
