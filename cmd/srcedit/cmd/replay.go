// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/srcedit/text/lines"
	"github.com/spf13/cobra"
)

// errMismatch is returned by replay when the incrementally maintained
// comment index differs from a full rebuild.
var errMismatch = errors.New("incremental comment index differs from rebuild")

var replayCmd = &cobra.Command{
	Use:   "replay OLD NEW",
	Short: "Apply the edits from OLD to NEW and check the incremental comment index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDocument(args[0])
		if err != nil {
			return err
		}
		text, err := readFile(args[1])
		if err != nil {
			return err
		}
		n, err := d.replay(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d edits, %d comments\n", n, len(d.styler.Comments()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

// replay edits the document to the given text and verifies the
// comment index against one computed from scratch.
func (d *document) replay(text string) (int, error) {
	n := lines.ApplyDiff(d.text, text)
	got, want := d.styler.Comments(), newDocument(text).styler.Comments()
	if !slices.Equal(got, want) {
		return n, fmt.Errorf("%w: got %v want %v", errMismatch, got, want)
	}
	return n, nil
}
