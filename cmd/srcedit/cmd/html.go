// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/srcedit/text/highlighting"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/cobra"
)

var (
	htmlStyle   string
	htmlClasses bool
)

var htmlCmd = &cobra.Command{
	Use:   "html FILE",
	Short: "Render a file as highlighted HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDocument(args[0])
		if err != nil {
			return err
		}
		var toks []chroma.Token
		for ln := range d.text.LineCount() {
			start := d.text.LineStart(ln)
			text := d.text.Text(start, d.text.LineEnd(ln, true))
			toks = append(toks, highlighting.ChromaTokens(text, start, d.styler.LineStyles(ln))...)
		}
		f := html.New(html.Standalone(true), html.WithClasses(htmlClasses), html.WithLineNumbers(true))
		if err := f.Format(cmd.OutOrStdout(), styles.Get(htmlStyle), chroma.Literator(toks...)); err != nil {
			return fmt.Errorf("format %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	htmlCmd.Flags().StringVarP(&htmlStyle, "style", "s", "github", "chroma style name")
	htmlCmd.Flags().BoolVar(&htmlClasses, "classes", false, "use CSS classes instead of inline styles")
	rootCmd.AddCommand(htmlCmd)
}
