// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/srcedit/text/highlighting"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// lineStyles is the yaml dump of the style spans of one line.
type lineStyles struct {
	Line  int                      `yaml:"line"`
	Spans []highlighting.StyleSpan `yaml:"spans"`
}

// annotationDump is the yaml dump of one annotation.
type annotationDump struct {
	Type  string `yaml:"type"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Title string `yaml:"title,omitempty"`
}

// stylesDump is the yaml dump of the styles command.
type stylesDump struct {
	Comments    []highlighting.CommentRange `yaml:"comments"`
	Annotations []annotationDump            `yaml:"annotations,omitempty"`
	Lines       []lineStyles                `yaml:"lines"`
}

var stylesCmd = &cobra.Command{
	Use:   "styles FILE",
	Short: "Print the comment index, annotations and style spans of a file as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDocument(args[0])
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(d.dump()); err != nil {
			return fmt.Errorf("encode styles: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func (d *document) dump() *stylesDump {
	sd := &stylesDump{Comments: d.styler.Comments()}
	for _, a := range d.anns.All() {
		sd.Annotations = append(sd.Annotations, annotationDump{Type: a.Type, Start: a.Start, End: a.End, Title: a.Title})
	}
	for ln := range d.text.LineCount() {
		if spans := d.styler.LineStyles(ln); len(spans) > 0 {
			sd.Lines = append(sd.Lines, lineStyles{Line: ln, Spans: spans})
		}
	}
	return sd
}
