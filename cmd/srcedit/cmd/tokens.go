// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/srcedit/text/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the code tokens of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readFile(args[0])
		if err != nil {
			return err
		}
		sc := &lexer.Scanner{
			Keywords:          lexer.NewKeywords(settings.Keywords...),
			WhitespaceVisible: settings.WhitespaceVisible,
			CSS:               settings.CSS,
		}
		w := cmd.OutOrStdout()
		for _, tk := range lexer.Tokens(sc, text, 0) {
			fmt.Fprintf(w, "%v\t%q\n", tk, text[tk.Start:tk.End])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
