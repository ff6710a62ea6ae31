// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the srcedit commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/srcedit/text/annotations"
	"cogentcore.org/srcedit/text/highlighting"
	"cogentcore.org/srcedit/text/lines"
	"cogentcore.org/srcedit/text/textpos"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	settings highlighting.Settings
)

var rootCmd = &cobra.Command{
	Use:           "srcedit",
	Short:         "Tokenize, style and track edits of source files",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		settings.Defaults()
		if cfgFile == "" {
			return nil
		}
		return settings.Open(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "styler settings file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		slog.Error("srcedit", "err", err)
	}
	return err
}

// document is a text model with its annotations and styler.
type document struct {
	text   *lines.Lines
	anns   *annotations.Model
	styler *highlighting.Styler
}

func newDocument(text string) *document {
	d := &document{text: lines.New(text)}
	d.anns = annotations.NewModel(d.text)
	d.styler = highlighting.NewStyler(d.text, d.anns, &settings)
	return d
}

func readFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	return string(b), nil
}

func openDocument(filename string) (*document, error) {
	text, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	d := newDocument(text)
	d.text.OnChanged(func(ch textpos.Change) {
		slog.Debug("edit", "file", filename, "change", ch)
	})
	return d, nil
}
