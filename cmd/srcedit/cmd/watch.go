// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/srcedit/text/textpos"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Watch a file and report the ranges to redraw as it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watch updates a document from the file whenever it is written,
// until the context is done.
func watch(ctx context.Context, filename string) error {
	d, err := openDocument(filename)
	if err != nil {
		return err
	}
	d.styler.OnRedraw(func(r textpos.Range) {
		slog.Info("watch: redraw", "range", r)
	})
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	// watch the directory so that editors that replace the file are seen
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return fmt.Errorf("watch %s: %w", filename, err)
	}
	name := filepath.Clean(filename)
	slog.Info("watch: started", "file", name, "comments", len(d.styler.Comments()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			text, err := readFile(filename)
			if err != nil {
				slog.Warn("watch: reload", "err", err)
				continue
			}
			n, err := d.replay(text)
			if err != nil {
				return err
			}
			slog.Info("watch: updated", "edits", n, "comments", len(d.styler.Comments()))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}
