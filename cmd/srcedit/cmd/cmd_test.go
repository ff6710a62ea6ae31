// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, text string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(text), 0o644))
	return fn
}

func run(t *testing.T, args ...string) string {
	cfgFile, verbose = "", false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestTokens(t *testing.T) {
	fn := writeFile(t, "a.js", "var x = 'y';")
	out := run(t, "tokens", fn)
	assert.Contains(t, out, "Keyword 0 3\t\"var\"\n")
	assert.Contains(t, out, "String 8 11\t\"'y'\"\n")

	cfg := writeFile(t, "settings.toml", "keywords = [\"x\"]\n")
	out = run(t, "tokens", "--config", cfg, fn)
	assert.Contains(t, out, "Unknown 0 3\t\"var\"\n")
	assert.Contains(t, out, "Keyword 4 5\t\"x\"\n")
}

func TestStyles(t *testing.T) {
	fn := writeFile(t, "a.js", "var x; /* a\nTODO b */")
	out := run(t, "styles", fn)
	assert.Contains(t, out, "kind: BlockComment")
	assert.Contains(t, out, "tag: Keyword")
	assert.Contains(t, out, "type: task")
	assert.Contains(t, out, "title: TODO b")
}

func TestHTML(t *testing.T) {
	fn := writeFile(t, "a.js", "var x; // see http://a.org")
	out := run(t, "html", "--style", "monokai", fn)
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "http://a.org")
}

func TestReplay(t *testing.T) {
	old := writeFile(t, "old.js", "a /* b */\nc")
	nw := writeFile(t, "new.js", "a /* b\n */ c /* TODO */ d\n/* e")
	out := run(t, "replay", old, nw)
	assert.Contains(t, out, "3 comments")

	d := newDocument("x")
	n, err := d.replay("/* x */")
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Len(t, d.styler.Comments(), 1)
}

func TestMissingFile(t *testing.T) {
	cfgFile = ""
	rootCmd.SetArgs([]string{"tokens", filepath.Join(t.TempDir(), "missing.js")})
	assert.Error(t, rootCmd.Execute())
}
