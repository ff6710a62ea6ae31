// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"os"

	"cogentcore.org/srcedit/text/lexer"
	"github.com/pelletier/go-toml/v2"
)

// DefaultBugURL is the link prefix of bug#NNN references.
const DefaultBugURL = "https://bugs.eclipse.org/bugs/show_bug.cgi?id="

// Settings are the styler settings.
type Settings struct {

	// WhitespaceVisible styles each space and tab on its own.
	WhitespaceVisible bool `toml:"whitespace_visible"`

	// DetectHyperlinks styles URLs and bug#NNN references in comments
	// as links.
	DetectHyperlinks bool `toml:"detect_hyperlinks"`

	// Folding maintains folding annotations for multi-line comments
	// when the styler works over a projection.
	Folding bool `toml:"folding"`

	// CSS scans in CSS mode: no // comments, and - in identifiers.
	CSS bool `toml:"css"`

	// Keywords are the words styled as keywords.
	Keywords []string `toml:"keywords"`

	// BugURL is the link prefix of bug#NNN references.
	BugURL string `toml:"bug_url"`

	// MaxBracketLines limits the number of lines searched for a
	// matching bracket; 0 means no limit.
	MaxBracketLines int `toml:"max_bracket_lines"`
}

// Defaults sets the default settings.
func (se *Settings) Defaults() {
	se.WhitespaceVisible = false
	se.DetectHyperlinks = true
	se.Folding = true
	se.CSS = false
	se.Keywords = lexer.CodeKeywords
	se.BugURL = DefaultBugURL
	se.MaxBracketLines = 2000
}

// Open reads settings from the given TOML file, on top of the
// current values.
func (se *Settings) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("highlighting: open settings: %w", err)
	}
	if err := toml.Unmarshal(b, se); err != nil {
		return fmt.Errorf("highlighting: parse settings %s: %w", filename, err)
	}
	return nil
}

// Save writes the settings to the given TOML file.
func (se *Settings) Save(filename string) error {
	b, err := toml.Marshal(se)
	if err != nil {
		return fmt.Errorf("highlighting: encode settings: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("highlighting: save settings: %w", err)
	}
	return nil
}
