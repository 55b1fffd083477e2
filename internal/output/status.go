// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/frontendcfg/frontendcfg/internal/config"
)

// Level grades a Status for styling.
type Level int

const (
	LevelOK Level = iota
	LevelWarn
	LevelFail
)

var headlineColors = map[Level]lipgloss.Color{
	LevelOK:   lipgloss.Color("#04B575"),
	LevelWarn: lipgloss.Color("#E8B004"),
	LevelFail: lipgloss.Color("#E8384F"),
}

// Status is the human-readable result of a run. The same text goes to the
// console and to the step summary.
type Status struct {
	Level Level
	Lines []string
}

// NoConfigStatus reports that defaults were used because no config exists.
func NoConfigStatus() Status {
	return Status{
		Level: LevelWarn,
		Lines: []string{fmt.Sprintf(
			"⚠️ No repository configuration found; using defaults (dir: %s, node-version: %s)",
			config.DefaultDir, config.DefaultNodeVersion)},
	}
}

// ResolvedStatus reports the values extracted from src.
func ResolvedStatus(src config.Source, r config.Resolved) Status {
	return Status{
		Level: LevelOK,
		Lines: []string{
			fmt.Sprintf("✅ Frontend configuration extracted from %s", src),
			fmt.Sprintf("- Working directory: `%s`", r.Dir),
			fmt.Sprintf("- Node.js version: `%s`", r.NodeVersion),
			fmt.Sprintf("- Has frontend: `%s`", strconv.FormatBool(r.HasFrontend)),
		},
	}
}

// FailureStatus is the summary entry for a failed run.
func FailureStatus(err error) Status {
	return Status{
		Level: LevelFail,
		Lines: []string{"❌ " + Message(err)},
	}
}

// Message renders err for a reader: the error text with its first letter
// upper-cased, e.g. "Failed to parse YAML: ...".
func Message(err error) string {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

// Text joins the lines without styling.
func (s Status) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Print writes the status to w. With color the headline is styled.
func (s Status) Print(w io.Writer, color bool) {
	if !color || len(s.Lines) == 0 {
		fmt.Fprintln(w, s.Text())
		return
	}

	style := newRenderer(w, color).NewStyle().
		Bold(true).
		Foreground(headlineColors[s.Level])

	lines := append([]string{style.Render(s.Lines[0])}, s.Lines[1:]...)
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

// newRenderer returns a renderer for w. Requested color is forced on whether
// or not w is a terminal.
func newRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
