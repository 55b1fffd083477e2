// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/frontendcfg/frontendcfg/internal/config"
	"github.com/frontendcfg/frontendcfg/internal/log"
)

const (
	OutputEnv  = "GITHUB_OUTPUT"
	SummaryEnv = "GITHUB_STEP_SUMMARY"

	// multilineDelimiter closes a name<<EOF block in the output file.
	multilineDelimiter = "EOF"
)

// Sink appends step outputs and summary text to the files the runner
// designates. An empty path disables that half of the sink.
type Sink struct {
	OutputPath  string
	SummaryPath string
}

// WriteOutput appends name=value to the output file. Values containing a
// newline are written as a delimited block so the runner can parse them.
func (s Sink) WriteOutput(name, value string) error {
	if s.OutputPath == "" {
		log.Tracef("output dropped, %s unset: %s", OutputEnv, name)
		return nil
	}

	var line string
	if strings.Contains(value, "\n") {
		line = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, multilineDelimiter, value, multilineDelimiter)
	} else {
		line = fmt.Sprintf("%s=%s\n", name, value)
	}

	if err := appendFile(s.OutputPath, line); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	log.Debugf("output written: %s", name)
	return nil
}

// WriteSummary appends text and a trailing newline to the summary file.
func (s Sink) WriteSummary(text string) error {
	if s.SummaryPath == "" {
		log.Tracef("summary dropped, %s unset", SummaryEnv)
		return nil
	}

	if err := appendFile(s.SummaryPath, text+"\n"); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// WriteResolved writes the dir, node-version and has-frontend outputs. Every
// output is attempted; the first error is returned.
func (s Sink) WriteResolved(r config.Resolved) error {
	var first error
	for _, kv := range [][2]string{
		{"dir", r.Dir},
		{"node-version", r.NodeVersion},
		{"has-frontend", strconv.FormatBool(r.HasFrontend)},
	} {
		if err := s.WriteOutput(kv[0], kv[1]); err != nil {
			log.WithError(err).Errorf("output %s not written", kv[0])
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Annotate writes a workflow command such as ::error::msg to w.
func Annotate(w io.Writer, level, msg string) {
	fmt.Fprintf(w, "::%s::%s\n", level, msg)
}

func appendFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:mnd
	if err != nil {
		return err
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
