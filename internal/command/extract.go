// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/frontendcfg/frontendcfg/internal/config"
	"github.com/frontendcfg/frontendcfg/internal/log"
	"github.com/frontendcfg/frontendcfg/internal/output"
)

// extractCommandAction is the root action. It loads the repository config,
// resolves the frontend settings, and hands them to the runner as step
// outputs and a step summary. Default outputs are written on every path so
// later steps always see defined values.
func extractCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	w := meta.Out()
	color := cmd.Bool("color")
	sink := output.Sink{
		OutputPath:  cmd.String("github-output"),
		SummaryPath: cmd.String("step-summary"),
	}
	log.Debugf("extract: output=%q summary=%q", sink.OutputPath, sink.SummaryPath)

	text, src, err := config.Load(cmd.String("config"), cmd.String("config-file"))
	if err != nil {
		return fail(w, sink, err)
	}

	if strings.TrimSpace(text) == "" {
		if err := sink.WriteResolved(config.Defaults()); err != nil {
			return fmt.Errorf("failed to write step outputs: %w", err)
		}
		report(w, sink, output.NoConfigStatus(), color)
		return nil
	}

	resolved, err := config.Resolve(text)
	if err != nil {
		return fail(w, sink, err)
	}

	if err := sink.WriteResolved(resolved); err != nil {
		return fmt.Errorf("failed to write step outputs: %w", err)
	}
	report(w, sink, output.ResolvedStatus(src, resolved), color)

	return nil
}

// report prints status to w and mirrors it into the step summary.
func report(w io.Writer, sink output.Sink, status output.Status, color bool) {
	status.Print(w, color)
	if err := sink.WriteSummary(status.Text()); err != nil {
		log.WithError(err).Warn("step summary not written")
	}
}

// fail surfaces err to the runner, writes default outputs, and returns a
// ReportedError so the process exits non-zero without repeating itself.
func fail(w io.Writer, sink output.Sink, err error) error {
	output.Annotate(w, "error", output.Message(err))
	if serr := sink.WriteSummary(output.FailureStatus(err).Text()); serr != nil {
		log.WithError(serr).Warn("step summary not written")
	}
	if oerr := sink.WriteResolved(config.Defaults()); oerr != nil {
		log.WithError(oerr).Error("default outputs not written")
	}
	return &ReportedError{Err: err}
}
