// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/frontendcfg/frontendcfg/internal/config"
	"github.com/frontendcfg/frontendcfg/internal/log"
	"github.com/frontendcfg/frontendcfg/internal/meta"
	"github.com/frontendcfg/frontendcfg/internal/output"
)

// showCommandAction resolves the config the same way the root action does
// but only prints the result. Runner files are never touched.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)

	text, src, err := config.Load(cmd.String("config"), cmd.String("config-file"))
	if err != nil {
		return err
	}
	if src.Kind == config.SourceNone {
		log.Infof("no repository configuration found; showing defaults")
	}

	resolved, err := config.Resolve(text)
	if err != nil {
		return err
	}

	return output.Spit(meta.Out(), cmd.String("output"), resolved, cmd.Bool("color"))
}

// showCommandBuilder constructs the cli.Command for "show".
func showCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print the resolved frontend settings",
		UsageText: "frontendcfg show [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewSourceFlags(), NewOutputFlag()),
		Action: showCommandAction,
	}
}
