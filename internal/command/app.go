// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/frontendcfg/frontendcfg/internal/meta"
)

// InitApp builds the frontendcfg command tree for the current process.
func InitApp() *cli.Command {
	return NewApp(meta.Meta{Stdout: os.Stdout})
}

// NewApp assembles the root command around meta. The root action performs
// the CI extraction; subcommands are local helpers.
func NewApp(meta meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "frontendcfg",
		Usage:     "Extract frontend settings from the repository config",
		UsageText: "frontendcfg [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Writer:          meta.Out(),
		HideHelpCommand: true,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "frontendcfg version info",
				HideDefault: true,
				Local:       true,
			},
		}, append(NewSourceFlags(), NewSinkFlags()...)...),
		Action: extractCommandAction,
	}

	app.Commands = append(app.Commands,
		showCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
