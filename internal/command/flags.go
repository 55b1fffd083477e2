// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/frontendcfg/frontendcfg/internal/config"
	"github.com/frontendcfg/frontendcfg/internal/output"
)

// NewSourceFlags returns the flags that locate the repository config. Each
// command gets its own instances.
func NewSourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "inline repository config YAML",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("REPOSITORY_CONFIG"),
			),
			Local:       true,
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "config-file",
			Usage: "repository config file read when --config is blank",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CONFIG_FILE"),
			),
			Value: config.DefaultConfigFile,
			Local: true,
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored console output",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FRONTENDCFG_COLOR"),
			),
			Value: false,
			Local: true,
		},
	}
}

// NewSinkFlags returns the flags naming the runner's output and summary
// files. Either may be empty, which drops that half of the results.
func NewSinkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "github-output",
			Usage: "step output file",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar(output.OutputEnv),
			),
			Local:       true,
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "step-summary",
			Usage: "step summary file",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar(output.SummaryEnv),
			),
			Local:       true,
			HideDefault: true,
		},
	}
}

// NewOutputFlag returns the --output flag used by show.
func NewOutputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Local:   true,
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}
