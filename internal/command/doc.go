// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI for frontendcfg. The root action runs the
// CI extraction; show prints the resolved settings for local use. Flags take
// their defaults from the environment variables the runner sets.
package command
