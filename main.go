// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/frontendcfg/frontendcfg/internal/command"
	"github.com/frontendcfg/frontendcfg/internal/log"
	"github.com/frontendcfg/frontendcfg/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	if len(args) < 2 {
		return false
	}
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// exitCode maps an app error onto the process exit code. Errors already
// reported to the runner are not printed again.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var reported *command.ReportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(stderr, err)
	}
	log.Debugf("app run err: err=%v", err)
	return 1
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, os.Stdout) {
		return 0
	}

	return exitCode(command.InitApp().Run(ctx, args), os.Stderr)
}
