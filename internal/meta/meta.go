// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"io"
	"os"
)

// Meta contains runtime metadata shared by commands.
type Meta struct {
	// Stdout receives console output: status lines, annotations and show
	// output.
	Stdout io.Writer
}

// Out returns the console writer, falling back to os.Stdout.
func (m Meta) Out() io.Writer {
	if m.Stdout == nil {
		return os.Stdout
	}
	return m.Stdout
}
