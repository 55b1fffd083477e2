// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendcfg/frontendcfg/internal/command"
	"github.com/frontendcfg/frontendcfg/internal/meta"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	require.NoError(t, render(&buf, command.NewApp(meta.Meta{}), now))
	out := buf.String()

	assert.Contains(t, out, "# frontendcfg\n")
	assert.Contains(t, out, "Generated March 4, 2026")
	assert.Contains(t, out, "\n## show\n")
	assert.Contains(t, out, "| `--config-file` | `CONFIG_FILE` |")
	assert.Contains(t, out, "| `--github-output` | `GITHUB_OUTPUT` |")
	assert.Contains(t, out, "| `--output`, `-o` |  | output format |")
}
