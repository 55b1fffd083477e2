// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frontendcfg/frontendcfg/internal/command"
	"github.com/frontendcfg/frontendcfg/internal/config"
	"github.com/frontendcfg/frontendcfg/internal/version"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", []string{}, false},
		{"program only", []string{"frontendcfg"}, false},
		{"long flag", []string{"frontendcfg", "--version"}, true},
		{"short flag", []string{"frontendcfg", "-v"}, true},
		{"after subcommand", []string{"frontendcfg", "show", "-v"}, true},
		{"other flags", []string{"frontendcfg", "--color"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, handleVersion(tt.args, &buf))
			if tt.want {
				assert.Equal(t, version.Version+"\n", buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	parseErr := &config.ParseError{Err: errors.New("did not find expected node content")}

	tests := []struct {
		name       string
		err        error
		want       int
		wantStderr string
	}{
		{
			name: "success",
			err:  nil,
			want: 0,
		},
		{
			name: "reported parse failure is silent",
			err:  &command.ReportedError{Err: parseErr},
			want: 1,
		},
		{
			name:       "wrapped reported failure is silent",
			err:        fmt.Errorf("run: %w", &command.ReportedError{Err: parseErr}),
			want:       1,
			wantStderr: "",
		},
		{
			name:       "other failure is printed",
			err:        errors.New("failed to write step outputs: permission denied"),
			want:       1,
			wantStderr: "failed to write step outputs: permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.want, exitCode(tt.err, &stderr))
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}
