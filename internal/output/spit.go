// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/frontendcfg/frontendcfg/internal/config"
)

// Formats lists the values accepted for --output.
var Formats = []string{"text", "json", "yaml"}

// Spit renders r to w in the requested format. If w is nil, os.Stdout is
// used.
func Spit(w io.Writer, format string, r config.Resolved, color bool) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		jsonOutput, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	case "text", "":
		keyStyle := newRenderer(w, color).NewStyle().Bold(true)
		for _, kv := range [][2]string{
			{"dir", r.Dir},
			{"node-version", r.NodeVersion},
			{"has-frontend", strconv.FormatBool(r.HasFrontend)},
		} {
			if _, err := fmt.Fprintf(w, "%s=%s\n", keyStyle.Render(kv[0]), kv[1]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", format, Formats)
	}
}
