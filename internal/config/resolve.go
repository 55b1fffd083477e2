// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/frontendcfg/frontendcfg/internal/log"
)

const (
	DefaultDir         = "web"
	DefaultNodeVersion = "22"
)

// frontendDirKeys are checked in order under working_directories. The first
// truthy value wins.
var frontendDirKeys = []string{"frontend", "node"}

// Resolved is the frontend configuration extracted from a repository config.
// Dir and NodeVersion are never empty.
type Resolved struct {
	Dir         string `json:"dir" yaml:"dir"`
	NodeVersion string `json:"node-version" yaml:"node-version"`
	HasFrontend bool   `json:"has-frontend" yaml:"has-frontend"`
}

// Defaults returns the record used when no configuration applies.
func Defaults() Resolved {
	return Resolved{
		Dir:         DefaultDir,
		NodeVersion: DefaultNodeVersion,
	}
}

// Resolve extracts the frontend directory and Node.js version from YAML
// text. Blank text is not an error and yields Defaults(). Invalid YAML yields
// a *ParseError.
func Resolve(text string) (Resolved, error) {
	resolved := Defaults()
	if strings.TrimSpace(text) == "" {
		return resolved, nil
	}

	doc, err := Parse(text)
	if err != nil {
		return Defaults(), err
	}

	if dirs, ok := doc.Map("working_directories"); ok {
		for _, key := range frontendDirKeys {
			if v := dirs[key]; truthy(v) {
				log.Debugf("frontend dir from working_directories.%s", key)
				resolved.Dir = stringify(v)
				resolved.HasFrontend = true
				break
			}
		}
	}

	// Any versions.node entry marks a frontend, even one that leaves the
	// version at its default.
	if versions, ok := doc.Map("versions"); ok {
		if v, present := versions["node"]; present {
			switch node := v.(type) {
			case []interface{}:
				for _, entry := range node {
					if truthy(entry) {
						resolved.NodeVersion = stringify(entry)
						break
					}
				}
			case nil:
			default:
				resolved.NodeVersion = stringify(node)
			}
			resolved.HasFrontend = true
		}
	}

	if resolved.Dir == "" {
		resolved.Dir = DefaultDir
	}
	if resolved.NodeVersion == "" {
		resolved.NodeVersion = DefaultNodeVersion
	}

	log.Tracef("resolved: %+v", resolved)
	return resolved, nil
}

// truthy reports whether a decoded YAML value counts as set. Null, empty
// strings, false, zero and empty collections do not.
func truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	case *big.Int:
		return v.Sign() != 0
	default:
		return true
	}
}

// stringify renders a decoded YAML value as an output string.
func stringify(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return formatFloat(v)
	case *big.Int:
		return v.String()
	case bool:
		if v {
			return "True"
		}
		return "False"
	case time.Time:
		return formatTime(v)
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat keeps a ".0" on integral values so "18.0" is not shortened to
// "18". Very large and very small magnitudes use exponent form (1e+20).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(f, 'e', -1, 64)
	if exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:]); err == nil && (exp < -4 || exp >= 16) {
		return e
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatTime renders a bare date as 2006-01-02 and anything with a clock
// part as "2006-01-02 15:04:05", adding microseconds and a UTC offset only
// when they are present.
func formatTime(t time.Time) string {
	_, offset := t.Zone()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 && offset == 0 {
		return t.Format("2006-01-02")
	}

	layout := "2006-01-02 15:04:05"
	if t.Nanosecond() != 0 {
		layout += ".000000"
	}
	if offset != 0 {
		layout += "-07:00"
	}
	return t.Format(layout)
}
