// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/frontendcfg/frontendcfg/internal/log"
)

// DefaultConfigFile is the repository-relative fallback config path.
const DefaultConfigFile = ".github/repository-config.yml"

// SourceKind tells where config text came from.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceInput
	SourceFile
)

// Source describes the origin of the config text for status messages.
type Source struct {
	Kind SourceKind
	Path string
}

func (s Source) String() string {
	switch s.Kind {
	case SourceInput:
		return "`repository-config` input"
	case SourceFile:
		return "`" + s.Path + "`"
	default:
		return ""
	}
}

// Load picks the config text. Non-blank inline text wins; otherwise the file
// at path is read if it exists. A missing file is not an error and yields
// empty text with SourceNone. A path that exists but cannot be read, such as
// a directory, is an error.
func Load(inline, path string) (string, Source, error) {
	if strings.TrimSpace(inline) != "" {
		log.Debugf("using inline config: bytes=%d", len(inline))
		return inline, Source{Kind: SourceInput}, nil
	}

	if path == "" {
		return "", Source{}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no config file at %s", path)
			return "", Source{}, nil
		}
		return "", Source{}, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}
	if info.IsDir() {
		return "", Source{}, fmt.Errorf("config file path is a directory: %s", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", Source{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	log.Debugf("using config file: path=%s bytes=%d", path, len(b))
	return string(b), Source{Kind: SourceFile, Path: path}, nil
}
