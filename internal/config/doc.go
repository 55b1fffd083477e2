// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads a repository configuration document and resolves the
// frontend settings CI needs from it: the frontend working directory and the
// Node.js version. The document is normally .github/repository-config.yml, or
// inline YAML handed over through the REPOSITORY_CONFIG environment variable.
//
// Lookups are defensive. The document is untrusted, so every key is type
// checked and anything of an unexpected shape falls back to the defaults
// ("web" and "22").
package config
