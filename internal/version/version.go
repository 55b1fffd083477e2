// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Keep this package free of other frontendcfg imports.

package version

import "runtime/debug"

// Version is the module version recorded at build time, or "dev" for local
// builds. It may also be overridden with -ldflags "-X ...version.Version=".
var Version = fromBuildInfo(debug.ReadBuildInfo)

func fromBuildInfo(read func() (*debug.BuildInfo, bool)) string {
	if info, ok := read(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
