// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output emits run results: step outputs and the step summary for the
// CI runner, workflow annotations, the console status block, and formatted
// renderings for local inspection.
package output
