// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tm wraps the Time Machine `tmutil` utility: backup discovery and
// the per-path inclusion policy check.
package tm
