// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff computes the set of added, removed, and resized paths between
// two disk usage snapshots.
package diff
