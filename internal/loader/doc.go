// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader obtains the raw disk usage listing for one backup snapshot,
// caching results on disk.
package loader
