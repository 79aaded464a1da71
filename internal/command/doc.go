// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command builds the CLI surface and orchestrates discovery, the
// parallel snapshot loads, the diff, and the report.
package command
