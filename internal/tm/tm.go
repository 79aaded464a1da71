// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UnknownResponseError reports tmutil output that matched none of the
// expected status prefixes.
type UnknownResponseError struct {
	Output string
}

func (e *UnknownResponseError) Error() string {
	return fmt.Sprintf("unknown tmutil output: %s", e.Output)
}

// Discovery enumerates Time Machine backups and answers inclusion queries.
// User and Home default from the environment and scope discovered snapshot
// roots to the current user's home.
type Discovery struct {
	Runner Runner
	User   string
	Home   string
}

// NewDiscovery returns a Discovery bound to the real tmutil and the current
// user.
func NewDiscovery() *Discovery {
	home, _ := os.UserHomeDir()
	return &Discovery{
		Runner: ExecRunner{},
		User:   os.Getenv("USER"),
		Home:   home,
	}
}

// ListSnapshotRoots returns the user-home root of every backup known to
// Time Machine, oldest first. An empty slice is a valid result, meaning no
// backups exist.
func (d *Discovery) ListSnapshotRoots(ctx context.Context) ([]string, error) {
	out, err := d.Runner.Output(ctx, "", "tmutil", "listbackups")
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var roots []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		roots = append(roots, filepath.Join(line, "Data", "Users", d.User))
	}
	return roots, nil
}

// IsIncluded reports whether the path (relative to the user's home) is
// subject to backup inclusion policy. tmutil answers [Included], [Excluded]
// or [Unknown]; Unknown collapses to included.
func (d *Discovery) IsIncluded(ctx context.Context, relativePath string) (bool, error) {
	out, err := d.Runner.Output(ctx, "", "tmutil", "isexcluded", filepath.Join(d.Home, relativePath))
	if err != nil {
		return false, fmt.Errorf("failed to query inclusion for %s: %w", relativePath, err)
	}

	response := strings.ToLower(string(out))
	switch {
	case strings.HasPrefix(response, "[included] "), strings.HasPrefix(response, "[unknown] "):
		return true, nil
	case strings.HasPrefix(response, "[excluded] "):
		return false, nil
	default:
		return false, &UnknownResponseError{Output: strings.TrimSpace(string(out))}
	}
}
