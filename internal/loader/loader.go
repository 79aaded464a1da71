// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tmdiff/tmdiff/internal/cacheutil"
	"github.com/tmdiff/tmdiff/internal/log"
	"github.com/tmdiff/tmdiff/internal/tm"
)

// cacheSubdir groups du listings beneath the base cache directory.
const cacheSubdir = "du"

// NotReadyError reports a snapshot whose content did not become visible
// within the wait budget.
type NotReadyError struct {
	Path string
	Wait time.Duration
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf(
		"backup directory not visible after %s, maybe try to open it in Finder manually and retry: %s",
		e.Wait, e.Path)
}

// Loader produces the raw `du -k` listing for a snapshot root. Files inside a
// Time Machine backup only become visible after a Finder window has been
// opened on the path, so a cache miss opens one and polls until the directory
// has entries.
type Loader struct {
	Runner       tm.Runner
	OpenCmd      string
	PollInterval time.Duration
	WaitTimeout  time.Duration
}

// New returns a Loader bound to the real commands and default wait budget.
func New() *Loader {
	return &Loader{
		Runner:       tm.ExecRunner{},
		OpenCmd:      "open",
		PollInterval: time.Second,
		WaitTimeout:  5 * time.Second,
	}
}

// Load returns the raw disk usage listing for the snapshot root, from cache
// when available.
func (l *Loader) Load(ctx context.Context, snapshotRoot string) (string, error) {
	log.Infof("Loading disk usage for %s", snapshotRoot)

	if entry, ok := cacheutil.Read([]string{cacheSubdir}, snapshotRoot); ok {
		log.Infof("Using cached disk usage of %s", snapshotRoot)
		return string(entry.Data), nil
	}

	log.Infof("Starting 'Finder' for %s", snapshotRoot)
	if _, err := l.Runner.Output(ctx, "", l.OpenCmd, snapshotRoot); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", snapshotRoot, err)
	}

	if err := l.waitForContent(ctx, snapshotRoot); err != nil {
		return "", err
	}

	log.Infof("Using 'du' for disk usage of %s...", snapshotRoot)
	out, err := l.Runner.Output(ctx, snapshotRoot, "du", "-k", ".")
	if err != nil {
		return "", fmt.Errorf("failed to measure disk usage of %s: %w", snapshotRoot, err)
	}

	if err := cacheutil.Write([]string{cacheSubdir}, snapshotRoot, out); err != nil {
		log.WithError(err).Warnf("failed to cache disk usage of %s", snapshotRoot)
	}

	return string(out), nil
}

// waitForContent polls until the directory has at least one entry, the wait
// budget runs out, or the context is cancelled.
func (l *Loader) waitForContent(ctx context.Context, path string) error {
	deadline := time.Now().Add(l.WaitTimeout)
	for {
		log.Infof("Waiting for files in %s...", path)
		if entries, err := os.ReadDir(path); err == nil && len(entries) > 0 {
			return nil
		}

		if time.Now().After(deadline) {
			return &NotReadyError{Path: path, Wait: l.WaitTimeout}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.PollInterval):
		}
	}
}
