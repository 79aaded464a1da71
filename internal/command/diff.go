// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v3"

	"github.com/tmdiff/tmdiff/internal/cacheutil"
	"github.com/tmdiff/tmdiff/internal/config"
	"github.com/tmdiff/tmdiff/internal/diff"
	"github.com/tmdiff/tmdiff/internal/loader"
	"github.com/tmdiff/tmdiff/internal/log"
	"github.com/tmdiff/tmdiff/internal/report"
	"github.com/tmdiff/tmdiff/internal/tm"
	"github.com/tmdiff/tmdiff/internal/usage"
)

// diffCommandAction is the root action. It discovers backups, loads the two
// snapshot listings in parallel, diffs them, and renders the report.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cacheDir := cmd.String("cache"); cacheDir != "" {
		cacheutil.SetBaseDir(cacheDir)
	}
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		log.WithError(err).Warnf("cache unavailable")
	}
	purgeHours, _ := config.GetInt("cache.purge_hours", 0)
	if err := cacheutil.Purge(purgeHours); err != nil {
		log.WithError(err).Warnf("cache purge failed")
	}

	discovery := tm.NewDiscovery()

	if rel := cmd.String("check-included"); rel != "" {
		return checkIncluded(ctx, discovery, rel)
	}

	log.Infof("Searching for backups...")
	roots, err := discovery.ListSnapshotRoots(ctx)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		report.Snapshots(os.Stdout, nil, report.ListOptions{})
		return cli.Exit("", 1)
	}

	idx := int(cmd.Int("backup-idx"))
	idxSet := cmd.IsSet("backup-idx")
	listOpts := report.ListOptions{Titles: cmd.Bool("titles"), Color: cmd.Bool("color")}

	if !idxSet && cmd.Bool("pick") {
		if idx, err = pickSnapshot(roots); err != nil {
			return err
		}
		idxSet = idx > 0
	}

	if !idxSet {
		report.Snapshots(os.Stdout, snapshotRows(roots), listOpts)
		fmt.Fprintln(os.Stdout,
			"Select backup index to diff with predecessor, e.g use '-1' for the last backup.")
		return cli.Exit("", 1)
	}

	leftIdx, rightIdx, err := resolveIdx(idx, len(roots))
	if err != nil {
		return err
	}
	leftPath, rightPath := roots[leftIdx], roots[rightIdx]

	log.Infof("Analysing differences between")
	log.Infof("  %s", leftPath)
	log.Infof("and")
	log.Infof("  %s", rightPath)

	// Both snapshots load concurrently against distinct cache entries, and
	// both results are inspected before aborting so a failure on one side
	// never hides diagnostics from the other.
	ldr := newLoader()
	var (
		leftText, rightText string
		leftErr, rightErr   error
	)
	var wg conc.WaitGroup
	wg.Go(func() { leftText, leftErr = ldr.Load(ctx, leftPath) })
	wg.Go(func() { rightText, rightErr = ldr.Load(ctx, rightPath) })
	wg.Wait()

	if leftErr != nil {
		log.WithError(leftErr).Errorf("failed to load %s", leftPath)
	}
	if rightErr != nil {
		log.WithError(rightErr).Errorf("failed to load %s", rightPath)
	}
	if leftErr != nil || rightErr != nil {
		return fmt.Errorf("failed to load disk usage")
	}

	left, err := usage.Parse(leftText)
	if err != nil {
		return fmt.Errorf("failed to parse disk usage of %s: %w", leftPath, err)
	}
	right, err := usage.Parse(rightText)
	if err != nil {
		return fmt.Errorf("failed to parse disk usage of %s: %w", rightPath, err)
	}

	order, err := diff.ParseOrder(cmd.String("order"))
	if err != nil {
		return err
	}
	limit := int(cmd.Int("limit"))

	res, err := diff.Diff(left, right, order, limit)
	if err != nil {
		return err
	}

	report.Write(os.Stdout, res, report.Options{Limit: limit, Color: cmd.Bool("color")})
	return nil
}

// checkIncluded answers the --check-included query and exits the action.
func checkIncluded(ctx context.Context, discovery *tm.Discovery, rel string) error {
	included, err := discovery.IsIncluded(ctx, rel)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "included=%t %s\n", included, rel)
	return nil
}

// newLoader builds a Loader with the wait budget from config, if present.
func newLoader() *loader.Loader {
	ldr := loader.New()
	if secs, err := config.GetInt("wait.timeout_seconds", 0); err == nil && secs > 0 {
		ldr.WaitTimeout = time.Duration(secs) * time.Second
	}
	if ms, err := config.GetInt("wait.poll_ms", 0); err == nil && ms > 0 {
		ldr.PollInterval = time.Duration(ms) * time.Millisecond
	}
	return ldr
}

// snapshotRows converts discovered roots to 1-based listing rows.
func snapshotRows(roots []string) []report.SnapshotRow {
	rows := make([]report.SnapshotRow, len(roots))
	for i, p := range roots {
		rows[i] = report.SnapshotRow{Index: i + 1, Path: p}
	}
	return rows
}

// resolveIdx maps a 1-based backup index (negative counts from the newest,
// -1 = last) to the 0-based left and right snapshot positions.
func resolveIdx(idx, count int) (int, int, error) {
	if idx < 0 {
		idx = count + 1 + idx
	}
	if idx < 2 || idx > count {
		return 0, 0, fmt.Errorf(
			"backup index %d has no predecessor to diff against (have %d backups)", idx, count)
	}
	return idx - 2, idx - 1, nil
}
