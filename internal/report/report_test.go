// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmdiff/tmdiff/internal/diff"
)

// TestWrite_Plain verifies the header, the fixed-width change lines, and the
// total line without color.
func TestWrite_Plain(t *testing.T) {
	res := diff.Result{
		Changes: []diff.Change{
			{Kind: diff.Removed, Delta: -10, Path: "a"},
			{Kind: diff.Changed, Delta: 2, Path: "b"},
			{Kind: diff.New, Delta: 3, Path: "c with space"},
		},
		Total: -5,
	}

	var buf bytes.Buffer
	Write(&buf, res, Options{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Differences in 1K blocks:", lines[0])
	assert.Equal(t, "REMOVED      -10 a", lines[1])
	assert.Equal(t, "CHANGED        2 b", lines[2])
	assert.Equal(t, "    NEW        3 c with space", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "CHANGED       -5 TOTAL"), lines[4])
}

// TestWrite_LimitHint verifies a positive limit is echoed in the header.
func TestWrite_LimitHint(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, diff.Result{}, Options{Limit: 7})

	assert.Contains(t, buf.String(), "Differences in 1K blocks ( only the first 7 changes ):")
}

// TestWrite_ColorKeepsValues verifies coloring never alters the numeric
// fields or paths.
func TestWrite_ColorKeepsValues(t *testing.T) {
	res := diff.Result{
		Changes: []diff.Change{{Kind: diff.New, Delta: 42, Path: "x"}},
		Total:   42,
	}

	var buf bytes.Buffer
	Write(&buf, res, Options{Color: true})

	out := buf.String()
	assert.Contains(t, out, "      42 x")
	assert.Contains(t, out, "NEW")
	assert.Contains(t, out, "CHANGED       42 TOTAL")
}

// TestSnapshots_Empty verifies the no-backups message.
func TestSnapshots_Empty(t *testing.T) {
	var buf bytes.Buffer
	Snapshots(&buf, nil, ListOptions{})

	assert.Equal(t, "No backups found.\n", buf.String())
}

// TestSnapshots_Listing verifies indices and paths appear in order.
func TestSnapshots_Listing(t *testing.T) {
	rows := []SnapshotRow{
		{Index: 1, Path: "/Volumes/TM/2026-08-01/Data/Users/me"},
		{Index: 2, Path: "/Volumes/TM/2026-08-02/Data/Users/me"},
	}

	var buf bytes.Buffer
	Snapshots(&buf, rows, ListOptions{})

	out := buf.String()
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "/Volumes/TM/2026-08-01/Data/Users/me")
	assert.Contains(t, out, "/Volumes/TM/2026-08-02/Data/Users/me")
	assert.Less(t,
		strings.Index(out, "2026-08-01"),
		strings.Index(out, "2026-08-02"))
}

// TestSnapshots_Titles verifies the optional header row, including the
// included column when any row carries an inclusion answer.
func TestSnapshots_Titles(t *testing.T) {
	rows := []SnapshotRow{
		{Index: 1, Path: "/b/one", Included: "yes"},
		{Index: 2, Path: "/b/two", Included: "no"},
	}

	var buf bytes.Buffer
	Snapshots(&buf, rows, ListOptions{Titles: true})

	out := buf.String()
	assert.Contains(t, out, "idx")
	assert.Contains(t, out, "path")
	assert.Contains(t, out, "included")
	assert.Contains(t, out, "yes")
}

// TestApproxBytes verifies the humanized suffix drops the sign.
func TestApproxBytes(t *testing.T) {
	assert.Equal(t, approxBytes(5), approxBytes(-5))
}
