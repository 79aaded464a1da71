// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tm

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output per command name and records invocations.
type fakeRunner struct {
	output map[string][]byte
	err    error
	calls  []string
}

func (f *fakeRunner) Output(_ context.Context, dir string, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	if f.err != nil {
		return nil, f.err
	}
	return f.output[name], nil
}

// TestListSnapshotRoots verifies each backup line is extended to the user's
// home inside the snapshot, oldest first.
func TestListSnapshotRoots(t *testing.T) {
	runner := &fakeRunner{output: map[string][]byte{
		"tmutil": []byte("/Volumes/TM/2026-08-01-093015\n/Volumes/TM/2026-08-02-101502\n\n"),
	}}
	d := &Discovery{Runner: runner, User: "alice", Home: "/Users/alice"}

	roots, err := d.ListSnapshotRoots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("/Volumes/TM/2026-08-01-093015", "Data", "Users", "alice"),
		filepath.Join("/Volumes/TM/2026-08-02-101502", "Data", "Users", "alice"),
	}, roots)
	assert.Equal(t, []string{"tmutil listbackups"}, runner.calls)
}

// TestListSnapshotRoots_Empty verifies no backups is a valid, non-error
// result.
func TestListSnapshotRoots_Empty(t *testing.T) {
	d := &Discovery{Runner: &fakeRunner{output: map[string][]byte{"tmutil": []byte("\n")}}}

	roots, err := d.ListSnapshotRoots(context.Background())

	require.NoError(t, err)
	assert.Empty(t, roots)
}

// TestListSnapshotRoots_Failure verifies utility failure is propagated with
// context.
func TestListSnapshotRoots_Failure(t *testing.T) {
	wrapped := errors.New("tmutil: command not found")
	d := &Discovery{Runner: &fakeRunner{err: wrapped}}

	_, err := d.ListSnapshotRoots(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, wrapped)
}

// TestIsIncluded verifies the three-valued tmutil answer collapses to a
// boolean with Unknown treated as included, case-insensitively.
func TestIsIncluded(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"included", "[Included] /Users/alice/Documents\n", true},
		{"unknown", "[Unknown] /Users/alice/Downloads\n", true},
		{"excluded", "[Excluded] /Users/alice/tmp\n", false},
		{"lowercase", "[included] /Users/alice/Documents\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{output: map[string][]byte{"tmutil": []byte(tt.response)}}
			d := &Discovery{Runner: runner, Home: "/Users/alice"}

			got, err := d.IsIncluded(context.Background(), "Documents")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t,
				[]string{fmt.Sprintf("tmutil isexcluded %s", filepath.Join("/Users/alice", "Documents"))},
				runner.calls)
		})
	}
}

// TestIsIncluded_UnknownResponse verifies unexpected tmutil output fails with
// UnknownResponseError.
func TestIsIncluded_UnknownResponse(t *testing.T) {
	runner := &fakeRunner{output: map[string][]byte{"tmutil": []byte("isexcluded requires Full Disk Access\n")}}
	d := &Discovery{Runner: runner}

	_, err := d.IsIncluded(context.Background(), "Documents")

	var uerr *UnknownResponseError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Output, "Full Disk Access")
}
