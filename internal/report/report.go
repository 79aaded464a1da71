// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/tmdiff/tmdiff/internal/diff"
)

// Options controls presentation only; values computed by the diff engine are
// never altered here.
type Options struct {
	// Limit is the truncation applied to the change set, echoed in the
	// header. Zero means the full set was rendered.
	Limit int
	// Color styles the change kind per severity.
	Color bool
}

var kindStyles = map[diff.Kind]lipgloss.Style{
	diff.New:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	diff.Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	diff.Changed: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

// Write renders the change report: a header naming the unit (and the limit,
// when one was applied), one line per change, and a grand total line.
func Write(w io.Writer, res diff.Result, opts Options) {
	limitHint := ""
	if opts.Limit > 0 {
		limitHint = fmt.Sprintf(" ( only the first %d changes )", opts.Limit)
	}
	fmt.Fprintf(w, "Differences in 1K blocks%s:\n", limitHint)

	for _, c := range res.Changes {
		// Pad the kind before styling so ANSI sequences don't skew the
		// column widths.
		kind := fmt.Sprintf("%7s", c.Kind)
		if opts.Color {
			kind = kindStyles[c.Kind].Render(kind)
		}
		fmt.Fprintf(w, "%s %8d %s\n", kind, c.Delta, c.Path)
	}

	fmt.Fprintf(w, "CHANGED %8d TOTAL (~ %s)\n", res.Total, approxBytes(res.Total))
}

// SnapshotRow is one discovered backup in the listing. Included is empty
// unless the inclusion check was requested.
type SnapshotRow struct {
	Index    int
	Path     string
	Included string
}

// ListOptions controls the snapshot listing presentation.
type ListOptions struct {
	Titles bool
	Color  bool
}

// Snapshots renders the discovered backups, oldest first, as a borderless
// table of 1-based indices and root paths.
func Snapshots(w io.Writer, rows []SnapshotRow, opts ListOptions) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No backups found.")
		return
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	if opts.Color {
		headerStyle = headerStyle.Foreground(lipgloss.Color("6"))
	}

	withIncluded := false
	for _, r := range rows {
		if r.Included != "" {
			withIncluded = true
			break
		}
	}

	var body [][]string
	for _, r := range rows {
		row := []string{strconv.Itoa(r.Index), r.Path}
		if withIncluded {
			row = append(row, r.Included)
		}
		body = append(body, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			style := cellStyle
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Rows(body...)

	if opts.Titles {
		headers := []string{"idx", "path"}
		if withIncluded {
			headers = append(headers, "included")
		}
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// approxBytes renders a 1K-block delta as an approximate byte size,
// sign dropped.
func approxBytes(blocks int64) string {
	if blocks < 0 {
		blocks = -blocks
	}
	return humanize.IBytes(uint64(blocks) * 1024)
}
