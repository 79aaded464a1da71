// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmdiff/tmdiff/internal/usage"
)

// Kind classifies a single change between two snapshots.
type Kind int

const (
	New Kind = iota
	Removed
	Changed
)

// String returns the report label for the kind.
func (k Kind) String() string {
	switch k {
	case New:
		return "NEW"
	case Removed:
		return "REMOVED"
	case Changed:
		return "CHANGED"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Order selects how changes are sorted in the report.
type Order int

const (
	// ByPath sorts lexicographically ascending on path.
	ByPath Order = iota
	// BySize sorts descending on delta, ties broken by path ascending.
	BySize
)

// ParseOrder maps a PATH/SIZE flag value (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToUpper(s) {
	case "PATH":
		return ByPath, nil
	case "SIZE":
		return BySize, nil
	default:
		return 0, fmt.Errorf("unknown order: %s", s)
	}
}

func (o Order) String() string {
	switch o {
	case ByPath:
		return "PATH"
	case BySize:
		return "SIZE"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Change is one added, removed, or resized path. Delta is in 1K blocks and is
// never zero: REMOVED carries the negated prior size, NEW the new size, and
// CHANGED the right-minus-left difference.
type Change struct {
	Kind  Kind
	Delta int64
	Path  string
}

// Result is the outcome of comparing two snapshots. Total is the sum of
// deltas over the full change set; it is unaffected by ordering or limit.
type Result struct {
	Changes []Change
	Total   int64
}

// Diff compares two size maps and returns the ordered change set. A limit of
// zero or less returns all changes; a positive limit truncates the sorted
// changes but never the total. An unrecognized order is a configuration error.
func Diff(left, right usage.SizeMap, order Order, limit int) (Result, error) {
	changes := make([]Change, 0, len(left)+len(right))

	for path, size := range left {
		if _, ok := right[path]; ok {
			continue
		}
		if size != 0 {
			changes = append(changes, Change{Kind: Removed, Delta: -size, Path: path})
		}
	}
	for path, size := range right {
		if _, ok := left[path]; ok {
			continue
		}
		if size != 0 {
			changes = append(changes, Change{Kind: New, Delta: size, Path: path})
		}
	}
	for path, leftSize := range left {
		rightSize, ok := right[path]
		if !ok {
			continue
		}
		if delta := rightSize - leftSize; delta != 0 {
			changes = append(changes, Change{Kind: Changed, Delta: delta, Path: path})
		}
	}

	var total int64
	for _, c := range changes {
		total += c.Delta
	}

	switch order {
	case ByPath:
		sort.Slice(changes, func(one, two int) bool {
			return changes[one].Path < changes[two].Path
		})
	case BySize:
		// Map iteration order is random, so equal deltas tie-break by path
		// to keep the output deterministic.
		sort.Slice(changes, func(one, two int) bool {
			if changes[one].Delta != changes[two].Delta {
				return changes[one].Delta > changes[two].Delta
			}
			return changes[one].Path < changes[two].Path
		})
	default:
		return Result{}, fmt.Errorf("unknown order: %v", order)
	}

	if limit > 0 && limit < len(changes) {
		changes = changes[:limit]
	}

	return Result{Changes: changes, Total: total}, nil
}
