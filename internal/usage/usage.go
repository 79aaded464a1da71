// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package usage

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeMap maps a relative path to its size in 1K blocks, as reported by
// `du -k`. Keys are unique; iteration order is unspecified.
type SizeMap map[string]int64

// Total returns the sum of all sizes in the map.
func (m SizeMap) Total() int64 {
	var total int64
	for _, size := range m {
		total += size
	}
	return total
}

// ParseError reports a listing line that could not be split into a size and
// a path.
type ParseError struct {
	LineNo int
	Line   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed disk usage line %d: %q", e.LineNo, e.Line)
}

// Parse converts a raw newline-separated `du -k` listing into a SizeMap.
// Each non-empty line must be `<size><whitespace><path>`; only the leading
// size token is split off, so paths may contain whitespace. Duplicate paths
// are last-write-wins, which standard du output never produces.
func Parse(text string) (SizeMap, error) {
	sizeByPath := SizeMap{}
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Split on the first run of whitespace. du separates with a tab,
		// but space-padded listings parse the same way.
		idx := strings.IndexAny(line, " \t")
		if idx < 0 {
			return nil, &ParseError{LineNo: i + 1, Line: line}
		}
		sizeTok := line[:idx]
		path := strings.TrimLeft(line[idx:], " \t")
		if path == "" {
			return nil, &ParseError{LineNo: i + 1, Line: line}
		}

		size, err := strconv.ParseInt(sizeTok, 10, 64)
		if err != nil {
			return nil, &ParseError{LineNo: i + 1, Line: line}
		}

		sizeByPath[path] = size
	}
	return sizeByPath, nil
}
