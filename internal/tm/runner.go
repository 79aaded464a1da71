// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tmdiff/tmdiff/internal/log"
)

// Runner abstracts external command invocation so collaborators can be faked
// in tests.
type Runner interface {
	// Output runs the command and returns its stdout. dir, when non-empty,
	// is the working directory for the command.
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	log.Debugf("exec: dir=%q cmd=%s %s", dir, name, strings.Join(args, " "))
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	out, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return out, nil
}
