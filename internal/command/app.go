// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tmdiff/tmdiff/internal/config"
	"github.com/tmdiff/tmdiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// A missing config file is fine; flags fall back to their defaults.
	cfg, _ := config.Load() //nolint
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "tmdiff",
		Usage:     "Analyse differences between Time Machine backups",
		UsageText: "tmdiff [options]",
		Flags: append([]cli.Flag{
			NewBackupIdxFlag(),
			NewOrderFlag(cfg.Source),
			NewLimitFlag(cfg.Source),
			NewCacheFlag(cfg.Source),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tmdiff version info",
				HideDefault: true,
			},
		}, NewGlobalFlags()...),
		Action:   diffCommandAction,
		Metadata: map[string]any{"meta": m},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
