// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tmdiff/tmdiff/internal/diff"
)

// NewBackupIdxFlag constructs the --backup-idx flag. Index 1 is the oldest
// backup; negative values count from the newest (-1 = last).
func NewBackupIdxFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "backup-idx",
		Aliases: []string{"i"},
		Usage:   "analyse backup at `IDX` against its predecessor; omitted lists available backups",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TMDIFF_BACKUP_IDX"),
		),
	}
}

// NewOrderFlag constructs the --order flag, optionally sourcing a default
// from the config file.
func NewOrderFlag(cfgPath string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "order",
		Aliases: []string{"o"},
		Usage:   "order changes by PATH or SIZE",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TMDIFF_ORDER"),
		),
		Value: "PATH",
		Validator: func(value string) error {
			_, err := diff.ParseOrder(value)
			return err
		},
	}
	return namespacedValueChainFlagFromConfigFile("diff", cfgPath, flag)
}

// NewLimitFlag constructs the --limit flag. Zero means unlimited.
func NewLimitFlag(cfgPath string) *cli.IntFlag {
	flag := &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "only output up to `N` changes",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TMDIFF_LIMIT"),
		),
	}
	if cfgPath != "" {
		flag.Sources.Chain = append(flag.Sources.Chain,
			yaml.YAML("diff.limit", altsrc.StringSourcer(cfgPath)),
			yaml.YAML("limit", altsrc.StringSourcer(cfgPath)),
		)
	}
	return flag
}

// NewCacheFlag constructs the --cache flag overriding the disk usage cache
// directory.
func NewCacheFlag(cfgPath string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "cache",
		Usage: "use `PATH` to cache disk usage details of backups",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TMDIFF_CACHE_DIR"),
		),
	}
	return namespacedValueChainFlagFromConfigFile("cache", cfgPath, flag)
}

// NewGlobalFlags returns the presentation flags shared by the listing and
// the report.
func NewGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with the backup listing",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "pick",
			Aliases: []string{"p"},
			Usage:   "pick the backup to analyse interactively",
			Value:   false,
		},
		&cli.StringFlag{
			Name:  "check-included",
			Usage: "report whether `PATH` (relative to your home) is included in backups, then exit",
		},
	}
}

// namespacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func namespacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
