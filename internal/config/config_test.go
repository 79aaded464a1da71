// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a YAML config file, points TMDIFF_CFG_FILE at it, and
// resets the global Config so the next getter reloads.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tmdiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("TMDIFF_CFG_FILE", path)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
	return path
}

// TestLoad verifies the YAML file named by TMDIFF_CFG_FILE populates the
// global Config.
func TestLoad(t *testing.T) {
	path := writeConfig(t, "order: SIZE\n")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "SIZE", cfg.Data["order"])
}

// TestLoad_MissingFile verifies a bogus TMDIFF_CFG_FILE is an error.
func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("TMDIFF_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()

	assert.Error(t, err)
}

// TestLoad_Directory verifies TMDIFF_CFG_FILE pointing at a directory is an
// error.
func TestLoad_Directory(t *testing.T) {
	t.Setenv("TMDIFF_CFG_FILE", t.TempDir())
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()

	assert.Error(t, err)
}

// TestLoad_MalformedYAML verifies parse failures propagate.
func TestLoad_MalformedYAML(t *testing.T) {
	writeConfig(t, ":\n  - not yaml: [")

	_, err := Load()

	assert.Error(t, err)
}

// TestGetString verifies lookups, nested dotted keys, and defaults.
func TestGetString(t *testing.T) {
	writeConfig(t, "order: SIZE\ncache:\n  dir: /tmp/tm\n")

	v, err := GetString("order")
	require.NoError(t, err)
	assert.Equal(t, "SIZE", v)

	v, err = GetString("cache.dir")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tm", v)

	v, err = GetString("missing", "PATH")
	require.NoError(t, err)
	assert.Equal(t, "PATH", v)

	_, err = GetString("missing")
	assert.Error(t, err)
}

// TestGetString_WrongType verifies a non-string value is rejected.
func TestGetString_WrongType(t *testing.T) {
	writeConfig(t, "limit: 25\n")

	_, err := GetString("limit")

	assert.Error(t, err)
}

// TestGetInt verifies integer lookups and defaults.
func TestGetInt(t *testing.T) {
	writeConfig(t, "limit: 25\ncache:\n  purge_hours: 48\n")

	v, err := GetInt("limit")
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	v, err = GetInt("cache.purge_hours")
	require.NoError(t, err)
	assert.Equal(t, 48, v)

	v, err = GetInt("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = GetInt("missing")
	assert.Error(t, err)
}

// TestGetInt_Namespaced verifies the namespaced key is preferred when the
// bare key is absent.
func TestGetInt_Namespaced(t *testing.T) {
	writeConfig(t, "diff:\n  limit: 10\n")
	_, err := Load()
	require.NoError(t, err)
	Config.Namespace = "diff"

	v, err := GetInt("limit")
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}
